package postgres

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección users.
type UserRepo struct {
	users *Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DBTX) *UserRepo {
	return &UserRepo{users: NewStore(db).Collection(CollectionUsers)}
}

// Create persiste un nuevo usuario. El índice único sobre el email traduce duplicados a ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := r.users.Insert(ctx, user.ID, user.RestaurantID, user); err != nil {
		if violatesUnique(err, constraintUserEmail) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail obtiene un usuario por email (cualquier restaurante).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	found, err := r.users.FindOneGlobal(ctx, "email", email, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// FindByID obtiene un usuario por ID dentro del restaurante.
func (r *UserRepo) FindByID(ctx context.Context, restaurantID, id string) (*entity.User, error) {
	var u entity.User
	found, err := r.users.FindOne(ctx, restaurantID, id, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}
