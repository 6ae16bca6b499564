package repository

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail busca en todos los tenants; devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, restaurantID, id string) (*entity.User, error)
}
