package postgres

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

var _ repository.CompetitorRepository = (*CompetitorRepo)(nil)

// CompetitorRepo adaptador de la colección competitors.
type CompetitorRepo struct {
	competitors *Collection
}

// NewCompetitorRepository construye el adaptador.
func NewCompetitorRepository(db DBTX) *CompetitorRepo {
	return &CompetitorRepo{competitors: NewStore(db).Collection(CollectionCompetitors)}
}

// Create persiste un competidor.
func (r *CompetitorRepo) Create(ctx context.Context, c *entity.Competitor) error {
	return r.competitors.Insert(ctx, c.ID, c.RestaurantID, c)
}

// GetByID obtiene un competidor del restaurante.
func (r *CompetitorRepo) GetByID(ctx context.Context, restaurantID, id string) (*entity.Competitor, error) {
	var c entity.Competitor
	found, err := r.competitors.FindOne(ctx, restaurantID, id, &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// ListByRestaurant lista los competidores del restaurante en orden de alta.
func (r *CompetitorRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Competitor, error) {
	bodies, err := r.competitors.FindByTenant(ctx, restaurantID, FindQuery{})
	if err != nil {
		return nil, err
	}
	return decodeAll[entity.Competitor](r.competitors.Name(), bodies)
}

// Update reemplaza el documento. Devuelve domain.ErrNotFound si el ID no pertenece al restaurante.
func (r *CompetitorRepo) Update(ctx context.Context, c *entity.Competitor) error {
	n, err := r.competitors.UpdateByTenant(ctx, c.RestaurantID, c.ID, c)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el competidor del restaurante y devuelve la cantidad eliminada.
func (r *CompetitorRepo) Delete(ctx context.Context, restaurantID, id string) (int64, error) {
	return r.competitors.DeleteByTenant(ctx, restaurantID, id)
}
