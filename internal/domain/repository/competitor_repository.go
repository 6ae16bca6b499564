package repository

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

// CompetitorRepository persistencia de competidores. Toda operación va filtrada por restaurantID.
type CompetitorRepository interface {
	Create(ctx context.Context, competitor *entity.Competitor) error
	// GetByID devuelve (nil, nil) si el ID no existe dentro del tenant.
	GetByID(ctx context.Context, restaurantID, id string) (*entity.Competitor, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Competitor, error)
	// Update devuelve domain.ErrNotFound si el ID no existe dentro del tenant.
	Update(ctx context.Context, competitor *entity.Competitor) error
	// Delete devuelve la cantidad de documentos eliminados (0 si el ID es de otro tenant).
	Delete(ctx context.Context, restaurantID, id string) (int64, error)
}
