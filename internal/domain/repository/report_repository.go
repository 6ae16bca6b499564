package repository

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

// ReportRepository persistencia de metadatos de reportes generados.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, restaurantID, id string) (*entity.Report, error)
	// ListByRestaurant ordena por created_at descendente.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Report, error)
}
