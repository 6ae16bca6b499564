package repository

import (
	"context"
	"time"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

// SaleRepository persistencia de registros de venta importados.
type SaleRepository interface {
	InsertMany(ctx context.Context, sales []*entity.Sale) error
	// ListByRestaurant filtra por fecha de venta; from/to nil = sin límite.
	ListByRestaurant(ctx context.Context, restaurantID string, from, to *time.Time) ([]*entity.Sale, error)
}
