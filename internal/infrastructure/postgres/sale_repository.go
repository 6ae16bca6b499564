package postgres

import (
	"context"
	"time"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adaptador de la colección sales.
type SaleRepo struct {
	sales *Collection
}

// NewSaleRepository construye el adaptador (pool o tx).
func NewSaleRepository(db DBTX) *SaleRepo {
	return &SaleRepo{sales: NewStore(db).Collection(CollectionSales)}
}

// InsertMany inserta los registros uno a uno; usar dentro de TxRunner.RunSales para atomicidad.
func (r *SaleRepo) InsertMany(ctx context.Context, sales []*entity.Sale) error {
	for _, s := range sales {
		if err := r.sales.Insert(ctx, s.ID, s.RestaurantID, s); err != nil {
			return err
		}
	}
	return nil
}

// ListByRestaurant devuelve las ventas del restaurante ordenadas por fecha ascendente.
func (r *SaleRepo) ListByRestaurant(ctx context.Context, restaurantID string, from, to *time.Time) ([]*entity.Sale, error) {
	bodies, err := r.sales.FindByTenant(ctx, restaurantID, FindQuery{
		SortField: "date",
		TimeField: "date",
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll[entity.Sale](r.sales.Name(), bodies)
}
