package postgres

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

var _ repository.AnomalyRepository = (*AnomalyRepo)(nil)

// AnomalyRepo adaptador de la colección anomalies.
type AnomalyRepo struct {
	anomalies *Collection
}

// NewAnomalyRepository construye el adaptador.
func NewAnomalyRepository(db DBTX) *AnomalyRepo {
	return &AnomalyRepo{anomalies: NewStore(db).Collection(CollectionAnomalies)}
}

// Create persiste una anomalía detectada.
func (r *AnomalyRepo) Create(ctx context.Context, a *entity.Anomaly) error {
	return r.anomalies.Insert(ctx, a.ID, a.RestaurantID, a)
}

// ListByRestaurant devuelve las más recientes primero (por detected_at).
func (r *AnomalyRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]*entity.Anomaly, error) {
	bodies, err := r.anomalies.FindByTenant(ctx, restaurantID, FindQuery{
		SortField: "detected_at",
		Desc:      true,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll[entity.Anomaly](r.anomalies.Name(), bodies)
}
