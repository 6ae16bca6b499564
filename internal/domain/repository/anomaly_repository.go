package repository

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

// AnomalyRepository persistencia de anomalías detectadas (solo inserción y lectura).
type AnomalyRepository interface {
	Create(ctx context.Context, anomaly *entity.Anomaly) error
	// ListByRestaurant ordena por detected_at descendente.
	ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]*entity.Anomaly, error)
}
