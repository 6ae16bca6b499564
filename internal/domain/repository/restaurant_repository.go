package repository

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

// RestaurantRepository define el puerto de persistencia para Restaurant.
// La implementación vive en infrastructure.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
}
