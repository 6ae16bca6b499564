package postgres

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo adaptador de la colección restaurants. El restaurant_id de la fila es su propio ID.
type RestaurantRepo struct {
	restaurants *Collection
}

// NewRestaurantRepository construye el adaptador.
func NewRestaurantRepository(db DBTX) *RestaurantRepo {
	return &RestaurantRepo{restaurants: NewStore(db).Collection(CollectionRestaurants)}
}

// Create persiste el restaurante.
func (r *RestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.restaurants.Insert(ctx, restaurant.ID, restaurant.ID, restaurant)
}

// GetByID obtiene un restaurante por ID.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	found, err := r.restaurants.FindByID(ctx, id, &rest)
	if err != nil || !found {
		return nil, err
	}
	return &rest, nil
}
