package entity

import "time"

// Competitor restaurante de la competencia registrado por un tenant.
type Competitor struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PriceIndex   float64   `json:"price_index"` // relación contra los precios propios (1.0 = iguales)
	PopularItems []string  `json:"popular_items"`
	Strengths    []string  `json:"strengths"`
	Weaknesses   []string  `json:"weaknesses"`
	LastUpdated  time.Time `json:"last_updated"`
	CreatedAt    time.Time `json:"created_at"`
}
