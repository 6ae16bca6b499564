package ports

import (
	"context"
	"time"
)

// Nombres de eventos del canal en vivo.
const EventSalesUpdate = "sales-update"

// Event mensaje publicado a la sala de un restaurante.
type Event struct {
	Name         string    `json:"event"`
	RestaurantID string    `json:"restaurantId"`
	Payload      any       `json:"payload"`
	At           time.Time `json:"at"`
}

// EventPublisher publica eventos hacia los clientes conectados del tenant.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
