package entity

import "time"

// Restaurant es el tenant del sistema: todo dato de negocio se filtra por su ID.
type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
