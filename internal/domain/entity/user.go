package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleAnalyst = "analyst"
)

// User representa un usuario del sistema (pertenece a un Restaurant).
type User struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"` // bcrypt, nunca plano después de persistir
	Role         string    `json:"role"`          // owner, manager, analyst
	CreatedAt    time.Time `json:"created_at"`
}
