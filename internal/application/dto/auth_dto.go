package dto

import "time"

// RegisterRequest alta de restaurante + usuario dueño.
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	RestaurantName string `json:"restaurantName" validate:"required,max=200"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RestaurantID string    `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RestaurantResponse datos públicos del tenant.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterResponse respuesta de registro exitoso.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse token de sesión + usuario.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// MeResponse sesión actual.
type MeResponse struct {
	Success    bool                `json:"success"`
	User       UserResponse        `json:"user"`
	Restaurant *RestaurantResponse `json:"restaurant,omitempty"`
}
