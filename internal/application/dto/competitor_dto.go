package dto

import "time"

// CreateCompetitorRequest alta de competidor.
type CreateCompetitorRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Location     string   `json:"location" validate:"required,max=300"`
	PriceIndex   *float64 `json:"priceIndex" validate:"omitempty,gt=0"`
	PopularItems []string `json:"popularItems" validate:"omitempty,dive,max=200"`
	Strengths    []string `json:"strengths" validate:"omitempty,dive,max=200"`
	Weaknesses   []string `json:"weaknesses" validate:"omitempty,dive,max=200"`
}

// UpdateCompetitorRequest edición parcial: solo los campos presentes se modifican.
type UpdateCompetitorRequest struct {
	ID           string   `json:"id" validate:"required"`
	Name         *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Location     *string  `json:"location" validate:"omitempty,min=1,max=300"`
	PriceIndex   *float64 `json:"priceIndex" validate:"omitempty,gt=0"`
	PopularItems []string `json:"popularItems" validate:"omitempty,dive,max=200"`
	Strengths    []string `json:"strengths" validate:"omitempty,dive,max=200"`
	Weaknesses   []string `json:"weaknesses" validate:"omitempty,dive,max=200"`
}

// DeleteCompetitorRequest cuerpo JSON del DELETE.
type DeleteCompetitorRequest struct {
	ID string `json:"id" validate:"required"`
}

// CompetitorResponse competidor en formato UI.
type CompetitorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PriceIndex   float64   `json:"priceIndex"`
	PopularItems []string  `json:"popularItems"`
	Strengths    []string  `json:"strengths"`
	Weaknesses   []string  `json:"weaknesses"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// CompetitorMutationResponse respuesta de add/update.
type CompetitorMutationResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Competitor CompetitorResponse `json:"competitor"`
}

// ListCompetitorsResponse listado de competidores (almacenados o de ejemplo).
type ListCompetitorsResponse struct {
	Success     bool                 `json:"success"`
	Competitors []CompetitorResponse `json:"competitors"`
}

// DeleteCompetitorResponse resultado del borrado.
type DeleteCompetitorResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
