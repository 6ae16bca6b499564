package dto

import "github.com/ArjunTewari/plexora/internal/domain/simulation"

// DashboardSummaryResponse envoltorio del resumen del dashboard.
type DashboardSummaryResponse struct {
	Success bool                        `json:"success"`
	Data    simulation.DashboardSummary `json:"data"`
}

// ForecastRequest parámetros del pronóstico.
type ForecastRequest struct {
	Period  string   `json:"period" validate:"required,max=20"`
	ItemIDs []string `json:"itemIds" validate:"omitempty,max=100,dive,required,max=100"`
}

// ForecastResponse envoltorio del pronóstico.
type ForecastResponse struct {
	Success  bool                `json:"success"`
	Forecast simulation.Forecast `json:"forecast"`
}
