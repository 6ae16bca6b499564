package usecase

import (
	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
)

// AnalyticsUseCase expone los paneles simulados: resumen del dashboard y pronóstico de ventas.
type AnalyticsUseCase struct {
	gen *simulation.Generator
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(gen *simulation.Generator) *AnalyticsUseCase {
	return &AnalyticsUseCase{gen: gen}
}

// DashboardSummary genera la instantánea del dashboard.
func (uc *AnalyticsUseCase) DashboardSummary() *dto.DashboardSummaryResponse {
	return &dto.DashboardSummaryResponse{Success: true, Data: uc.gen.DashboardSummary()}
}

// Forecast genera el pronóstico para el período solicitado.
func (uc *AnalyticsUseCase) Forecast(req dto.ForecastRequest) (*dto.ForecastResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return &dto.ForecastResponse{Success: true, Forecast: uc.gen.Forecast(req.Period, req.ItemIDs)}, nil
}
