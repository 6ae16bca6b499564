package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
)

// DashboardHandler resumen del dashboard y pronóstico de ventas.
type DashboardHandler struct {
	uc  *usecase.AnalyticsUseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.AnalyticsUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard-summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.DashboardSummary())
}

// Forecast godoc
// @Summary      Pronóstico de ventas
// @Description  period: week (7 días), month (30), quarter (90). itemIds opcional.
// @Tags         analytics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForecastRequest  true  "period, itemIds"
// @Success      200   {object}  dto.ForecastResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/forecast-sales [post]
func (h *DashboardHandler) Forecast(c *fiber.Ctx) error {
	var in dto.ForecastRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Forecast(in)
	if err != nil {
		return respondError(c, h.log, err, "Failed to generate forecast")
	}
	return c.JSON(out)
}
