package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/infrastructure/metrics"
)

// ReportHandler generación, historial y descarga de reportes.
type ReportHandler struct {
	uc      *usecase.ReportUseCase
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewReportHandler construye el handler. metrics puede ser nil.
func NewReportHandler(uc *usecase.ReportUseCase, m *metrics.Metrics, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, metrics: m, log: log}
}

// Generate godoc
// @Summary      Generar reporte
// @Description  reportType: sales|inventory|staff|customers; format: pdf|csv|excel|xml; timeframe custom requiere startDate y endDate.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "parámetros del reporte"
// @Success      200   {object}  dto.GenerateReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/reports/generate [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Generate(c.UserContext(), GetRestaurantID(c), in)
	if err != nil {
		return respondError(c, h.log, err, "Failed to generate report")
	}
	h.metrics.ReportGenerated(in.Format)
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de reportes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.ReportHistoryResponse
// @Router       /api/reports/history [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext(), GetRestaurantID(c))
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch report history")
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar reporte
// @Description  Re-renderiza el reporte en su formato a partir de las ventas del período.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf,text/csv,application/xml,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "ID del reporte"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/download/{id} [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	file, err := h.uc.Download(c.UserContext(), GetRestaurantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Failed to download report")
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	return c.Send(file.Content)
}
