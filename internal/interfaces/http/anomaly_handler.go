package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
)

// AnomalyHandler detección y listado de anomalías.
type AnomalyHandler struct {
	uc  *usecase.AnomalyUseCase
	log zerolog.Logger
}

// NewAnomalyHandler construye el handler.
func NewAnomalyHandler(uc *usecase.AnomalyUseCase, log zerolog.Logger) *AnomalyHandler {
	return &AnomalyHandler{uc: uc, log: log}
}

// Detect godoc
// @Summary      Detectar anomalías
// @Description  Genera y guarda anomalías para el restaurante de la sesión. timeframe: day|week|month; sensitivity: low|medium|high.
// @Tags         anomalies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DetectAnomaliesRequest  true  "timeframe, sensitivity"
// @Success      200   {object}  dto.DetectAnomaliesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/anomaly-detection/detect [post]
func (h *AnomalyHandler) Detect(c *fiber.Ctx) error {
	var in dto.DetectAnomaliesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Detect(c.UserContext(), GetRestaurantID(c), in)
	if err != nil {
		return respondError(c, h.log, err, "Failed to detect anomalies")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Anomalías recientes
// @Tags         anomalies
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de resultados (defecto 10)"
// @Success      200   {object}  dto.ListAnomaliesResponse
// @Router       /api/anomaly-detection/list [get]
func (h *AnomalyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetRestaurantID(c), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch anomalies")
	}
	return c.JSON(out)
}
