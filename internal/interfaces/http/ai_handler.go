package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/infrastructure/metrics"
)

// AIHandler asistente conversacional.
type AIHandler struct {
	uc      *usecase.AIUseCase
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewAIHandler construye el handler. metrics puede ser nil.
func NewAIHandler(uc *usecase.AIUseCase, m *metrics.Metrics, log zerolog.Logger) *AIHandler {
	return &AIHandler{uc: uc, metrics: m, log: log}
}

// Ask godoc
// @Summary      Consultar al asistente IA
// @Description  Reenvía la consulta al LLM configurado. 503 si no hay proveedor configurado.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AskAIRequest  true  "query"
// @Success      200   {object}  dto.AskAIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ask-ai [post]
func (h *AIHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskAIRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Ask(c.UserContext(), in)
	switch {
	case err == nil:
		h.metrics.AIRequest("ok")
	case errors.Is(err, domain.ErrAIUnavailable):
		h.metrics.AIRequest("unavailable")
	case !errors.Is(err, domain.ErrInvalidInput):
		h.metrics.AIRequest("error")
	}
	if err != nil {
		return respondError(c, h.log, err, "Failed to process AI request")
	}
	return c.JSON(out)
}
