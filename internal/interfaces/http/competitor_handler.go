package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
)

// CompetitorHandler CRUD de competidores del restaurante.
type CompetitorHandler struct {
	uc  *usecase.CompetitorUseCase
	log zerolog.Logger
}

// NewCompetitorHandler construye el handler.
func NewCompetitorHandler(uc *usecase.CompetitorUseCase, log zerolog.Logger) *CompetitorHandler {
	return &CompetitorHandler{uc: uc, log: log}
}

// Add godoc
// @Summary      Agregar competidor
// @Tags         competitors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompetitorRequest  true  "name, location y opcionales"
// @Success      201   {object}  dto.CompetitorMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/competitor-analysis/add [post]
func (h *CompetitorHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateCompetitorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetRestaurantID(c), in)
	if err != nil {
		return respondError(c, h.log, err, "Failed to add competitor")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompetitorMutationResponse{
		Success: true, Message: "Competitor added successfully", Competitor: *out,
	})
}

// List godoc
// @Summary      Listar competidores
// @Description  Si el restaurante no tiene competidores guardados devuelve tres de ejemplo (no persistidos).
// @Tags         competitors
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.ListCompetitorsResponse
// @Router       /api/competitor-analysis/list [get]
func (h *CompetitorHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetRestaurantID(c))
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch competitors")
	}
	return c.JSON(dto.ListCompetitorsResponse{Success: true, Competitors: list})
}

// Update godoc
// @Summary      Actualizar competidor
// @Tags         competitors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompetitorRequest  true  "id y campos a cambiar"
// @Success      200   {object}  dto.CompetitorMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/competitor-analysis/update [put]
func (h *CompetitorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompetitorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetRestaurantID(c), in)
	if err != nil {
		return respondError(c, h.log, err, "Failed to update competitor")
	}
	return c.JSON(dto.CompetitorMutationResponse{
		Success: true, Message: "Competitor updated successfully", Competitor: *out,
	})
}

// Delete godoc
// @Summary      Eliminar competidor
// @Tags         competitors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteCompetitorRequest  true  "id"
// @Success      200   {object}  dto.DeleteCompetitorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/competitor-analysis/delete [delete]
func (h *CompetitorHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteCompetitorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	n, err := h.uc.Delete(c.UserContext(), GetRestaurantID(c), in)
	if err != nil {
		return respondError(c, h.log, err, "Failed to delete competitor")
	}
	return c.JSON(dto.DeleteCompetitorResponse{
		Success: true, Message: "Competitor deleted successfully", DeletedCount: n,
	})
}
