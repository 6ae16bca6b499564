package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/domain"
)

// writeError responde con el cuerpo de error estándar.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: message})
}

// respondError traduce errores de dominio a códigos HTTP. Cualquier otro error es 500
// con el mensaje genérico de la ruta; el detalle solo va al log.
func respondError(c *fiber.Ctx, log zerolog.Logger, err error, internalMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnsupportedFormat):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "Forbidden")
	case errors.Is(err, domain.ErrUserNotFound):
		return writeError(c, fiber.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, domain.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return writeError(c, fiber.StatusConflict, "EMAIL_EXISTS", "User already exists")
	case errors.Is(err, domain.ErrAIUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "AI_UNAVAILABLE", "AI service is not configured")
	case errors.Is(err, context.DeadlineExceeded):
		return writeError(c, fiber.StatusServiceUnavailable, "TIMEOUT", "Upstream service timed out")
	}
	log.Error().Err(err).
		Str("route", c.Route().Path).
		Str("restaurant_id", GetRestaurantID(c)).
		Msg(internalMsg)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL", internalMsg)
}

// ErrorHandler último recurso para errores que escapan de los handlers (404 de fiber, pánicos recuperados).
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeError(c, fe.Code, codeForStatus(fe.Code), fe.Message)
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		if status >= 500 {
			return "INTERNAL"
		}
		return "ERROR"
	}
}

// invalidBody respuesta 400 para cuerpos que no decodifican.
func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo de la petición inválido")
}
