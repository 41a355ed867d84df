package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
)

// errorStatus asocia cada error de dominio a su estado HTTP y código. El orden importa:
// el fallo del almacén se evalúa primero para no confundirlo con una negación.
var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrStoreUnavailable, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE"},
	{domain.ErrPermissionDenied, fiber.StatusForbidden, "PERMISSION_DENIED"},
	{domain.ErrUnrecognizedRole, fiber.StatusForbidden, "ROLE_NOT_RECOGNIZED"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrNoSession, fiber.StatusUnauthorized, "NO_SESSION"},
	{domain.ErrSessionActive, fiber.StatusConflict, "SESSION_ACTIVE"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrSequenceExhausted, fiber.StatusConflict, "SEQUENCE_EXHAUSTED"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
}

// writeError responde con el estado que corresponde al error. El detalle de un fallo
// del almacén no se expone: solo se informa que no está disponible.
func writeError(c *fiber.Ctx, err error) error {
	for _, e := range errorStatus {
		if !errors.Is(err, e.err) {
			continue
		}
		msg := err.Error()
		if e.status == fiber.StatusServiceUnavailable {
			msg = "almacén no disponible, intente más tarde"
		}
		return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: msg})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func noSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
}
