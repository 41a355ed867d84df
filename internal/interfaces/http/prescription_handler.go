package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
)

// PrescriptionHandler maneja las peticiones HTTP de la sección Prescriptions.
type PrescriptionHandler struct {
	uc *usecase.PrescriptionUseCase
}

// NewPrescriptionHandler construye el handler.
func NewPrescriptionHandler(uc *usecase.PrescriptionUseCase) *PrescriptionHandler {
	return &PrescriptionHandler{uc: uc}
}

// List godoc
// @Summary      Listar recetas
// @Tags         prescriptions
// @Produce      json
// @Success      200  {array}   dto.PrescriptionResponse
// @Router       /api/prescriptions [get]
func (h *PrescriptionHandler) List(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	out, err := h.uc.List(c.UserContext(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear receta
// @Description  Valida cliente y orden; genera una notificación "Prescription".
// @Tags         prescriptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrescriptionRequest  true  "Datos de la receta"
// @Success      201   {object}  dto.PrescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/prescriptions [post]
func (h *PrescriptionHandler) Create(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	var in dto.CreatePrescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), s, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar receta
// @Tags         prescriptions
// @Param        id   path  string  true  "PresID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prescriptions/{id} [delete]
func (h *PrescriptionHandler) Delete(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	if err := h.uc.Delete(c.UserContext(), s, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
