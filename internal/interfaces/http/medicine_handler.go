package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
)

// MedicineHandler maneja las peticiones HTTP de la sección Medicines.
type MedicineHandler struct {
	uc *usecase.MedicineUseCase
}

// NewMedicineHandler construye el handler.
func NewMedicineHandler(uc *usecase.MedicineUseCase) *MedicineHandler {
	return &MedicineHandler{uc: uc}
}

// medicineKey lee (lote, medicamento) de la ruta; el nombre puede venir con espacios codificados.
func medicineKey(c *fiber.Ctx) (string, string) {
	batch, _ := url.PathUnescape(c.Params("batch"))
	drug, _ := url.PathUnescape(c.Params("drug"))
	return batch, drug
}

// List godoc
// @Summary      Listar inventario
// @Tags         medicines
// @Produce      json
// @Success      200  {array}   dto.MedicineResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/medicines [get]
func (h *MedicineHandler) List(c *fiber.Ctx) error {
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
// @Summary      Crear lote
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicineRequest  true  "Datos del lote"
// @Success      201   {object}  dto.MedicineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/medicines [post]
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	var in dto.CreateMedicineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), s, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar lote
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Param        batch  path  string                     true  "BatchNo"
// @Param        drug   path  string                     true  "DrugName"
// @Param        body   body  dto.UpdateMedicineRequest  true  "Campos editables"
// @Success      200    {object}  dto.MedicineResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/medicines/{batch}/{drug} [put]
func (h *MedicineHandler) Update(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	var in dto.UpdateMedicineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	batch, drug := medicineKey(c)
	out, err := h.uc.Update(c.UserContext(), s, batch, drug, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         medicines
// @Param        batch  path  string  true  "BatchNo"
// @Param        drug   path  string  true  "DrugName"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/medicines/{batch}/{drug} [delete]
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	batch, drug := medicineKey(c)
	if err := h.uc.Delete(c.UserContext(), s, batch, drug); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
