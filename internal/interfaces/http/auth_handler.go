package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
	"github.com/jhoicas/farmacia-api/pkg/validator"
)

// AuthHandler maneja login, logout y consultas de la sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username (EmpID o admin), password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	s, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(auth.ToSessionResponse(*s))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [delete]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Current godoc
// @Summary      Sesión activa y perfil de privilegios
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	s, err := h.uc.Current()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(auth.ToSessionResponse(s))
}

// Permission godoc
// @Summary      Consultar la compuerta de permisos
// @Description  Indica si la sesión puede ejecutar la acción (add, edit, delete) en la sección.
// @Tags         session
// @Produce      json
// @Param        section  query  string  true  "Sección (Medicines, Employees, ...)"
// @Param        action   query  string  true  "add | edit | delete"
// @Success      200  {object}  dto.PermissionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/permissions [get]
func (h *AuthHandler) Permission(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	section, ok := access.ParseSection(c.Query("section"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "section desconocida"})
	}
	action, ok := access.ParseAction(c.Query("action"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "action debe ser add, edit o delete"})
	}
	return c.JSON(dto.PermissionResponse{
		Section: section.String(),
		Action:  string(action),
		Allowed: access.AllowsIn(s, section, action),
	})
}
