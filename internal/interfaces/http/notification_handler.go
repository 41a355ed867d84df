package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/notification"
)

// NotificationHandler maneja las peticiones HTTP de la sección Notifications.
type NotificationHandler struct {
	uc *notification.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *notification.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones (NID descendente)
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   dto.NotificationResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
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
// @Summary      Crear notificación
// @Description  El NID se asigna en secuencia (N001, N002, ...).
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "type (opcional), message"
// @Success      201   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	var in dto.CreateNotificationRequest
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
// @Summary      Eliminar notificación
// @Tags         notifications
// @Param        nid  path  string  true  "NID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{nid} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	if err := h.uc.Delete(c.UserContext(), s, c.Params("nid")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkSeen godoc
// @Summary      Marcar notificación como vista
// @Description  Idempotente: repetir la marca devuelve outcome=already_marked. Sin emp_id se usa el usuario de la sesión.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        nid   path  string               true   "NID"
// @Param        body  body  dto.MarkSeenRequest  false  "emp_id opcional"
// @Success      200   {object}  dto.MarkSeenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notifications/{nid}/seen [post]
func (h *NotificationHandler) MarkSeen(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	var in dto.MarkSeenRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.MarkSeen(c.UserContext(), s, c.Params("nid"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UnseenCount godoc
// @Summary      Notificaciones sin ver
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  dto.UnseenCountResponse
// @Router       /api/notifications/unseen-count [get]
func (h *NotificationHandler) UnseenCount(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	out, err := h.uc.UnseenCount(c.UserContext(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SeenList godoc
// @Summary      Quién vio qué notificación
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.SeenEntryResponse
// @Router       /api/notifications/seen [get]
func (h *NotificationHandler) SeenList(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	out, err := h.uc.SeenList(c.UserContext(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
