package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
)

// LocalSession clave de la sesión activa en c.Locals.
const LocalSession = "session"

// sessionSource es el contrato mínimo que necesita el middleware para leer la sesión.
// Lo implementa *auth.SessionHolder.
type sessionSource interface {
	Current() (access.Session, bool)
}

// RequireSession exige una sesión activa y la deja en c.Locals para los handlers.
// Sin sesión responde 401 NO_SESSION: la ventana debe volver al login.
func RequireSession(src sessionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := src.Current()
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de RequireSession).
func GetSession(c *fiber.Ctx) (access.Session, bool) {
	s, ok := c.Locals(LocalSession).(access.Session)
	return s, ok
}

// RequireSection verifica que la sección sea visible para el perfil de la sesión.
// Debe usarse DESPUÉS de RequireSession.
//
// Comportamiento:
//   - 401 Unauthorized → no hay sesión en el contexto.
//   - 403 Forbidden    → la sección no está entre las visibles del rol.
func RequireSection(section access.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := GetSession(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
		}
		if !access.CanView(s, section) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SECTION_HIDDEN",
				Message: "la sección '" + section.String() + "' no está disponible para el rol " + s.Role.String(),
			})
		}
		return c.Next()
	}
}
