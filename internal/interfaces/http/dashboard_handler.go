package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
)

// stashExpiryReport clave del último reporte de vencimientos en el estado de la sesión.
const stashExpiryReport = "expiry_report"

// reportStash estado transitorio de la sesión. Lo implementa *auth.SessionHolder.
type reportStash interface {
	Stash(sessionID, key string, v any) bool
	Stashed(sessionID, key string) (any, bool)
}

// DashboardHandler revisión de vencimientos, consulta de vencimientos y valor del stock.
type DashboardHandler struct {
	uc       *inventory.ExpiryUseCase
	stash    reportStash
	warnDays int
}

// NewDashboardHandler construye el handler. warnDays es la ventana por defecto.
func NewDashboardHandler(uc *inventory.ExpiryUseCase, stash reportStash, warnDays int) *DashboardHandler {
	return &DashboardHandler{uc: uc, stash: stash, warnDays: warnDays}
}

// intQuery lee un entero de la query; ausente = def.
func intQuery(c *fiber.Ctx, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func badQuery(c *fiber.Ctx, key string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: key + " debe ser un entero"})
}

// CheckExpiry godoc
// @Summary      Revisar vencimientos
// @Description  Clasifica el inventario en vencidos y próximos a vencer (hoy..hoy+warn_days) y arma los avisos.
// @Tags         dashboard
// @Produce      json
// @Param        warn_days  query  int  false  "Ventana de aviso en días"  default(7)
// @Success      200  {object}  dto.ExpiryReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/expiry [get]
func (h *DashboardHandler) CheckExpiry(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	warnDays, ok := intQuery(c, "warn_days", h.warnDays)
	if !ok {
		return badQuery(c, "warn_days")
	}
	out, err := h.uc.Check(c.UserContext(), s, warnDays)
	if err != nil {
		return writeError(c, err)
	}
	h.stash.Stash(s.ID, stashExpiryReport, *out)
	return c.JSON(out)
}

// LastExpiry godoc
// @Summary      Última revisión de vencimientos de la sesión
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ExpiryReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/expiry/last [get]
func (h *DashboardHandler) LastExpiry(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	v, ok := h.stash.Stashed(s.ID, stashExpiryReport)
	report, isReport := v.(dto.ExpiryReportDTO)
	if !ok || !isReport {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no se ha revisado vencimientos en esta sesión"})
	}
	return c.JSON(report)
}

// SurfaceExpiry godoc
// @Summary      Publicar avisos de vencimiento como notificaciones
// @Tags         dashboard
// @Produce      json
// @Param        warn_days  query  int  false  "Ventana de aviso en días"  default(7)
// @Success      201  {object}  dto.SurfacedDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/expiry/notifications [post]
func (h *DashboardHandler) SurfaceExpiry(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	warnDays, ok := intQuery(c, "warn_days", h.warnDays)
	if !ok {
		return badQuery(c, "warn_days")
	}
	out, err := h.uc.Surface(c.UserContext(), s, warnDays)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ExpiryReportPDF godoc
// @Summary      Reporte de vencimientos en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Param        warn_days  query  int  false  "Ventana de aviso en días"  default(7)
// @Success      200  {file}  binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/expiry/report.pdf [get]
func (h *DashboardHandler) ExpiryReportPDF(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	warnDays, ok := intQuery(c, "warn_days", h.warnDays)
	if !ok {
		return badQuery(c, "warn_days")
	}
	doc, err := h.uc.ReportPDF(c.UserContext(), s, warnDays)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="vencimientos.pdf"`)
	return c.Send(doc)
}

// StockValue godoc
// @Summary      Valor total del inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.StockValueResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stock-value [get]
func (h *DashboardHandler) StockValue(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	out, err := h.uc.StockValue(c.UserContext(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DueQuery godoc
// @Summary      Consulta: lotes que vencen dentro de N días (incluye vencidos)
// @Tags         queries
// @Produce      json
// @Param        days  query  int  false  "Horizonte en días"  default(7)
// @Success      200  {object}  dto.DueListDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/queries/expiring [get]
func (h *DashboardHandler) DueQuery(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return noSession(c)
	}
	days, ok := intQuery(c, "days", h.warnDays)
	if !ok {
		return badQuery(c, "days")
	}
	out, err := h.uc.Due(c.UserContext(), s, days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
