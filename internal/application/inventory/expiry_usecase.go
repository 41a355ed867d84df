package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
	"github.com/jhoicas/farmacia-api/internal/domain/expiry"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// Niveles de aviso de la revisión.
const (
	AlertWarning = "warning"
	AlertInfo    = "info"
)

// TypeExpiry tipo de las notificaciones generadas por la revisión.
const TypeExpiry = "Expiry"

const dateLayout = "2006-01-02"

// ExpiryUseCase revisión de vencimientos del inventario y valor total de stock.
type ExpiryUseCase struct {
	medicines repository.MedicineRepository
	publisher NotificationPublisher
	reports   ExpiryReportGenerator
	log       *logger.Logger
	now       func() time.Time
}

// NewExpiryUseCase construye el caso de uso. reports puede ser nil si no se exporta PDF.
func NewExpiryUseCase(
	medicines repository.MedicineRepository,
	publisher NotificationPublisher,
	reports ExpiryReportGenerator,
	log *logger.Logger,
) *ExpiryUseCase {
	return &ExpiryUseCase{
		medicines: medicines,
		publisher: publisher,
		reports:   reports,
		log:       log,
		now:       time.Now,
	}
}

// WithClock fija el reloj (pruebas y reportes con fecha de referencia).
func (uc *ExpiryUseCase) WithClock(now func() time.Time) *ExpiryUseCase {
	uc.now = now
	return uc
}

// Check lee el inventario, clasifica por vencimiento y arma los avisos:
// warning para vencidos, info para los que vencen dentro de warnDays.
func (uc *ExpiryUseCase) Check(ctx context.Context, s access.Session, warnDays int) (*dto.ExpiryReportDTO, error) {
	if err := access.CheckView(s, access.SectionDashboard); err != nil {
		return nil, err
	}
	report, err := uc.classify(ctx, warnDays)
	if err != nil {
		return nil, err
	}

	log := uc.log.Session(s.ID, s.UserID)
	if n := len(report.Expired); n > 0 {
		log.Warn().Int("count", n).Msg("lotes vencidos detectados")
	} else {
		log.Info().Msg("sin lotes vencidos")
	}
	if n := len(report.ExpiringSoon); n > 0 {
		log.Info().Int("count", n).Int("warn_days", warnDays).Msg("lotes próximos a vencer")
	} else {
		log.Info().Int("warn_days", warnDays).Msg("sin lotes próximos a vencer")
	}
	if report.Skipped > 0 {
		log.Debug().Int("skipped", report.Skipped).Msg("lotes sin fecha de vencimiento legible")
	}
	return report, nil
}

// Due consulta "vencen dentro de N días" (incluye los ya vencidos). Es una consulta predefinida
// de la sección Queries.
func (uc *ExpiryUseCase) Due(ctx context.Context, s access.Session, days int) (*dto.DueListDTO, error) {
	if err := access.CheckView(s, access.SectionQueries); err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: days debe ser >= 0", domain.ErrInvalidInput)
	}
	records, err := uc.medicines.ExpirySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	ref := uc.now()
	return &dto.DueListDTO{
		ReferenceDate: expiry.Day(ref).Format(dateLayout),
		Days:          days,
		Items:         toItems(expiry.Due(records, ref, days)),
	}, nil
}

// Surface publica una notificación "Expiry" por cada categoría no vacía. Requiere
// poder agregar en Notifications. Sin hallazgos no crea nada; si una falla no queda ninguna.
func (uc *ExpiryUseCase) Surface(ctx context.Context, s access.Session, warnDays int) (*dto.SurfacedDTO, error) {
	if err := access.Check(s, access.SectionNotifications, access.ActionAdd); err != nil {
		return nil, err
	}
	report, err := uc.classify(ctx, warnDays)
	if err != nil {
		return nil, err
	}
	messages := make([]string, 0, len(report.Alerts))
	for _, alert := range report.Alerts {
		messages = append(messages, alert.Summary+"\n"+strings.Join(alert.Lines, "\n"))
	}
	created, err := uc.publisher.PublishAll(ctx, TypeExpiry, messages)
	if err != nil {
		return nil, err
	}
	out := &dto.SurfacedDTO{Created: make([]dto.NotificationResponse, 0, len(created))}
	for _, n := range created {
		out.Created = append(out.Created, dto.NotificationResponse{NID: n.NID, Type: n.Type, Message: n.Message})
	}
	uc.log.Session(s.ID, s.UserID).Info().Int("created", len(out.Created)).Msg("avisos de vencimiento publicados")
	return out, nil
}

// ReportPDF genera el PDF de la revisión.
func (uc *ExpiryUseCase) ReportPDF(ctx context.Context, s access.Session, warnDays int) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("%w: generador de reportes no configurado", domain.ErrInvalidInput)
	}
	report, err := uc.Check(ctx, s, warnDays)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateExpiryReport(ctx, *report)
}

// StockValue suma stock * precio de todo el inventario.
func (uc *ExpiryUseCase) StockValue(ctx context.Context, s access.Session) (*dto.StockValueResponse, error) {
	if err := access.CheckView(s, access.SectionDashboard); err != nil {
		return nil, err
	}
	total, err := uc.medicines.TotalStockValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockValueResponse{TotalStockValue: total}, nil
}

func (uc *ExpiryUseCase) classify(ctx context.Context, warnDays int) (*dto.ExpiryReportDTO, error) {
	if warnDays < 0 {
		return nil, fmt.Errorf("%w: warn_days debe ser >= 0", domain.ErrInvalidInput)
	}
	records, err := uc.medicines.ExpirySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	ref := uc.now()
	res, skipped := expiry.ClassifyWithSkipped(records, ref, warnDays)

	report := &dto.ExpiryReportDTO{
		ReferenceDate: expiry.Day(ref).Format(dateLayout),
		WarnDays:      warnDays,
		Expired:       toItems(res.Expired),
		ExpiringSoon:  toItems(res.ExpiringSoon),
		Skipped:       skipped.NoDate + skipped.BadDate,
		Alerts:        []dto.AlertDTO{},
	}
	if len(res.Expired) > 0 {
		report.Alerts = append(report.Alerts, dto.AlertDTO{
			Level:   AlertWarning,
			Title:   "Expired Medicines",
			Summary: "Expired medicines:",
			Lines:   alertLines(res.Expired, "Expired on"),
		})
	}
	if len(res.ExpiringSoon) > 0 {
		report.Alerts = append(report.Alerts, dto.AlertDTO{
			Level:   AlertInfo,
			Title:   "Expiring Soon",
			Summary: fmt.Sprintf("Medicines expiring within %d days:", warnDays),
			Lines:   alertLines(res.ExpiringSoon, "Expires"),
		})
	}
	return report, nil
}

// alertLines una línea por lote: "B | N | <label>: E | Qty: S".
func alertLines(items []expiry.Classified, label string) []string {
	lines := make([]string, 0, len(items))
	for _, c := range items {
		lines = append(lines, fmt.Sprintf("%s | %s | %s: %s | Qty: %d",
			c.BatchNo, c.DrugName, label, c.ExpiryDate.Format(dateLayout), c.Quantity))
	}
	return lines
}

func toItems(items []expiry.Classified) []dto.ExpiryItemDTO {
	out := make([]dto.ExpiryItemDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.ExpiryItemDTO{
			BatchNo:    c.BatchNo,
			DrugName:   c.DrugName,
			ExpiryDate: c.ExpiryDate.Format(dateLayout),
			Quantity:   c.Quantity,
		})
	}
	return out
}
