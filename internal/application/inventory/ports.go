package inventory

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// NotificationPublisher crea notificaciones del sistema con NID secuencial, todas o ninguna.
// La implementa notification.NotificationUseCase.
type NotificationPublisher interface {
	PublishAll(ctx context.Context, typ string, messages []string) ([]*entity.Notification, error)
}

// ExpiryReportGenerator genera el PDF de la revisión de vencimientos.
type ExpiryReportGenerator interface {
	GenerateExpiryReport(ctx context.Context, report dto.ExpiryReportDTO) ([]byte, error)
}
