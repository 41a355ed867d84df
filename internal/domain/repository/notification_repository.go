package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, nid string) (*entity.Notification, error)
	Delete(ctx context.Context, nid string) error
	// List ordena por NID descendente.
	List(ctx context.Context) ([]*entity.Notification, error)
	// LastID primer NID en orden descendente, "" si no hay filas.
	LastID(ctx context.Context) (string, error)
	// CountUnseen notificaciones que ningún empleado ha visto.
	CountUnseen(ctx context.Context) (int, error)
}

// NotificationTxRunner ejecuta fn en una transacción (lectura del último NID + inserción).
type NotificationTxRunner interface {
	RunNotification(ctx context.Context, fn func(repo NotificationRepository) error) error
}

// SeenRepository define el puerto de persistencia para IS_NOTIFIED.
type SeenRepository interface {
	Exists(ctx context.Context, empID, nid string) (bool, error)
	Insert(ctx context.Context, rec entity.SeenRecord) error
	// List "quién vio qué", por NID descendente.
	List(ctx context.Context) ([]entity.SeenEntry, error)
}
