package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// PrescriptionRepository define el puerto de persistencia para Prescription y las
// comprobaciones de entidades referenciadas.
type PrescriptionRepository interface {
	Create(ctx context.Context, p *entity.Prescription) error
	List(ctx context.Context) ([]*entity.Prescription, error)
	Delete(ctx context.Context, presID string) error
	CustomerExists(ctx context.Context, cid string) (bool, error)
	OrderExists(ctx context.Context, orderID string) (bool, error)
}
