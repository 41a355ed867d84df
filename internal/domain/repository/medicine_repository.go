package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/expiry"
)

// MedicineRepository define el puerto de persistencia para Medicine.
type MedicineRepository interface {
	Create(ctx context.Context, m *entity.Medicine) error
	Get(ctx context.Context, batchNo, drugName string) (*entity.Medicine, error)
	Update(ctx context.Context, m *entity.Medicine) error
	Delete(ctx context.Context, batchNo, drugName string) error
	List(ctx context.Context) ([]*entity.Medicine, error)
	// ExpirySnapshot lee (lote, nombre, vencimiento, cantidad) de todo el inventario.
	ExpirySnapshot(ctx context.Context) ([]expiry.Record, error)
	// TotalStockValue suma stock_quantity * price.
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
}
