package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine lote de medicamento. La clave es (BatchNo, DrugName).
type Medicine struct {
	BatchNo       string
	DrugName      string
	ExpiryDate    *time.Time // nil = sin fecha de vencimiento
	StockQuantity int
	Price         decimal.Decimal
	SupplierID    string
	Type          string
}
