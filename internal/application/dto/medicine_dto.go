package dto

import "github.com/shopspring/decimal"

// CreateMedicineRequest alta de lote. ExpiryDate acepta fecha o fecha-hora; vacío = sin fecha.
type CreateMedicineRequest struct {
	BatchNo       string          `json:"batch_no" validate:"trimmed_required,max=20"`
	DrugName      string          `json:"drug_name" validate:"trimmed_required,max=100"`
	ExpiryDate    string          `json:"expiry_date"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	Price         decimal.Decimal `json:"price"`
	SupplierID    string          `json:"sup_id" validate:"omitempty,max=20"`
	Type          string          `json:"type" validate:"omitempty,max=50"`
}

// UpdateMedicineRequest campos editables de un lote (la clave va en la ruta).
type UpdateMedicineRequest struct {
	ExpiryDate    string          `json:"expiry_date"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	Price         decimal.Decimal `json:"price"`
	SupplierID    string          `json:"sup_id" validate:"omitempty,max=20"`
	Type          string          `json:"type" validate:"omitempty,max=50"`
}

// MedicineResponse salida de un lote.
type MedicineResponse struct {
	BatchNo       string          `json:"batch_no"`
	DrugName      string          `json:"drug_name"`
	ExpiryDate    string          `json:"expiry_date,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
	Price         decimal.Decimal `json:"price"`
	SupplierID    string          `json:"sup_id,omitempty"`
	Type          string          `json:"type,omitempty"`
}

// StockValueResponse valor total del inventario.
type StockValueResponse struct {
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
}
