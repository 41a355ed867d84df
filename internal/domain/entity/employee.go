package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado de la farmacia. AuthKey es la clave de acceso tal como se guarda
// (comparación directa en login, sin hash).
type Employee struct {
	EmpID   string
	Name    string
	DOB     *time.Time
	Role    string // Admin, Supervisor, Pharmacist, Cashier, Manager
	Salary  decimal.Decimal
	Phone   string
	AuthKey string
}
