package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	EmpID   string          `json:"emp_id" validate:"trimmed_required,max=20"`
	Name    string          `json:"name" validate:"trimmed_required,max=100"`
	DOB     string          `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Role    string          `json:"role" validate:"omitempty,max=30"`
	Salary  decimal.Decimal `json:"salary"`
	Phone   string          `json:"phone" validate:"omitempty,max=20"`
	AuthKey string          `json:"auth_key" validate:"omitempty,max=100"`
}

// UpdateEmployeeRequest reemplaza los datos del empleado (EmpID va en la ruta).
type UpdateEmployeeRequest struct {
	Name    string          `json:"name" validate:"trimmed_required,max=100"`
	DOB     string          `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Role    string          `json:"role" validate:"omitempty,max=30"`
	Salary  decimal.Decimal `json:"salary"`
	Phone   string          `json:"phone" validate:"omitempty,max=20"`
	AuthKey string          `json:"auth_key" validate:"omitempty,max=100"`
}

// EmployeeResponse fila de empleado. Salary y AuthKey solo viajan si la sesión puede ver salarios.
type EmployeeResponse struct {
	EmpID   string           `json:"emp_id"`
	Name    string           `json:"name"`
	DOB     string           `json:"dob,omitempty"`
	Role    string           `json:"role"`
	Salary  *decimal.Decimal `json:"salary,omitempty"`
	Phone   string           `json:"phone,omitempty"`
	AuthKey *string          `json:"auth_key,omitempty"`
}

// EmployeeListResponse listado de empleados.
type EmployeeListResponse struct {
	Items        []EmployeeResponse `json:"items"`
	SalaryHidden bool               `json:"salary_hidden"`
}
