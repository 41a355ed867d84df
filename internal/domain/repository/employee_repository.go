package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, empID string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, empID string) error
	List(ctx context.Context) ([]*entity.Employee, error)
	// FindByCredentials compara EmpID y AuthKey por igualdad. Devuelve nil, nil si no coincide.
	FindByCredentials(ctx context.Context, empID, authKey string) (*entity.Employee, error)
}
