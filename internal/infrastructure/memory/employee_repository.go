package memory

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo empleados en memoria.
type EmployeeRepo struct {
	s *Store
}

// NewEmployeeRepository construye el repositorio sobre el store.
func NewEmployeeRepository(s *Store) *EmployeeRepo {
	return &EmployeeRepo{s: s}
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("insert employee"); err != nil {
		return err
	}
	if _, ok := r.s.employees[e.EmpID]; ok {
		return domain.ErrDuplicate
	}
	r.s.employees[e.EmpID] = *e
	r.s.mutations++
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, empID string) (*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("get employee"); err != nil {
		return nil, err
	}
	e, ok := r.s.employees[empID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("update employee"); err != nil {
		return err
	}
	if _, ok := r.s.employees[e.EmpID]; !ok {
		return domain.ErrNotFound
	}
	r.s.employees[e.EmpID] = *e
	r.s.mutations++
	return nil
}

func (r *EmployeeRepo) Delete(_ context.Context, empID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("delete employee"); err != nil {
		return err
	}
	if _, ok := r.s.employees[empID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.employees, empID)
	r.s.mutations++
	return nil
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("list employees"); err != nil {
		return nil, err
	}
	keys := sortedKeys(r.s.employees, func(a, b string) bool { return a < b })
	out := make([]*entity.Employee, 0, len(keys))
	for _, k := range keys {
		e := r.s.employees[k]
		out = append(out, &e)
	}
	return out, nil
}

func (r *EmployeeRepo) FindByCredentials(_ context.Context, empID, authKey string) (*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("find employee by credentials"); err != nil {
		return nil, err
	}
	e, ok := r.s.employees[empID]
	if !ok || e.AuthKey != authKey {
		return nil, nil
	}
	return &e, nil
}
