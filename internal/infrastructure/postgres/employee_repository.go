package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `emp_id, ename, dob, role, salary, phone, auth_key`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var role, phone, authKey *string
	if err := row.Scan(&e.EmpID, &e.Name, &e.DOB, &role, &e.Salary, &phone, &authKey); err != nil {
		return nil, err
	}
	e.Role = derefString(role)
	e.Phone = derefString(phone)
	e.AuthKey = derefString(authKey)
	return &e, nil
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employee (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		e.EmpID, e.Name, dateOnly(e.DOB), nullIfEmpty(e.Role), e.Salary, nullIfEmpty(e.Phone), nullIfEmpty(e.AuthKey),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert employee", err)
	}
	return nil
}

// GetByID obtiene un empleado por EmpID. Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, empID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE emp_id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get employee", err)
	}
	return e, nil
}

// FindByCredentials igualdad directa de EmpID y AuthKey.
func (r *EmployeeRepo) FindByCredentials(ctx context.Context, empID, authKey string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE emp_id = $1 AND auth_key = $2`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, empID, authKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("find employee by credentials", err)
	}
	return e, nil
}

// Update actualiza todos los campos salvo EmpID. Devuelve domain.ErrNotFound si no existe.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employee SET ename = $2, dob = $3, role = $4, salary = $5, phone = $6, auth_key = $7
		WHERE emp_id = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.EmpID, e.Name, dateOnly(e.DOB), nullIfEmpty(e.Role), e.Salary, nullIfEmpty(e.Phone), nullIfEmpty(e.AuthKey),
	)
	if err != nil {
		return storeErr("update employee", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado por EmpID.
func (r *EmployeeRepo) Delete(ctx context.Context, empID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM employee WHERE emp_id = $1`, empID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return storeErr("delete employee", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los empleados por EmpID.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employee ORDER BY emp_id`)
	if err != nil {
		return nil, storeErr("list employees", err)
	}
	defer rows.Close()
	list := []*entity.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, storeErr("scan employee", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list employees", err)
	}
	return list, nil
}
