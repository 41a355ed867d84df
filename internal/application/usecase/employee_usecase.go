package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// EmployeeUseCase casos de uso de empleados. Las altas, cambios y bajas exigen además
// canManageEmployees; el salario y la clave solo se entregan con canViewSalary.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	log  *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, log *logger.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, log: log}
}

// List lista empleados, ocultando salario y clave si la sesión no puede verlos.
func (uc *EmployeeUseCase) List(ctx context.Context, s access.Session) (*dto.EmployeeListResponse, error) {
	if err := access.CheckView(s, access.SectionEmployees); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	showSalary := access.CanViewSalary(s)
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEmployeeResponse(e, showSalary))
	}
	return &dto.EmployeeListResponse{Items: items, SalaryHidden: !showSalary}, nil
}

// GetByID obtiene un empleado. Devuelve domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, s access.Session, empID string) (*dto.EmployeeResponse, error) {
	if err := access.CheckView(s, access.SectionEmployees); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, strings.TrimSpace(empID))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	out := toEmployeeResponse(e, access.CanViewSalary(s))
	return &out, nil
}

// Create da de alta un empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, s access.Session, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := access.Check(s, access.SectionEmployees, access.ActionAdd); err != nil {
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	e := &entity.Employee{
		EmpID:   strings.TrimSpace(in.EmpID),
		Name:    strings.TrimSpace(in.Name),
		Salary:  in.Salary,
		Phone:   strings.TrimSpace(in.Phone),
		AuthKey: strings.TrimSpace(in.AuthKey),
	}
	if err := fillEmployee(e, in.DOB, in.Role); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("emp_id", e.EmpID).Msg("empleado creado")
	out := toEmployeeResponse(e, access.CanViewSalary(s))
	return &out, nil
}

// Update reemplaza los datos del empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, s access.Session, empID string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := access.Check(s, access.SectionEmployees, access.ActionEdit); err != nil {
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	e := &entity.Employee{
		EmpID:   strings.TrimSpace(empID),
		Name:    strings.TrimSpace(in.Name),
		Salary:  in.Salary,
		Phone:   strings.TrimSpace(in.Phone),
		AuthKey: strings.TrimSpace(in.AuthKey),
	}
	if err := fillEmployee(e, in.DOB, in.Role); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("emp_id", e.EmpID).Msg("empleado actualizado")
	out := toEmployeeResponse(e, access.CanViewSalary(s))
	return &out, nil
}

// Delete da de baja un empleado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, s access.Session, empID string) error {
	if err := access.Check(s, access.SectionEmployees, access.ActionDelete); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, strings.TrimSpace(empID)); err != nil {
		return err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("emp_id", empID).Msg("empleado eliminado")
	return nil
}

// fillEmployee valida fecha de nacimiento y rol. Un rol que el registro de privilegios no
// reconoce se rechaza aquí para que nunca quede un empleado que no pueda iniciar sesión.
func fillEmployee(e *entity.Employee, dob, role string) error {
	d, err := optionalDate("dob", dob)
	if err != nil {
		return err
	}
	e.DOB = d
	if role = strings.TrimSpace(role); role != "" {
		r, err := access.ParseRole(role)
		if err != nil {
			return fmt.Errorf("%w: rol %q no reconocido", domain.ErrInvalidInput, role)
		}
		e.Role = r.String()
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee, showSalary bool) dto.EmployeeResponse {
	out := dto.EmployeeResponse{
		EmpID: e.EmpID,
		Name:  e.Name,
		DOB:   formatDate(e.DOB),
		Role:  e.Role,
		Phone: e.Phone,
	}
	if showSalary {
		salary := e.Salary
		key := e.AuthKey
		out.Salary = &salary
		out.AuthKey = &key
	}
	return out
}
