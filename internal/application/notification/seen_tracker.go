package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// Outcome resultado de marcar una notificación como vista.
type Outcome string

const (
	OutcomeCreated       Outcome = "created"
	OutcomeAlreadyMarked Outcome = "already_marked"
)

// SeenTracker registra qué empleado vio qué notificación, a lo sumo una vez por par.
type SeenTracker struct {
	seen          repository.SeenRepository
	notifications repository.NotificationRepository
	employees     repository.EmployeeRepository
	log           *logger.Logger
}

// NewSeenTracker construye el tracker.
func NewSeenTracker(
	seen repository.SeenRepository,
	notifications repository.NotificationRepository,
	employees repository.EmployeeRepository,
	log *logger.Logger,
) *SeenTracker {
	return &SeenTracker{seen: seen, notifications: notifications, employees: employees, log: log}
}

// MarkSeen registra el par (empID, nid). Repetir la marca no es un error: devuelve
// OutcomeAlreadyMarked y el almacén sigue con una sola fila para el par.
func (t *SeenTracker) MarkSeen(ctx context.Context, empID, nid string) (Outcome, error) {
	empID = strings.TrimSpace(empID)
	nid = strings.TrimSpace(nid)
	if empID == "" || nid == "" {
		return "", domain.ErrInvalidInput
	}

	n, err := t.notifications.GetByID(ctx, nid)
	if err != nil {
		return "", err
	}
	if n == nil {
		return "", domain.ErrNotFound
	}
	if err := t.checkEmployee(ctx, empID); err != nil {
		return "", err
	}

	exists, err := t.seen.Exists(ctx, empID, nid)
	if err != nil {
		return "", err
	}
	if exists {
		return OutcomeAlreadyMarked, nil
	}

	// Dos marcas concurrentes pueden pasar ambas la consulta; la restricción única decide.
	err = t.seen.Insert(ctx, entity.SeenRecord{EmpID: empID, NID: nid})
	switch {
	case err == nil:
		t.log.Debug().Str("emp_id", empID).Str("nid", nid).Msg("notificación marcada como vista")
		return OutcomeCreated, nil
	case errors.Is(err, domain.ErrDuplicate):
		return OutcomeAlreadyMarked, nil
	default:
		return "", err
	}
}

// checkEmployee exige que empID sea un empleado registrado. El usuario administrativo
// fijo no es una fila de employee y queda exento.
func (t *SeenTracker) checkEmployee(ctx context.Context, empID string) error {
	if empID == auth.AdminUserID {
		return nil
	}
	e, err := t.employees.GetByID(ctx, empID)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("%w: empleado %s no existe", domain.ErrInvalidInput, empID)
	}
	return nil
}
