package access

import (
	"fmt"

	"github.com/jhoicas/farmacia-api/internal/domain"
)

// Action acción de usuario sujeta a permiso.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// ParseAction valida el nombre de la acción.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionAdd, ActionEdit, ActionDelete:
		return Action(s), true
	}
	return "", false
}

// Allows evalúa la acción contra el perfil de la sesión. Acciones desconocidas se niegan.
func Allows(s Session, a Action) bool {
	caps := s.Capabilities
	switch a {
	case ActionAdd:
		return caps.CanAdd()
	case ActionEdit:
		return caps.CanEdit()
	case ActionDelete:
		return caps.CanDelete()
	}
	return false
}

// CanView indica si la sección es visible para la sesión.
func CanView(s Session, section Section) bool {
	return s.Capabilities.VisibleSections().Has(section)
}

// CanViewSalary indica si la sesión puede ver salario y clave de empleados.
func CanViewSalary(s Session) bool {
	return s.Capabilities.CanViewSalary()
}

// AllowsIn evalúa una acción dentro de una sección: la sección debe ser visible,
// la acción permitida y, para Employees, además se exige canManageEmployees.
func AllowsIn(s Session, section Section, a Action) bool {
	if !CanView(s, section) || !Allows(s, a) {
		return false
	}
	if section == SectionEmployees {
		return s.Capabilities.CanManageEmployees()
	}
	return true
}

// Check igual que AllowsIn pero devuelve domain.ErrPermissionDenied para
// distinguir la negación de un fallo de la operación.
func Check(s Session, section Section, a Action) error {
	if AllowsIn(s, section, a) {
		return nil
	}
	return fmt.Errorf("%w: %s no puede %s en %s", domain.ErrPermissionDenied, s.Role, a, section)
}

// CheckView devuelve domain.ErrPermissionDenied si la sección no es visible.
func CheckView(s Session, section Section) error {
	if CanView(s, section) {
		return nil
	}
	return fmt.Errorf("%w: %s no tiene acceso a %s", domain.ErrPermissionDenied, s.Role, section)
}
