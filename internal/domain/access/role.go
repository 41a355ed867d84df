// Package access contiene el modelo de privilegios por rol: registro estático de
// capacidades y la compuerta de permisos que se consulta antes de cada mutación.
// No realiza I/O.
package access

import (
	"fmt"

	"github.com/jhoicas/farmacia-api/internal/domain"
)

// Role conjunto cerrado de roles de empleado.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleSupervisor
	RolePharmacist
	RoleCashier
	RoleManager
)

var roleNames = map[Role]string{
	RoleAdmin:      "Admin",
	RoleSupervisor: "Supervisor",
	RolePharmacist: "Pharmacist",
	RoleCashier:    "Cashier",
	RoleManager:    "Manager",
}

// Roles devuelve los roles definidos en orden estable.
func Roles() []Role {
	return []Role{RoleAdmin, RoleSupervisor, RolePharmacist, RoleCashier, RoleManager}
}

// String devuelve el nombre tal como se guarda en EMPLOYEE.Role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole convierte el identificador almacenado en un Role. La comparación es exacta
// (sensible a mayúsculas); cualquier otro valor devuelve domain.ErrUnrecognizedRole.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnrecognizedRole, name)
}
