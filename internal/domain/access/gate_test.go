package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
)

func sessionFor(r access.Role) access.Session {
	return access.NewSession("s-1", "E1", "Test", r, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
}

func TestAllows_Delete(t *testing.T) {
	want := map[access.Role]bool{
		access.RoleAdmin:      true,
		access.RoleSupervisor: true,
		access.RoleManager:    true,
		access.RolePharmacist: false,
		access.RoleCashier:    false,
	}
	for role, allowed := range want {
		assert.Equal(t, allowed, access.Allows(sessionFor(role), access.ActionDelete), role.String())
	}
}

func TestAllows_AccionDesconocidaSeNiega(t *testing.T) {
	assert.False(t, access.Allows(sessionFor(access.RoleAdmin), access.Action("purge")))
	_, ok := access.ParseAction("purge")
	assert.False(t, ok)
}

// Supervisor: edit=true y manageEmployees=false.
func TestAllowsIn_SupervisorEditaMedicinasPeroNoEmpleados(t *testing.T) {
	s := sessionFor(access.RoleSupervisor)

	assert.True(t, access.Allows(s, access.ActionEdit))
	assert.True(t, access.AllowsIn(s, access.SectionMedicines, access.ActionEdit))
	assert.False(t, access.AllowsIn(s, access.SectionEmployees, access.ActionEdit))
	assert.False(t, access.AllowsIn(s, access.SectionEmployees, access.ActionAdd))
	assert.False(t, access.AllowsIn(s, access.SectionEmployees, access.ActionDelete))
	assert.True(t, access.CanViewSalary(s))
}

func TestAllowsIn_EmpleadosRequiereGestion(t *testing.T) {
	for _, role := range access.Roles() {
		s := sessionFor(role)
		caps := s.Capabilities
		for _, a := range []access.Action{access.ActionAdd, access.ActionEdit, access.ActionDelete} {
			if !caps.CanManageEmployees() {
				assert.False(t, access.AllowsIn(s, access.SectionEmployees, a), "%s %s", role, a)
			}
		}
	}
	assert.True(t, access.AllowsIn(sessionFor(access.RoleManager), access.SectionEmployees, access.ActionDelete))
}

func TestAllowsIn_SeccionNoVisible(t *testing.T) {
	// Cashier puede agregar, pero Medicines no está entre sus secciones.
	s := sessionFor(access.RoleCashier)
	assert.True(t, access.Allows(s, access.ActionAdd))
	assert.False(t, access.AllowsIn(s, access.SectionMedicines, access.ActionAdd))
	assert.True(t, access.AllowsIn(s, access.SectionCustomers, access.ActionAdd))
}

func TestCheck_DevuelvePermisoDenegado(t *testing.T) {
	s := sessionFor(access.RoleCashier)
	err := access.Check(s, access.SectionBills, access.ActionEdit)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.NoError(t, access.Check(s, access.SectionBills, access.ActionAdd))
	assert.ErrorIs(t, access.CheckView(s, access.SectionQueries), domain.ErrPermissionDenied)
}

func TestNewSession_DerivaCapacidades(t *testing.T) {
	s := sessionFor(access.RoleCashier)
	assert.False(t, s.Capabilities.CanEdit())
	assert.Equal(t, access.RoleCashier.Capabilities(), s.Capabilities)
}
