package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
)

type expectedCaps struct {
	sections       []string
	add, edit, del bool
	salary, manage bool
}

var allNames = []string{
	"Dashboard", "Employees", "Suppliers", "Medicines", "Customers", "Orders",
	"Ordered Drugs", "Bills", "Disposals", "Prescriptions", "Notifications", "Queries",
}

func TestCapabilitiesFor_TablaDePrivilegios(t *testing.T) {
	cases := map[string]expectedCaps{
		"Admin": {
			sections: allNames,
			add:      true, edit: true, del: true, salary: true, manage: true,
		},
		"Supervisor": {
			sections: allNames,
			add:      true, edit: true, del: true, salary: true, manage: false,
		},
		"Pharmacist": {
			sections: []string{"Dashboard", "Medicines", "Customers", "Orders", "Ordered Drugs", "Bills", "Prescriptions", "Notifications"},
			add:      true, edit: true,
		},
		"Cashier": {
			sections: []string{"Dashboard", "Customers", "Orders", "Ordered Drugs", "Bills"},
			add:      true,
		},
		"Manager": {
			sections: []string{"Dashboard", "Employees", "Suppliers", "Medicines", "Customers", "Orders", "Ordered Drugs", "Bills", "Disposals", "Queries"},
			add:      true, edit: true, del: true, salary: true, manage: true,
		},
	}

	for role, want := range cases {
		t.Run(role, func(t *testing.T) {
			caps, err := access.CapabilitiesFor(role)
			require.NoError(t, err)

			assert.Equal(t, want.sections, caps.VisibleSections().Names())
			assert.Equal(t, want.add, caps.CanAdd(), "add")
			assert.Equal(t, want.edit, caps.CanEdit(), "edit")
			assert.Equal(t, want.del, caps.CanDelete(), "delete")
			assert.Equal(t, want.salary, caps.CanViewSalary(), "salary")
			assert.Equal(t, want.manage, caps.CanManageEmployees(), "manage employees")
		})
	}
}

func TestCapabilitiesFor_RolDesconocido(t *testing.T) {
	for _, name := range []string{"", "admin", "CASHIER", "Intern", "Pharmacist "} {
		_, err := access.CapabilitiesFor(name)
		assert.ErrorIs(t, err, domain.ErrUnrecognizedRole, "rol %q no debe resolverse", name)
	}
}

func TestRole_StringRoundTrip(t *testing.T) {
	for _, r := range access.Roles() {
		parsed, err := access.ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestRole_FueraDeEnumeracion_SinPrivilegios(t *testing.T) {
	caps := access.Role(99).Capabilities()
	assert.Equal(t, 0, caps.VisibleSections().Len())
	assert.False(t, caps.CanAdd())
}

func TestSectionSet_AdminTieneDoceSecciones(t *testing.T) {
	assert.Equal(t, 12, access.RoleAdmin.Capabilities().VisibleSections().Len())
	s, ok := access.ParseSection("ordered drugs")
	require.True(t, ok)
	assert.Equal(t, access.SectionOrderedDrugs, s)
	_, ok = access.ParseSection("Payroll")
	assert.False(t, ok)
}
