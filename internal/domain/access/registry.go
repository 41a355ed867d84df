package access

// CapabilitySet perfil de privilegios de un rol. Es un valor: se copia, nunca se muta.
type CapabilitySet struct {
	sections           SectionSet
	canAdd             bool
	canEdit            bool
	canDelete          bool
	canViewSalary      bool
	canManageEmployees bool
}

func (c CapabilitySet) VisibleSections() SectionSet { return c.sections }
func (c CapabilitySet) CanAdd() bool                { return c.canAdd }
func (c CapabilitySet) CanEdit() bool               { return c.canEdit }
func (c CapabilitySet) CanDelete() bool             { return c.canDelete }
func (c CapabilitySet) CanViewSalary() bool         { return c.canViewSalary }
func (c CapabilitySet) CanManageEmployees() bool    { return c.canManageEmployees }

// Capabilities devuelve el perfil fijo del rol. Es total sobre la enumeración;
// un Role fuera del conjunto cerrado obtiene el perfil vacío (sin secciones ni derechos).
func (r Role) Capabilities() CapabilitySet {
	switch r {
	case RoleAdmin:
		return CapabilitySet{
			sections:           AllSections(),
			canAdd:             true,
			canEdit:            true,
			canDelete:          true,
			canViewSalary:      true,
			canManageEmployees: true,
		}
	case RoleSupervisor:
		return CapabilitySet{
			sections:           AllSections(),
			canAdd:             true,
			canEdit:            true,
			canDelete:          true,
			canViewSalary:      true,
			canManageEmployees: false,
		}
	case RolePharmacist:
		return CapabilitySet{
			sections: NewSectionSet(
				SectionDashboard, SectionMedicines, SectionCustomers, SectionOrders,
				SectionOrderedDrugs, SectionBills, SectionPrescriptions, SectionNotifications,
			),
			canAdd:  true,
			canEdit: true,
		}
	case RoleCashier:
		return CapabilitySet{
			sections: NewSectionSet(
				SectionDashboard, SectionCustomers, SectionOrders, SectionOrderedDrugs, SectionBills,
			),
			canAdd: true,
		}
	case RoleManager:
		return CapabilitySet{
			sections: NewSectionSet(
				SectionDashboard, SectionEmployees, SectionSuppliers, SectionMedicines,
				SectionCustomers, SectionOrders, SectionOrderedDrugs, SectionBills,
				SectionDisposals, SectionQueries,
			),
			canAdd:             true,
			canEdit:            true,
			canDelete:          true,
			canViewSalary:      true,
			canManageEmployees: true,
		}
	default:
		return CapabilitySet{}
	}
}

// CapabilitiesFor resuelve el perfil a partir del identificador de rol almacenado.
// Un rol desconocido devuelve domain.ErrUnrecognizedRole: el login debe rechazarse.
func CapabilitiesFor(name string) (CapabilitySet, error) {
	r, err := ParseRole(name)
	if err != nil {
		return CapabilitySet{}, err
	}
	return r.Capabilities(), nil
}
