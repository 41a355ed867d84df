package access

import "strings"

// Section pestaña/sección de la aplicación de escritorio.
type Section uint16

const (
	SectionDashboard Section = 1 << iota
	SectionEmployees
	SectionSuppliers
	SectionMedicines
	SectionCustomers
	SectionOrders
	SectionOrderedDrugs
	SectionBills
	SectionDisposals
	SectionPrescriptions
	SectionNotifications
	SectionQueries
)

// allSections en el orden en que la aplicación las presenta.
var allSections = []Section{
	SectionDashboard, SectionEmployees, SectionSuppliers, SectionMedicines,
	SectionCustomers, SectionOrders, SectionOrderedDrugs, SectionBills,
	SectionDisposals, SectionPrescriptions, SectionNotifications, SectionQueries,
}

var sectionNames = map[Section]string{
	SectionDashboard:     "Dashboard",
	SectionEmployees:     "Employees",
	SectionSuppliers:     "Suppliers",
	SectionMedicines:     "Medicines",
	SectionCustomers:     "Customers",
	SectionOrders:        "Orders",
	SectionOrderedDrugs:  "Ordered Drugs",
	SectionBills:         "Bills",
	SectionDisposals:     "Disposals",
	SectionPrescriptions: "Prescriptions",
	SectionNotifications: "Notifications",
	SectionQueries:       "Queries",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseSection busca una sección por nombre, sin distinguir mayúsculas.
func ParseSection(name string) (Section, bool) {
	for _, s := range allSections {
		if strings.EqualFold(sectionNames[s], strings.TrimSpace(name)) {
			return s, true
		}
	}
	return 0, false
}

// SectionSet conjunto inmutable de secciones (bitmask).
type SectionSet uint16

// NewSectionSet construye el conjunto a partir de secciones sueltas.
func NewSectionSet(sections ...Section) SectionSet {
	var set SectionSet
	for _, s := range sections {
		set |= SectionSet(s)
	}
	return set
}

// AllSections las 12 secciones.
func AllSections() SectionSet {
	return NewSectionSet(allSections...)
}

// Has indica si la sección pertenece al conjunto.
func (set SectionSet) Has(s Section) bool {
	return s != 0 && set&SectionSet(s) == SectionSet(s)
}

// Len número de secciones.
func (set SectionSet) Len() int {
	n := 0
	for _, s := range allSections {
		if set.Has(s) {
			n++
		}
	}
	return n
}

// List devuelve las secciones en orden de presentación.
func (set SectionSet) List() []Section {
	out := make([]Section, 0, len(allSections))
	for _, s := range allSections {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// Names igual que List pero con los nombres visibles.
func (set SectionSet) Names() []string {
	list := set.List()
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.String()
	}
	return names
}
