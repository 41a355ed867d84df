package entity

// Notification aviso con identificador secuencial N###. Inmutable una vez creado.
type Notification struct {
	NID     string
	Type    string // categoría libre: Prescription, Expiry, ...
	Message string
}

// SeenRecord constancia de que un empleado vio una notificación. Único por par.
type SeenRecord struct {
	EmpID string
	NID   string
}

// SeenEntry fila del listado "quién vio qué" (join con empleado y notificación).
type SeenEntry struct {
	EmpID        string
	EmployeeName string // vacío si el EmpID no corresponde a un empleado
	NID          string
	Type         string
	Message      string
}
