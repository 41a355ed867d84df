package access

import "time"

// Session identidad en memoria del usuario que abrió la ventana. Se pasa
// explícitamente a cada chequeo de permisos y carga de datos.
type Session struct {
	ID           string // correlación en logs, no es un token
	UserID       string // EmpID, o el usuario administrativo fijo
	DisplayName  string
	Role         Role
	Capabilities CapabilitySet
	StartedAt    time.Time
}

// NewSession deriva el perfil de privilegios del rol.
func NewSession(id, userID, displayName string, role Role, startedAt time.Time) Session {
	return Session{
		ID:           id,
		UserID:       userID,
		DisplayName:  displayName,
		Role:         role,
		Capabilities: role.Capabilities(),
		StartedAt:    startedAt,
	}
}
