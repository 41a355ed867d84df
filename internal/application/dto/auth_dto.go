package dto

import "time"

// LoginRequest usuario (EmpID o usuario administrativo) y clave.
type LoginRequest struct {
	Username string `json:"username" validate:"trimmed_required,max=50"`
	Password string `json:"password" validate:"trimmed_required,max=100"`
}

// SessionResponse sesión activa y su perfil de privilegios.
type SessionResponse struct {
	SessionID    string             `json:"session_id"`
	UserID       string             `json:"user_id"`
	DisplayName  string             `json:"display_name"`
	Role         string             `json:"role"`
	StartedAt    time.Time          `json:"started_at"`
	Capabilities CapabilityResponse `json:"capabilities"`
}

// CapabilityResponse perfil de privilegios serializado.
type CapabilityResponse struct {
	VisibleSections    []string `json:"visible_sections"`
	CanAdd             bool     `json:"can_add"`
	CanEdit            bool     `json:"can_edit"`
	CanDelete          bool     `json:"can_delete"`
	CanViewSalary      bool     `json:"can_view_salary"`
	CanManageEmployees bool     `json:"can_manage_employees"`
}

// PermissionResponse resultado de consultar la compuerta de permisos.
type PermissionResponse struct {
	Section string `json:"section"`
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`
}
