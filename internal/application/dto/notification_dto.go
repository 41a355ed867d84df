package dto

// CreateNotificationRequest alta manual de notificación. Type es opcional.
type CreateNotificationRequest struct {
	Type    string `json:"type" validate:"omitempty,max=50"`
	Message string `json:"message" validate:"trimmed_required"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	NID     string `json:"nid"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

// MarkSeenRequest EmpID que vio la notificación; vacío = el usuario de la sesión.
type MarkSeenRequest struct {
	EmpID string `json:"emp_id" validate:"omitempty,max=20"`
}

// MarkSeenResponse resultado idempotente: created o already_marked.
type MarkSeenResponse struct {
	EmpID   string `json:"emp_id"`
	NID     string `json:"nid"`
	Outcome string `json:"outcome"`
}

// UnseenCountResponse notificaciones que nadie ha visto.
type UnseenCountResponse struct {
	Unseen int `json:"unseen"`
}

// SeenEntryResponse fila de "quién vio qué".
type SeenEntryResponse struct {
	EmpID        string `json:"emp_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	NID          string `json:"nid"`
	Type         string `json:"type,omitempty"`
	Message      string `json:"message,omitempty"`
}
