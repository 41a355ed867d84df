package dto

// CreatePrescriptionRequest alta de receta. OrderID es opcional.
type CreatePrescriptionRequest struct {
	PresID   string `json:"pres_id" validate:"trimmed_required,max=20"`
	CID      string `json:"cid" validate:"trimmed_required,max=20"`
	DocID    string `json:"doc_id" validate:"omitempty,max=20"`
	PresDate string `json:"pres_date" validate:"omitempty,datetime=2006-01-02"`
	OrderID  string `json:"order_id" validate:"omitempty,max=20"`
}

// PrescriptionResponse salida de una receta.
type PrescriptionResponse struct {
	PresID   string `json:"pres_id"`
	CID      string `json:"cid"`
	DocID    string `json:"doc_id,omitempty"`
	PresDate string `json:"pres_date,omitempty"`
	OrderID  string `json:"order_id,omitempty"`
	// NID de la notificación generada; vacío si no se pudo crear.
	NotificationID string `json:"notification_id,omitempty"`
}
