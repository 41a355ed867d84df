package dto

// ExpiryItemDTO lote clasificado.
type ExpiryItemDTO struct {
	BatchNo    string `json:"batch_no"`
	DrugName   string `json:"drug_name"`
	ExpiryDate string `json:"expiry_date"`
	Quantity   int    `json:"quantity"`
}

// AlertDTO aviso que la ventana presenta: warning para vencidos, info para próximos.
type AlertDTO struct {
	Level   string   `json:"level"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Lines   []string `json:"lines"`
}

// ExpiryReportDTO respuesta de la revisión de vencimientos.
type ExpiryReportDTO struct {
	ReferenceDate string          `json:"reference_date"`
	WarnDays      int             `json:"warn_days"`
	Expired       []ExpiryItemDTO `json:"expired"`
	ExpiringSoon  []ExpiryItemDTO `json:"expiring_soon"`
	Skipped       int             `json:"skipped"`
	Alerts        []AlertDTO      `json:"alerts"`
}

// DueListDTO consulta "vencen dentro de N días" (incluye vencidos).
type DueListDTO struct {
	ReferenceDate string          `json:"reference_date"`
	Days          int             `json:"days"`
	Items         []ExpiryItemDTO `json:"items"`
}

// SurfacedDTO notificaciones creadas a partir de la revisión.
type SurfacedDTO struct {
	Created []NotificationResponse `json:"created"`
}
