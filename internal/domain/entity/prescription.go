package entity

import "time"

// Prescription receta de un cliente, opcionalmente ligada a una orden.
type Prescription struct {
	PresID   string
	CID      string
	DocID    string
	PresDate *time.Time
	OrderID  string // vacío = sin orden
}
