package entity

import "time"

// Customer representa un cliente del ERP (dueño del equipo inspeccionado).
type Customer struct {
	CustID       int64
	CustomerName string
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
