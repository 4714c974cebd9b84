package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusQuote = "QUOTE"
	OrderStatusOpen  = "OPEN"
)

// Order cabecera de orden de venta / cotización.
// SourceInspectionID enlaza la cotización con la inspección que la originó.
type Order struct {
	ID                 int64
	OrderNum           string
	CustID             *int64
	CustomerName       string
	SalesPersonNum     *int64
	SourceInspectionID *int64
	Status             string
	Description        string
	NetTotal           decimal.Decimal
	CreatedOn          time.Time
	CreatedBy          int64
}

// OrderDetail línea de la orden.
type OrderDetail struct {
	ID          int64
	OrderID     int64
	LineNum     int
	PartNum     string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
