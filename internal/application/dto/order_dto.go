package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDto salida de una orden / cotización generada desde una inspección.
type OrderDto struct {
	ID                 int64             `json:"id"`
	OrderNum           string            `json:"order_num"`
	Status             string            `json:"status"`
	CustID             *int64            `json:"cust_id"`
	CustomerName       string            `json:"customer_name"`
	SalesPersonNum     *int64            `json:"sales_person_num"`
	SourceInspectionID *int64            `json:"internal_inspections_id"`
	Description        string            `json:"description"`
	NetTotal           decimal.Decimal   `json:"net_total"`
	Details            []*OrderDetailDto `json:"details"`
	CreatedOn          time.Time         `json:"created_on"`
	CreatedBy          int64             `json:"created_by"`
}

// OrderDetailDto línea de la orden.
type OrderDetailDto struct {
	LineNum     int             `json:"line_num"`
	PartNum     string          `json:"part_num"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
