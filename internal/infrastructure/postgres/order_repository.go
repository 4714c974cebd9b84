package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (order_num, cust_id, customer_name, sales_person_num, source_inspection_id,
			status, description, net_total, created_on, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		o.OrderNum, o.CustID, o.CustomerName, o.SalesPersonNum, o.SourceInspectionID,
		o.Status, o.Description, o.NetTotal, o.CreatedOn, o.CreatedBy,
	).Scan(&o.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: orden %s", domain.ErrDuplicate, o.OrderNum)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle.
func (r *OrderRepo) CreateDetail(ctx context.Context, d *entity.OrderDetail) error {
	query := `
		INSERT INTO order_details (order_id, line_num, part_num, description, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		d.OrderID, d.LineNum, d.PartNum, d.Description, d.Quantity, d.UnitPrice, d.Subtotal,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert order detail: %w", err)
	}
	return nil
}

// GetBySourceInspection obtiene la orden generada desde la inspección, si existe.
func (r *OrderRepo) GetBySourceInspection(ctx context.Context, inspectionID int64) (*entity.Order, error) {
	query := `
		SELECT id, order_num, cust_id, customer_name, sales_person_num, source_inspection_id,
		       status, description, net_total, created_on, created_by
		FROM orders WHERE source_inspection_id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, inspectionID).Scan(
		&o.ID, &o.OrderNum, &o.CustID, &o.CustomerName, &o.SalesPersonNum, &o.SourceInspectionID,
		&o.Status, &o.Description, &o.NetTotal, &o.CreatedOn, &o.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by inspection: %w", err)
	}
	return &o, nil
}

// ListDetails lista los detalles de la orden por número de línea.
func (r *OrderRepo) ListDetails(ctx context.Context, orderID int64) ([]*entity.OrderDetail, error) {
	query := `
		SELECT id, order_id, line_num, part_num, description, quantity, unit_price, subtotal
		FROM order_details WHERE order_id = $1 ORDER BY line_num`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.LineNum, &d.PartNum, &d.Description, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// NextOrderNumber toma el siguiente valor de la secuencia de órdenes con formato Q000001.
func (r *OrderRepo) NextOrderNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('order_num_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next order number: %w", err)
	}
	return fmt.Sprintf("Q%06d", n), nil
}
