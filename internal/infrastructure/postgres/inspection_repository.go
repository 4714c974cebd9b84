package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

var _ repository.InspectionRepository = (*InspectionRepo)(nil)

// uniqueColumns campos admitidos en la regla de unicidad y su columna.
var uniqueColumns = map[string]string{
	"quote_num":   "quote_num",
	"tag_number":  "tag_number",
	"department":  "department",
	"description": "description",
	"cust_id":     "cust_id",
}

const inspectionColumns = `
	id, quote_num, description, tag_number, department, cust_id, customer_name, sales_person_num,
	qty, is_pre_inspection, is_canceled, is_complete, is_sales_complete, inspection_status,
	created_on, created_by, updated_on, updated_by, received_on, received_by,
	completed_on, completed_by, sales_completed_on, sales_completed_by`

// InspectionRepo implementación de InspectionRepository (usable con pool o tx).
type InspectionRepo struct {
	q Querier
}

// NewInspectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInspectionRepository(q Querier) *InspectionRepo {
	return &InspectionRepo{q: q}
}

// Create persiste la cabecera y asigna el id generado.
func (r *InspectionRepo) Create(ctx context.Context, h *entity.InspectionHeader) error {
	query := `
		INSERT INTO internal_inspections (
			quote_num, description, tag_number, department, cust_id, customer_name, sales_person_num,
			qty, is_pre_inspection, is_canceled, is_complete, is_sales_complete, inspection_status,
			created_on, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		h.QuoteNum, h.Description, h.TagNumber, h.Department, h.CustID, h.CustomerName, h.SalesPersonNum,
		h.Qty, h.IsPreInspection, h.IsCanceled, h.IsComplete, h.IsSalesComplete, string(h.Status),
		h.CreatedOn, h.CreatedBy,
	).Scan(&h.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, foreignKeyDetail(err))
		}
		return fmt.Errorf("insert inspection: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera por id.
func (r *InspectionRepo) GetByID(ctx context.Context, id int64) (*entity.InspectionHeader, error) {
	return r.get(ctx, `SELECT `+inspectionColumns+` FROM internal_inspections WHERE id = $1`, id)
}

// GetForUpdate obtiene la cabecera bloqueando la fila (SELECT ... FOR UPDATE).
func (r *InspectionRepo) GetForUpdate(ctx context.Context, id int64) (*entity.InspectionHeader, error) {
	return r.get(ctx, `SELECT `+inspectionColumns+` FROM internal_inspections WHERE id = $1 FOR UPDATE`, id)
}

func (r *InspectionRepo) get(ctx context.Context, query string, id int64) (*entity.InspectionHeader, error) {
	h, err := scanInspection(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection: %w", err)
	}
	return h, nil
}

// Update reescribe la cabecera completa (estado ya fusionado por el servicio).
func (r *InspectionRepo) Update(ctx context.Context, h *entity.InspectionHeader) error {
	query := `
		UPDATE internal_inspections SET
			quote_num = $2, description = $3, tag_number = $4, department = $5, cust_id = $6,
			customer_name = $7, sales_person_num = $8, qty = $9, is_pre_inspection = $10,
			is_canceled = $11, is_complete = $12, is_sales_complete = $13, inspection_status = $14,
			updated_on = $15, updated_by = $16, received_on = $17, received_by = $18,
			completed_on = $19, completed_by = $20, sales_completed_on = $21, sales_completed_by = $22
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		h.ID, h.QuoteNum, h.Description, h.TagNumber, h.Department, h.CustID,
		h.CustomerName, h.SalesPersonNum, h.Qty, h.IsPreInspection,
		h.IsCanceled, h.IsComplete, h.IsSalesComplete, string(h.Status),
		h.UpdatedOn, h.UpdatedBy, h.ReceivedOn, h.ReceivedBy,
		h.CompletedOn, h.CompletedBy, h.SalesCompletedOn, h.SalesCompletedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, foreignKeyDetail(err))
		}
		return fmt.Errorf("update inspection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inspección %d", domain.ErrNotFound, h.ID)
	}
	return nil
}

// LockUniqueKey toma pg_advisory_xact_lock sobre el hash de la clave. Se libera con el
// commit o rollback, así que solo tiene efecto dentro de una transacción.
func (r *InspectionRepo) LockUniqueKey(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("lock inspection unique key: %w", err)
	}
	return nil
}

// ExistsDuplicate busca una inspección no cancelada con los mismos valores en los campos
// pedidos. Los valores vacíos se comparan como tales (IS NOT DISTINCT FROM).
func (r *InspectionRepo) ExistsDuplicate(ctx context.Context, c repository.InspectionUniqueCriteria) (bool, error) {
	fields := make([]string, 0, len(c.Fields))
	for f := range c.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString(`SELECT EXISTS (SELECT 1 FROM internal_inspections WHERE NOT is_canceled AND id <> $1`)
	args := []any{c.ExcludeID}
	for _, f := range fields {
		col, ok := uniqueColumns[f]
		if !ok {
			return false, fmt.Errorf("campo de unicidad desconocido %q", f)
		}
		args = append(args, c.Fields[f])
		fmt.Fprintf(&sb, ` AND %s IS NOT DISTINCT FROM $%d`, col, len(args))
	}
	sb.WriteString(`)`)

	var exists bool
	if err := r.q.QueryRow(ctx, sb.String(), args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check duplicate inspection: %w", err)
	}
	return exists, nil
}

func scanInspection(row pgx.Row) (*entity.InspectionHeader, error) {
	var h entity.InspectionHeader
	var status string
	err := row.Scan(
		&h.ID, &h.QuoteNum, &h.Description, &h.TagNumber, &h.Department, &h.CustID, &h.CustomerName, &h.SalesPersonNum,
		&h.Qty, &h.IsPreInspection, &h.IsCanceled, &h.IsComplete, &h.IsSalesComplete, &status,
		&h.CreatedOn, &h.CreatedBy, &h.UpdatedOn, &h.UpdatedBy, &h.ReceivedOn, &h.ReceivedBy,
		&h.CompletedOn, &h.CompletedBy, &h.SalesCompletedOn, &h.SalesCompletedBy,
	)
	if err != nil {
		return nil, err
	}
	h.Status = entity.InspectionStatus(status)
	return &h, nil
}
