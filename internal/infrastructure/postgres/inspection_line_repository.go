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

var _ repository.InspectionLineRepository = (*InspectionLineRepo)(nil)

const lineColumns = `
	id, internal_inspections_id, part_num, description, qty, notes, is_deleted,
	created_on, created_by, updated_on, updated_by`

// InspectionLineRepo implementación de InspectionLineRepository (usable con pool o tx).
type InspectionLineRepo struct {
	q Querier
}

// NewInspectionLineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInspectionLineRepository(q Querier) *InspectionLineRepo {
	return &InspectionLineRepo{q: q}
}

// Create persiste la línea y asigna el id generado.
func (r *InspectionLineRepo) Create(ctx context.Context, l *entity.InspectionLine) error {
	query := `
		INSERT INTO internal_inspections_lines (
			internal_inspections_id, part_num, description, qty, notes, is_deleted, created_on, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.InspectionID, l.PartNum, l.Description, l.Qty, l.Notes, l.IsDeleted, l.CreatedOn, l.CreatedBy,
	).Scan(&l.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: inspección %d", domain.ErrNotFound, l.InspectionID)
		}
		return fmt.Errorf("insert inspection line: %w", err)
	}
	return nil
}

// GetByID obtiene la línea por id, eliminada o no.
func (r *InspectionLineRepo) GetByID(ctx context.Context, id int64) (*entity.InspectionLine, error) {
	query := `SELECT ` + lineColumns + ` FROM internal_inspections_lines WHERE id = $1`
	l, err := scanLine(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection line: %w", err)
	}
	return l, nil
}

// Update reescribe la línea.
func (r *InspectionLineRepo) Update(ctx context.Context, l *entity.InspectionLine) error {
	query := `
		UPDATE internal_inspections_lines SET
			part_num = $2, description = $3, qty = $4, notes = $5, is_deleted = $6,
			updated_on = $7, updated_by = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.PartNum, l.Description, l.Qty, l.Notes, l.IsDeleted, l.UpdatedOn, l.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update inspection line: %w", err)
	}
	return nil
}

// ListByInspection lista las líneas no eliminadas de la inspección.
func (r *InspectionLineRepo) ListByInspection(ctx context.Context, inspectionID int64) ([]*entity.InspectionLine, error) {
	query := `SELECT ` + lineColumns + `
		FROM internal_inspections_lines
		WHERE internal_inspections_id = $1 AND NOT is_deleted
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("list inspection lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.InspectionLine
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inspection line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanLine(row pgx.Row) (*entity.InspectionLine, error) {
	var l entity.InspectionLine
	err := row.Scan(
		&l.ID, &l.InspectionID, &l.PartNum, &l.Description, &l.Qty, &l.Notes, &l.IsDeleted,
		&l.CreatedOn, &l.CreatedBy, &l.UpdatedOn, &l.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
