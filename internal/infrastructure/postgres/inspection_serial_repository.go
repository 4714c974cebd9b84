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

var _ repository.InspectionSerialRepository = (*InspectionSerialRepo)(nil)

const serialColumns = `
	id, internal_inspections_id, internal_inspections_lines_id, serial_num, is_deleted,
	created_on, created_by, updated_on, updated_by`

// InspectionSerialRepo implementación de InspectionSerialRepository (usable con pool o tx).
type InspectionSerialRepo struct {
	q Querier
}

// NewInspectionSerialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInspectionSerialRepository(q Querier) *InspectionSerialRepo {
	return &InspectionSerialRepo{q: q}
}

// Create persiste el serial. El índice único parcial (inspección, serial_num) sobre filas
// no eliminadas respalda la verificación previa del servicio.
func (r *InspectionSerialRepo) Create(ctx context.Context, s *entity.InspectionSerial) error {
	query := `
		INSERT INTO internal_inspections_serials (
			internal_inspections_id, internal_inspections_lines_id, serial_num, is_deleted, created_on, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.InspectionID, s.LineID, s.SerialNum, s.IsDeleted, s.CreatedOn, s.CreatedBy,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inspection serial: %w", err)
	}
	return nil
}

// GetByID obtiene el serial por id, eliminado o no.
func (r *InspectionSerialRepo) GetByID(ctx context.Context, id int64) (*entity.InspectionSerial, error) {
	query := `SELECT ` + serialColumns + ` FROM internal_inspections_serials WHERE id = $1`
	s, err := scanSerial(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection serial: %w", err)
	}
	return s, nil
}

// Update reescribe el serial.
func (r *InspectionSerialRepo) Update(ctx context.Context, s *entity.InspectionSerial) error {
	query := `
		UPDATE internal_inspections_serials SET
			internal_inspections_lines_id = $2, serial_num = $3, is_deleted = $4, updated_on = $5, updated_by = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.LineID, s.SerialNum, s.IsDeleted, s.UpdatedOn, s.UpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inspection serial: %w", err)
	}
	return nil
}

// ListByInspection lista los seriales no eliminados de la inspección.
func (r *InspectionSerialRepo) ListByInspection(ctx context.Context, inspectionID int64) ([]*entity.InspectionSerial, error) {
	query := `SELECT ` + serialColumns + `
		FROM internal_inspections_serials
		WHERE internal_inspections_id = $1 AND NOT is_deleted
		ORDER BY id`
	return r.list(ctx, query, inspectionID)
}

// ListByLine lista los seriales no eliminados asociados a la línea.
func (r *InspectionSerialRepo) ListByLine(ctx context.Context, lineID int64) ([]*entity.InspectionSerial, error) {
	query := `SELECT ` + serialColumns + `
		FROM internal_inspections_serials
		WHERE internal_inspections_lines_id = $1 AND NOT is_deleted
		ORDER BY id`
	return r.list(ctx, query, lineID)
}

func (r *InspectionSerialRepo) list(ctx context.Context, query string, arg int64) ([]*entity.InspectionSerial, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list inspection serials: %w", err)
	}
	defer rows.Close()
	var list []*entity.InspectionSerial
	for rows.Next() {
		s, err := scanSerial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inspection serial: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ExistsInInspection informa si el número ya está registrado (no eliminado) en la inspección.
func (r *InspectionSerialRepo) ExistsInInspection(ctx context.Context, inspectionID int64, serialNum string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM internal_inspections_serials
			WHERE internal_inspections_id = $1 AND serial_num = $2 AND NOT is_deleted AND id <> $3)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, inspectionID, serialNum, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check serial in inspection: %w", err)
	}
	return exists, nil
}

// SearchBySerialNumber cruza los seriales no eliminados con su inspección (canceladas incluidas).
func (r *InspectionSerialRepo) SearchBySerialNumber(ctx context.Context, serialNum string) ([]*entity.SerialEncounter, error) {
	query := `
		SELECT s.id, s.serial_num, s.internal_inspections_lines_id, i.id, i.quote_num, i.tag_number,
		       i.customer_name, i.inspection_status, i.is_canceled, s.created_on, i.received_on, i.completed_on
		FROM internal_inspections_serials s
		JOIN internal_inspections i ON i.id = s.internal_inspections_id
		WHERE s.serial_num = $1 AND NOT s.is_deleted
		ORDER BY s.created_on, s.id`
	rows, err := r.q.Query(ctx, query, serialNum)
	if err != nil {
		return nil, fmt.Errorf("search serial: %w", err)
	}
	defer rows.Close()
	var list []*entity.SerialEncounter
	for rows.Next() {
		var e entity.SerialEncounter
		var status string
		if err := rows.Scan(
			&e.SerialID, &e.SerialNum, &e.LineID, &e.InspectionID, &e.QuoteNum, &e.TagNumber,
			&e.CustomerName, &status, &e.IsCanceled, &e.SerialCreatedOn, &e.ReceivedOn, &e.CompletedOn,
		); err != nil {
			return nil, fmt.Errorf("scan serial encounter: %w", err)
		}
		e.Status = entity.InspectionStatus(status)
		list = append(list, &e)
	}
	return list, rows.Err()
}

func scanSerial(row pgx.Row) (*entity.InspectionSerial, error) {
	var s entity.InspectionSerial
	err := row.Scan(
		&s.ID, &s.InspectionID, &s.LineID, &s.SerialNum, &s.IsDeleted,
		&s.CreatedOn, &s.CreatedBy, &s.UpdatedOn, &s.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
