package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

type recordedCall struct {
	sql  string
	args []any
}

// recordingQuerier guarda cada sentencia y responde con rowErr / execErr.
type recordingQuerier struct {
	calls   []recordedCall
	rowErr  error
	execErr error
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.calls = append(q.calls, recordedCall{sql: sql, args: args})
	if q.execErr != nil {
		return pgconn.CommandTag{}, q.execErr
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls = append(q.calls, recordedCall{sql: sql, args: args})
	return nil, errors.New("no soportado")
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.calls = append(q.calls, recordedCall{sql: sql, args: args})
	return errRow{err: q.rowErr}
}

type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) == 1 {
		if id, ok := dest[0].(*int64); ok {
			*id = 1
		}
	}
	return nil
}

func TestLockUniqueKey_TomaCandadoTransaccional(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewInspectionRepository(q)

	require.NoError(t, repo.LockUniqueKey(context.Background(), "internal_inspections:quote_num=Q1"))

	require.Len(t, q.calls, 1)
	assert.Contains(t, q.calls[0].sql, "pg_advisory_xact_lock(hashtext($1))")
	assert.Equal(t, []any{"internal_inspections:quote_num=Q1"}, q.calls[0].args)
}

func TestLockUniqueKey_PropagaError(t *testing.T) {
	repo := NewInspectionRepository(&recordingQuerier{execErr: errors.New("conexión cerrada")})

	err := repo.LockUniqueKey(context.Background(), "k")

	assert.ErrorContains(t, err, "conexión cerrada")
}

func TestUniqueCriteriaKey_NoDependeDelOrdenDelMapa(t *testing.T) {
	a := repository.InspectionUniqueCriteria{Fields: map[string]any{"quote_num": "Q1", "tag_number": "T-1", "department": ""}}
	b := repository.InspectionUniqueCriteria{Fields: map[string]any{"department": "", "tag_number": "T-1", "quote_num": "Q1"}}
	c := repository.InspectionUniqueCriteria{Fields: map[string]any{"quote_num": "Q2", "tag_number": "T-1", "department": ""}}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t,
		repository.InspectionUniqueCriteria{Fields: map[string]any{"cust_id": nil}}.Key(),
		repository.InspectionUniqueCriteria{Fields: map[string]any{"cust_id": int64(0)}}.Key())
}

func TestInspectionCreate_LlaveForaneaEsNotFound(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "internal_inspections_sales_person_num_fkey"}
	repo := NewInspectionRepository(&recordingQuerier{rowErr: fk})

	err := repo.Create(context.Background(), &entity.InspectionHeader{
		Description: "pump", SalesPersonNum: ptrInt64(9999), Status: entity.InspectionStatusOpen, CreatedOn: time.Now(),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "sales_person_num")
}

func TestInspectionUpdate_LlaveForaneaEsNotFound(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "internal_inspections_sales_person_num_fkey"}
	repo := NewInspectionRepository(&recordingQuerier{execErr: fk})

	err := repo.Update(context.Background(), &entity.InspectionHeader{ID: 3, SalesPersonNum: ptrInt64(9999)})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInspectionCreate_OtrosErroresSeEnvuelven(t *testing.T) {
	repo := NewInspectionRepository(&recordingQuerier{rowErr: errors.New("timeout")})

	err := repo.Create(context.Background(), &entity.InspectionHeader{Status: entity.InspectionStatusOpen})

	assert.ErrorContains(t, err, "insert inspection: timeout")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func ptrInt64(v int64) *int64 { return &v }
