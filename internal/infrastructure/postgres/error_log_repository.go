package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

var _ repository.ErrorLogRepository = (*ErrorLogRepo)(nil)

// ErrorLogRepo persiste entradas en error_log.
type ErrorLogRepo struct {
	q Querier
}

// NewErrorLogRepository construye el adaptador.
func NewErrorLogRepository(q Querier) *ErrorLogRepo {
	return &ErrorLogRepo{q: q}
}

// Create inserta la entrada y asigna su id.
func (r *ErrorLogRepo) Create(ctx context.Context, e *entity.ErrorLogEntry) error {
	query := `
		INSERT INTO error_log (severity, source, message, inner_message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, e.Severity, e.Source, e.Message, e.InnerMessage, e.CreatedAt).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	return nil
}
