package repository

import (
	"context"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// ErrorLogRepository persiste fallos inesperados para soporte.
type ErrorLogRepository interface {
	Create(ctx context.Context, e *entity.ErrorLogEntry) error
}
