// Package errorlog persiste los fallos inesperados de los servicios en la tabla error_log.
package errorlog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

var _ inspection.ErrorSink = (*Sink)(nil)

// Sink implementa inspection.ErrorSink. Si no puede escribir en la base solo deja el log.
type Sink struct {
	repo repository.ErrorLogRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewSink construye el sink.
func NewSink(repo repository.ErrorLogRepository, log zerolog.Logger) *Sink {
	return &Sink{repo: repo, log: log, now: time.Now}
}

// Record guarda source, message y la causa completa (incluida la cadena de errores envueltos).
func (s *Sink) Record(ctx context.Context, source, message string, cause error) {
	entry := &entity.ErrorLogEntry{
		Severity:     entity.ErrorSeverityService,
		Source:       source,
		Message:      message,
		InnerMessage: innerMessage(cause),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("source", source).AnErr("cause", cause).Msg("no se pudo registrar el error en error_log")
	}
}

// innerMessage devuelve el mensaje del error más interno, o el del propio error si no envuelve nada.
func innerMessage(err error) string {
	if err == nil {
		return ""
	}
	inner := err
	for {
		next := errors.Unwrap(inner)
		if next == nil {
			break
		}
		inner = next
	}
	if inner == err {
		return err.Error()
	}
	return err.Error() + " | " + inner.Error()
}
