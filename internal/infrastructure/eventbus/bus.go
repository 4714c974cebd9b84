// Package eventbus implementa el bus de eventos en memoria del ciclo de vida de inspecciones.
package eventbus

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inspecciones-api/internal/domain/event"
)

var (
	_ event.Publisher  = (*InMemoryBus)(nil)
	_ event.Subscriber = (*InMemoryBus)(nil)
)

// InMemoryBus entrega cada evento de forma síncrona a los handlers suscritos a su tipo.
// Sin suscriptores Publish no hace nada. El fallo o pánico de un handler se registra y no
// impide que los demás reciban el evento.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]event.Handler
	log      zerolog.Logger
}

// NewInMemoryBus construye el bus.
func NewInMemoryBus(log zerolog.Logger) *InMemoryBus {
	return &InMemoryBus{handlers: make(map[string][]event.Handler), log: log}
}

// Subscribe registra h para los tipos indicados; sin tipos recibe todos los eventos.
func (b *InMemoryBus) Subscribe(h event.Handler, eventTypes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(eventTypes) == 0 {
		eventTypes = []string{wildcard}
	}
	for _, t := range eventTypes {
		b.handlers[t] = append(b.handlers[t], h)
	}
	b.log.Debug().Strs("event_types", eventTypes).Msg("handler suscrito")
}

// Publish entrega los eventos en orden.
func (b *InMemoryBus) Publish(ctx context.Context, events ...event.Event) {
	for _, e := range events {
		for _, h := range b.handlersFor(e.Type) {
			if err := b.dispatch(ctx, h, e); err != nil {
				b.log.Error().Err(err).
					Str("event_type", e.Type).
					Str("event_id", e.ID).
					Int64("inspection_id", e.InspectionID).
					Msg("handler falló al procesar el evento")
			}
		}
	}
}

const wildcard = "*"

func (b *InMemoryBus) handlersFor(eventType string) []event.Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	specific, all := b.handlers[eventType], b.handlers[wildcard]
	out := make([]event.Handler, 0, len(specific)+len(all))
	out = append(out, specific...)
	return append(out, all...)
}

func (b *InMemoryBus) dispatch(ctx context.Context, h event.Handler, e event.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Str("event_type", e.Type).Interface("panic", r).Msg("handler entró en pánico")
		}
	}()
	return h.Handle(ctx, e)
}

// AuditLogger handler que deja cada evento en el log estructurado.
type AuditLogger struct {
	log zerolog.Logger
}

// NewAuditLogger construye el handler.
func NewAuditLogger(log zerolog.Logger) *AuditLogger {
	return &AuditLogger{log: log}
}

// Handle registra el evento.
func (a *AuditLogger) Handle(ctx context.Context, e event.Event) error {
	a.log.Info().
		Str("event_type", e.Type).
		Int64("inspection_id", e.InspectionID).
		Int64("entity_id", e.EntityID).
		Int64("actor_id", e.ActorID).
		Strs("fields", e.Fields).
		Msg("evento de inspección")
	return nil
}
