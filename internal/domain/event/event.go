// Package event define los eventos de ciclo de vida que el módulo publica para otros módulos.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tipos de evento publicados por el módulo de inspecciones.
const (
	TypeInspectionCreated       = "inspection.created"
	TypeInspectionEdited        = "inspection.edited"
	TypeInspectionDeleted       = "inspection.deleted"
	TypeInspectionStatusChanged = "inspection.status_changed"
	TypeLineCreated             = "inspection.line.created"
	TypeLineEdited              = "inspection.line.edited"
	TypeLineDeleted             = "inspection.line.deleted"
	TypeSerialCreated           = "inspection.serial.created"
	TypeSerialEdited            = "inspection.serial.edited"
	TypeSerialDeleted           = "inspection.serial.deleted"
	TypeInspectionConverted     = "inspection.converted_to_quote"
)

// Event hecho ya confirmado en la base de datos.
type Event struct {
	ID           string
	Type         string
	InspectionID int64
	EntityID     int64 // id de la cabecera, línea o serial afectado
	ActorID      int64
	Fields       []string // campos modificados (solo en ediciones)
	OccurredAt   time.Time
}

// New construye un evento con ID y fecha.
func New(eventType string, inspectionID, entityID, actorID int64) Event {
	return Event{
		ID:           uuid.New().String(),
		Type:         eventType,
		InspectionID: inspectionID,
		EntityID:     entityID,
		ActorID:      actorID,
		OccurredAt:   time.Now(),
	}
}

// Handler procesa eventos.
type Handler interface {
	Handle(ctx context.Context, e Event) error
}

// HandlerFunc adapta una función a Handler.
type HandlerFunc func(ctx context.Context, e Event) error

// Handle implementa Handler.
func (f HandlerFunc) Handle(ctx context.Context, e Event) error { return f(ctx, e) }

// Publisher publica eventos ya confirmados.
type Publisher interface {
	Publish(ctx context.Context, events ...Event)
}

// Subscriber registra handlers. Sin tipos, el handler recibe todos los eventos.
type Subscriber interface {
	Subscribe(h Handler, eventTypes ...string)
}
