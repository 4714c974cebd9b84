package inspection

import (
	"fmt"
	"time"

	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// SideEffect efecto externo que una transición dispara después del commit.
type SideEffect string

// Efectos conocidos.
const (
	// EffectNotifyCompletion avisa a ventas que la inspección terminó.
	EffectNotifyCompletion SideEffect = "notify_inspection_completion"
)

// transition describe qué muta y qué efectos dispara entrar a un estado.
type transition struct {
	mutate  func(h *entity.InspectionHeader, actorID int64, now time.Time)
	effects []SideEffect
}

// transitions tabla de estados destino. Los estados sin mutación solo cambian Status.
var transitions = map[entity.InspectionStatus]transition{
	entity.InspectionStatusOpen:       {},
	entity.InspectionStatusInProgress: {},
	entity.InspectionStatusOnHold:     {},
	entity.InspectionStatusCompleteInspection: {
		mutate: func(h *entity.InspectionHeader, actorID int64, now time.Time) {
			h.IsComplete = true
			h.CompletedOn = &now
			h.CompletedBy = &actorID
		},
		effects: []SideEffect{EffectNotifyCompletion},
	},
	entity.InspectionStatusCompleteSales: {
		mutate: func(h *entity.InspectionHeader, actorID int64, now time.Time) {
			h.IsSalesComplete = true
			h.SalesCompletedOn = &now
			h.SalesCompletedBy = &actorID
		},
	},
}

// Transition lleva la cabecera al estado target desde una edición.
//
// Reaplicar el estado actual no muta nada ni devuelve efectos. DELETED no es un destino
// válido aquí (solo se alcanza con SoftDelete) y una cabecera eliminada no cambia de estado.
// Devuelve los efectos a despachar después del commit y si hubo cambio.
func Transition(h *entity.InspectionHeader, target entity.InspectionStatus, actorID int64, now time.Time) ([]SideEffect, bool, error) {
	if h.Status == target {
		return nil, false, nil
	}
	if h.Status == entity.InspectionStatusDeleted {
		return nil, false, fmt.Errorf("%w: la inspección %d está eliminada", domain.ErrInvalidTransition, h.ID)
	}
	t, ok := transitions[target]
	if !ok {
		return nil, false, fmt.Errorf("%w: estado destino %q", domain.ErrInvalidTransition, target)
	}
	h.Status = target
	if t.mutate != nil {
		t.mutate(h, actorID, now)
	}
	effects := make([]SideEffect, len(t.effects))
	copy(effects, t.effects)
	return effects, true, nil
}

// SoftDelete cancela la inspección: is_canceled=true y estado DELETED (terminal).
func SoftDelete(h *entity.InspectionHeader, actorID int64, now time.Time) {
	h.IsCanceled = true
	h.Status = entity.InspectionStatusDeleted
	h.Touch(actorID, now)
}
