package entity

import "time"

// InspectionStatus estado del ciclo de vida de una inspección interna.
type InspectionStatus string

// Estados válidos de la inspección.
const (
	InspectionStatusOpen               InspectionStatus = "OPEN"
	InspectionStatusInProgress         InspectionStatus = "IN_PROGRESS"
	InspectionStatusOnHold             InspectionStatus = "ON_HOLD"
	InspectionStatusCompleteInspection InspectionStatus = "COMPLETE_INSPECTION"
	InspectionStatusCompleteSales      InspectionStatus = "COMPLETE_SALES"
	InspectionStatusDeleted            InspectionStatus = "DELETED"
)

// InspectionStatuses lista ordenada de estados (para datos de referencia).
var InspectionStatuses = []InspectionStatus{
	InspectionStatusOpen,
	InspectionStatusInProgress,
	InspectionStatusOnHold,
	InspectionStatusCompleteInspection,
	InspectionStatusCompleteSales,
	InspectionStatusDeleted,
}

// Valid informa si s es uno de los estados conocidos.
func (s InspectionStatus) Valid() bool {
	for _, st := range InspectionStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// InspectionHeader cabecera de una inspección de recepción (raíz del agregado).
// Los actores (CreatedBy, UpdatedBy, ...) son números de empleado.
type InspectionHeader struct {
	ID               int64
	QuoteNum         string
	Description      string
	TagNumber        string
	Department       string
	CustID           *int64
	CustomerName     string // refleja el último cliente resuelto al cambiar CustID
	SalesPersonNum   *int64
	Qty              int
	IsPreInspection  bool
	IsCanceled       bool
	IsComplete       bool
	IsSalesComplete  bool
	Status           InspectionStatus
	CreatedOn        time.Time
	CreatedBy        int64
	UpdatedOn        *time.Time
	UpdatedBy        *int64
	ReceivedOn       *time.Time
	ReceivedBy       *int64
	CompletedOn      *time.Time
	CompletedBy      *int64
	SalesCompletedOn *time.Time
	SalesCompletedBy *int64
}

// Clone devuelve una copia profunda (los punteros no se comparten).
func (h *InspectionHeader) Clone() *InspectionHeader {
	if h == nil {
		return nil
	}
	c := *h
	c.CustID = cloneInt64(h.CustID)
	c.SalesPersonNum = cloneInt64(h.SalesPersonNum)
	c.UpdatedOn = cloneTime(h.UpdatedOn)
	c.UpdatedBy = cloneInt64(h.UpdatedBy)
	c.ReceivedOn = cloneTime(h.ReceivedOn)
	c.ReceivedBy = cloneInt64(h.ReceivedBy)
	c.CompletedOn = cloneTime(h.CompletedOn)
	c.CompletedBy = cloneInt64(h.CompletedBy)
	c.SalesCompletedOn = cloneTime(h.SalesCompletedOn)
	c.SalesCompletedBy = cloneInt64(h.SalesCompletedBy)
	return &c
}

// Touch estampa la auditoría de actualización.
func (h *InspectionHeader) Touch(actorID int64, now time.Time) {
	h.UpdatedBy = &actorID
	h.UpdatedOn = &now
}

// InspectionLine ítem inspeccionado (pieza o material) de una inspección.
type InspectionLine struct {
	ID           int64
	InspectionID int64
	PartNum      string
	Description  string
	Qty          int
	Notes        string
	IsDeleted    bool
	CreatedOn    time.Time
	CreatedBy    int64
	UpdatedOn    *time.Time
	UpdatedBy    *int64
}

// Touch estampa la auditoría de actualización.
func (l *InspectionLine) Touch(actorID int64, now time.Time) {
	l.UpdatedBy = &actorID
	l.UpdatedOn = &now
}

// InspectionSerial unidad serializada, asociada a la inspección y opcionalmente a una línea.
type InspectionSerial struct {
	ID           int64
	InspectionID int64
	LineID       *int64
	SerialNum    string
	IsDeleted    bool
	CreatedOn    time.Time
	CreatedBy    int64
	UpdatedOn    *time.Time
	UpdatedBy    *int64
}

// Touch estampa la auditoría de actualización.
func (s *InspectionSerial) Touch(actorID int64, now time.Time) {
	s.UpdatedBy = &actorID
	s.UpdatedOn = &now
}

// SerialEncounter fila de búsqueda: un serial junto al contexto de su inspección.
type SerialEncounter struct {
	SerialID        int64
	SerialNum       string
	LineID          *int64
	InspectionID    int64
	QuoteNum        string
	TagNumber       string
	CustomerName    string
	Status          InspectionStatus
	IsCanceled      bool
	SerialCreatedOn time.Time
	ReceivedOn      *time.Time
	CompletedOn     *time.Time
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
