package inspection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/inspection"
)

func openHeader() *entity.InspectionHeader {
	return &entity.InspectionHeader{ID: 5, Status: entity.InspectionStatusOpen}
}

func TestTransition_CompleteInspectionEstampaYNotifica(t *testing.T) {
	h := openHeader()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	effects, changed, err := inspection.Transition(h, entity.InspectionStatusCompleteInspection, 42, now)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []inspection.SideEffect{inspection.EffectNotifyCompletion}, effects)
	assert.True(t, h.IsComplete)
	require.NotNil(t, h.CompletedBy)
	assert.Equal(t, int64(42), *h.CompletedBy)
	require.NotNil(t, h.CompletedOn)
	assert.Equal(t, now, *h.CompletedOn)
	assert.Equal(t, entity.InspectionStatusCompleteInspection, h.Status)
}

func TestTransition_MismoEstadoEsNoOp(t *testing.T) {
	h := openHeader()
	h.Status = entity.InspectionStatusCompleteInspection

	effects, changed, err := inspection.Transition(h, entity.InspectionStatusCompleteInspection, 42, time.Now())

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, effects)
	assert.False(t, h.IsComplete, "un no-op no debe estampar campos de completitud")
	assert.Nil(t, h.CompletedBy)
}

func TestTransition_CompleteSalesSinNotificacion(t *testing.T) {
	h := openHeader()
	h.Status = entity.InspectionStatusCompleteInspection

	effects, changed, err := inspection.Transition(h, entity.InspectionStatusCompleteSales, 7, time.Now())

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, effects)
	assert.True(t, h.IsSalesComplete)
	require.NotNil(t, h.SalesCompletedBy)
	assert.Equal(t, int64(7), *h.SalesCompletedBy)
}

func TestTransition_DeletedNoEsDestinoDeEdicion(t *testing.T) {
	h := openHeader()

	_, changed, err := inspection.Transition(h, entity.InspectionStatusDeleted, 42, time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.False(t, changed)
	assert.Equal(t, entity.InspectionStatusOpen, h.Status)
}

func TestTransition_DesdeDeletedFalla(t *testing.T) {
	h := openHeader()
	inspection.SoftDelete(h, 42, time.Now())

	_, _, err := inspection.Transition(h, entity.InspectionStatusOpen, 42, time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.InspectionStatusDeleted, h.Status)
}

func TestTransition_RetrocesoPermitido(t *testing.T) {
	h := openHeader()
	h.Status = entity.InspectionStatusOnHold

	_, changed, err := inspection.Transition(h, entity.InspectionStatusInProgress, 42, time.Now())

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, entity.InspectionStatusInProgress, h.Status)
}

func TestSoftDelete(t *testing.T) {
	h := openHeader()
	now := time.Now()

	inspection.SoftDelete(h, 42, now)

	assert.True(t, h.IsCanceled)
	assert.Equal(t, entity.InspectionStatusDeleted, h.Status)
	require.NotNil(t, h.UpdatedBy)
	assert.Equal(t, int64(42), *h.UpdatedBy)
}
