package inspection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/event"
)

func TestCreateLine(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})

	res := f.svc.CreateLine(context.Background(), &dto.LineCreateCommand{
		InspectionID: h.ID, PartNum: " P-100 ", Description: "impulsor", Qty: 2, CallingUserID: actor,
	}, allPerms())

	require.Equal(t, dto.ResultSuccess, res.ResultCode, res.ErrorMessage)
	assert.Equal(t, "P-100", res.Data.PartNum)
	assert.Equal(t, h.ID, res.Data.InspectionID)
	assert.Equal(t, "Ana Gómez", res.Data.CreatedByName)
	assert.Equal(t, []string{event.TypeLineCreated}, f.events.types())
}

func TestCreateLine_InspeccionCancelada(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba", IsCanceled: true, Status: entity.InspectionStatusDeleted})

	res := f.svc.CreateLine(context.Background(), &dto.LineCreateCommand{InspectionID: h.ID, CallingUserID: actor}, allPerms())

	assert.Equal(t, dto.ResultValidationError, res.ResultCode)
	assert.Empty(t, f.store.lines)
}

func TestCreateLine_InspeccionInexistente(t *testing.T) {
	f := newFixture(t)

	res := f.svc.CreateLine(context.Background(), &dto.LineCreateCommand{InspectionID: 404, CallingUserID: actor}, allPerms())

	assert.Equal(t, dto.ResultNotFound, res.ResultCode)
}

func TestCreateLine_EntradasNulasYPermiso(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	cmd := &dto.LineCreateCommand{InspectionID: h.ID, CallingUserID: actor}

	assert.Equal(t, dto.ResultNullItemInput, f.svc.CreateLine(context.Background(), nil, allPerms()).ResultCode)
	assert.Equal(t, dto.ResultNullItemInput, f.svc.CreateLine(context.Background(), cmd, nil).ResultCode)
	assert.Equal(t, dto.ResultInvalidPermission, f.svc.CreateLine(context.Background(), cmd, permsWith(entity.PermissionRead)).ResultCode)
}

func TestEditLine_ConjuntoDeCambios(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	l := f.store.addLine(&entity.InspectionLine{InspectionID: h.ID, PartNum: "P-1", Notes: "rayado", Qty: 1})

	res := f.svc.EditLine(context.Background(), &dto.LineEditCommand{
		ID: l.ID, CallingUserID: actor, Notes: ptr(""), Qty: ptr(4),
	}, allPerms())

	require.Equal(t, dto.ResultSuccess, res.ResultCode, res.ErrorMessage)
	assert.Equal(t, 4, res.Data.Qty)
	assert.Equal(t, "rayado", res.Data.Notes)
	assert.Equal(t, "P-1", res.Data.PartNum)
	require.NotNil(t, res.Data.UpdatedBy)
	assert.Equal(t, actor, *res.Data.UpdatedBy)
}

func TestDeleteLine_SerialesQuedanEnLaCabecera(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	l := f.store.addLine(&entity.InspectionLine{InspectionID: h.ID})
	f.store.addSerial(&entity.InspectionSerial{InspectionID: h.ID, LineID: &l.ID, SerialNum: "SN-1"})

	res := f.svc.DeleteLine(context.Background(), &dto.LineDeleteCommand{ID: l.ID, CallingUserID: actor}, allPerms())

	require.Equal(t, dto.ResultSuccess, res.ResultCode, res.ErrorMessage)
	assert.Equal(t, "SN-1", res.Data.SerialNumber)

	assert.Equal(t, dto.ResultNotFound, f.svc.GetLineDto(context.Background(), l.ID, allPerms()).ResultCode)
	header := f.svc.GetDto(context.Background(), h.ID, allPerms())
	require.Equal(t, dto.ResultSuccess, header.ResultCode)
	assert.Empty(t, header.Data.Lines)
	require.Len(t, header.Data.Serials, 1)
	assert.Equal(t, "SN-1", header.Data.Serials[0].SerialNum)

	again := f.svc.DeleteLine(context.Background(), &dto.LineDeleteCommand{ID: l.ID, CallingUserID: actor}, allPerms())
	assert.Equal(t, dto.ResultNotFound, again.ResultCode)
}

func TestDeleteLine_RequierePermisoDeBorrado(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	l := f.store.addLine(&entity.InspectionLine{InspectionID: h.ID})

	res := f.svc.DeleteLine(context.Background(), &dto.LineDeleteCommand{ID: l.ID, CallingUserID: actor}, permsWith(entity.PermissionEdit))

	assert.Equal(t, dto.ResultInvalidPermission, res.ResultCode)
	assert.False(t, f.store.lines[l.ID].IsDeleted)
}

func TestCreateSerial(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	l := f.store.addLine(&entity.InspectionLine{InspectionID: h.ID})

	res := f.svc.CreateSerial(context.Background(), &dto.SerialCreateCommand{
		InspectionID: h.ID, LineID: &l.ID, SerialNum: "  SN-100 ", CallingUserID: actor,
	}, allPerms())

	require.Equal(t, dto.ResultSuccess, res.ResultCode, res.ErrorMessage)
	assert.Equal(t, "SN-100", res.Data.SerialNum)
	require.NotNil(t, res.Data.LineID)
	assert.Equal(t, l.ID, *res.Data.LineID)

	line := f.svc.GetLineDto(context.Background(), l.ID, allPerms())
	assert.Equal(t, "SN-100", line.Data.SerialNumber)
}

func TestCreateSerial_NumeroDuplicadoEnLaInspeccion(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	other := f.store.addHeader(&entity.InspectionHeader{Description: "motor"})
	f.store.addSerial(&entity.InspectionSerial{InspectionID: h.ID, SerialNum: "SN-1"})
	f.store.addSerial(&entity.InspectionSerial{InspectionID: h.ID, SerialNum: "SN-2", IsDeleted: true})

	dup := f.svc.CreateSerial(context.Background(), &dto.SerialCreateCommand{InspectionID: h.ID, SerialNum: "SN-1", CallingUserID: actor}, allPerms())
	reused := f.svc.CreateSerial(context.Background(), &dto.SerialCreateCommand{InspectionID: h.ID, SerialNum: "SN-2", CallingUserID: actor}, allPerms())
	elsewhere := f.svc.CreateSerial(context.Background(), &dto.SerialCreateCommand{InspectionID: other.ID, SerialNum: "SN-1", CallingUserID: actor}, allPerms())

	assert.Equal(t, dto.ResultAlreadyExists, dup.ResultCode)
	assert.Equal(t, dto.ResultSuccess, reused.ResultCode, "un serial eliminado no bloquea el número")
	assert.Equal(t, dto.ResultSuccess, elsewhere.ResultCode)
}

func TestCreateSerial_LineaDeOtraInspeccion(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	other := f.store.addHeader(&entity.InspectionHeader{Description: "motor"})
	foreign := f.store.addLine(&entity.InspectionLine{InspectionID: other.ID})

	res := f.svc.CreateSerial(context.Background(), &dto.SerialCreateCommand{
		InspectionID: h.ID, LineID: &foreign.ID, SerialNum: "SN-1", CallingUserID: actor,
	}, allPerms())

	assert.Equal(t, dto.ResultNotFound, res.ResultCode)
	assert.Empty(t, f.store.serials)
}

func TestCreateSerial_NumeroEnBlanco(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})

	res := f.svc.CreateSerial(context.Background(), &dto.SerialCreateCommand{InspectionID: h.ID, SerialNum: "   ", CallingUserID: actor}, allPerms())

	assert.Equal(t, dto.ResultValidationError, res.ResultCode)
}

func TestEditSerial(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	l := f.store.addLine(&entity.InspectionLine{InspectionID: h.ID})
	s := f.store.addSerial(&entity.InspectionSerial{InspectionID: h.ID, SerialNum: "SN-1"})
	f.store.addSerial(&entity.InspectionSerial{InspectionID: h.ID, SerialNum: "SN-2"})

	moved := f.svc.EditSerial(context.Background(), &dto.SerialEditCommand{ID: s.ID, CallingUserID: actor, LineID: &l.ID, SerialNum: ptr("SN-1B")}, allPerms())
	clash := f.svc.EditSerial(context.Background(), &dto.SerialEditCommand{ID: s.ID, CallingUserID: actor, SerialNum: ptr("SN-2")}, allPerms())

	require.Equal(t, dto.ResultSuccess, moved.ResultCode, moved.ErrorMessage)
	assert.Equal(t, "SN-1B", moved.Data.SerialNum)
	assert.Equal(t, l.ID, *moved.Data.LineID)
	assert.Equal(t, dto.ResultAlreadyExists, clash.ResultCode)
	assert.Equal(t, "SN-1B", f.store.serials[s.ID].SerialNum)
}

func TestDeleteSerial(t *testing.T) {
	f := newFixture(t)
	h := f.store.addHeader(&entity.InspectionHeader{Description: "bomba"})
	l := f.store.addLine(&entity.InspectionLine{InspectionID: h.ID})
	first := f.store.addSerial(&entity.InspectionSerial{InspectionID: h.ID, LineID: &l.ID, SerialNum: "SN-1"})
	f.store.addSerial(&entity.InspectionSerial{InspectionID: h.ID, LineID: &l.ID, SerialNum: "SN-2"})

	res := f.svc.DeleteSerial(context.Background(), &dto.SerialDeleteCommand{ID: first.ID, CallingUserID: actor}, allPerms())

	require.Equal(t, dto.ResultSuccess, res.ResultCode, res.ErrorMessage)
	assert.True(t, f.store.serials[first.ID].IsDeleted)
	line := f.svc.GetLineDto(context.Background(), l.ID, allPerms())
	assert.Equal(t, "SN-2", line.Data.SerialNumber, "el serial derivado pasa al siguiente no eliminado")
	assert.Len(t, line.Data.SerialNumbers, 1)
}
