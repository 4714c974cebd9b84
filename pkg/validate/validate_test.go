package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/pkg/validate"
)

func TestStruct_Valido(t *testing.T) {
	cmd := dto.InspectionCreateCommand{Description: "bomba", CallingUserID: 42}
	assert.NoError(t, validate.Struct(cmd))
}

func TestStruct_CamposConNombreJSON(t *testing.T) {
	cmd := dto.InspectionCreateCommand{}

	err := validate.Struct(cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "description: es obligatorio")
	assert.Contains(t, err.Error(), "calling_user_id: es obligatorio")
}

func TestStruct_EstadoFueraDeLista(t *testing.T) {
	status := "DELETED"
	cmd := dto.InspectionEditCommand{ID: 5, CallingUserID: 42, InspectionStatus: &status}

	err := validate.Struct(cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "inspection_status")
}

func TestStruct_PunteroNilSeOmite(t *testing.T) {
	cmd := dto.InspectionEditCommand{ID: 5, CallingUserID: 42}
	assert.NoError(t, validate.Struct(cmd))
}
