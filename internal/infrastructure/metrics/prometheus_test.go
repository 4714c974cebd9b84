package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
)

func TestRecorder_CuentaOperacionesYNotificaciones(t *testing.T) {
	r := NewRecorder()

	r.ObserveOperation("Create", dto.ResultSuccess)
	r.ObserveOperation("Create", dto.ResultSuccess)
	r.ObserveOperation("Create", dto.ResultAlreadyExists)
	r.ObserveNotification(inspection.NotifySalesTeam, nil)
	r.ObserveNotification(inspection.NotifySalesTeam, errors.New("smtp caído"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("Create", "Success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("Create", "AlreadyExists")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notifications.WithLabelValues(string(inspection.NotifySalesTeam), "failed")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveOperation("GetDto", dto.ResultNotFound)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `inspections_operations_total{operation="GetDto",result_code="NotFound"} 1`)
}
