// Package metrics expone contadores Prometheus de las operaciones de inspecciones.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
)

// Nombres de las métricas.
const (
	MetricOperationsTotal    = "inspections_operations_total"
	MetricNotificationsTotal = "inspections_notifications_total"
)

var _ inspection.Metrics = (*Recorder)(nil)

// Recorder implementa inspection.Metrics sobre un registry propio.
type Recorder struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewRecorder crea el registry con los contadores del módulo y los colectores de proceso y Go.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOperationsTotal,
			Help: "Operaciones de inspecciones por resultado.",
		}, []string{"operation", "result_code"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNotificationsTotal,
			Help: "Notificaciones de inspección completada por plantilla y desenlace.",
		}, []string{"kind", "outcome"}),
	}
	r.registry.MustRegister(
		r.operations,
		r.notifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveOperation cuenta el resultado de una operación.
func (r *Recorder) ObserveOperation(op string, code dto.ResultCode) {
	r.operations.WithLabelValues(op, string(code)).Inc()
}

// ObserveNotification cuenta un envío y si falló.
func (r *Recorder) ObserveNotification(kind inspection.NotificationKind, err error) {
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	r.notifications.WithLabelValues(string(kind), outcome).Inc()
}

// Handler devuelve el handler HTTP de exposición (/metrics).
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
