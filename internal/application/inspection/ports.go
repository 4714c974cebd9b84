package inspection

import (
	"context"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repositorios de inspección.
// Si fn retorna error, la transacción se revierte completa.
type TxRunner interface {
	RunInspection(ctx context.Context, fn func(
		headerRepo repository.InspectionRepository,
		lineRepo repository.InspectionLineRepository,
		serialRepo repository.InspectionSerialRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// IdentityResolver resuelve en lote números de empleado a nombre para mostrar.
// Los ids sin coincidencia no aparecen en el mapa.
type IdentityResolver interface {
	ResolveDisplayNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

// NotificationKind plantilla de notificación a enviar.
type NotificationKind string

// Notificaciones del módulo.
const (
	// NotifySalesPerson aviso de inspección completada al vendedor asignado.
	NotifySalesPerson NotificationKind = "inspection_completed_sales_person"
	// NotifySalesTeam aviso de inspección completada a la lista del equipo de ventas.
	NotifySalesTeam NotificationKind = "inspection_completed_sales_team"
)

// NotificationDispatcher envía una notificación con plantilla a uno o varios destinatarios.
type NotificationDispatcher interface {
	Send(ctx context.Context, kind NotificationKind, recipients []string, payload map[string]string) error
}

// OrderConverter convierte una inspección en cotización (módulo de órdenes).
// created es false cuando la inspección ya tenía una orden y se devuelve la existente.
type OrderConverter interface {
	ConvertInspection(ctx context.Context, inspectionID, actorID int64) (order *dto.OrderDto, created bool, err error)
}

// ReportGenerator genera el reporte PDF de recepción de una inspección.
type ReportGenerator interface {
	InspectionReport(ctx context.Context, in *dto.InspectionDto) ([]byte, error)
}

// ErrorSink persiste fallos inesperados (módulo, mensaje y causa).
type ErrorSink interface {
	Record(ctx context.Context, source, message string, cause error)
}

// Metrics registra resultados de operaciones y notificaciones.
type Metrics interface {
	ObserveOperation(op string, code dto.ResultCode)
	ObserveNotification(kind NotificationKind, err error)
}

// TaskRunner ejecuta efectos posteriores al commit fuera del ciclo de la petición.
type TaskRunner interface {
	Go(fn func())
}

type noopMetrics struct{}

func (noopMetrics) ObserveOperation(string, dto.ResultCode) {}
func (noopMetrics) ObserveNotification(NotificationKind, error) {}

type noopErrorSink struct{}

func (noopErrorSink) Record(context.Context, string, string, error) {}
