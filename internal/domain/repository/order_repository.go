package repository

import (
	"context"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de venta (cotizaciones).
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	CreateDetail(ctx context.Context, d *entity.OrderDetail) error
	GetBySourceInspection(ctx context.Context, inspectionID int64) (*entity.Order, error)
	ListDetails(ctx context.Context, orderID int64) ([]*entity.OrderDetail, error)
	// NextOrderNumber reserva el siguiente número de orden de la secuencia.
	NextOrderNumber(ctx context.Context) (string, error)
}
