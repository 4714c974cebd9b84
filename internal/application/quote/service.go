// Package quote convierte inspecciones de recepción en cotizaciones del módulo de órdenes.
package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

// TxRunner ejecuta la conversión en una transacción con órdenes y la inspección de origen.
type TxRunner interface {
	RunQuote(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		headerRepo repository.InspectionRepository,
		lineRepo repository.InspectionLineRepository,
	) error) error
}

// ConversionService crea una cotización por inspección. Repetir la conversión devuelve la
// orden existente.
type ConversionService struct {
	tx  TxRunner
	log zerolog.Logger
	now func() time.Time
}

// NewConversionService construye el servicio.
func NewConversionService(tx TxRunner, log zerolog.Logger) *ConversionService {
	return &ConversionService{tx: tx, log: log, now: time.Now}
}

// ConvertInspection devuelve la cotización de la inspección, creándola si no existe.
// Cada línea activa se copia como detalle con su cantidad y precio en cero; ventas fija los
// precios después. Si la inspección no tiene quote_num recibe el número de la orden.
func (s *ConversionService) ConvertInspection(ctx context.Context, inspectionID, actorID int64) (*dto.OrderDto, bool, error) {
	var (
		order   *entity.Order
		details []*entity.OrderDetail
		created bool
	)
	err := s.tx.RunQuote(ctx, func(
		orderRepo repository.OrderRepository,
		headerRepo repository.InspectionRepository,
		lineRepo repository.InspectionLineRepository,
	) error {
		h, err := headerRepo.GetForUpdate(ctx, inspectionID)
		if err != nil {
			return err
		}
		if h == nil {
			return fmt.Errorf("%w: inspección %d", domain.ErrNotFound, inspectionID)
		}
		if h.IsCanceled {
			return fmt.Errorf("%w: la inspección %d está cancelada", domain.ErrInvalidInput, inspectionID)
		}

		existing, err := orderRepo.GetBySourceInspection(ctx, inspectionID)
		if err != nil {
			return err
		}
		if existing != nil {
			order = existing
			details, err = orderRepo.ListDetails(ctx, existing.ID)
			return err
		}

		num, err := orderRepo.NextOrderNumber(ctx)
		if err != nil {
			return err
		}
		now := s.now()
		source := inspectionID
		order = &entity.Order{
			OrderNum:           num,
			CustID:             h.CustID,
			CustomerName:       h.CustomerName,
			SalesPersonNum:     h.SalesPersonNum,
			SourceInspectionID: &source,
			Status:             entity.OrderStatusQuote,
			Description:        h.Description,
			NetTotal:           decimal.Zero,
			CreatedOn:          now,
			CreatedBy:          actorID,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		lines, err := lineRepo.ListByInspection(ctx, inspectionID)
		if err != nil {
			return err
		}
		for i, l := range lines {
			qty := decimal.NewFromInt(int64(l.Qty))
			price := decimal.Zero
			d := &entity.OrderDetail{
				OrderID:     order.ID,
				LineNum:     i + 1,
				PartNum:     l.PartNum,
				Description: l.Description,
				Quantity:    qty,
				UnitPrice:   price,
				Subtotal:    qty.Mul(price),
			}
			if err := orderRepo.CreateDetail(ctx, d); err != nil {
				return err
			}
			order.NetTotal = order.NetTotal.Add(d.Subtotal)
			details = append(details, d)
		}

		if h.QuoteNum == "" {
			h.QuoteNum = num
			h.Touch(actorID, now)
			if err := headerRepo.Update(ctx, h); err != nil {
				return err
			}
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		s.log.Info().Int64("inspection_id", inspectionID).Str("order_num", order.OrderNum).Int("details", len(details)).Msg("cotización creada")
	}
	return toOrderDto(order, details), created, nil
}

func toOrderDto(o *entity.Order, details []*entity.OrderDetail) *dto.OrderDto {
	out := &dto.OrderDto{
		ID:                 o.ID,
		OrderNum:           o.OrderNum,
		Status:             o.Status,
		CustID:             o.CustID,
		CustomerName:       o.CustomerName,
		SalesPersonNum:     o.SalesPersonNum,
		SourceInspectionID: o.SourceInspectionID,
		Description:        o.Description,
		NetTotal:           o.NetTotal,
		Details:            make([]*dto.OrderDetailDto, 0, len(details)),
		CreatedOn:          o.CreatedOn,
		CreatedBy:          o.CreatedBy,
	}
	for _, d := range details {
		out.Details = append(out.Details, &dto.OrderDetailDto{
			LineNum:     d.LineNum,
			PartNum:     d.PartNum,
			Description: d.Description,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Subtotal:    d.Subtotal,
		})
	}
	return out
}
