package inspection

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/event"
	"github.com/jhoicas/Inspecciones-api/internal/domain/permission"
	"github.com/jhoicas/Inspecciones-api/pkg/validate"
)

// ConvertInspectionToQuote genera (o devuelve, si ya existe) la cotización de la inspección.
// Requiere permiso de creación en el módulo de órdenes.
func (s *Service) ConvertInspectionToQuote(ctx context.Context, cmd *dto.ConvertToQuoteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.OrderDto] {
	return run(ctx, s, "ConvertInspectionToQuote", func() (*dto.OrderDto, error) {
		if cmd == nil || perms == nil {
			return nil, fmt.Errorf("%w: comando o permisos ausentes", domain.ErrNullInput)
		}
		if err := validate.Struct(cmd); err != nil {
			return nil, err
		}
		if !permission.Allows(perms, entity.ModuleOrders, entity.PermissionCreate) {
			return nil, fmt.Errorf("%w: se requiere permiso de creación en órdenes", domain.ErrForbidden)
		}
		if s.converter == nil {
			return nil, fmt.Errorf("conversor de órdenes no configurado")
		}
		order, created, err := s.converter.ConvertInspection(ctx, cmd.InspectionID, cmd.CallingUserID)
		if err != nil {
			return nil, err
		}
		if created {
			e := event.New(event.TypeInspectionConverted, cmd.InspectionID, order.ID, cmd.CallingUserID)
			s.publish(ctx, e)
			s.log.Info().
				Int64("inspection_id", cmd.InspectionID).
				Str("order_num", order.OrderNum).
				Msg("inspección convertida en cotización")
		}
		return order, nil
	})
}
