package inspection

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	domaininsp "github.com/jhoicas/Inspecciones-api/internal/domain/inspection"
)

// dispatchEffects lanza los efectos de una transición ya confirmada. Cada efecto corre como
// tarea independiente con su propio timeout; un fallo se registra pero no deshace el cambio.
func (s *Service) dispatchEffects(h *entity.InspectionHeader, effects []domaininsp.SideEffect) {
	for _, eff := range effects {
		switch eff {
		case domaininsp.EffectNotifyCompletion:
			snapshot := h.Clone()
			s.tasks.Go(func() { s.notifyCompletion(snapshot) })
		default:
			s.log.Warn().Str("effect", string(eff)).Msg("efecto de transición sin manejador")
		}
	}
}

// notifyCompletion avisa que la inspección quedó completa: al vendedor asignado si tiene
// email, si no a la lista del equipo de ventas.
func (s *Service) notifyCompletion(h *entity.InspectionHeader) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.NotifyTimeout)
	defer cancel()

	logger := s.log.With().Int64("inspection_id", h.ID).Logger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("pánico al notificar inspección completada")
		}
	}()

	if s.notifier == nil {
		logger.Warn().Msg("sin despachador de notificaciones configurado")
		return
	}

	kind, recipients := s.completionRecipients(ctx, h)
	if len(recipients) == 0 {
		logger.Warn().Str("kind", string(kind)).Msg("inspección completada sin destinatarios para notificar")
		return
	}

	err := s.notifier.Send(ctx, kind, recipients, s.completionPayload(ctx, h))
	s.metrics.ObserveNotification(kind, err)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Strs("recipients", recipients).
			Msg("no se pudo enviar la notificación de inspección completada")
		return
	}
	logger.Info().Str("kind", string(kind)).Int("recipients", len(recipients)).Msg("notificación de inspección completada enviada")
}

func (s *Service) completionRecipients(ctx context.Context, h *entity.InspectionHeader) (NotificationKind, []string) {
	if h.SalesPersonNum != nil {
		u, err := s.userRepo.GetByEmployeeNumber(ctx, *h.SalesPersonNum)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Int64("sales_person_num", *h.SalesPersonNum).Msg("no se pudo leer el vendedor, se notifica al equipo")
		case u != nil && u.Email != "":
			return NotifySalesPerson, []string{u.Email}
		}
	}
	team := make([]string, len(s.cfg.SalesTeamRecipients))
	copy(team, s.cfg.SalesTeamRecipients)
	return NotifySalesTeam, team
}

func (s *Service) completionPayload(ctx context.Context, h *entity.InspectionHeader) map[string]string {
	ids := newIDSet()
	ids.addPtr(h.CompletedBy)
	ids.addPtr(h.SalesPersonNum)
	names := s.mapper.resolve(ctx, ids)

	payload := map[string]string{
		"inspection_id":     strconv.FormatInt(h.ID, 10),
		"quote_num":         h.QuoteNum,
		"tag_number":        h.TagNumber,
		"description":       h.Description,
		"department":        h.Department,
		"customer_name":     h.CustomerName,
		"completed_by_name": nameOf(names, h.CompletedBy),
		"sales_person_name": nameOf(names, h.SalesPersonNum),
	}
	if h.CompletedOn != nil {
		payload["completed_on"] = h.CompletedOn.Format(time.DateTime)
	}
	return payload
}
