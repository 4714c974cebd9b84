package inspection

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
)

// run es la frontera de cada operación: traduce errores de dominio a códigos de resultado,
// convierte pánicos en InternalError y registra el desenlace en métricas.
func run[T any](ctx context.Context, s *Service, op string, fn func() (T, error)) (res dto.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = failure[T](ctx, s, op, fmt.Errorf("panic: %v", r))
		}
		s.metrics.ObserveOperation(op, res.ResultCode)
	}()
	data, err := fn()
	if err != nil {
		return failure[T](ctx, s, op, err)
	}
	return dto.OK(data)
}

// failure arma el resultado fallido. Los errores inesperados se registran completos en el
// log y en el ErrorSink, y al llamador solo le llega un mensaje genérico.
func failure[T any](ctx context.Context, s *Service, op string, err error) dto.Result[T] {
	code := dto.CodeFor(err)
	if code != dto.ResultInternalError {
		s.log.Debug().Err(err).Str("op", op).Str("result_code", string(code)).Msg("operación rechazada")
		return dto.Fail[T](code, err.Error())
	}
	source := s.cfg.ModuleName + ":" + op
	s.log.Error().Err(err).Str("op", op).Msg("error inesperado en inspecciones")
	s.errSink.Record(context.WithoutCancel(ctx), source, "error inesperado en "+op, err)
	return dto.Fail[T](code, "error interno, el incidente quedó registrado")
}
