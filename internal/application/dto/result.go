package dto

import (
	"errors"

	"github.com/jhoicas/Inspecciones-api/internal/domain"
)

// ResultCode resultado discriminado de una operación del servicio.
type ResultCode string

// Códigos de resultado.
const (
	ResultSuccess           ResultCode = "Success"
	ResultNotFound          ResultCode = "NotFound"
	ResultNullItemInput     ResultCode = "NullItemInput"
	ResultAlreadyExists     ResultCode = "AlreadyExists"
	ResultInvalidPermission ResultCode = "InvalidPermission"
	ResultValidationError   ResultCode = "ValidationError"
	ResultInternalError     ResultCode = "InternalError"
)

// Result sobre que devuelve toda operación: datos o código + mensaje de error.
type Result[T any] struct {
	Data         T          `json:"data"`
	ResultCode   ResultCode `json:"result_code"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// OK construye un resultado exitoso.
func OK[T any](data T) Result[T] {
	return Result[T]{Data: data, ResultCode: ResultSuccess}
}

// Fail construye un resultado fallido con código y mensaje.
func Fail[T any](code ResultCode, message string) Result[T] {
	return Result[T]{ResultCode: code, ErrorMessage: message}
}

// Succeeded informa si el resultado es Success.
func (r Result[T]) Succeeded() bool {
	return r.ResultCode == ResultSuccess
}

// CodeFor traduce un error de dominio a su código de resultado.
// Cualquier error no reconocido es InternalError.
func CodeFor(err error) ResultCode {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrNullInput):
		return ResultNullItemInput
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCustomerNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTransition):
		return ResultValidationError
	case errors.Is(err, domain.ErrDuplicate):
		return ResultAlreadyExists
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrUnauthorized):
		return ResultInvalidPermission
	default:
		return ResultInternalError
	}
}
