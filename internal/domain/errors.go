package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrCustomerNotFound  = errors.New("cliente no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrNullInput         = errors.New("entrada nula")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)
