// Package validate valida los comandos de entrada con las etiquetas `validate` de sus campos.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Inspecciones-api/internal/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// engine devuelve el validador compartido; los errores usan el nombre JSON del campo.
func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct valida s. Devuelve un error que envuelve domain.ErrInvalidInput con un mensaje
// por campo, o nil si es válido.
func Struct(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+": "+message(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "formato de email inválido"
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser al menos " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser como máximo " + fe.Param()
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	default:
		return "valor inválido"
	}
}
