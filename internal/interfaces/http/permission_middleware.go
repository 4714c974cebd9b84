package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// permissionLoader es el contrato mínimo que necesita el middleware para cargar permisos.
// Lo implementa *auth.AuthUseCase.
type permissionLoader interface {
	CallerPermissions(ctx context.Context, employeeNumber int64) (*entity.UserPermissionsSet, error)
}

// LoadPermissions resuelve los permisos por módulo del empleado del token y los deja en
// c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → no hay número de empleado en el contexto.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func LoadPermissions(loader permissionLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeNumber := GetEmployeeNumber(c)
		if employeeNumber <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "employee_number no encontrado en el token",
			})
		}
		perms, err := loader.CallerPermissions(c.UserContext(), employeeNumber)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudieron cargar los permisos, intente más tarde",
			})
		}
		c.Locals(LocalPermissions, perms)
		return c.Next()
	}
}

// GetPermissions devuelve los permisos cargados por LoadPermissions (nil si no hay).
func GetPermissions(c *fiber.Ctx) *entity.UserPermissionsSet {
	v, _ := c.Locals(LocalPermissions).(*entity.UserPermissionsSet)
	return v
}
