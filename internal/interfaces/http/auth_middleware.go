package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/pkg/jwt"
)

// Locals keys para el número de empleado, el rol y los permisos en Fiber.
const (
	LocalEmployeeNumber = "employee_number"
	LocalRole           = "role"
	LocalPermissions    = "permissions"
)

// AuthMiddleware valida el Bearer Token JWT y extrae número de empleado y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		employeeNumber, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmployeeNumber, employeeNumber)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetEmployeeNumber devuelve el número de empleado del contexto (después del middleware de auth).
func GetEmployeeNumber(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalEmployeeNumber).(int64)
	return v
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}
