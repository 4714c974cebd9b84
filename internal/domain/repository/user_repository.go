package repository

import (
	"context"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmployeeNumber(ctx context.Context, employeeNumber int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListByRole devuelve los usuarios activos del rol, ordenados por apellido.
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	// ResolveDisplayNames resuelve en una sola consulta los nombres de los ids pedidos.
	// Los ids sin usuario no aparecen en el mapa.
	ResolveDisplayNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

// PermissionRepository define el puerto de lectura/escritura de permisos por módulo.
type PermissionRepository interface {
	GetPermissions(ctx context.Context, employeeNumber int64) (*entity.UserPermissionsSet, error)
	Grant(ctx context.Context, employeeNumber int64, module string, mask entity.ModulePermission) error
}
