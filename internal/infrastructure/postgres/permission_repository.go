package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo lee y escribe user_permissions (máscara por módulo).
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador.
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// GetPermissions devuelve las máscaras del usuario; sin filas el conjunto queda vacío.
func (r *PermissionRepo) GetPermissions(ctx context.Context, employeeNumber int64) (*entity.UserPermissionsSet, error) {
	rows, err := r.q.Query(ctx, `SELECT module, mask FROM user_permissions WHERE employee_number = $1`, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("get user permissions: %w", err)
	}
	defer rows.Close()
	set := &entity.UserPermissionsSet{EmployeeNumber: employeeNumber, Modules: map[string]entity.ModulePermission{}}
	for rows.Next() {
		var module string
		var mask int
		if err := rows.Scan(&module, &mask); err != nil {
			return nil, fmt.Errorf("scan user permission: %w", err)
		}
		set.Modules[module] = entity.ModulePermission(mask)
	}
	return set, rows.Err()
}

// Grant fija la máscara del módulo para el usuario.
func (r *PermissionRepo) Grant(ctx context.Context, employeeNumber int64, module string, mask entity.ModulePermission) error {
	query := `
		INSERT INTO user_permissions (employee_number, module, mask)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_number, module) DO UPDATE SET mask = EXCLUDED.mask`
	if _, err := r.q.Exec(ctx, query, employeeNumber, module, int(mask)); err != nil {
		return fmt.Errorf("grant permission: %w", err)
	}
	return nil
}
