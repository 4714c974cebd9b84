package entity

// ModulePermission máscara de capacidades sobre un módulo del ERP.
type ModulePermission int

// Capacidades (bits) de un módulo.
const (
	PermissionRead   ModulePermission = 1 << iota // 1
	PermissionCreate                              // 2
	PermissionEdit                                // 4
	PermissionDelete                              // 8

	PermissionAll = PermissionRead | PermissionCreate | PermissionEdit | PermissionDelete
)

// Claves de módulo usadas en user_permissions.
const (
	ModuleInternalInspections = "internal_inspections"
	ModuleOrders              = "orders"
)

// UserPermissionsSet permisos resueltos de un usuario, por módulo.
type UserPermissionsSet struct {
	EmployeeNumber int64
	Modules        map[string]ModulePermission
}

// For devuelve la máscara del módulo (0 si no tiene ninguna).
func (p *UserPermissionsSet) For(module string) ModulePermission {
	if p == nil || p.Modules == nil {
		return 0
	}
	return p.Modules[module]
}
