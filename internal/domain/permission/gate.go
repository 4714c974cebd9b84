// Package permission decide si un conjunto de permisos habilita una capacidad.
package permission

import "github.com/jhoicas/Inspecciones-api/internal/domain/entity"

// Allows informa si el conjunto de permisos tiene la capacidad pedida sobre el módulo.
// Función pura: sin E/S ni efectos. Un conjunto nil nunca autoriza.
func Allows(set *entity.UserPermissionsSet, module string, capability entity.ModulePermission) bool {
	if set == nil || capability == 0 {
		return false
	}
	return set.For(module)&capability == capability
}
