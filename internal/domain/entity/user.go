package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleInspector = "inspector"
	RoleSales     = "sales"
)

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un empleado del ERP. EmployeeNumber es el identificador de actor
// que se guarda en los campos de auditoría (created_by, updated_by, ...).
type User struct {
	EmployeeNumber int64
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Role           string // admin, inspector, sales
	Status         string // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName devuelve "Nombre Apellido" con la primera letra de cada parte en mayúscula.
func (u *User) DisplayName() string {
	return strings.TrimSpace(FirstCharToUpper(u.FirstName) + " " + FirstCharToUpper(u.LastName))
}

// FirstCharToUpper pone en mayúscula la primera letra y deja el resto intacto.
func FirstCharToUpper(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
