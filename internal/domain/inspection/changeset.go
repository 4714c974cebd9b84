package inspection

import "strings"

// ChangeSet registra qué campos modificó realmente un comando de edición.
// Un campo solo entra al conjunto si venía en el comando y su valor difería del actual.
type ChangeSet struct {
	fields []string
}

// NewChangeSet crea un conjunto vacío.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

// Mark agrega un campo al conjunto (idempotente).
func (c *ChangeSet) Mark(field string) {
	if c.Has(field) {
		return
	}
	c.fields = append(c.fields, field)
}

// Has informa si el campo fue modificado.
func (c *ChangeSet) Has(field string) bool {
	for _, f := range c.fields {
		if f == field {
			return true
		}
	}
	return false
}

// Changed informa si hubo al menos un cambio.
func (c *ChangeSet) Changed() bool {
	return len(c.fields) > 0
}

// Fields devuelve los campos modificados en orden de aplicación.
func (c *ChangeSet) Fields() []string {
	out := make([]string, len(c.fields))
	copy(out, c.fields)
	return out
}

// Merge es la rutina única de combinación: si next viene (no nil) y difiere de *dst,
// sobrescribe *dst y marca el campo. Devuelve true si hubo cambio.
func Merge[V comparable](cs *ChangeSet, field string, dst *V, next *V) bool {
	if next == nil || *dst == *next {
		return false
	}
	*dst = *next
	cs.Mark(field)
	return true
}

// MergeNullable igual que Merge para destinos anulables (columnas NULL).
func MergeNullable[V comparable](cs *ChangeSet, field string, dst **V, next *V) bool {
	if next == nil {
		return false
	}
	if *dst != nil && **dst == *next {
		return false
	}
	v := *next
	*dst = &v
	cs.Mark(field)
	return true
}

// MergeText igual que Merge, pero un texto vacío (o solo espacios) se trata como ausente:
// los clientes envían "" en los campos que no tocaron.
func MergeText(cs *ChangeSet, field string, dst *string, next *string) bool {
	if next == nil || strings.TrimSpace(*next) == "" {
		return false
	}
	return Merge(cs, field, dst, next)
}
