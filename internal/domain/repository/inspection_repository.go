package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// InspectionUniqueCriteria valores de los campos identificadores a comparar al crear.
// Solo se comparan las claves presentes en Fields; ExcludeID permite ignorar la propia fila.
type InspectionUniqueCriteria struct {
	Fields    map[string]any
	ExcludeID int64
}

// Key representa los valores comparados en una cadena estable, independiente del orden del mapa.
// Dos altas con la misma clave compiten por el mismo candado.
func (c InspectionUniqueCriteria) Key() string {
	fields := make([]string, 0, len(c.Fields))
	for f := range c.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f, c.Fields[f]))
	}
	return "internal_inspections:" + strings.Join(parts, "\x1f")
}

// InspectionRepository define el puerto de persistencia para la cabecera de inspección.
type InspectionRepository interface {
	Create(ctx context.Context, h *entity.InspectionHeader) error
	GetByID(ctx context.Context, id int64) (*entity.InspectionHeader, error)
	// GetForUpdate lee la fila bloqueándola hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.InspectionHeader, error)
	Update(ctx context.Context, h *entity.InspectionHeader) error
	// LockUniqueKey toma un candado exclusivo sobre la clave hasta el fin de la transacción.
	LockUniqueKey(ctx context.Context, key string) error
	// ExistsDuplicate informa si hay una inspección no cancelada con los mismos valores.
	ExistsDuplicate(ctx context.Context, criteria InspectionUniqueCriteria) (bool, error)
}

// InspectionLineRepository define el puerto de persistencia para las líneas.
type InspectionLineRepository interface {
	Create(ctx context.Context, l *entity.InspectionLine) error
	GetByID(ctx context.Context, id int64) (*entity.InspectionLine, error)
	Update(ctx context.Context, l *entity.InspectionLine) error
	// ListByInspection devuelve las líneas no eliminadas, ordenadas por id.
	ListByInspection(ctx context.Context, inspectionID int64) ([]*entity.InspectionLine, error)
}

// InspectionSerialRepository define el puerto de persistencia para los seriales.
type InspectionSerialRepository interface {
	Create(ctx context.Context, s *entity.InspectionSerial) error
	GetByID(ctx context.Context, id int64) (*entity.InspectionSerial, error)
	Update(ctx context.Context, s *entity.InspectionSerial) error
	// ListByInspection devuelve los seriales no eliminados de la inspección, ordenados por id.
	ListByInspection(ctx context.Context, inspectionID int64) ([]*entity.InspectionSerial, error)
	// ListByLine devuelve los seriales no eliminados de la línea, ordenados por id.
	ListByLine(ctx context.Context, lineID int64) ([]*entity.InspectionSerial, error)
	// ExistsInInspection informa si el número ya existe (no eliminado) en la inspección.
	ExistsInInspection(ctx context.Context, inspectionID int64, serialNum string, excludeID int64) (bool, error)
	// SearchBySerialNumber cruza seriales no eliminados con el contexto de su inspección.
	SearchBySerialNumber(ctx context.Context, serialNum string) ([]*entity.SerialEncounter, error)
}
