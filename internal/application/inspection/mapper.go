package inspection

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// Mapper proyecta los registros de una inspección a DTOs de lectura y los enriquece
// con nombres de actores resueltos en una sola llamada por proyección.
type Mapper struct {
	names IdentityResolver
	log   zerolog.Logger
}

// NewMapper construye el mapper.
func NewMapper(names IdentityResolver, log zerolog.Logger) *Mapper {
	return &Mapper{names: names, log: log}
}

// Inspection proyecta la cabecera con sus líneas y seriales no eliminados.
func (m *Mapper) Inspection(ctx context.Context, h *entity.InspectionHeader, lines []*entity.InspectionLine, serials []*entity.InspectionSerial) *dto.InspectionDto {
	lines = activeLines(lines)
	serials = activeSerials(serials)

	ids := newIDSet()
	ids.add(h.CreatedBy)
	ids.addPtr(h.UpdatedBy)
	ids.addPtr(h.ReceivedBy)
	ids.addPtr(h.CompletedBy)
	ids.addPtr(h.SalesCompletedBy)
	ids.addPtr(h.SalesPersonNum)
	for _, l := range lines {
		ids.add(l.CreatedBy)
		ids.addPtr(l.UpdatedBy)
	}
	for _, s := range serials {
		ids.add(s.CreatedBy)
		ids.addPtr(s.UpdatedBy)
	}
	names := m.resolve(ctx, ids)

	serialDtos := make([]*dto.InspectionSerialDto, 0, len(serials))
	byLine := make(map[int64][]*dto.InspectionSerialDto)
	for _, s := range serials {
		sd := toSerialDto(s, names)
		serialDtos = append(serialDtos, sd)
		if s.LineID != nil {
			byLine[*s.LineID] = append(byLine[*s.LineID], sd)
		}
	}

	lineDtos := make([]*dto.InspectionLineDto, 0, len(lines))
	for _, l := range lines {
		lineDtos = append(lineDtos, toLineDto(l, byLine[l.ID], names))
	}

	out := &dto.InspectionDto{
		ID:                 h.ID,
		QuoteNum:           h.QuoteNum,
		Description:        h.Description,
		TagNumber:          h.TagNumber,
		Department:         h.Department,
		CustID:             h.CustID,
		CustomerName:       h.CustomerName,
		SalesPersonNum:     h.SalesPersonNum,
		SalesPersonName:    nameOf(names, h.SalesPersonNum),
		Qty:                h.Qty,
		IsPreInspection:    h.IsPreInspection,
		IsCanceled:         h.IsCanceled,
		IsComplete:         h.IsComplete,
		IsSalesComplete:    h.IsSalesComplete,
		InspectionStatus:   string(h.Status),
		CreatedOn:          h.CreatedOn,
		CreatedBy:          h.CreatedBy,
		CreatedByName:      names[h.CreatedBy],
		UpdatedOn:          h.UpdatedOn,
		UpdatedBy:          h.UpdatedBy,
		UpdatedByName:      nameOf(names, h.UpdatedBy),
		ReceivedOn:         h.ReceivedOn,
		ReceivedBy:         h.ReceivedBy,
		ReceivedByName:     nameOf(names, h.ReceivedBy),
		CompletedOn:        h.CompletedOn,
		CompletedBy:        h.CompletedBy,
		CompletedByName:    nameOf(names, h.CompletedBy),
		SalesCompletedOn:   h.SalesCompletedOn,
		SalesCompletedBy:   h.SalesCompletedBy,
		SalesCompletedName: nameOf(names, h.SalesCompletedBy),
		Lines:              lineDtos,
		Serials:            serialDtos,
	}
	return out
}

// Line proyecta una línea con los seriales no eliminados asociados a ella.
func (m *Mapper) Line(ctx context.Context, l *entity.InspectionLine, serials []*entity.InspectionSerial) *dto.InspectionLineDto {
	serials = activeSerials(serials)

	ids := newIDSet()
	ids.add(l.CreatedBy)
	ids.addPtr(l.UpdatedBy)
	for _, s := range serials {
		ids.add(s.CreatedBy)
		ids.addPtr(s.UpdatedBy)
	}
	names := m.resolve(ctx, ids)

	serialDtos := make([]*dto.InspectionSerialDto, 0, len(serials))
	for _, s := range serials {
		serialDtos = append(serialDtos, toSerialDto(s, names))
	}
	return toLineDto(l, serialDtos, names)
}

// Serial proyecta un serial.
func (m *Mapper) Serial(ctx context.Context, s *entity.InspectionSerial) *dto.InspectionSerialDto {
	ids := newIDSet()
	ids.add(s.CreatedBy)
	ids.addPtr(s.UpdatedBy)
	return toSerialDto(s, m.resolve(ctx, ids))
}

// resolve hace una única llamada al resolver. Si falla, los nombres quedan vacíos:
// el enriquecimiento nunca hace fallar una lectura.
func (m *Mapper) resolve(ctx context.Context, ids *idSet) map[int64]string {
	if ids.empty() || m.names == nil {
		return map[int64]string{}
	}
	names, err := m.names.ResolveDisplayNames(ctx, ids.list())
	if err != nil {
		m.log.Warn().Err(err).Int("ids", len(ids.list())).Msg("no se pudieron resolver nombres de actores")
		return map[int64]string{}
	}
	if names == nil {
		return map[int64]string{}
	}
	return names
}

func toLineDto(l *entity.InspectionLine, serials []*dto.InspectionSerialDto, names map[int64]string) *dto.InspectionLineDto {
	if serials == nil {
		serials = []*dto.InspectionSerialDto{}
	}
	out := &dto.InspectionLineDto{
		ID:            l.ID,
		InspectionID:  l.InspectionID,
		PartNum:       l.PartNum,
		Description:   l.Description,
		Qty:           l.Qty,
		Notes:         l.Notes,
		SerialNumbers: serials,
		CreatedOn:     l.CreatedOn,
		CreatedBy:     l.CreatedBy,
		CreatedByName: names[l.CreatedBy],
		UpdatedOn:     l.UpdatedOn,
		UpdatedBy:     l.UpdatedBy,
		UpdatedByName: nameOf(names, l.UpdatedBy),
	}
	if len(serials) > 0 {
		out.SerialNumber = serials[0].SerialNum
	}
	return out
}

func toSerialDto(s *entity.InspectionSerial, names map[int64]string) *dto.InspectionSerialDto {
	return &dto.InspectionSerialDto{
		ID:            s.ID,
		InspectionID:  s.InspectionID,
		LineID:        s.LineID,
		SerialNum:     s.SerialNum,
		CreatedOn:     s.CreatedOn,
		CreatedBy:     s.CreatedBy,
		CreatedByName: names[s.CreatedBy],
		UpdatedOn:     s.UpdatedOn,
		UpdatedBy:     s.UpdatedBy,
		UpdatedByName: nameOf(names, s.UpdatedBy),
	}
}

// activeLines filtra las eliminadas y ordena por id.
func activeLines(in []*entity.InspectionLine) []*entity.InspectionLine {
	out := make([]*entity.InspectionLine, 0, len(in))
	for _, l := range in {
		if l != nil && !l.IsDeleted {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// activeSerials filtra los eliminados y ordena por id: el primero define el serial de la línea.
func activeSerials(in []*entity.InspectionSerial) []*entity.InspectionSerial {
	out := make([]*entity.InspectionSerial, 0, len(in))
	for _, s := range in {
		if s != nil && !s.IsDeleted {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func nameOf(names map[int64]string, id *int64) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

// idSet conjunto de ids de actor sin repetidos ni ceros, en orden de aparición.
type idSet struct {
	seen  map[int64]struct{}
	order []int64
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[int64]struct{})}
}

func (s *idSet) add(id int64) {
	if id == 0 {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *idSet) addPtr(id *int64) {
	if id != nil {
		s.add(*id)
	}
}

func (s *idSet) empty() bool { return len(s.order) == 0 }

func (s *idSet) list() []int64 { return s.order }
