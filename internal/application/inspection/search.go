package inspection

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// SerialSearch busca por coincidencia exacta del número de serie en inspecciones activas.
// Los resultados van de la inspección más reciente a la más antigua.
func (s *Service) SerialSearch(ctx context.Context, text string) dto.Result[[]*dto.SerialSearchHitDto] {
	return run(ctx, s, "SerialSearch", func() ([]*dto.SerialSearchHitDto, error) {
		rows, err := s.encounters(ctx, text)
		if err != nil {
			return nil, err
		}
		// Inspección más reciente (id mayor) primero; dentro de ella, el serial más nuevo.
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].InspectionID != rows[j].InspectionID {
				return rows[i].InspectionID > rows[j].InspectionID
			}
			return rows[i].SerialID > rows[j].SerialID
		})
		out := make([]*dto.SerialSearchHitDto, 0, len(rows))
		for _, r := range rows {
			if r.IsCanceled {
				continue
			}
			out = append(out, &dto.SerialSearchHitDto{
				SerialID:     r.SerialID,
				SerialNum:    r.SerialNum,
				InspectionID: r.InspectionID,
				LineID:       r.LineID,
				QuoteNum:     r.QuoteNum,
				TagNumber:    r.TagNumber,
			})
		}
		return out, nil
	})
}

// GetEncountersBySerialNumber devuelve el historial del serial en todas las inspecciones,
// incluidas las canceladas, de la más antigua a la más reciente.
func (s *Service) GetEncountersBySerialNumber(ctx context.Context, serialNum string) dto.Result[[]*dto.SerialEncounterDto] {
	return run(ctx, s, "GetEncountersBySerialNumber", func() ([]*dto.SerialEncounterDto, error) {
		rows, err := s.encounters(ctx, serialNum)
		if err != nil {
			return nil, err
		}
		out := make([]*dto.SerialEncounterDto, 0, len(rows))
		for _, r := range rows {
			out = append(out, &dto.SerialEncounterDto{
				SerialID:         r.SerialID,
				SerialNum:        r.SerialNum,
				InspectionID:     r.InspectionID,
				LineID:           r.LineID,
				QuoteNum:         r.QuoteNum,
				TagNumber:        r.TagNumber,
				CustomerName:     r.CustomerName,
				InspectionStatus: string(r.Status),
				IsCanceled:       r.IsCanceled,
				RecordedOn:       r.SerialCreatedOn,
				ReceivedOn:       r.ReceivedOn,
				CompletedOn:      r.CompletedOn,
			})
		}
		return out, nil
	})
}

// encounters consulta el repositorio y ordena de más antiguo a más reciente.
func (s *Service) encounters(ctx context.Context, serialNum string) ([]*entity.SerialEncounter, error) {
	serialNum = strings.TrimSpace(serialNum)
	if serialNum == "" {
		return nil, fmt.Errorf("%w: serial_num: es obligatorio", domain.ErrInvalidInput)
	}
	rows, err := s.serialRepo.SearchBySerialNumber(ctx, serialNum)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].SerialCreatedOn.Equal(rows[j].SerialCreatedOn) {
			return rows[i].SerialCreatedOn.Before(rows[j].SerialCreatedOn)
		}
		return rows[i].SerialID < rows[j].SerialID
	})
	return rows, nil
}

// GetTypeData devuelve los datos de referencia de los formularios: estados seleccionables,
// departamentos configurados y vendedores activos.
func (s *Service) GetTypeData(ctx context.Context) dto.Result[*dto.TypeDataDto] {
	return run(ctx, s, "GetTypeData", func() (*dto.TypeDataDto, error) {
		statuses := make([]string, 0, len(entity.InspectionStatuses))
		for _, st := range entity.InspectionStatuses {
			if st == entity.InspectionStatusDeleted {
				continue
			}
			statuses = append(statuses, string(st))
		}
		departments := make([]string, len(s.cfg.Departments))
		copy(departments, s.cfg.Departments)

		users, err := s.userRepo.ListByRole(ctx, entity.RoleSales)
		if err != nil {
			return nil, err
		}
		sales := make([]*dto.SalesPersonDto, 0, len(users))
		for _, u := range users {
			sales = append(sales, &dto.SalesPersonDto{
				EmployeeNumber: u.EmployeeNumber,
				Name:           u.DisplayName(),
				Email:          u.Email,
			})
		}
		return &dto.TypeDataDto{Statuses: statuses, Departments: departments, SalesPersons: sales}, nil
	})
}
