package inspection

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/event"
	domaininsp "github.com/jhoicas/Inspecciones-api/internal/domain/inspection"
	"github.com/jhoicas/Inspecciones-api/internal/domain/permission"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
	"github.com/jhoicas/Inspecciones-api/pkg/validate"
)

// GetLineDto devuelve la línea con sus seriales no eliminados; serial_number toma el primero.
func (s *Service) GetLineDto(ctx context.Context, id int64, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto] {
	return run(ctx, s, "GetLineDto", func() (*dto.InspectionLineDto, error) {
		if id <= 0 {
			return nil, fmt.Errorf("%w: id de línea inválido", domain.ErrInvalidInput)
		}
		return s.loadLineDto(ctx, id)
	})
}

// CreateLine agrega una línea a una inspección no cancelada.
func (s *Service) CreateLine(ctx context.Context, cmd *dto.LineCreateCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto] {
	return run(ctx, s, "CreateLine", func() (*dto.InspectionLineDto, error) {
		if err := s.authorize(cmd == nil, perms, cmd, entity.PermissionCreate); err != nil {
			return nil, err
		}
		line := &entity.InspectionLine{
			InspectionID: cmd.InspectionID,
			PartNum:      strings.TrimSpace(cmd.PartNum),
			Description:  strings.TrimSpace(cmd.Description),
			Qty:          cmd.Qty,
			Notes:        strings.TrimSpace(cmd.Notes),
			CreatedOn:    s.now(),
			CreatedBy:    cmd.CallingUserID,
		}
		err := s.tx.RunInspection(ctx, func(
			headerRepo repository.InspectionRepository,
			lineRepo repository.InspectionLineRepository,
			_ repository.InspectionSerialRepository,
			_ repository.CustomerRepository,
		) error {
			if _, err := openParent(ctx, headerRepo, cmd.InspectionID); err != nil {
				return err
			}
			return lineRepo.Create(ctx, line)
		})
		if err != nil {
			return nil, err
		}
		s.publish(ctx, event.New(event.TypeLineCreated, line.InspectionID, line.ID, cmd.CallingUserID))
		return s.loadLineDto(ctx, line.ID)
	})
}

// EditLine aplica el conjunto de cambios a una línea no eliminada.
func (s *Service) EditLine(ctx context.Context, cmd *dto.LineEditCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto] {
	return run(ctx, s, "EditLine", func() (*dto.InspectionLineDto, error) {
		if err := s.authorize(cmd == nil, perms, cmd, entity.PermissionEdit); err != nil {
			return nil, err
		}
		var edited *entity.InspectionLine
		var fields []string
		err := s.tx.RunInspection(ctx, func(
			_ repository.InspectionRepository,
			lineRepo repository.InspectionLineRepository,
			_ repository.InspectionSerialRepository,
			_ repository.CustomerRepository,
		) error {
			l, err := activeLine(ctx, lineRepo, cmd.ID)
			if err != nil {
				return err
			}
			cs := domaininsp.NewChangeSet()
			domaininsp.MergeText(cs, "part_num", &l.PartNum, trimmed(cmd.PartNum))
			domaininsp.MergeText(cs, "description", &l.Description, trimmed(cmd.Description))
			domaininsp.MergeText(cs, "notes", &l.Notes, trimmed(cmd.Notes))
			domaininsp.Merge(cs, "qty", &l.Qty, cmd.Qty)
			if !cs.Changed() {
				return nil
			}
			l.Touch(cmd.CallingUserID, s.now())
			if err := lineRepo.Update(ctx, l); err != nil {
				return err
			}
			edited, fields = l, cs.Fields()
			return nil
		})
		if err != nil {
			return nil, err
		}
		if edited != nil {
			e := event.New(event.TypeLineEdited, edited.InspectionID, edited.ID, cmd.CallingUserID)
			e.Fields = fields
			s.publish(ctx, e)
		}
		return s.loadLineDto(ctx, cmd.ID)
	})
}

// DeleteLine marca la línea como eliminada. Sus seriales quedan asociados a la cabecera.
func (s *Service) DeleteLine(ctx context.Context, cmd *dto.LineDeleteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto] {
	return run(ctx, s, "DeleteLine", func() (*dto.InspectionLineDto, error) {
		if err := s.authorize(cmd == nil, perms, cmd, entity.PermissionDelete); err != nil {
			return nil, err
		}
		var deleted *entity.InspectionLine
		var serials []*entity.InspectionSerial
		err := s.tx.RunInspection(ctx, func(
			_ repository.InspectionRepository,
			lineRepo repository.InspectionLineRepository,
			serialRepo repository.InspectionSerialRepository,
			_ repository.CustomerRepository,
		) error {
			l, err := activeLine(ctx, lineRepo, cmd.ID)
			if err != nil {
				return err
			}
			l.IsDeleted = true
			l.Touch(cmd.CallingUserID, s.now())
			if err := lineRepo.Update(ctx, l); err != nil {
				return err
			}
			if serials, err = serialRepo.ListByLine(ctx, l.ID); err != nil {
				return err
			}
			deleted = l
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.publish(ctx, event.New(event.TypeLineDeleted, deleted.InspectionID, deleted.ID, cmd.CallingUserID))
		return s.mapper.Line(ctx, deleted, serials), nil
	})
}

// CreateSerial registra un serial en una inspección no cancelada, opcionalmente bajo una línea.
func (s *Service) CreateSerial(ctx context.Context, cmd *dto.SerialCreateCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionSerialDto] {
	return run(ctx, s, "CreateSerial", func() (*dto.InspectionSerialDto, error) {
		if err := s.authorize(cmd == nil, perms, cmd, entity.PermissionCreate); err != nil {
			return nil, err
		}
		serialNum := strings.TrimSpace(cmd.SerialNum)
		if serialNum == "" {
			return nil, fmt.Errorf("%w: serial_num: es obligatorio", domain.ErrInvalidInput)
		}
		serial := &entity.InspectionSerial{
			InspectionID: cmd.InspectionID,
			LineID:       cmd.LineID,
			SerialNum:    serialNum,
			CreatedOn:    s.now(),
			CreatedBy:    cmd.CallingUserID,
		}
		err := s.tx.RunInspection(ctx, func(
			headerRepo repository.InspectionRepository,
			lineRepo repository.InspectionLineRepository,
			serialRepo repository.InspectionSerialRepository,
			_ repository.CustomerRepository,
		) error {
			if _, err := openParent(ctx, headerRepo, cmd.InspectionID); err != nil {
				return err
			}
			if serial.LineID != nil {
				if err := checkLineInInspection(ctx, lineRepo, *serial.LineID, serial.InspectionID); err != nil {
					return err
				}
			}
			if err := checkSerialFree(ctx, serialRepo, serial.InspectionID, serialNum, 0); err != nil {
				return err
			}
			return serialRepo.Create(ctx, serial)
		})
		if err != nil {
			return nil, err
		}
		s.publish(ctx, event.New(event.TypeSerialCreated, serial.InspectionID, serial.ID, cmd.CallingUserID))
		return s.loadSerialDto(ctx, serial.ID)
	})
}

// EditSerial cambia el número o la línea de un serial no eliminado.
func (s *Service) EditSerial(ctx context.Context, cmd *dto.SerialEditCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionSerialDto] {
	return run(ctx, s, "EditSerial", func() (*dto.InspectionSerialDto, error) {
		if err := s.authorize(cmd == nil, perms, cmd, entity.PermissionEdit); err != nil {
			return nil, err
		}
		var edited *entity.InspectionSerial
		var fields []string
		err := s.tx.RunInspection(ctx, func(
			headerRepo repository.InspectionRepository,
			lineRepo repository.InspectionLineRepository,
			serialRepo repository.InspectionSerialRepository,
			_ repository.CustomerRepository,
		) error {
			sr, err := activeSerial(ctx, serialRepo, cmd.ID)
			if err != nil {
				return err
			}
			// bloquea la cabecera para que la verificación de unicidad no compita con otra alta
			if _, err := headerRepo.GetForUpdate(ctx, sr.InspectionID); err != nil {
				return err
			}
			cs := domaininsp.NewChangeSet()
			if domaininsp.MergeText(cs, "serial_num", &sr.SerialNum, trimmed(cmd.SerialNum)) {
				if err := checkSerialFree(ctx, serialRepo, sr.InspectionID, sr.SerialNum, sr.ID); err != nil {
					return err
				}
			}
			if domaininsp.MergeNullable(cs, "internal_inspections_lines_id", &sr.LineID, cmd.LineID) {
				if err := checkLineInInspection(ctx, lineRepo, *sr.LineID, sr.InspectionID); err != nil {
					return err
				}
			}
			if !cs.Changed() {
				return nil
			}
			sr.Touch(cmd.CallingUserID, s.now())
			if err := serialRepo.Update(ctx, sr); err != nil {
				return err
			}
			edited, fields = sr, cs.Fields()
			return nil
		})
		if err != nil {
			return nil, err
		}
		if edited != nil {
			e := event.New(event.TypeSerialEdited, edited.InspectionID, edited.ID, cmd.CallingUserID)
			e.Fields = fields
			s.publish(ctx, e)
		}
		return s.loadSerialDto(ctx, cmd.ID)
	})
}

// DeleteSerial marca el serial como eliminado.
func (s *Service) DeleteSerial(ctx context.Context, cmd *dto.SerialDeleteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionSerialDto] {
	return run(ctx, s, "DeleteSerial", func() (*dto.InspectionSerialDto, error) {
		if err := s.authorize(cmd == nil, perms, cmd, entity.PermissionDelete); err != nil {
			return nil, err
		}
		var deleted *entity.InspectionSerial
		err := s.tx.RunInspection(ctx, func(
			_ repository.InspectionRepository,
			_ repository.InspectionLineRepository,
			serialRepo repository.InspectionSerialRepository,
			_ repository.CustomerRepository,
		) error {
			sr, err := activeSerial(ctx, serialRepo, cmd.ID)
			if err != nil {
				return err
			}
			sr.IsDeleted = true
			sr.Touch(cmd.CallingUserID, s.now())
			if err := serialRepo.Update(ctx, sr); err != nil {
				return err
			}
			deleted = sr
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.publish(ctx, event.New(event.TypeSerialDeleted, deleted.InspectionID, deleted.ID, cmd.CallingUserID))
		return s.mapper.Serial(ctx, deleted), nil
	})
}

// authorize aplica las verificaciones comunes de las mutaciones de línea y serial:
// comando y permisos presentes, etiquetas válidas y capacidad sobre el módulo.
func (s *Service) authorize(nilCmd bool, perms *entity.UserPermissionsSet, cmd any, capability entity.ModulePermission) error {
	if nilCmd || perms == nil {
		return fmt.Errorf("%w: comando o permisos ausentes", domain.ErrNullInput)
	}
	if err := validate.Struct(cmd); err != nil {
		return err
	}
	if !permission.Allows(perms, entity.ModuleInternalInspections, capability) {
		return fmt.Errorf("%w: permiso insuficiente en inspecciones", domain.ErrForbidden)
	}
	return nil
}

func (s *Service) loadLineDto(ctx context.Context, id int64) (*dto.InspectionLineDto, error) {
	l, err := activeLine(ctx, s.lineRepo, id)
	if err != nil {
		return nil, err
	}
	serials, err := s.serialRepo.ListByLine(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.Line(ctx, l, serials), nil
}

func (s *Service) loadSerialDto(ctx context.Context, id int64) (*dto.InspectionSerialDto, error) {
	sr, err := activeSerial(ctx, s.serialRepo, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.Serial(ctx, sr), nil
}

// openParent bloquea la cabecera y exige que exista y no esté cancelada.
func openParent(ctx context.Context, repo repository.InspectionRepository, id int64) (*entity.InspectionHeader, error) {
	h, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: inspección %d", domain.ErrNotFound, id)
	}
	if h.IsCanceled {
		return nil, fmt.Errorf("%w: la inspección %d está cancelada", domain.ErrInvalidInput, id)
	}
	return h, nil
}

func activeLine(ctx context.Context, repo repository.InspectionLineRepository, id int64) (*entity.InspectionLine, error) {
	l, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil || l.IsDeleted {
		return nil, fmt.Errorf("%w: línea %d", domain.ErrNotFound, id)
	}
	return l, nil
}

func activeSerial(ctx context.Context, repo repository.InspectionSerialRepository, id int64) (*entity.InspectionSerial, error) {
	sr, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sr == nil || sr.IsDeleted {
		return nil, fmt.Errorf("%w: serial %d", domain.ErrNotFound, id)
	}
	return sr, nil
}

func checkLineInInspection(ctx context.Context, repo repository.InspectionLineRepository, lineID, inspectionID int64) error {
	l, err := repo.GetByID(ctx, lineID)
	if err != nil {
		return err
	}
	if l == nil || l.IsDeleted || l.InspectionID != inspectionID {
		return fmt.Errorf("%w: línea %d en la inspección %d", domain.ErrNotFound, lineID, inspectionID)
	}
	return nil
}

func checkSerialFree(ctx context.Context, repo repository.InspectionSerialRepository, inspectionID int64, serialNum string, excludeID int64) error {
	exists, err := repo.ExistsInInspection(ctx, inspectionID, serialNum, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: el serial %q ya está registrado en la inspección %d", domain.ErrDuplicate, serialNum, inspectionID)
	}
	return nil
}
