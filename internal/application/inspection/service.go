// Package inspection orquesta el ciclo de vida de las inspecciones internas de recepción:
// cabecera, líneas y seriales, con permisos por módulo, auditoría, ediciones parciales
// y efectos de transición de estado posteriores al commit.
package inspection

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/event"
	domaininsp "github.com/jhoicas/Inspecciones-api/internal/domain/inspection"
	"github.com/jhoicas/Inspecciones-api/internal/domain/permission"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
	"github.com/jhoicas/Inspecciones-api/pkg/validate"
)

// Campos identificadores admitidos para la regla de unicidad al crear.
const (
	FieldQuoteNum    = "quote_num"
	FieldTagNumber   = "tag_number"
	FieldDepartment  = "department"
	FieldDescription = "description"
	FieldCustID      = "cust_id"
)

// FieldSalesPersonNum vendedor asignado; debe existir en users.
const FieldSalesPersonNum = "sales_person_num"

// DefaultUniqueFields regla de unicidad por defecto.
var DefaultUniqueFields = []string{FieldQuoteNum, FieldTagNumber, FieldDepartment}

// Config parámetros del módulo.
type Config struct {
	ModuleName          string        // nombre usado en el registro de errores
	UniqueFields        []string      // campos comparados al detectar duplicados
	SalesTeamRecipients []string      // lista de distribución del equipo de ventas
	Departments         []string      // departamentos válidos; vacío = cualquiera
	NotifyTimeout       time.Duration // timeout propio de cada notificación
}

// Deps colaboradores del servicio. Metrics, ErrorSink, Events y Tasks son opcionales.
type Deps struct {
	Tx         TxRunner
	HeaderRepo repository.InspectionRepository
	LineRepo   repository.InspectionLineRepository
	SerialRepo repository.InspectionSerialRepository
	UserRepo   repository.UserRepository
	Names      IdentityResolver
	Notifier   NotificationDispatcher
	Converter  OrderConverter
	Reports    ReportGenerator
	Events     event.Publisher
	ErrorSink  ErrorSink
	Tasks      TaskRunner
	Metrics    Metrics
}

// Service servicio de ciclo de vida de inspecciones.
type Service struct {
	tx         TxRunner
	headerRepo repository.InspectionRepository
	lineRepo   repository.InspectionLineRepository
	serialRepo repository.InspectionSerialRepository
	userRepo   repository.UserRepository
	mapper     *Mapper
	notifier   NotificationDispatcher
	converter  OrderConverter
	reports    ReportGenerator
	events     event.Publisher
	errSink    ErrorSink
	tasks      TaskRunner
	metrics    Metrics
	log        zerolog.Logger
	cfg        Config
	now        func() time.Time
}

// NewService construye el servicio. Valida la configuración de unicidad.
func NewService(deps Deps, log zerolog.Logger, cfg Config) (*Service, error) {
	if deps.Tx == nil || deps.HeaderRepo == nil || deps.LineRepo == nil || deps.SerialRepo == nil || deps.UserRepo == nil {
		return nil, fmt.Errorf("inspection service: faltan repositorios o tx runner")
	}
	if len(cfg.UniqueFields) == 0 {
		cfg.UniqueFields = DefaultUniqueFields
	}
	for _, f := range cfg.UniqueFields {
		if !slices.Contains([]string{FieldQuoteNum, FieldTagNumber, FieldDepartment, FieldDescription, FieldCustID}, f) {
			return nil, fmt.Errorf("inspection service: campo de unicidad desconocido %q", f)
		}
	}
	if cfg.ModuleName == "" {
		cfg.ModuleName = "InternalInspectionsService"
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 30 * time.Second
	}
	s := &Service{
		tx:         deps.Tx,
		headerRepo: deps.HeaderRepo,
		lineRepo:   deps.LineRepo,
		serialRepo: deps.SerialRepo,
		userRepo:   deps.UserRepo,
		mapper:     NewMapper(deps.Names, log),
		notifier:   deps.Notifier,
		converter:  deps.Converter,
		reports:    deps.Reports,
		events:     deps.Events,
		errSink:    deps.ErrorSink,
		tasks:      deps.Tasks,
		metrics:    deps.Metrics,
		log:        log.With().Str("module", cfg.ModuleName).Logger(),
		cfg:        cfg,
		now:        time.Now,
	}
	if s.errSink == nil {
		s.errSink = noopErrorSink{}
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	if s.tasks == nil {
		s.tasks = NewAsyncRunner()
	}
	return s, nil
}

// GetDto devuelve la inspección enriquecida con sus líneas y seriales no eliminados.
func (s *Service) GetDto(ctx context.Context, id int64, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto] {
	return run(ctx, s, "GetDto", func() (*dto.InspectionDto, error) {
		if id <= 0 {
			return nil, fmt.Errorf("%w: id de inspección inválido", domain.ErrInvalidInput)
		}
		return s.loadDto(ctx, id)
	})
}

// Create crea una inspección en estado OPEN.
func (s *Service) Create(ctx context.Context, cmd *dto.InspectionCreateCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto] {
	return run(ctx, s, "Create", func() (*dto.InspectionDto, error) {
		if cmd == nil || perms == nil {
			return nil, fmt.Errorf("%w: comando o permisos ausentes", domain.ErrNullInput)
		}
		if err := validate.Struct(cmd); err != nil {
			return nil, err
		}
		if err := s.checkDepartment(cmd.Department); err != nil {
			return nil, err
		}
		if !permission.Allows(perms, entity.ModuleInternalInspections, entity.PermissionCreate) {
			return nil, fmt.Errorf("%w: se requiere permiso de creación en inspecciones", domain.ErrForbidden)
		}
		if cmd.SalesPersonNum != nil {
			if err := s.checkEmployee(ctx, FieldSalesPersonNum, *cmd.SalesPersonNum); err != nil {
				return nil, err
			}
		}

		now := s.now()
		h := &entity.InspectionHeader{
			QuoteNum:        strings.TrimSpace(cmd.QuoteNum),
			Description:     strings.TrimSpace(cmd.Description),
			TagNumber:       strings.TrimSpace(cmd.TagNumber),
			Department:      strings.TrimSpace(cmd.Department),
			CustID:          cmd.CustID,
			SalesPersonNum:  cmd.SalesPersonNum,
			Qty:             cmd.Qty,
			IsPreInspection: cmd.IsPreInspection,
			Status:          entity.InspectionStatusOpen,
			CreatedOn:       now,
			CreatedBy:       cmd.CallingUserID,
		}
		err := s.tx.RunInspection(ctx, func(
			headerRepo repository.InspectionRepository,
			_ repository.InspectionLineRepository,
			_ repository.InspectionSerialRepository,
			customerRepo repository.CustomerRepository,
		) error {
			if criteria, ok := s.uniqueCriteria(h); ok {
				// Altas concurrentes con los mismos valores se serializan aquí hasta el commit.
				if err := headerRepo.LockUniqueKey(ctx, criteria.Key()); err != nil {
					return err
				}
				dup, err := headerRepo.ExistsDuplicate(ctx, criteria)
				if err != nil {
					return err
				}
				if dup {
					return fmt.Errorf("%w: ya existe una inspección activa con los mismos %s",
						domain.ErrDuplicate, strings.Join(s.cfg.UniqueFields, ", "))
				}
			}
			if h.CustID != nil {
				name, err := resolveCustomerName(ctx, customerRepo, *h.CustID)
				if err != nil {
					return err
				}
				h.CustomerName = name
			}
			return headerRepo.Create(ctx, h)
		})
		if err != nil {
			return nil, err
		}

		s.publish(ctx, event.New(event.TypeInspectionCreated, h.ID, h.ID, cmd.CallingUserID))
		s.log.Info().Int64("inspection_id", h.ID).Int64("actor", cmd.CallingUserID).Msg("inspección creada")
		return s.loadDto(ctx, h.ID)
	})
}

// Edit aplica el conjunto de cambios del comando: solo los campos presentes y distintos
// del valor actual se sobrescriben. Un cambio de estado ejecuta la transición y sus efectos
// se despachan después del commit.
func (s *Service) Edit(ctx context.Context, cmd *dto.InspectionEditCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto] {
	return run(ctx, s, "Edit", func() (*dto.InspectionDto, error) {
		if cmd == nil || perms == nil {
			return nil, fmt.Errorf("%w: comando o permisos ausentes", domain.ErrNullInput)
		}
		if err := validate.Struct(cmd); err != nil {
			return nil, err
		}
		if cmd.Department != nil && strings.TrimSpace(*cmd.Department) != "" {
			if err := s.checkDepartment(*cmd.Department); err != nil {
				return nil, err
			}
		}
		if !permission.Allows(perms, entity.ModuleInternalInspections, entity.PermissionEdit) {
			return nil, fmt.Errorf("%w: se requiere permiso de edición en inspecciones", domain.ErrForbidden)
		}

		var (
			committed *entity.InspectionHeader
			changes   *domaininsp.ChangeSet
			effects   []domaininsp.SideEffect
			prev      entity.InspectionStatus
		)
		err := s.tx.RunInspection(ctx, func(
			headerRepo repository.InspectionRepository,
			_ repository.InspectionLineRepository,
			_ repository.InspectionSerialRepository,
			customerRepo repository.CustomerRepository,
		) error {
			h, err := headerRepo.GetForUpdate(ctx, cmd.ID)
			if err != nil {
				return err
			}
			if h == nil {
				return fmt.Errorf("%w: inspección %d", domain.ErrNotFound, cmd.ID)
			}
			prev = h.Status
			now := s.now()
			cs := domaininsp.NewChangeSet()

			domaininsp.MergeText(cs, FieldQuoteNum, &h.QuoteNum, trimmed(cmd.QuoteNum))
			domaininsp.MergeText(cs, FieldDescription, &h.Description, trimmed(cmd.Description))
			domaininsp.MergeText(cs, FieldTagNumber, &h.TagNumber, trimmed(cmd.TagNumber))
			domaininsp.MergeText(cs, FieldDepartment, &h.Department, trimmed(cmd.Department))
			if domaininsp.MergeNullable(cs, FieldCustID, &h.CustID, cmd.CustID) {
				name, err := resolveCustomerName(ctx, customerRepo, *h.CustID)
				if err != nil {
					return err
				}
				h.CustomerName = name
			}
			if domaininsp.MergeNullable(cs, FieldSalesPersonNum, &h.SalesPersonNum, cmd.SalesPersonNum) {
				if err := s.checkEmployee(ctx, FieldSalesPersonNum, *h.SalesPersonNum); err != nil {
					return err
				}
			}
			domaininsp.Merge(cs, "qty", &h.Qty, cmd.Qty)
			domaininsp.Merge(cs, "is_pre_inspection", &h.IsPreInspection, cmd.IsPreInspection)
			if domaininsp.MergeNullable(cs, "receieved_by", &h.ReceivedBy, cmd.ReceivedBy) {
				h.ReceivedOn = &now
			}
			if cmd.InspectionStatus != nil {
				fx, changed, err := domaininsp.Transition(h, entity.InspectionStatus(*cmd.InspectionStatus), cmd.CallingUserID, now)
				if err != nil {
					return err
				}
				if changed {
					cs.Mark("inspection_status")
					effects = fx
				}
			}

			changes = cs
			if !cs.Changed() {
				return nil
			}
			h.Touch(cmd.CallingUserID, now)
			if err := headerRepo.Update(ctx, h); err != nil {
				return err
			}
			committed = h.Clone()
			return nil
		})
		if err != nil {
			return nil, err
		}

		if committed != nil {
			events := []event.Event{s.editedEvent(committed, cmd.CallingUserID, changes.Fields())}
			if committed.Status != prev {
				events = append(events, event.New(event.TypeInspectionStatusChanged, committed.ID, committed.ID, cmd.CallingUserID))
			}
			s.publish(ctx, events...)
			s.dispatchEffects(committed, effects)
			s.log.Info().
				Int64("inspection_id", committed.ID).
				Int64("actor", cmd.CallingUserID).
				Strs("fields", changes.Fields()).
				Msg("inspección editada")
		}
		return s.loadDto(ctx, cmd.ID)
	})
}

// Delete cancela la inspección (is_canceled=true, estado DELETED). Nunca borra la fila.
func (s *Service) Delete(ctx context.Context, cmd *dto.InspectionDeleteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto] {
	return run(ctx, s, "Delete", func() (*dto.InspectionDto, error) {
		if cmd == nil || perms == nil {
			return nil, fmt.Errorf("%w: comando o permisos ausentes", domain.ErrNullInput)
		}
		if err := validate.Struct(cmd); err != nil {
			return nil, err
		}
		user, err := s.userRepo.GetByEmployeeNumber(ctx, cmd.CallingUserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: empleado %d", domain.ErrUserNotFound, cmd.CallingUserID)
		}
		if !permission.Allows(perms, entity.ModuleInternalInspections, entity.PermissionDelete) {
			return nil, fmt.Errorf("%w: se requiere permiso de borrado en inspecciones", domain.ErrForbidden)
		}

		deleted := false
		err = s.tx.RunInspection(ctx, func(
			headerRepo repository.InspectionRepository,
			_ repository.InspectionLineRepository,
			_ repository.InspectionSerialRepository,
			_ repository.CustomerRepository,
		) error {
			h, err := headerRepo.GetForUpdate(ctx, cmd.ID)
			if err != nil {
				return err
			}
			if h == nil {
				return fmt.Errorf("%w: inspección %d", domain.ErrNotFound, cmd.ID)
			}
			if h.IsCanceled && h.Status == entity.InspectionStatusDeleted {
				return nil
			}
			domaininsp.SoftDelete(h, cmd.CallingUserID, s.now())
			deleted = true
			return headerRepo.Update(ctx, h)
		})
		if err != nil {
			return nil, err
		}

		if deleted {
			s.publish(ctx, event.New(event.TypeInspectionDeleted, cmd.ID, cmd.ID, cmd.CallingUserID))
			s.log.Info().Int64("inspection_id", cmd.ID).Int64("actor", cmd.CallingUserID).Msg("inspección cancelada")
		}
		return s.loadDto(ctx, cmd.ID)
	})
}

// loadDto lee el estado confirmado de la inspección y lo proyecta enriquecido.
func (s *Service) loadDto(ctx context.Context, id int64) (*dto.InspectionDto, error) {
	h, err := s.headerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: inspección %d", domain.ErrNotFound, id)
	}
	lines, err := s.lineRepo.ListByInspection(ctx, id)
	if err != nil {
		return nil, err
	}
	serials, err := s.serialRepo.ListByInspection(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.Inspection(ctx, h, lines, serials), nil
}

// uniqueCriteria arma la comparación de unicidad. Si todos los campos configurados están
// vacíos no hay nada que identifique a la inspección y no se compara.
func (s *Service) uniqueCriteria(h *entity.InspectionHeader) (repository.InspectionUniqueCriteria, bool) {
	fields := make(map[string]any, len(s.cfg.UniqueFields))
	identified := false
	for _, f := range s.cfg.UniqueFields {
		switch f {
		case FieldQuoteNum:
			fields[f] = h.QuoteNum
			identified = identified || h.QuoteNum != ""
		case FieldTagNumber:
			fields[f] = h.TagNumber
			identified = identified || h.TagNumber != ""
		case FieldDepartment:
			fields[f] = h.Department
			identified = identified || h.Department != ""
		case FieldDescription:
			fields[f] = h.Description
			identified = identified || h.Description != ""
		case FieldCustID:
			if h.CustID != nil {
				fields[f] = *h.CustID
				identified = true
			} else {
				fields[f] = nil
			}
		}
	}
	return repository.InspectionUniqueCriteria{Fields: fields, ExcludeID: h.ID}, identified
}

// checkEmployee exige que el número de empleado exista en users.
func (s *Service) checkEmployee(ctx context.Context, field string, employeeNumber int64) error {
	u, err := s.userRepo.GetByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("%w: %s %d", domain.ErrUserNotFound, field, employeeNumber)
	}
	return nil
}

func (s *Service) checkDepartment(department string) error {
	department = strings.TrimSpace(department)
	if department == "" || len(s.cfg.Departments) == 0 {
		return nil
	}
	for _, d := range s.cfg.Departments {
		if strings.EqualFold(d, department) {
			return nil
		}
	}
	return fmt.Errorf("%w: department %q no está configurado", domain.ErrInvalidInput, department)
}

func (s *Service) editedEvent(h *entity.InspectionHeader, actorID int64, fields []string) event.Event {
	e := event.New(event.TypeInspectionEdited, h.ID, h.ID, actorID)
	e.Fields = fields
	return e
}

func (s *Service) publish(ctx context.Context, events ...event.Event) {
	if s.events == nil || len(events) == 0 {
		return
	}
	s.events.Publish(ctx, events...)
}

// resolveCustomerName devuelve el nombre del cliente en mayúsculas.
// Un cliente inexistente es un error explícito.
func resolveCustomerName(ctx context.Context, repo repository.CustomerRepository, custID int64) (string, error) {
	c, err := repo.GetByID(ctx, custID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", fmt.Errorf("%w: cust_id %d", domain.ErrCustomerNotFound, custID)
	}
	return strings.ToUpper(strings.TrimSpace(c.CustomerName)), nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
