package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
)

// inspectionService contrato que consume el handler. Lo implementa *inspection.Service.
type inspectionService interface {
	GetDto(ctx context.Context, id int64, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto]
	Create(ctx context.Context, cmd *dto.InspectionCreateCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto]
	Edit(ctx context.Context, cmd *dto.InspectionEditCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto]
	Delete(ctx context.Context, cmd *dto.InspectionDeleteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionDto]
	GetLineDto(ctx context.Context, id int64, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto]
	CreateLine(ctx context.Context, cmd *dto.LineCreateCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto]
	EditLine(ctx context.Context, cmd *dto.LineEditCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto]
	DeleteLine(ctx context.Context, cmd *dto.LineDeleteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionLineDto]
	CreateSerial(ctx context.Context, cmd *dto.SerialCreateCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionSerialDto]
	EditSerial(ctx context.Context, cmd *dto.SerialEditCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionSerialDto]
	DeleteSerial(ctx context.Context, cmd *dto.SerialDeleteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.InspectionSerialDto]
	SerialSearch(ctx context.Context, text string) dto.Result[[]*dto.SerialSearchHitDto]
	GetEncountersBySerialNumber(ctx context.Context, serialNum string) dto.Result[[]*dto.SerialEncounterDto]
	ConvertInspectionToQuote(ctx context.Context, cmd *dto.ConvertToQuoteCommand, perms *entity.UserPermissionsSet) dto.Result[*dto.OrderDto]
	GetTypeData(ctx context.Context) dto.Result[*dto.TypeDataDto]
	DownloadReport(ctx context.Context, id int64, perms *entity.UserPermissionsSet) dto.Result[*dto.FileDto]
}

// InspectionHandler expone el ciclo de vida de inspecciones internas (protegido).
type InspectionHandler struct {
	svc inspectionService
}

// NewInspectionHandler construye el handler.
func NewInspectionHandler(svc inspectionService) *InspectionHandler {
	return &InspectionHandler{svc: svc}
}

// statusFor traduce el código de resultado a estado HTTP.
func statusFor(code dto.ResultCode, okStatus int) int {
	switch code {
	case dto.ResultSuccess:
		return okStatus
	case dto.ResultNotFound:
		return fiber.StatusNotFound
	case dto.ResultNullItemInput, dto.ResultValidationError:
		return fiber.StatusBadRequest
	case dto.ResultAlreadyExists:
		return fiber.StatusConflict
	case dto.ResultInvalidPermission:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respond escribe siempre el sobre Result con el estado HTTP correspondiente.
func respond[T any](c *fiber.Ctx, res dto.Result[T], okStatus int) error {
	return c.Status(statusFor(res.ResultCode, okStatus)).JSON(res)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[any](dto.ResultValidationError, msg))
}

func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Get godoc
// @Summary      Obtener inspección
// @Tags         inspections
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la inspección"
// @Success      200  {object}  dto.Result[dto.InspectionDto]
// @Failure      404  {object}  dto.Result[dto.InspectionDto]
// @Router       /api/inspections/{id} [get]
func (h *InspectionHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	return respond(c, h.svc.GetDto(c.UserContext(), id, GetPermissions(c)), fiber.StatusOK)
}

// Create godoc
// @Summary      Crear inspección
// @Tags         inspections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InspectionCreateCommand  true  "Datos de la inspección"
// @Success      201   {object}  dto.Result[dto.InspectionDto]
// @Failure      400   {object}  dto.Result[dto.InspectionDto]
// @Failure      409   {object}  dto.Result[dto.InspectionDto]
// @Router       /api/inspections [post]
func (h *InspectionHandler) Create(c *fiber.Ctx) error {
	var in dto.InspectionCreateCommand
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.CallingUserID = GetEmployeeNumber(c)
	return respond(c, h.svc.Create(c.UserContext(), &in, GetPermissions(c)), fiber.StatusCreated)
}

// Edit godoc
// @Summary      Editar inspección (solo los campos enviados)
// @Tags         inspections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la inspección"
// @Param        body  body  dto.InspectionEditCommand  true  "Campos a cambiar"
// @Success      200   {object}  dto.Result[dto.InspectionDto]
// @Failure      400   {object}  dto.Result[dto.InspectionDto]
// @Failure      403   {object}  dto.Result[dto.InspectionDto]
// @Router       /api/inspections/{id} [put]
func (h *InspectionHandler) Edit(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	var in dto.InspectionEditCommand
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	in.CallingUserID = GetEmployeeNumber(c)
	return respond(c, h.svc.Edit(c.UserContext(), &in, GetPermissions(c)), fiber.StatusOK)
}

// Delete godoc
// @Summary      Cancelar inspección
// @Tags         inspections
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la inspección"
// @Success      200  {object}  dto.Result[dto.InspectionDto]
// @Failure      403  {object}  dto.Result[dto.InspectionDto]
// @Router       /api/inspections/{id} [delete]
func (h *InspectionHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	cmd := &dto.InspectionDeleteCommand{ID: id, CallingUserID: GetEmployeeNumber(c)}
	return respond(c, h.svc.Delete(c.UserContext(), cmd, GetPermissions(c)), fiber.StatusOK)
}

// ConvertToQuote godoc
// @Summary      Convertir inspección en cotización
// @Tags         inspections
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la inspección"
// @Success      200  {object}  dto.Result[dto.OrderDto]
// @Failure      403  {object}  dto.Result[dto.OrderDto]
// @Router       /api/inspections/{id}/convert-to-quote [post]
func (h *InspectionHandler) ConvertToQuote(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	cmd := &dto.ConvertToQuoteCommand{InspectionID: id, CallingUserID: GetEmployeeNumber(c)}
	return respond(c, h.svc.ConvertInspectionToQuote(c.UserContext(), cmd, GetPermissions(c)), fiber.StatusOK)
}

// Report godoc
// @Summary      Descargar reporte PDF de la inspección
// @Tags         inspections
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la inspección"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Result[dto.FileDto]
// @Router       /api/inspections/{id}/report [get]
func (h *InspectionHandler) Report(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	res := h.svc.DownloadReport(c.UserContext(), id, GetPermissions(c))
	if !res.Succeeded() || res.Data == nil {
		return respond(c, res, fiber.StatusOK)
	}
	c.Set(fiber.HeaderContentType, res.Data.ContentType)
	c.Attachment(res.Data.FileName)
	return c.Send(res.Data.Content)
}

// TypeData godoc
// @Summary      Datos de referencia (estados, departamentos, vendedores)
// @Tags         inspections
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Result[dto.TypeDataDto]
// @Router       /api/inspections/type-data [get]
func (h *InspectionHandler) TypeData(c *fiber.Ctx) error {
	return respond(c, h.svc.GetTypeData(c.UserContext()), fiber.StatusOK)
}

// SearchSerials godoc
// @Summary      Buscar seriales por texto
// @Tags         serials
// @Security     Bearer
// @Produce      json
// @Param        serial_num  query  string  true  "Texto a buscar"
// @Success      200  {object}  dto.Result[[]dto.SerialSearchHitDto]
// @Failure      400  {object}  dto.Result[[]dto.SerialSearchHitDto]
// @Router       /api/inspections/serials/search [get]
func (h *InspectionHandler) SearchSerials(c *fiber.Ctx) error {
	return respond(c, h.svc.SerialSearch(c.UserContext(), c.Query("serial_num")), fiber.StatusOK)
}

// Encounters godoc
// @Summary      Historial de inspecciones de un serial
// @Tags         serials
// @Security     Bearer
// @Produce      json
// @Param        serial_num  path  string  true  "Número de serie exacto"
// @Success      200  {object}  dto.Result[[]dto.SerialEncounterDto]
// @Router       /api/inspections/serials/{serial_num}/encounters [get]
func (h *InspectionHandler) Encounters(c *fiber.Ctx) error {
	return respond(c, h.svc.GetEncountersBySerialNumber(c.UserContext(), c.Params("serial_num")), fiber.StatusOK)
}

// GetLine godoc
// @Summary      Obtener línea
// @Tags         lines
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.Result[dto.InspectionLineDto]
// @Failure      404  {object}  dto.Result[dto.InspectionLineDto]
// @Router       /api/inspections/lines/{id} [get]
func (h *InspectionHandler) GetLine(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	return respond(c, h.svc.GetLineDto(c.UserContext(), id, GetPermissions(c)), fiber.StatusOK)
}

// CreateLine godoc
// @Summary      Agregar línea
// @Tags         lines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LineCreateCommand  true  "Datos de la línea"
// @Success      201   {object}  dto.Result[dto.InspectionLineDto]
// @Router       /api/inspections/lines [post]
func (h *InspectionHandler) CreateLine(c *fiber.Ctx) error {
	var in dto.LineCreateCommand
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.CallingUserID = GetEmployeeNumber(c)
	return respond(c, h.svc.CreateLine(c.UserContext(), &in, GetPermissions(c)), fiber.StatusCreated)
}

// EditLine godoc
// @Summary      Editar línea
// @Tags         lines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la línea"
// @Param        body  body  dto.LineEditCommand  true  "Campos a cambiar"
// @Success      200   {object}  dto.Result[dto.InspectionLineDto]
// @Router       /api/inspections/lines/{id} [put]
func (h *InspectionHandler) EditLine(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	var in dto.LineEditCommand
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	in.CallingUserID = GetEmployeeNumber(c)
	return respond(c, h.svc.EditLine(c.UserContext(), &in, GetPermissions(c)), fiber.StatusOK)
}

// DeleteLine godoc
// @Summary      Eliminar línea
// @Tags         lines
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.Result[dto.InspectionLineDto]
// @Router       /api/inspections/lines/{id} [delete]
func (h *InspectionHandler) DeleteLine(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	cmd := &dto.LineDeleteCommand{ID: id, CallingUserID: GetEmployeeNumber(c)}
	return respond(c, h.svc.DeleteLine(c.UserContext(), cmd, GetPermissions(c)), fiber.StatusOK)
}

// CreateSerial godoc
// @Summary      Registrar serial
// @Tags         serials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SerialCreateCommand  true  "Datos del serial"
// @Success      201   {object}  dto.Result[dto.InspectionSerialDto]
// @Failure      409   {object}  dto.Result[dto.InspectionSerialDto]
// @Router       /api/inspections/serials [post]
func (h *InspectionHandler) CreateSerial(c *fiber.Ctx) error {
	var in dto.SerialCreateCommand
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.CallingUserID = GetEmployeeNumber(c)
	return respond(c, h.svc.CreateSerial(c.UserContext(), &in, GetPermissions(c)), fiber.StatusCreated)
}

// EditSerial godoc
// @Summary      Editar serial
// @Tags         serials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del serial"
// @Param        body  body  dto.SerialEditCommand  true  "Campos a cambiar"
// @Success      200   {object}  dto.Result[dto.InspectionSerialDto]
// @Router       /api/inspections/serials/{id} [put]
func (h *InspectionHandler) EditSerial(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	var in dto.SerialEditCommand
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	in.ID = id
	in.CallingUserID = GetEmployeeNumber(c)
	return respond(c, h.svc.EditSerial(c.UserContext(), &in, GetPermissions(c)), fiber.StatusOK)
}

// DeleteSerial godoc
// @Summary      Eliminar serial
// @Tags         serials
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del serial"
// @Success      200  {object}  dto.Result[dto.InspectionSerialDto]
// @Router       /api/inspections/serials/{id} [delete]
func (h *InspectionHandler) DeleteSerial(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id inválido")
	}
	cmd := &dto.SerialDeleteCommand{ID: id, CallingUserID: GetEmployeeNumber(c)}
	return respond(c, h.svc.DeleteSerial(c.UserContext(), cmd, GetPermissions(c)), fiber.StatusOK)
}
