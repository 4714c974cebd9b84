package dto

import "time"

// InspectionCreateCommand entrada para crear una inspección.
// CallingUserID lo completa el handler con el usuario del token.
type InspectionCreateCommand struct {
	QuoteNum        string `json:"quote_num" validate:"omitempty,max=50"`
	Description     string `json:"description" validate:"required,max=500"`
	TagNumber       string `json:"tag_number" validate:"omitempty,max=50"`
	Department      string `json:"department" validate:"omitempty,max=100"`
	CustID          *int64 `json:"cust_id,omitempty" validate:"omitempty,gt=0"`
	SalesPersonNum  *int64 `json:"sales_person_num,omitempty" validate:"omitempty,gt=0"`
	Qty             int    `json:"qty" validate:"min=0"`
	IsPreInspection bool   `json:"is_pre_inspection"`
	CallingUserID   int64  `json:"calling_user_id" validate:"required,gt=0"`
}

// InspectionEditCommand entrada para editar una inspección.
// Solo los campos presentes (no nil, y en texto no vacíos) se consideran para el cambio.
// receieved_by conserva la grafía del contrato original con los clientes.
// No lleva is_canceled: cancelar es exclusivo de Delete, que además fija el estado DELETED.
type InspectionEditCommand struct {
	ID               int64   `json:"id" validate:"required,gt=0"`
	CallingUserID    int64   `json:"calling_user_id" validate:"required,gt=0"`
	QuoteNum         *string `json:"quote_num,omitempty" validate:"omitempty,max=50"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=500"`
	TagNumber        *string `json:"tag_number,omitempty" validate:"omitempty,max=50"`
	Department       *string `json:"department,omitempty" validate:"omitempty,max=100"`
	CustID           *int64  `json:"cust_id,omitempty" validate:"omitempty,gt=0"`
	SalesPersonNum   *int64  `json:"sales_person_num,omitempty" validate:"omitempty,gt=0"`
	Qty              *int    `json:"qty,omitempty" validate:"omitempty,min=0"`
	IsPreInspection  *bool   `json:"is_pre_inspection,omitempty"`
	ReceivedBy       *int64  `json:"receieved_by,omitempty" validate:"omitempty,gt=0"`
	InspectionStatus *string `json:"inspection_status,omitempty" validate:"omitempty,oneof=OPEN IN_PROGRESS ON_HOLD COMPLETE_INSPECTION COMPLETE_SALES"`
}

// InspectionDeleteCommand entrada para cancelar (soft delete) una inspección.
type InspectionDeleteCommand struct {
	ID            int64 `json:"id" validate:"required,gt=0"`
	CallingUserID int64 `json:"calling_user_id" validate:"required,gt=0"`
}

// LineCreateCommand entrada para agregar una línea a una inspección.
type LineCreateCommand struct {
	InspectionID  int64  `json:"internal_inspections_id" validate:"required,gt=0"`
	PartNum       string `json:"part_num" validate:"omitempty,max=50"`
	Description   string `json:"description" validate:"omitempty,max=500"`
	Qty           int    `json:"qty" validate:"min=0"`
	Notes         string `json:"notes" validate:"omitempty,max=2000"`
	CallingUserID int64  `json:"calling_user_id" validate:"required,gt=0"`
}

// LineEditCommand entrada para editar una línea.
type LineEditCommand struct {
	ID            int64   `json:"id" validate:"required,gt=0"`
	CallingUserID int64   `json:"calling_user_id" validate:"required,gt=0"`
	PartNum       *string `json:"part_num,omitempty" validate:"omitempty,max=50"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Qty           *int    `json:"qty,omitempty" validate:"omitempty,min=0"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// LineDeleteCommand entrada para eliminar una línea.
type LineDeleteCommand struct {
	ID            int64 `json:"id" validate:"required,gt=0"`
	CallingUserID int64 `json:"calling_user_id" validate:"required,gt=0"`
}

// SerialCreateCommand entrada para registrar un serial.
type SerialCreateCommand struct {
	InspectionID  int64  `json:"internal_inspections_id" validate:"required,gt=0"`
	LineID        *int64 `json:"internal_inspections_lines_id,omitempty" validate:"omitempty,gt=0"`
	SerialNum     string `json:"serial_num" validate:"required,max=100"`
	CallingUserID int64  `json:"calling_user_id" validate:"required,gt=0"`
}

// SerialEditCommand entrada para editar un serial.
type SerialEditCommand struct {
	ID            int64   `json:"id" validate:"required,gt=0"`
	CallingUserID int64   `json:"calling_user_id" validate:"required,gt=0"`
	LineID        *int64  `json:"internal_inspections_lines_id,omitempty" validate:"omitempty,gt=0"`
	SerialNum     *string `json:"serial_num,omitempty" validate:"omitempty,max=100"`
}

// SerialDeleteCommand entrada para eliminar un serial.
type SerialDeleteCommand struct {
	ID            int64 `json:"id" validate:"required,gt=0"`
	CallingUserID int64 `json:"calling_user_id" validate:"required,gt=0"`
}

// ConvertToQuoteCommand entrada para convertir una inspección en cotización.
type ConvertToQuoteCommand struct {
	InspectionID  int64 `json:"id" validate:"required,gt=0"`
	CallingUserID int64 `json:"calling_user_id" validate:"required,gt=0"`
}

// InspectionDto salida enriquecida de una inspección con sus líneas y seriales.
type InspectionDto struct {
	ID                 int64                  `json:"id"`
	QuoteNum           string                 `json:"quote_num"`
	Description        string                 `json:"description"`
	TagNumber          string                 `json:"tag_number"`
	Department         string                 `json:"department"`
	CustID             *int64                 `json:"cust_id"`
	CustomerName       string                 `json:"customer_name"`
	SalesPersonNum     *int64                 `json:"sales_person_num"`
	SalesPersonName    string                 `json:"sales_person_name"`
	Qty                int                    `json:"qty"`
	IsPreInspection    bool                   `json:"is_pre_inspection"`
	IsCanceled         bool                   `json:"is_canceled"`
	IsComplete         bool                   `json:"is_complete"`
	IsSalesComplete    bool                   `json:"is_sales_complete"`
	InspectionStatus   string                 `json:"inspection_status"`
	CreatedOn          time.Time              `json:"created_on"`
	CreatedBy          int64                  `json:"created_by"`
	CreatedByName      string                 `json:"created_by_name"`
	UpdatedOn          *time.Time             `json:"updated_on"`
	UpdatedBy          *int64                 `json:"updated_by"`
	UpdatedByName      string                 `json:"updated_by_name"`
	ReceivedOn         *time.Time             `json:"received_on"`
	ReceivedBy         *int64                 `json:"receieved_by"`
	ReceivedByName     string                 `json:"receieved_by_name"`
	CompletedOn        *time.Time             `json:"completed_on"`
	CompletedBy        *int64                 `json:"completed_by"`
	CompletedByName    string                 `json:"completed_by_name"`
	SalesCompletedOn   *time.Time             `json:"sales_completed_on"`
	SalesCompletedBy   *int64                 `json:"sales_completed_by"`
	SalesCompletedName string                 `json:"sales_completed_by_name"`
	Lines              []*InspectionLineDto   `json:"lines"`
	Serials            []*InspectionSerialDto `json:"serials"`
}

// InspectionLineDto salida de una línea. SerialNumber es derivado: el primer serial no eliminado.
type InspectionLineDto struct {
	ID            int64                  `json:"id"`
	InspectionID  int64                  `json:"internal_inspections_id"`
	PartNum       string                 `json:"part_num"`
	Description   string                 `json:"description"`
	Qty           int                    `json:"qty"`
	Notes         string                 `json:"notes"`
	SerialNumber  string                 `json:"serial_number"`
	SerialNumbers []*InspectionSerialDto `json:"serial_numbers"`
	CreatedOn     time.Time              `json:"created_on"`
	CreatedBy     int64                  `json:"created_by"`
	CreatedByName string                 `json:"created_by_name"`
	UpdatedOn     *time.Time             `json:"updated_on"`
	UpdatedBy     *int64                 `json:"updated_by"`
	UpdatedByName string                 `json:"updated_by_name"`
}

// InspectionSerialDto salida de un serial; LineID referencia la línea padre si existe.
type InspectionSerialDto struct {
	ID            int64      `json:"id"`
	InspectionID  int64      `json:"internal_inspections_id"`
	LineID        *int64     `json:"internal_inspections_lines_id"`
	SerialNum     string     `json:"serial_num"`
	CreatedOn     time.Time  `json:"created_on"`
	CreatedBy     int64      `json:"created_by"`
	CreatedByName string     `json:"created_by_name"`
	UpdatedOn     *time.Time `json:"updated_on"`
	UpdatedBy     *int64     `json:"updated_by"`
	UpdatedByName string     `json:"updated_by_name"`
}

// SerialSearchHitDto proyección mínima de la búsqueda por número de serie.
type SerialSearchHitDto struct {
	SerialID     int64  `json:"id"`
	SerialNum    string `json:"serial_num"`
	InspectionID int64  `json:"internal_inspections_id"`
	LineID       *int64 `json:"internal_inspections_lines_id"`
	QuoteNum     string `json:"quote_num"`
	TagNumber    string `json:"tag_number"`
}

// SerialEncounterDto aparición histórica de un serial en una inspección.
type SerialEncounterDto struct {
	SerialID         int64      `json:"id"`
	SerialNum        string     `json:"serial_num"`
	InspectionID     int64      `json:"internal_inspections_id"`
	LineID           *int64     `json:"internal_inspections_lines_id"`
	QuoteNum         string     `json:"quote_num"`
	TagNumber        string     `json:"tag_number"`
	CustomerName     string     `json:"customer_name"`
	InspectionStatus string     `json:"inspection_status"`
	IsCanceled       bool       `json:"is_canceled"`
	RecordedOn       time.Time  `json:"recorded_on"`
	ReceivedOn       *time.Time `json:"received_on"`
	CompletedOn      *time.Time `json:"completed_on"`
}

// SalesPersonDto vendedor seleccionable en la inspección.
type SalesPersonDto struct {
	EmployeeNumber int64  `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
}

// TypeDataDto datos de referencia para los formularios del cliente.
type TypeDataDto struct {
	Statuses     []string          `json:"statuses"`
	Departments  []string          `json:"departments"`
	SalesPersons []*SalesPersonDto `json:"sales_persons"`
}

// FileDto archivo generado (reportes).
type FileDto struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}
