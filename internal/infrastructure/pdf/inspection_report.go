// Package pdf genera el reporte de recepción de una inspección interna.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título     │  N° Inspección + Estado      │
//	│  CLIENTE: Nombre + cotización / tag / departamento          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FECHAS: Creada / Recibida / Completada + responsables       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Parte | Descripción | Cant | Seriales | Notas        │
//	│  SERIALES SIN LÍNEA                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia de la inspección               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inspection.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inspection.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	company string
}

// NewMarotoReportGenerator construye el generador; company se imprime en el encabezado.
func NewMarotoReportGenerator(company string) *MarotoReportGenerator {
	return &MarotoReportGenerator{company: company}
}

// InspectionReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) InspectionReport(_ context.Context, in *dto.InspectionDto) ([]byte, error) {
	if in == nil {
		return nil, fmt.Errorf("pdf: inspección vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Inspección %d", in.ID), true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, in))
	m.AddRows(customerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datesRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(lineRows(in.Lines)...)
	m.AddRows(looseSerialRows(in.Serials)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(in))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa y título (izq), número y estado de la inspección (der).
func headerRow(company string, in *dto.InspectionDto) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(company, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("REPORTE DE INSPECCIÓN DE RECEPCIÓN", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INSPECCIÓN N°", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(strconv.FormatInt(in.ID, 10), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Estado: "+in.InspectionStatus, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente e identificadores de la inspección.
func customerRow(in *dto.InspectionDto) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(in.CustomerName, "Sin cliente"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Cotización: %s   |   Tag: %s   |   Departamento: %s   |   Vendedor: %s",
				nonEmpty(in.QuoteNum, "—"),
				nonEmpty(in.TagNumber, "—"),
				nonEmpty(in.Department, "—"),
				nonEmpty(in.SalesPersonName, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// datesRow: fechas del ciclo de vida con su responsable.
func datesRow(in *dto.InspectionDto) core.Row {
	stamp := func(label string, on *time.Time, by string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(formatDate(on), props.Text{Size: 8, Top: 6}),
			text.New(nonEmpty(by, "—"), props.Text{Size: 8, Top: 10, Color: colorGray}),
		)
	}
	created := in.CreatedOn
	return row.New(16).Add(
		stamp("CREADA", &created, in.CreatedByName),
		stamp("RECIBIDA", in.ReceivedOn, in.ReceivedByName),
		stamp("COMPLETADA", in.CompletedOn, in.CompletedByName),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Parte", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Seriales", 3, align.Left),
		h("Notas", 2, align.Left),
	)
}

// lineRows: una fila por línea no eliminada.
func lineRows(lines []*dto.InspectionLineDto) []core.Row {
	if len(lines) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin líneas registradas.", props.Text{Size: 8, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		serials := make([]string, 0, len(l.SerialNumbers))
		for _, s := range l.SerialNumbers {
			serials = append(serials, s.SerialNum)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(nonEmpty(l.PartNum, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Qty), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(strings.Join(serials, ", "), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Notes, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return result
}

// looseSerialRows: seriales registrados directamente en la cabecera (sin línea).
func looseSerialRows(serials []*dto.InspectionSerialDto) []core.Row {
	var loose []string
	for _, s := range serials {
		if s.LineID == nil {
			loose = append(loose, s.SerialNum)
		}
	}
	if len(loose) == 0 {
		return nil
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("SERIALES SIN LÍNEA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(strings.Join(loose, ", "), props.Text{Size: 8, Top: 1}),
		)),
	}
}

// footerRow: QR con la referencia de la inspección y leyenda.
func footerRow(in *dto.InspectionDto) core.Row {
	ref := fmt.Sprintf("inspection:%d", in.ID)
	if in.QuoteNum != "" {
		ref += ";quote:" + in.QuoteNum
	}
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escanee el código para abrir la inspección en el ERP.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Ítems: %d   |   Cantidad declarada: %d", len(in.Lines), in.Qty), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006 15:04")
}
