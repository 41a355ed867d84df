// Package pdf genera el reporte de vencimientos en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Farmacia  │  Fecha de referencia + ventana │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: vencidos / próximos / omitidos                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA VENCIDOS: Lote | Medicamento | Vence | Cant.          │
//	│  TABLA PRÓXIMOS: Lote | Medicamento | Vence | Cant.          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
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

	appinventory "github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/dto"
)

var _ appinventory.ExpiryReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorDanger  = &props.Color{Red: 176, Green: 32, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inventory.ExpiryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	pharmacy string
}

// NewMarotoReportGenerator construye el generador. pharmacy aparece en el encabezado.
func NewMarotoReportGenerator(pharmacy string) *MarotoReportGenerator {
	return &MarotoReportGenerator{pharmacy: pharmacy}
}

// GenerateExpiryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateExpiryReport(_ context.Context, report dto.ExpiryReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de vencimientos", true).
		WithAuthor(g.pharmacy, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.pharmacy, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("LOTES VENCIDOS", colorDanger))
	m.AddRows(itemRows(report.Expired)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow(fmt.Sprintf("VENCEN EN LOS PRÓXIMOS %d DÍAS", report.WarnDays), colorPrimary))
	m.AddRows(itemRows(report.ExpiringSoon)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(pharmacy string, report dto.ExpiryReportDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENCIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(pharmacy, "Farmacia"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha de referencia: "+report.ReferenceDate, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("Ventana de aviso: %d días", report.WarnDays), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report dto.ExpiryReportDTO) core.Row {
	cell := func(label string, n int, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(n), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		cell("Vencidos", len(report.Expired), colorDanger),
		cell("Próximos a vencer", len(report.ExpiringSoon), colorPrimary),
		cell("Sin fecha legible", report.Skipped, colorGray),
	)
}

func sectionTitleRow(title string, color *props.Color) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: color, Top: 1}),
	))
}

// itemRows cabecera más una fila por lote; "Sin registros" si la lista está vacía.
func itemRows(items []dto.ExpiryItemDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin registros", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	rows := make([]core.Row, 0, len(items)+1)
	rows = append(rows, row.New(6).Add(
		h("Lote", 2, align.Left),
		h("Medicamento", 6, align.Left),
		h("Vence", 2, align.Center),
		h("Cant.", 2, align.Right),
	))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(it.BatchNo, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(it.DrugName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.ExpiryDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Los lotes sin fecha de vencimiento o con una fecha ilegible no se clasifican. "+
				"Retire los lotes vencidos del inventario y registre su disposición.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
