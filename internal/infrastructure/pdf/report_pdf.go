// Package pdf implementa el renderer PDF de los reportes de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante + nombre del reporte │ Fecha / Período  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Unidades / Transacciones (summary)      │
//	│  TOP PRODUCTOS: Producto | Unidades | Ingresos (charts)      │
//	│  DETALLE: Fecha | Producto | Cant | P.Unit | Total (details) │
//	│  RECOMENDACIONES IA (recommendations)                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

var _ ports.ReportRenderer = (*ReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// maxDetailRows tope de filas de detalle para mantener el PDF manejable.
const maxDetailRows = 500

// ── Renderer ──────────────────────────────────────────────────────────────────

// ReportRenderer implementa ports.ReportRenderer usando Maroto v2.
type ReportRenderer struct{}

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

func (r *ReportRenderer) Format() string      { return entity.ReportFormatPDF }
func (r *ReportRenderer) ContentType() string { return "application/pdf" }
func (r *ReportRenderer) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes. Sin secciones marcadas se incluye el resumen.
func (r *ReportRenderer) Render(_ context.Context, data *ports.ReportData) ([]byte, error) {
	rep := data.Report
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Name, true).
		WithAuthor(nonEmpty(data.RestaurantName, "Plexora"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	sections := rep.Sections
	noneSelected := !sections.Summary && !sections.Charts && !sections.Details && !sections.Recommendations

	if sections.Summary || noneSelected {
		m.AddRows(sectionTitle("RESUMEN"))
		m.AddRows(summaryRow(data))
	}
	if sections.Charts {
		m.AddRows(sectionTitle("TOP PRODUCTOS"))
		m.AddRows(itemsHeaderRow())
		m.AddRows(itemRows(data.Items)...)
	}
	if sections.Details {
		m.AddRows(sectionTitle("DETALLE DE VENTAS"))
		m.AddRows(detailHeaderRow())
		m.AddRows(detailRows(data.Sales)...)
	}
	if sections.Recommendations && rep.AIRecommendations != "" {
		m.AddRows(sectionTitle("RECOMENDACIONES"))
		for _, paragraph := range strings.Split(rep.AIRecommendations, "\n") {
			if strings.TrimSpace(paragraph) == "" {
				continue
			}
			m.AddRows(row.New(6).Add(col.New(12).Add(
				text.New(paragraph, props.Text{Size: 8, Top: 1}),
			)))
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado por Plexora el "+data.GeneratedAt.Format("2006-01-02 15:04 MST"), props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: restaurante + nombre del reporte (izq) y fecha + período (der).
func headerRow(data *ports.ReportData) core.Row {
	rep := data.Report
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.RestaurantName, "Plexora"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(rep.Name, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(strings.ToUpper(rep.Type)+" REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodLabel(rep), props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+rep.CreatedAt.Format("01/02/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

// summaryRow: tres indicadores principales.
func summaryRow(data *ports.ReportData) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Ingresos", "$"+formatMoney(data.TotalRevenue)),
		kpi("Unidades vendidas", data.TotalQuantity.StringFixed(0)),
		kpi("Transacciones", fmt.Sprintf("%d", len(data.Sales))),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 2, Left: 1, Right: 1,
	}))
}

func itemsHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Producto", 6, align.Left),
		headerCell("Unidades", 3, align.Right),
		headerCell("Ingresos", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func itemRows(items []ports.ReportItemLine) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(it.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New("$"+formatMoney(it.Revenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func detailHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Fecha", 2, align.Left),
		headerCell("Producto", 4, align.Left),
		headerCell("Cant.", 2, align.Center),
		headerCell("P.Unit", 2, align.Right),
		headerCell("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func detailRows(sales []*entity.Sale) []core.Row {
	if len(sales) == 0 {
		return []core.Row{emptyRow()}
	}
	if len(sales) > maxDetailRows {
		sales = sales[:maxDetailRows]
	}
	rows := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(s.Date.Format("2006-01-02"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(s.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(s.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(s.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+formatMoney(s.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func emptyRow() core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New("Sin ventas registradas en el período.", props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodLabel(rep *entity.Report) string {
	if rep.StartDate != nil && rep.EndDate != nil {
		return rep.StartDate.Format("01/02/2006") + " - " + rep.EndDate.Format("01/02/2006")
	}
	return rep.Timeframe
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney 2 decimales con separador de miles. Ej: 1234567.5 → "1,234,567.50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	if n <= 3 {
		return sign + intPart + frac
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + frac
}
