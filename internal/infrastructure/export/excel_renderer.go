package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

var _ ports.ReportRenderer = (*ExcelRenderer)(nil)

const (
	sheetSummary         = "Summary"
	sheetItems           = "Items"
	sheetDetails         = "Details"
	sheetRecommendations = "Recommendations"
)

// ExcelRenderer libro XLSX con una hoja por sección: Summary e Items siempre,
// Details y Recommendations según las secciones del reporte.
type ExcelRenderer struct{}

// NewExcelRenderer construye el renderer.
func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

func (r *ExcelRenderer) Format() string { return entity.ReportFormatExcel }
func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (r *ExcelRenderer) Extension() string { return "xlsx" }

// Render construye el libro y lo serializa.
func (r *ExcelRenderer) Render(_ context.Context, data *ports.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	// No diferir Close: WriteTo necesita el archivo abierto.

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#00467F"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	rep := data.Report
	summary := [][]any{
		{"Report", rep.Name},
		{"Restaurant", data.RestaurantName},
		{"Type", rep.Type},
		{"Timeframe", rep.Timeframe},
		{"Generated", data.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Total revenue", data.TotalRevenue.InexactFloat64()},
		{"Units sold", data.TotalQuantity.InexactFloat64()},
		{"Transactions", len(data.Sales)},
	}
	if err := writeSheet(f, sheetSummary, []string{"Metric", "Value"}, summary, []float64{20, 40}, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	items := make([][]any, 0, len(data.Items))
	for _, it := range data.Items {
		items = append(items, []any{it.ItemID, it.ItemName, it.Quantity.InexactFloat64(), it.Revenue.InexactFloat64()})
	}
	if err := writeSheet(f, sheetItems, ItemColumns, items, []float64{12, 30, 12, 14}, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	if rep.Sections.Details {
		details := make([][]any, 0, len(data.Sales))
		for _, s := range data.Sales {
			details = append(details, []any{
				s.Date.Format("2006-01-02"), s.ItemID, s.ItemName,
				s.Quantity.InexactFloat64(), s.UnitPrice.InexactFloat64(), s.Total.InexactFloat64(),
			})
		}
		if err := writeSheet(f, sheetDetails, SaleColumns, details, []float64{12, 12, 30, 10, 12, 12}, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	if rep.Sections.Recommendations && rep.AIRecommendations != "" {
		rows := [][]any{{rep.AIRecommendations}}
		if err := writeSheet(f, sheetRecommendations, []string{"Recommendations"}, rows, []float64{100}, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	if idx, err := f.GetSheetIndex(sheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: escribir buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("excel: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheet crea la hoja con cabecera estilizada, anchos de columna y panel congelado.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, widths []float64, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", sheet, err)
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("excel: cabecera %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("excel: estilo cabecera: %w", err)
		}
		if i < len(widths) {
			colName, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(sheet, colName, colName, widths[i]); err != nil {
				return fmt.Errorf("excel: ancho de columna: %w", err)
			}
		}
	}
	for r, values := range rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("excel: celda %s: %w", cell, err)
			}
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
