// Package export implementa los renderers de reportes en formatos tabulares (CSV, Excel)
// y XML.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

var _ ports.ReportRenderer = (*CSVRenderer)(nil)

// SaleColumns columnas del detalle de ventas; coinciden con el formato de carga.
var SaleColumns = []string{"date", "item_id", "item_name", "quantity", "unit_price", "total"}

// ItemColumns columnas del agregado por producto.
var ItemColumns = []string{"item_id", "item_name", "quantity", "revenue"}

// CSVRenderer un bloque de filas: detalle si la sección details está marcada, si no el agregado por producto.
type CSVRenderer struct{}

// NewCSVRenderer construye el renderer.
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

func (r *CSVRenderer) Format() string      { return entity.ReportFormatCSV }
func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }
func (r *CSVRenderer) Extension() string   { return "csv" }

// Render escribe el CSV en memoria.
func (r *CSVRenderer) Render(_ context.Context, data *ports.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var records [][]string
	if data.Report.Sections.Details {
		records = append(records, SaleColumns)
		for _, s := range data.Sales {
			records = append(records, []string{
				s.Date.Format("2006-01-02"),
				s.ItemID,
				s.ItemName,
				s.Quantity.String(),
				s.UnitPrice.StringFixed(2),
				s.Total.StringFixed(2),
			})
		}
	} else {
		records = append(records, ItemColumns)
		for _, it := range data.Items {
			records = append(records, []string{it.ItemID, it.ItemName, it.Quantity.String(), it.Revenue.StringFixed(2)})
		}
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: escribir filas: %w", err)
	}
	return buf.Bytes(), nil
}
