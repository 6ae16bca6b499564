// Package importer convierte archivos de ventas (CSV o XLSX) en filas de importación.
//
// Columnas reconocidas (sin distinguir mayúsculas; snake_case o camelCase):
// date, item_id, item_name, quantity, unit_price y opcionalmente total.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/domain"
)

// MaxRows tope de filas por archivo.
const MaxRows = 50000

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05", "01/02/2006"}

// columnAliases nombre normalizado → campo.
var columnAliases = map[string]string{
	"date":      "date",
	"itemid":    "item_id",
	"item":      "item_id",
	"itemname":  "item_name",
	"name":      "item_name",
	"quantity":  "quantity",
	"qty":       "quantity",
	"unitprice": "unit_price",
	"price":     "unit_price",
	"total":     "total",
}

var requiredColumns = []string{"date", "item_id", "item_name", "quantity", "unit_price"}

// ParseCSV lee un CSV con cabecera. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
func ParseCSV(r io.Reader) ([]dto.SaleInput, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: CSV mal formado: %v", domain.ErrInvalidInput, err)
	}
	return parseRecords(records)
}

// ParseXLSX lee la primera hoja del libro; la primera fila es la cabecera.
func ParseXLSX(r io.Reader) ([]dto.SaleInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: XLSX inválido: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %s: %v", domain.ErrInvalidInput, sheets[0], err)
	}
	return parseRecords(rows)
}

func parseRecords(records [][]string) ([]dto.SaleInput, error) {
	records = dropEmpty(records)
	if len(records) == 0 {
		return nil, nil
	}
	if len(records)-1 > MaxRows {
		return nil, fmt.Errorf("%w: el archivo supera el máximo de %d filas", domain.ErrInvalidInput, MaxRows)
	}

	index, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	out := make([]dto.SaleInput, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		get := func(field string) string {
			pos, ok := index[field]
			if !ok || pos >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[pos])
		}

		date, err := parseDate(get("date"))
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: fecha inválida %q", domain.ErrInvalidInput, line, get("date"))
		}
		qty, err := decimal.NewFromString(get("quantity"))
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: quantity inválido %q", domain.ErrInvalidInput, line, get("quantity"))
		}
		price, err := decimal.NewFromString(strings.TrimPrefix(get("unit_price"), "$"))
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: unit_price inválido %q", domain.ErrInvalidInput, line, get("unit_price"))
		}
		row := dto.SaleInput{
			Date:      date,
			ItemID:    get("item_id"),
			ItemName:  get("item_name"),
			Quantity:  qty,
			UnitPrice: price,
		}
		if t := strings.TrimPrefix(get("total"), "$"); t != "" {
			total, err := decimal.NewFromString(t)
			if err != nil {
				return nil, fmt.Errorf("%w: línea %d: total inválido %q", domain.ErrInvalidInput, line, t)
			}
			row.Total = &total
		}
		out = append(out, row)
	}
	return out, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.NewReplacer("_", "", " ", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(h)))
		if field, ok := columnAliases[key]; ok {
			if _, dup := index[field]; !dup {
				index[field] = i
			}
		}
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan columnas: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("formato de fecha no reconocido")
}

func dropEmpty(records [][]string) [][]string {
	out := records[:0]
	for _, rec := range records {
		for _, v := range rec {
			if strings.TrimSpace(v) != "" {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
