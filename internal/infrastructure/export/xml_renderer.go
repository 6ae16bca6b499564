package export

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

var _ ports.ReportRenderer = (*XMLRenderer)(nil)

// XMLNamespace namespace del documento de reporte.
const XMLNamespace = "urn:plexora:report:1"

// XMLRenderer documento XML canonicalizado (C14N). La forma canónica hace que el
// checksum dependa solo del contenido y no del formato de serialización.
type XMLRenderer struct{}

// NewXMLRenderer construye el renderer.
func NewXMLRenderer() *XMLRenderer { return &XMLRenderer{} }

func (r *XMLRenderer) Format() string      { return entity.ReportFormatXML }
func (r *XMLRenderer) ContentType() string { return "application/xml" }
func (r *XMLRenderer) Extension() string   { return "xml" }

// Render construye el árbol con etree y devuelve su forma canónica.
func (r *XMLRenderer) Render(_ context.Context, data *ports.ReportData) ([]byte, error) {
	rep := data.Report
	doc := etree.NewDocument()

	root := doc.CreateElement("Report")
	root.CreateAttr("xmlns", XMLNamespace)
	root.CreateAttr("id", rep.ID)
	root.CreateAttr("type", rep.Type)
	root.CreateAttr("timeframe", rep.Timeframe)

	root.CreateElement("Name").SetText(rep.Name)
	root.CreateElement("Restaurant").SetText(data.RestaurantName)
	root.CreateElement("CreatedAt").SetText(rep.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	if rep.StartDate != nil && rep.EndDate != nil {
		period := root.CreateElement("Period")
		period.CreateAttr("start", rep.StartDate.UTC().Format("2006-01-02"))
		period.CreateAttr("end", rep.EndDate.UTC().Format("2006-01-02"))
	}

	summary := root.CreateElement("Summary")
	summary.CreateElement("TotalRevenue").SetText(data.TotalRevenue.StringFixed(2))
	summary.CreateElement("UnitsSold").SetText(data.TotalQuantity.String())
	summary.CreateElement("Transactions").SetText(strconv.Itoa(len(data.Sales)))

	items := root.CreateElement("Items")
	for _, it := range data.Items {
		el := items.CreateElement("Item")
		el.CreateAttr("id", it.ItemID)
		el.CreateElement("Name").SetText(it.ItemName)
		el.CreateElement("Quantity").SetText(it.Quantity.String())
		el.CreateElement("Revenue").SetText(it.Revenue.StringFixed(2))
	}

	if rep.Sections.Details {
		sales := root.CreateElement("Sales")
		for _, s := range data.Sales {
			el := sales.CreateElement("Sale")
			el.CreateAttr("date", s.Date.UTC().Format("2006-01-02"))
			el.CreateAttr("itemId", s.ItemID)
			el.CreateAttr("quantity", s.Quantity.String())
			el.CreateAttr("unitPrice", s.UnitPrice.StringFixed(2))
			el.CreateAttr("total", s.Total.StringFixed(2))
			el.SetText(s.ItemName)
		}
	}

	if rep.Sections.Recommendations && rep.AIRecommendations != "" {
		root.CreateElement("Recommendations").SetText(rep.AIRecommendations)
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return canonicalize(raw)
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	out, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("xml: canonicalizar: %w", err)
	}
	return out, nil
}
