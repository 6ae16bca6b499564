package simulation

import (
	"fmt"
	"time"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompetitorSeeds devuelve los 3 competidores de ejemplo que se muestran mientras
// el tenant no haya registrado ninguno. No se persisten.
func (g *Generator) CompetitorSeeds() []entity.Competitor {
	now := g.now()
	return []entity.Competitor{
		{
			ID:           "comp-1",
			Name:         "Bistro Deluxe",
			Location:     "123 Main St",
			PriceIndex:   1.15,
			PopularItems: []string{"Steak Frites", "Truffle Pasta", "Crème Brûlée"},
			Strengths:    []string{"Upscale ambiance", "Wine selection", "Dessert menu"},
			Weaknesses:   []string{"Limited vegetarian options", "Long wait times", "Expensive"},
			LastUpdated:  now,
		},
		{
			ID:           "comp-2",
			Name:         "Urban Eats",
			Location:     "456 Oak Ave",
			PriceIndex:   0.85,
			PopularItems: []string{"Gourmet Burger", "Loaded Fries", "Craft Beer"},
			Strengths:    []string{"Fast service", "Casual atmosphere", "Good value"},
			Weaknesses:   []string{"Limited seating", "Noisy", "Basic menu"},
			LastUpdated:  now,
		},
		{
			ID:           "comp-3",
			Name:         "Spice Garden",
			Location:     "789 Elm Blvd",
			PriceIndex:   0.95,
			PopularItems: []string{"Curry Platter", "Naan Bread", "Mango Lassi"},
			Strengths:    []string{"Unique flavors", "Vegetarian options", "Delivery service"},
			Weaknesses:   []string{"Small portions", "Inconsistent quality", "Limited hours"},
			LastUpdated:  now,
		},
	}
}

var (
	seedReportTypes  = []string{entity.ReportTypeSales, entity.ReportTypeInventory, entity.ReportTypeStaff, entity.ReportTypeCustomers}
	seedFormats      = []string{entity.ReportFormatPDF, entity.ReportFormatCSV, entity.ReportFormatExcel}
	seedTimeframes   = []string{"Today", "This Week", "This Month", "Custom Range"}
	reportSeedsCount = 5
)

// ReportSeeds devuelve 5 reportes sintéticos para un historial vacío; el i-ésimo se fechó hace i días.
func (g *Generator) ReportSeeds() []entity.Report {
	now := g.now()
	out := make([]entity.Report, reportSeedsCount)
	for i := range out {
		kind := pick(g, seedReportTypes)
		created := now.AddDate(0, 0, -i)
		out[i] = entity.Report{
			ID:        fmt.Sprintf("report-%d", i+1),
			Name:      ReportName(kind, created),
			Type:      kind,
			Format:    pick(g, seedFormats),
			Timeframe: pick(g, seedTimeframes),
			Size:      fmt.Sprintf("%d.%dMB", g.intBetween(1, 6), g.src.IntN(9)),
			CreatedAt: created,
		}
	}
	return out
}

// ReportName "sales" → "Sales Report - 10/18/2026".
func ReportName(reportType string, at time.Time) string {
	return fmt.Sprintf("%s Report - %s", cases.Title(language.English).String(reportType), at.Format("01/02/2006"))
}
