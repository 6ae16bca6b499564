package simulation

// SalesSummary cifras de ventas agregadas del widget principal.
type SalesSummary struct {
	Today            int     `json:"today"`
	Yesterday        int     `json:"yesterday"`
	ThisWeek         int     `json:"thisWeek"`
	ThisMonth        int     `json:"thisMonth"`
	ChangePercentage float64 `json:"changePercentage"`
}

// TopSellingItem producto del top de ventas.
type TopSellingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

// DailyRevenue punto de la serie diaria de ingresos.
type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue int    `json:"revenue"`
}

// CustomerSegment porcentaje de clientes por segmento.
type CustomerSegment struct {
	Segment    string `json:"segment"`
	Percentage int    `json:"percentage"`
}

// CompetitorInsight fila resumida de competidor para el dashboard.
type CompetitorInsight struct {
	Name         string   `json:"name"`
	PriceIndex   float64  `json:"priceIndex"`
	PopularItems []string `json:"popularItems"`
}

// DashboardSummary instantánea agregada del dashboard.
type DashboardSummary struct {
	SalesSummary         SalesSummary        `json:"salesSummary"`
	TopSellingItems      []TopSellingItem    `json:"topSellingItems"`
	RevenueByDay         []DailyRevenue      `json:"revenueByDay"`
	CustomerSegmentation []CustomerSegment   `json:"customerSegmentation"`
	CompetitorInsights   []CompetitorInsight `json:"competitorInsights"`
}

const revenueSeriesDays = 30

// DashboardSummary genera la instantánea. Solo las cifras de ventas y la serie diaria son
// aleatorias; el top de productos, la segmentación y los competidores son fijos.
func (g *Generator) DashboardSummary() DashboardSummary {
	now := g.now()

	series := make([]DailyRevenue, revenueSeriesDays)
	for i := range series {
		series[i] = DailyRevenue{
			Date:    dateLabel(now.AddDate(0, 0, i-(revenueSeriesDays-1))),
			Revenue: g.intBetween(3000, 8000),
		}
	}

	return DashboardSummary{
		SalesSummary: SalesSummary{
			Today:            g.intBetween(3000, 8000),
			Yesterday:        g.intBetween(3000, 8000),
			ThisWeek:         g.intBetween(20000, 50000),
			ThisMonth:        g.intBetween(80000, 180000),
			ChangePercentage: g.ratioBetween(-0.05, 0.15),
		},
		TopSellingItems: []TopSellingItem{
			{ID: "1", Name: "Signature Burger", Quantity: 142, Revenue: 1704},
			{ID: "2", Name: "Truffle Fries", Quantity: 98, Revenue: 882},
			{ID: "3", Name: "Craft IPA", Quantity: 87, Revenue: 783},
			{ID: "4", Name: "Caesar Salad", Quantity: 76, Revenue: 912},
			{ID: "5", Name: "Chocolate Lava Cake", Quantity: 65, Revenue: 585},
		},
		RevenueByDay: series,
		CustomerSegmentation: []CustomerSegment{
			{Segment: "New", Percentage: 15},
			{Segment: "Occasional", Percentage: 30},
			{Segment: "Regular", Percentage: 40},
			{Segment: "VIP", Percentage: 15},
		},
		CompetitorInsights: []CompetitorInsight{
			{Name: "Restaurant A", PriceIndex: 1.05, PopularItems: []string{"Burger", "Wings"}},
			{Name: "Restaurant B", PriceIndex: 0.95, PopularItems: []string{"Pizza", "Pasta"}},
			{Name: "Restaurant C", PriceIndex: 1.15, PopularItems: []string{"Steak", "Seafood"}},
		},
	}
}
