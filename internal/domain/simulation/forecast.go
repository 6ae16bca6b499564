package simulation

import "fmt"

// DailyForecast proyección de un día.
type DailyForecast struct {
	Date          string `json:"date"`
	Revenue       int    `json:"revenue"`
	Transactions  int    `json:"transactions"`
	AverageTicket int    `json:"averageTicket"`
}

// ItemForecast proyección de un producto del menú.
type ItemForecast struct {
	ItemID           string  `json:"itemId"`
	Name             string  `json:"name"`
	ProjectedSales   int     `json:"projectedSales"`
	ProjectedRevenue int     `json:"projectedRevenue"`
	GrowthRate       float64 `json:"growthRate"`
}

// Forecast paquete de pronóstico de ventas.
type Forecast struct {
	TotalRevenue        int             `json:"totalRevenue"`
	AverageDailyRevenue int             `json:"averageDailyRevenue"`
	GrowthRate          float64         `json:"growthRate"`
	ConfidenceScore     float64         `json:"confidenceScore"`
	DailyForecast       []DailyForecast `json:"dailyForecast"`
	ItemForecasts       []ItemForecast  `json:"itemForecasts"`
}

// HorizonDays días proyectados por período: week=7, month=30, cualquier otro=90.
func HorizonDays(period string) int {
	switch period {
	case "week":
		return 7
	case "month":
		return 30
	default:
		return 90
	}
}

// Forecast genera el pronóstico para el período; itemIDs vacío produce ItemForecasts vacío.
func (g *Generator) Forecast(period string, itemIDs []string) Forecast {
	now := g.now()
	days := HorizonDays(period)

	daily := make([]DailyForecast, days)
	for i := range daily {
		daily[i] = DailyForecast{
			Date:          dateLabel(now.AddDate(0, 0, i)),
			Revenue:       g.intBetween(800, 2800),
			Transactions:  g.intBetween(100, 300),
			AverageTicket: g.intBetween(20, 50),
		}
	}

	items := make([]ItemForecast, 0, len(itemIDs))
	for _, id := range itemIDs {
		items = append(items, ItemForecast{
			ItemID:           id,
			Name:             fmt.Sprintf("Menu Item %s", id),
			ProjectedSales:   g.intBetween(100, 600),
			ProjectedRevenue: g.intBetween(1000, 6000),
			GrowthRate:       g.ratioBetween(-0.10, 0.20),
		})
	}

	return Forecast{
		TotalRevenue:        g.intBetween(30000, 80000),
		AverageDailyRevenue: g.intBetween(1000, 3000),
		GrowthRate:          g.ratioBetween(-0.05, 0.15),
		ConfidenceScore:     g.ratioBetween(0.70, 1.00),
		DailyForecast:       daily,
		ItemForecasts:       items,
	}
}
