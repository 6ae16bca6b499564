package simulation_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *simulation.Generator {
	return simulation.NewGenerator(
		simulation.WithSource(rand.New(rand.NewPCG(seed, seed*31+7))),
		simulation.WithClock(func() time.Time { return fixedNow }),
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Anomalías
// ──────────────────────────────────────────────────────────────────────────────

func TestAnomalies_CantidadSegunSensibilidad(t *testing.T) {
	cases := map[string]int{"low": 1, "medium": 3, "high": 5, "": 1, "extreme": 1}
	for sensitivity, want := range cases {
		got := newTestGenerator(1).Anomalies("day", sensitivity)
		assert.Len(t, got, want, "sensibilidad %q", sensitivity)
	}
}

func TestAnomalies_RangoEsperadoContieneValor(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		for _, a := range newTestGenerator(seed).Anomalies("month", "high") {
			assert.GreaterOrEqual(t, a.Value, 100)
			assert.Less(t, a.Value, 1100)
			assert.Less(t, a.ExpectedRange.Min, a.Value, "min < value")
			assert.Greater(t, a.ExpectedRange.Max, a.Value, "value < max")
			assert.Equal(t, int(float64(a.Value)*0.7), a.ExpectedRange.Min)
			assert.Equal(t, int(float64(a.Value)*1.3), a.ExpectedRange.Max)
			assert.Contains(t, []string{entity.SeverityLow, entity.SeverityMedium, entity.SeverityHigh}, a.Severity)
			assert.NotEmpty(t, a.Description)
		}
	}
}

func TestAnomalies_VentanaDeDeteccionPorTimeframe(t *testing.T) {
	windows := map[string]time.Duration{
		"day":   24 * time.Hour,
		"week":  7 * 24 * time.Hour,
		"month": 30 * 24 * time.Hour,
		"other": 24 * time.Hour,
	}
	for timeframe, window := range windows {
		for seed := uint64(0); seed < 50; seed++ {
			for _, a := range newTestGenerator(seed).Anomalies(timeframe, "high") {
				age := fixedNow.Sub(a.DetectedAt)
				assert.GreaterOrEqual(t, age, time.Duration(0), "timeframe %s", timeframe)
				assert.Less(t, age, window, "timeframe %s", timeframe)
			}
		}
	}
}

func TestAnomalies_MetricaDerivadaDelTipo(t *testing.T) {
	for seed := uint64(0); seed < 30; seed++ {
		for _, a := range newTestGenerator(seed).Anomalies("week", "high") {
			assert.NotContains(t, a.AffectedMetric, " ")
			assert.Regexp(t, `^[a-z_]+$`, a.AffectedMetric)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pronóstico
// ──────────────────────────────────────────────────────────────────────────────

func TestForecast_HorizonteSegunPeriodo(t *testing.T) {
	cases := map[string]int{"week": 7, "month": 30, "quarter": 90, "year": 90}
	for period, want := range cases {
		f := newTestGenerator(3).Forecast(period, nil)
		require.Len(t, f.DailyForecast, want, "período %q", period)
		assert.Equal(t, "2026-03-15", f.DailyForecast[0].Date, "la serie empieza hoy")
		assert.Empty(t, f.ItemForecasts)
	}
}

func TestForecast_RangosDeTasas(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		f := newTestGenerator(seed).Forecast("week", []string{"a"})
		assert.GreaterOrEqual(t, f.ConfidenceScore, 0.70)
		assert.Less(t, f.ConfidenceScore, 1.00)
		assert.GreaterOrEqual(t, f.GrowthRate, -0.05)
		assert.Less(t, f.GrowthRate, 0.15)
		assert.GreaterOrEqual(t, f.TotalRevenue, 30000)
		assert.Less(t, f.TotalRevenue, 80000)
		for _, d := range f.DailyForecast {
			assert.GreaterOrEqual(t, d.Revenue, 800)
			assert.Less(t, d.Revenue, 2800)
			assert.GreaterOrEqual(t, d.AverageTicket, 20)
			assert.Less(t, d.AverageTicket, 50)
		}
		assert.GreaterOrEqual(t, f.ItemForecasts[0].GrowthRate, -0.10)
		assert.Less(t, f.ItemForecasts[0].GrowthRate, 0.20)
	}
}

func TestForecast_UnaProyeccionPorItem(t *testing.T) {
	f := newTestGenerator(9).Forecast("month", []string{"12", "7"})
	require.Len(t, f.ItemForecasts, 2)
	assert.Equal(t, "12", f.ItemForecasts[0].ItemID)
	assert.Equal(t, "Menu Item 12", f.ItemForecasts[0].Name)
	assert.Equal(t, "Menu Item 7", f.ItemForecasts[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y semillas
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary_Forma(t *testing.T) {
	d := newTestGenerator(5).DashboardSummary()

	require.Len(t, d.RevenueByDay, 30)
	assert.Equal(t, "2026-02-14", d.RevenueByDay[0].Date, "hoy-29")
	assert.Equal(t, "2026-03-15", d.RevenueByDay[29].Date, "hoy")
	assert.Len(t, d.TopSellingItems, 5)
	assert.Len(t, d.CompetitorInsights, 3)

	total := 0
	for _, s := range d.CustomerSegmentation {
		total += s.Percentage
	}
	assert.Equal(t, 100, total, "la segmentación suma 100%")

	s := d.SalesSummary
	assert.GreaterOrEqual(t, s.Today, 3000)
	assert.Less(t, s.Today, 8000)
	assert.GreaterOrEqual(t, s.ThisMonth, 80000)
	assert.GreaterOrEqual(t, s.ChangePercentage, -0.05)
	assert.Less(t, s.ChangePercentage, 0.15)
}

func TestCompetitorSeeds_TresFijos(t *testing.T) {
	seeds := newTestGenerator(1).CompetitorSeeds()
	require.Len(t, seeds, 3)
	assert.Equal(t, "Bistro Deluxe", seeds[0].Name)
	assert.Equal(t, fixedNow, seeds[2].LastUpdated)
	for _, c := range seeds {
		assert.Empty(t, c.RestaurantID, "las semillas no pertenecen a ningún tenant")
		assert.Len(t, c.Strengths, 3)
	}
}

func TestReportSeeds_CincoRegistros(t *testing.T) {
	seeds := newTestGenerator(2).ReportSeeds()
	require.Len(t, seeds, 5)
	for i, r := range seeds {
		assert.Equal(t, fixedNow.AddDate(0, 0, -i), r.CreatedAt)
		assert.Contains(t, []string{"pdf", "csv", "excel"}, r.Format)
		assert.Regexp(t, `^[1-5]\.[0-8]MB$`, r.Size)
		assert.Regexp(t, ` Report - \d{2}/\d{2}/2026$`, r.Name)
	}
}

func TestReportName_Capitaliza(t *testing.T) {
	assert.Equal(t, "Customers Report - 03/15/2026", simulation.ReportName("customers", fixedNow))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas demo
// ──────────────────────────────────────────────────────────────────────────────

func TestDemoSales_DentroDeLaVentana(t *testing.T) {
	sales := newTestGenerator(9).DemoSales(3)
	require.GreaterOrEqual(t, len(sales), 15)
	require.LessOrEqual(t, len(sales), 45)

	start := fixedNow.Truncate(24*time.Hour).AddDate(0, 0, -2)
	end := fixedNow.Truncate(24 * time.Hour).AddDate(0, 0, 1)
	for _, s := range sales {
		assert.False(t, s.Date.Before(start), s.Date)
		assert.True(t, s.Date.Before(end), s.Date)
		assert.True(t, s.Total.Equal(s.Quantity.Mul(s.UnitPrice)))
		assert.True(t, s.Quantity.IsPositive())
	}
	assert.Empty(t, newTestGenerator(9).DemoSales(0))
}
