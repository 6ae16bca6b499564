package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

// anomalyCatalog tipos de anomalía emparejados 1:1 con su descripción.
var anomalyCatalog = []struct {
	Type        string
	Description string
}{
	{"Sales Spike", "Unusual increase in sales compared to historical data"},
	{"Sales Drop", "Significant drop in sales compared to expected values"},
	{"Inventory Discrepancy", "Inventory levels don't match sales records"},
	{"Order Cancellation Rate", "Higher than normal order cancellation rate"},
	{"Average Order Value", "Unusual change in average order value"},
	{"Customer Wait Time", "Customer wait times significantly longer than normal"},
	{"Staff Productivity", "Staff productivity metrics show unusual patterns"},
}

var severities = []string{entity.SeverityLow, entity.SeverityMedium, entity.SeverityHigh}

// AnomalyCount cantidad de anomalías reportadas según la sensibilidad.
func AnomalyCount(sensitivity string) int {
	switch sensitivity {
	case "high":
		return 5
	case "medium":
		return 3
	default:
		return 1
	}
}

// Anomalies genera el resultado de una pasada de detección.
//
// detected_at se desplaza hacia atrás desde ahora: días enteros en [0,7) para "week",
// días en [0,30) para "month" y horas en [0,24) para cualquier otro valor.
// El rango esperado es [0.7·v, 1.3·v] truncado a entero.
func (g *Generator) Anomalies(timeframe, sensitivity string) []entity.Anomaly {
	now := g.now()
	count := AnomalyCount(sensitivity)
	out := make([]entity.Anomaly, 0, count)

	for i := 0; i < count; i++ {
		kind := anomalyCatalog[g.src.IntN(len(anomalyCatalog))]

		var detectedAt time.Time
		switch timeframe {
		case "week":
			detectedAt = now.AddDate(0, 0, -g.src.IntN(7))
		case "month":
			detectedAt = now.AddDate(0, 0, -g.src.IntN(30))
		default:
			detectedAt = now.Add(-time.Duration(g.src.IntN(24)) * time.Hour)
		}

		value := g.intBetween(100, 1100)
		out = append(out, entity.Anomaly{
			ID:             fmt.Sprintf("anomaly-%d-%d", now.UnixMilli(), i),
			Type:           kind.Type,
			Description:    kind.Description,
			Severity:       pick(g, severities),
			DetectedAt:     detectedAt,
			AffectedMetric: metricName(kind.Type),
			Value:          value,
			ExpectedRange: entity.ExpectedRange{
				Min: int(float64(value) * 0.7),
				Max: int(float64(value) * 1.3),
			},
		})
	}
	return out
}

// metricName "Sales Spike" → "sales_spike".
func metricName(kind string) string {
	return strings.Join(strings.Fields(strings.ToLower(kind)), "_")
}
