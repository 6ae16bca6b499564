package entity

import "time"

// Severidades de una anomalía.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// ExpectedRange rango esperado para la métrica afectada.
type ExpectedRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Anomaly resultado de una pasada del detector. Solo lectura una vez persistida.
type Anomaly struct {
	ID             string        `json:"id"`
	RestaurantID   string        `json:"restaurant_id"`
	Type           string        `json:"type"`
	Description    string        `json:"description"`
	Severity       string        `json:"severity"`
	DetectedAt     time.Time     `json:"detected_at"`
	AffectedMetric string        `json:"affected_metric"`
	Value          int           `json:"value"`
	ExpectedRange  ExpectedRange `json:"expected_range"`
	CreatedAt      time.Time     `json:"created_at"`
}
