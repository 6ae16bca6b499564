package dto

import "time"

// DetectAnomaliesRequest parámetros del detector. Ambos son obligatorios; valores no
// reconocidos usan el comportamiento por defecto.
type DetectAnomaliesRequest struct {
	Timeframe   string `json:"timeframe" validate:"required,max=20"`
	Sensitivity string `json:"sensitivity" validate:"required,max=20"`
}

// ExpectedRangeResponse rango esperado de la métrica.
type ExpectedRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AnomalyResponse anomalía tal como la consume el dashboard.
type AnomalyResponse struct {
	ID             string                `json:"id"`
	Type           string                `json:"type"`
	Description    string                `json:"description"`
	Severity       string                `json:"severity"`
	DetectedAt     time.Time             `json:"detectedAt"`
	AffectedMetric string                `json:"affectedMetric"`
	Value          int                   `json:"value"`
	ExpectedRange  ExpectedRangeResponse `json:"expectedRange"`
}

// DetectAnomaliesResponse resultado de una pasada del detector.
type DetectAnomaliesResponse struct {
	Success   bool              `json:"success"`
	Anomalies []AnomalyResponse `json:"anomalies"`
	Analysis  string            `json:"analysis,omitempty"`
}

// ListAnomaliesResponse anomalías persistidas del tenant.
type ListAnomaliesResponse struct {
	Success   bool              `json:"success"`
	Anomalies []AnomalyResponse `json:"anomalies"`
}
