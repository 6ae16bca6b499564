package dto

import "time"

// ReportSectionsDTO secciones a incluir.
type ReportSectionsDTO struct {
	Summary         bool `json:"summary"`
	Charts          bool `json:"charts"`
	Details         bool `json:"details"`
	Recommendations bool `json:"recommendations"`
}

// GenerateReportRequest parámetros de generación de reporte.
type GenerateReportRequest struct {
	ReportType string            `json:"reportType" validate:"required,oneof=sales inventory staff customers"`
	Format     string            `json:"format" validate:"required,oneof=pdf csv excel xml"`
	Timeframe  string            `json:"timeframe" validate:"required,max=20"`
	StartDate  *time.Time        `json:"startDate"`
	EndDate    *time.Time        `json:"endDate"`
	Sections   ReportSectionsDTO `json:"sections"`
}

// ReportResponse metadatos del reporte en formato UI.
type ReportResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Type              string            `json:"type"`
	Format            string            `json:"format"`
	Timeframe         string            `json:"timeframe"`
	StartDate         *time.Time        `json:"startDate,omitempty"`
	EndDate           *time.Time        `json:"endDate,omitempty"`
	Sections          ReportSectionsDTO `json:"sections"`
	AIRecommendations string            `json:"aiRecommendations,omitempty"`
	Size              string            `json:"size"`
	Checksum          string            `json:"checksum,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// GenerateReportResponse reporte generado y su URL de descarga.
type GenerateReportResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	Report      ReportResponse `json:"report"`
	DownloadURL string         `json:"downloadUrl"`
}

// ReportHistoryResponse historial (almacenado o de ejemplo).
type ReportHistoryResponse struct {
	Success bool             `json:"success"`
	Reports []ReportResponse `json:"reports"`
}
