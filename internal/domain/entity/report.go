package entity

import "time"

// Tipos de reporte.
const (
	ReportTypeSales     = "sales"
	ReportTypeInventory = "inventory"
	ReportTypeStaff     = "staff"
	ReportTypeCustomers = "customers"
)

// Formatos de exportación.
const (
	ReportFormatPDF   = "pdf"
	ReportFormatCSV   = "csv"
	ReportFormatExcel = "excel"
	ReportFormatXML   = "xml"
)

// ReportSections secciones incluidas en el reporte.
type ReportSections struct {
	Summary         bool `json:"summary"`
	Charts          bool `json:"charts"`
	Details         bool `json:"details"`
	Recommendations bool `json:"recommendations"`
}

// Report metadatos de un reporte generado. No se modifica después de creado.
type Report struct {
	ID                string         `json:"id"`
	RestaurantID      string         `json:"restaurant_id"`
	Name              string         `json:"name"`
	Type              string         `json:"type"`
	Format            string         `json:"format"`
	Timeframe         string         `json:"timeframe"` // day, week, month, custom
	StartDate         *time.Time     `json:"start_date,omitempty"`
	EndDate           *time.Time     `json:"end_date,omitempty"`
	Sections          ReportSections `json:"sections"`
	AIRecommendations string         `json:"ai_recommendations,omitempty"`
	Size              string         `json:"size"`     // ej. "1.4MB", "12.3KB"
	Checksum          string         `json:"checksum"` // sha256 hex del archivo renderizado
	CreatedAt         time.Time      `json:"created_at"`
}
