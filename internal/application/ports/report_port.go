package ports

import (
	"context"
	"time"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ReportItemLine ventas agregadas por producto dentro de la ventana del reporte.
type ReportItemLine struct {
	ItemID   string
	ItemName string
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

// ReportData todo lo que un renderer necesita para producir el archivo.
type ReportData struct {
	Report         *entity.Report
	RestaurantName string
	GeneratedAt    time.Time
	Sales          []*entity.Sale   // detalle, orden por fecha
	Items          []ReportItemLine // agregado, orden por ingreso descendente
	TotalRevenue   decimal.Decimal
	TotalQuantity  decimal.Decimal
}

// ReportRenderer produce el archivo de un formato concreto (pdf, csv, excel, xml).
type ReportRenderer interface {
	Format() string
	ContentType() string
	Extension() string
	Render(ctx context.Context, data *ReportData) ([]byte, error)
}
