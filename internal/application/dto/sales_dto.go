package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleInput fila de venta recibida por JSON. Total opcional: se calcula como quantity*unitPrice.
type SaleInput struct {
	Date      time.Time        `json:"date" validate:"required"`
	ItemID    string           `json:"itemId" validate:"required,max=100"`
	ItemName  string           `json:"itemName" validate:"required,max=200"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
	Total     *decimal.Decimal `json:"total"`
}

// UploadSalesRequest carga JSON de ventas.
type UploadSalesRequest struct {
	Sales []SaleInput `json:"sales" validate:"omitempty,dive"`
}

// UploadSalesResponse resultado de la importación.
type UploadSalesResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	RecordsProcessed int    `json:"recordsProcessed"`
}

// SalesQuery ventana opcional para el listado de ventas (YYYY-MM-DD o RFC3339).
type SalesQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// SaleResponse venta en formato UI.
type SaleResponse struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// ListSalesResponse ventas del tenant.
type ListSalesResponse struct {
	Success bool           `json:"success"`
	Sales   []SaleResponse `json:"sales"`
}
