package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un registro de venta importado (CSV, XLSX o JSON). Nunca se modifica.
type Sale struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Date         time.Time       `json:"date"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"` // Quantity * UnitPrice si no viene en el archivo
	CreatedAt    time.Time       `json:"created_at"`
}
