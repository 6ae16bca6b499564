package simulation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

type menuItem struct {
	ID    string
	Name  string
	Price string
}

// demoMenu mismo catálogo que los productos más vendidos del dashboard.
var demoMenu = []menuItem{
	{ID: "1", Name: "Signature Burger", Price: "12.00"},
	{ID: "2", Name: "Truffle Fries", Price: "9.00"},
	{ID: "3", Name: "Craft IPA", Price: "9.00"},
	{ID: "4", Name: "Caesar Salad", Price: "12.00"},
	{ID: "5", Name: "Chocolate Lava Cake", Price: "9.00"},
}

// DemoSales genera ventas de ejemplo para los últimos `days` días (hoy incluido):
// entre 5 y 15 líneas por día, cantidades de 1 a 5. Sin ID ni restaurante asignados.
func (g *Generator) DemoSales(days int) []entity.Sale {
	if days <= 0 {
		return nil
	}
	today := g.now().UTC().Truncate(24 * time.Hour)
	var out []entity.Sale
	for d := days - 1; d >= 0; d-- {
		day := today.AddDate(0, 0, -d)
		lines := g.intBetween(5, 16)
		for i := 0; i < lines; i++ {
			item := pick(g, demoMenu)
			qty := decimal.NewFromInt(int64(g.intBetween(1, 6)))
			price := decimal.RequireFromString(item.Price)
			out = append(out, entity.Sale{
				Date:      day.Add(time.Duration(g.intBetween(11, 23)) * time.Hour),
				ItemID:    item.ID,
				ItemName:  item.Name,
				Quantity:  qty,
				UnitPrice: price,
				Total:     qty.Mul(price),
			})
		}
	}
	return out
}
