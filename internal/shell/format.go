package shell

import (
	"fmt"

	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

func (s *Shell) money(d decimal.Decimal) string {
	return s.currency + d.StringFixed(moneyPlaces)
}

// formatProduct renders p as "SKU | Name | Category | Price | Qty: N | Value: V".
func (s *Shell) formatProduct(p models.Product) string {
	return fmt.Sprintf("%s | %s | %s | %s | Qty: %d | Value: %s",
		p.SKU, p.Name, p.Category, s.money(p.Price), p.Quantity, s.money(p.Value()))
}

func (s *Shell) printProducts(products []models.Product) {
	for _, p := range products {
		s.println(s.formatProduct(p))
	}
}
