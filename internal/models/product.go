package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product entity in the inventory system.
type Product struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Value is the stock value of the product, price times quantity on hand.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Snapshot copies every field of p so later mutations of p cannot reach it.
func (p Product) Snapshot() Snapshot {
	return Snapshot{
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Quantity:  p.Quantity,
		UpdatedAt: p.UpdatedAt,
	}
}
