package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the state of a product at one point in time, kept for undo.
type Snapshot struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}
