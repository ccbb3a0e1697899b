package repo

import "github.com/shopspring/decimal"

type MostUpdatedProduct struct {
	SKU         string `json:"sku"`
	UpdateCount int    `json:"update_count"`
}

type Metrics struct {
	TotalProducts      int                `json:"total_products"`
	TotalUnits         int                `json:"total_units"`
	TotalValue         decimal.Decimal    `json:"total_value"`
	TotalTransactions  int                `json:"total_transactions"`
	MostUpdatedProduct MostUpdatedProduct `json:"most_updated_product"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
