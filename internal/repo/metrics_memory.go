package repo

import (
	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/shopspring/decimal"
)

type InMemoryMetricsRepository struct {
	productRepo     ProductRepository
	transactionRepo TransactionRepository
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{TotalValue: decimal.Zero}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	for _, product := range products {
		m.TotalUnits += product.Quantity
		m.TotalValue = m.TotalValue.Add(product.Value())
	}

	transactions, err := i.transactionRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalTransactions = len(transactions)

	// On a tie the product that reached the count first wins.
	updates := make(map[string]int)
	for _, tx := range transactions {
		if tx.Action != models.ActionUpdated {
			continue
		}
		updates[tx.SKU]++
		if updates[tx.SKU] > m.MostUpdatedProduct.UpdateCount {
			m.MostUpdatedProduct.SKU = tx.SKU
			m.MostUpdatedProduct.UpdateCount = updates[tx.SKU]
		}
	}

	return m, nil
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	transactionRepo TransactionRepository,
) {
	i.productRepo = productRepo
	i.transactionRepo = transactionRepo
}
