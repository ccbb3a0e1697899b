package repo

import (
	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

// InMemoryTransactionRepository keeps the transaction log in append order.
type InMemoryTransactionRepository struct {
	transactions []models.Transaction
}

func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{
		transactions: []models.Transaction{},
	}
}

// Log appends a transaction to the end of the log
func (r *InMemoryTransactionRepository) Log(tx models.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

// GetAll returns a copy of the log, oldest first
func (r *InMemoryTransactionRepository) GetAll() ([]models.Transaction, error) {
	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

func (r *InMemoryTransactionRepository) Count() (int, error) {
	return len(r.transactions), nil
}
