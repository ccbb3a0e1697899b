package repo

import (
	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

type TransactionRepository interface {
	Log(tx models.Transaction) error
	GetAll() ([]models.Transaction, error)
	Count() (int, error)
}
