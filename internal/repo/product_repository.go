package repo

import "github.com/rogerio-castellano/inventory-cli/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetBySKU(sku string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(sku string) error
	SortedBySKU() ([]models.Product, error)
}
