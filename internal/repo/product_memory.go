package repo

import (
	"github.com/google/btree"
	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

const skuIndexDegree = 32

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are keyed by SKU; order keeps insertion order and index keeps SKU order.
type InMemoryProductRepository struct {
	products map[string]models.Product
	order    []string
	index    *btree.BTreeG[string]
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: map[string]models.Product{},
		order:    []string{},
		index:    btree.NewG(skuIndexDegree, func(a, b string) bool { return a < b }),
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if _, exists := r.products[product.SKU]; exists {
		return models.Product{}, ErrDuplicatedValueUnique
	}

	r.products[product.SKU] = product
	r.order = append(r.order, product.SKU)
	r.index.ReplaceOrInsert(product.SKU)
	return product, nil
}

// GetAll retrieves all products in the order they were created.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.order))
	for _, sku := range r.order {
		products = append(products, r.products[sku])
	}
	return products, nil
}

// GetBySKU retrieves a product by its SKU.
func (r *InMemoryProductRepository) GetBySKU(sku string) (models.Product, error) {
	p, ok := r.products[sku]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Update replaces the stored product with the same SKU.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	if _, ok := r.products[product.SKU]; !ok {
		return models.Product{}, ErrProductNotFound
	}
	r.products[product.SKU] = product
	return product, nil
}

// Delete removes a product from the repository by its SKU.
func (r *InMemoryProductRepository) Delete(sku string) error {
	if _, ok := r.products[sku]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, sku)
	r.index.Delete(sku)
	for i, s := range r.order {
		if s == sku {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// SortedBySKU retrieves all products in ascending SKU order.
func (r *InMemoryProductRepository) SortedBySKU() ([]models.Product, error) {
	products := make([]models.Product, 0, r.index.Len())
	r.index.Ascend(func(sku string) bool {
		products = append(products, r.products[sku])
		return true
	})
	return products, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = map[string]models.Product{}
	r.order = []string{}
	r.index.Clear(false)
}
