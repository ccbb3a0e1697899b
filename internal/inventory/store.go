// Package inventory holds the inventory store: products keyed by SKU, the undo
// history, low-stock membership and the transaction log.
package inventory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// LowStockThreshold is the quantity below which a newly added product is flagged.
const LowStockThreshold = 10

// Store is the inventory of a single session. It is not safe for concurrent use.
type Store struct {
	products     repo.ProductRepository
	transactions repo.TransactionRepository
	metrics      repo.MetricsRepository

	history  History
	lowStock []string

	clock Clock
	log   logrus.FieldLogger
}

type Option func(*Store)

func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore creates a store on top of the given repositories.
func NewStore(
	products repo.ProductRepository,
	transactions repo.TransactionRepository,
	metrics repo.MetricsRepository,
	opts ...Option,
) *Store {
	s := &Store{
		products:     products,
		transactions: transactions,
		metrics:      metrics,
		clock:        systemClock{},
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemoryStore wires a store to fresh in-memory repositories.
func NewInMemoryStore(opts ...Option) *Store {
	productRepo := repo.NewInMemoryProductRepository()
	transactionRepo := repo.NewInMemoryTransactionRepository()
	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo, transactionRepo)

	return NewStore(productRepo, transactionRepo, metricsRepo, opts...)
}

// AddProduct stores a new product. It fails with ErrDuplicateKey when the SKU exists.
// The product is removed again if its transaction cannot be logged.
func (s *Store) AddProduct(sku, name, category string, price decimal.Decimal, quantity int) error {
	product := models.Product{
		SKU:       sku,
		Name:      name,
		Category:  category,
		Price:     price,
		Quantity:  quantity,
		UpdatedAt: s.clock.Now(),
	}

	created, err := s.products.Create(product)
	if err != nil {
		return errors.Wrapf(err, "add %s", sku)
	}

	if err := s.record(models.ActionAdded, sku); err != nil {
		if delErr := s.products.Delete(sku); delErr != nil {
			s.log.WithError(delErr).WithField("sku", sku).Error("rollback of added product failed")
		}
		return err
	}
	s.history.Push(created.Snapshot())

	if created.Quantity < LowStockThreshold {
		s.lowStock = append(s.lowStock, sku)
		s.log.WithFields(logrus.Fields{
			"sku":       sku,
			"quantity":  created.Quantity,
			"threshold": LowStockThreshold,
		}).Warn("product added below low-stock threshold")
	}

	s.log.WithFields(logrus.Fields{"sku": sku, "quantity": quantity}).Debug("product added")
	return nil
}

// Get returns the product with the given SKU.
func (s *Store) Get(sku string) (models.Product, error) {
	p, err := s.products.GetBySKU(sku)
	if err != nil {
		return models.Product{}, errors.Wrapf(err, "get %s", sku)
	}
	return p, nil
}

// ListAll returns every product in the order it was added.
func (s *Store) ListAll() ([]models.Product, error) {
	return s.products.GetAll()
}

// UpdateQuantity sets the quantity of an existing product and pushes its previous
// state onto the undo history. Low-stock membership is not re-evaluated.
func (s *Store) UpdateQuantity(sku string, quantity int) error {
	product, err := s.products.GetBySKU(sku)
	if err != nil {
		return errors.Wrapf(err, "update %s", sku)
	}

	updated := product
	updated.Quantity = quantity
	updated.UpdatedAt = s.clock.Now()
	if _, err := s.products.Update(updated); err != nil {
		return errors.Wrapf(err, "update %s", sku)
	}

	if err := s.record(models.ActionUpdated, sku); err != nil {
		if _, rbErr := s.products.Update(product); rbErr != nil {
			s.log.WithError(rbErr).WithField("sku", sku).Error("rollback of quantity update failed")
		}
		return err
	}
	s.history.Push(product.Snapshot())

	s.log.WithFields(logrus.Fields{
		"sku":      sku,
		"previous": product.Quantity,
		"quantity": quantity,
	}).Debug("quantity updated")
	return nil
}

// UndoResult describes what Undo popped from the history.
type UndoResult struct {
	Snapshot models.Snapshot
	// Restored is false when no stored product matched the snapshot's SKU.
	Restored bool
}

// Undo pops the most recent snapshot and restores the matching product's quantity
// and timestamp from it.
func (s *Store) Undo() (UndoResult, error) {
	snap, ok := s.history.Pop()
	if !ok {
		return UndoResult{}, ErrEmptyHistory
	}

	product, err := s.products.GetBySKU(snap.SKU)
	if errors.Is(err, repo.ErrProductNotFound) {
		s.log.WithField("sku", snap.SKU).Debug("undo snapshot discarded, product missing")
		return UndoResult{Snapshot: snap}, nil
	}
	if err != nil {
		return UndoResult{}, errors.Wrapf(err, "undo %s", snap.SKU)
	}

	product.Quantity = snap.Quantity
	product.UpdatedAt = snap.UpdatedAt
	if _, err := s.products.Update(product); err != nil {
		return UndoResult{}, errors.Wrapf(err, "undo %s", snap.SKU)
	}

	s.log.WithFields(logrus.Fields{"sku": snap.SKU, "quantity": snap.Quantity}).Debug("undo applied")
	return UndoResult{Snapshot: snap, Restored: true}, nil
}

// HistoryLen reports how many snapshots Undo can still pop.
func (s *Store) HistoryLen() int {
	return s.history.Len()
}

// ListLowStock returns the products flagged at add time, in the order they were
// flagged, with their current field values.
func (s *Store) ListLowStock() ([]models.Product, error) {
	products := make([]models.Product, 0, len(s.lowStock))
	for _, sku := range s.lowStock {
		p, err := s.products.GetBySKU(sku)
		if err != nil {
			return nil, errors.Wrapf(err, "low stock %s", sku)
		}
		products = append(products, p)
	}
	return products, nil
}

// ListTransactions returns the transaction log, oldest first.
func (s *Store) ListTransactions() ([]models.Transaction, error) {
	return s.transactions.GetAll()
}

// SortedByPrice returns all products by ascending price. Equal prices keep insertion order.
func (s *Store) SortedByPrice() ([]models.Product, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price.LessThan(products[j].Price)
	})
	return products, nil
}

// SortedByValue returns all products by descending value. Equal values keep insertion order.
func (s *Store) SortedByValue() ([]models.Product, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Value().GreaterThan(products[j].Value())
	})
	return products, nil
}

// SortedBySKU returns all products by ascending SKU.
func (s *Store) SortedBySKU() ([]models.Product, error) {
	return s.products.SortedBySKU()
}

// Summary aggregates the dashboard metrics with the low-stock count.
type Summary struct {
	repo.Metrics
	LowStockCount int `json:"low_stock_count"`
}

func (s *Store) Summary() (Summary, error) {
	m, err := s.metrics.GetDashboardMetrics()
	if err != nil {
		return Summary{}, errors.Wrap(err, "dashboard metrics")
	}
	return Summary{Metrics: m, LowStockCount: len(s.lowStock)}, nil
}

func (s *Store) record(action models.TransactionAction, sku string) error {
	tx := models.Transaction{
		ID:        uuid.New(),
		Action:    action,
		SKU:       sku,
		CreatedAt: s.clock.Now(),
	}
	if err := s.transactions.Log(tx); err != nil {
		return errors.Wrapf(err, "log %s", tx)
	}
	s.log.WithFields(logrus.Fields{
		"tx_id":      tx.ID.String(),
		"action":     tx.Action,
		"sku":        tx.SKU,
		"created_at": tx.CreatedAt,
	}).Debug("transaction logged")
	return nil
}
