package shell

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/inventory-cli/internal/inventory"
)

func (s *Shell) addProduct(ctx context.Context) error {
	sku, err := s.ask(ctx, "Enter SKU: ")
	if err != nil {
		return err
	}
	name, err := s.ask(ctx, "Enter Name: ")
	if err != nil {
		return err
	}
	category, err := s.ask(ctx, "Enter Category: ")
	if err != nil {
		return err
	}
	price, err := s.askDecimal(ctx, "Enter Price: ")
	if err != nil {
		return err
	}
	qty, err := s.askInt(ctx, "Enter Quantity: ")
	if err != nil {
		return err
	}

	err = s.store.AddProduct(sku, name, category, price, qty)
	if errors.Is(err, inventory.ErrDuplicateKey) {
		s.println("Product exists.")
		return nil
	}
	if err != nil {
		return err
	}

	s.println("Product added.")
	return nil
}

func (s *Shell) viewProducts(ctx context.Context) error {
	products, err := s.store.ListAll()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		s.println("No products.")
		return nil
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) updateQuantity(ctx context.Context) error {
	sku, err := s.ask(ctx, "Enter SKU: ")
	if err != nil {
		return err
	}

	// Unknown SKUs are rejected before the quantity prompt.
	if _, err := s.store.Get(sku); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			s.println("Not found.")
			return nil
		}
		return err
	}

	qty, err := s.askInt(ctx, "Enter new qty: ")
	if err != nil {
		return err
	}

	if err := s.store.UpdateQuantity(sku, qty); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			s.println("Not found.")
			return nil
		}
		return err
	}

	s.println("Updated.")
	return nil
}

func (s *Shell) undo(ctx context.Context) error {
	result, err := s.store.Undo()
	if errors.Is(err, inventory.ErrEmptyHistory) {
		s.println("Nothing to undo")
		return nil
	}
	if err != nil {
		return err
	}

	if result.Restored {
		s.println("Undo success")
	}
	return nil
}

func (s *Shell) showLowStock(ctx context.Context) error {
	products, err := s.store.ListLowStock()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		s.println("No low stock.")
		return nil
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) showTransactions(ctx context.Context) error {
	transactions, err := s.store.ListTransactions()
	if err != nil {
		return err
	}
	for _, tx := range transactions {
		s.println(tx.String())
	}
	return nil
}

func (s *Shell) sortByPrice(ctx context.Context) error {
	products, err := s.store.SortedByPrice()
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) sortByValue(ctx context.Context) error {
	products, err := s.store.SortedByValue()
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) sortBySKU(ctx context.Context) error {
	products, err := s.store.SortedBySKU()
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) showSummary(ctx context.Context) error {
	sum, err := s.store.Summary()
	if err != nil {
		return err
	}

	s.println("Products:", sum.TotalProducts)
	s.println("Units on hand:", sum.TotalUnits)
	s.println("Stock value:", s.money(sum.TotalValue))
	s.println("Low stock:", sum.LowStockCount)
	s.println("Transactions:", sum.TotalTransactions)
	if sum.MostUpdatedProduct.UpdateCount > 0 {
		s.printf("Most updated: %s (%d updates)\n",
			sum.MostUpdatedProduct.SKU, sum.MostUpdatedProduct.UpdateCount)
	}
	return nil
}
