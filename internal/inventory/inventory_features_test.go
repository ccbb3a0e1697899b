package inventory_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/pkg/errors"
	"github.com/rogerio-castellano/inventory-cli/internal/inventory"
	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type storeTestContext struct {
	store   *inventory.Store
	lastErr error
}

func (c *storeTestContext) anEmptyInventory() error {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c.store = inventory.NewInMemoryStore(inventory.WithLogger(logger))
	c.lastErr = nil
	return nil
}

func (c *storeTestContext) iAddProduct(sku, name, category, priceStr string, qty int) error {
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return err
	}
	c.lastErr = c.store.AddProduct(sku, name, category, price, qty)
	return nil
}

func (c *storeTestContext) iSetTheQuantity(sku string, qty int) error {
	c.lastErr = c.store.UpdateQuantity(sku, qty)
	return nil
}

func (c *storeTestContext) iUndoTheLastChange() error {
	_, c.lastErr = c.store.Undo()
	return nil
}

func (c *storeTestContext) theLastOperationFailsWith(kind string) error {
	want := map[string]error{
		"duplicate key": inventory.ErrDuplicateKey,
		"not found":     inventory.ErrNotFound,
		"empty history": inventory.ErrEmptyHistory,
	}[kind]
	if want == nil {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if !errors.Is(c.lastErr, want) {
		return fmt.Errorf("expected %v, got %v", want, c.lastErr)
	}
	return nil
}

func (c *storeTestContext) productHasQuantity(sku string, qty int) error {
	p, err := c.store.Get(sku)
	if err != nil {
		return err
	}
	if p.Quantity != qty {
		return fmt.Errorf("expected quantity %d for %s, got %d", qty, sku, p.Quantity)
	}
	return nil
}

func (c *storeTestContext) lowStockContains(sku string) error {
	found, err := c.lowStockHas(sku)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("expected %s in low stock", sku)
	}
	return nil
}

func (c *storeTestContext) lowStockDoesNotContain(sku string) error {
	found, err := c.lowStockHas(sku)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("did not expect %s in low stock", sku)
	}
	return nil
}

func (c *storeTestContext) lowStockHas(sku string) (bool, error) {
	low, err := c.store.ListLowStock()
	if err != nil {
		return false, err
	}
	for _, p := range low {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (c *storeTestContext) theInventoryHasProducts(n int) error {
	all, err := c.store.ListAll()
	if err != nil {
		return err
	}
	if len(all) != n {
		return fmt.Errorf("expected %d products, got %d", n, len(all))
	}
	return nil
}

func (c *storeTestContext) theTransactionLogIsEmpty() error {
	return c.theTransactionLogReads("")
}

func (c *storeTestContext) theTransactionLogReads(want string) error {
	txs, err := c.store.ListTransactions()
	if err != nil {
		return err
	}
	got := make([]string, len(txs))
	for i, tx := range txs {
		got[i] = tx.String()
	}
	if strings.Join(got, ", ") != want {
		return fmt.Errorf("expected log %q, got %q", want, strings.Join(got, ", "))
	}
	return nil
}

func (c *storeTestContext) sortingByPriceGives(want string) error {
	sorted, err := c.store.SortedByPrice()
	if err != nil {
		return err
	}
	return expectOrder(sorted, want)
}

func (c *storeTestContext) sortingByValueGives(want string) error {
	sorted, err := c.store.SortedByValue()
	if err != nil {
		return err
	}
	return expectOrder(sorted, want)
}

func expectOrder(products []models.Product, want string) error {
	if got := strings.Join(skus(products), ", "); got != want {
		return fmt.Errorf("expected order %q, got %q", want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storeTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.anEmptyInventory()
	})

	// Given steps
	ctx.Step(`^an empty inventory$`, tc.anEmptyInventory)

	// When steps
	ctx.Step(`^I add product "([^"]*)" named "([^"]*)" in "([^"]*)" priced ([0-9.]+) with quantity (\d+)$`, tc.iAddProduct)
	ctx.Step(`^I set the quantity of "([^"]*)" to (\d+)$`, tc.iSetTheQuantity)
	ctx.Step(`^I undo the last change$`, tc.iUndoTheLastChange)

	// Then steps
	ctx.Step(`^the last operation fails with "([^"]*)"$`, tc.theLastOperationFailsWith)
	ctx.Step(`^product "([^"]*)" has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^the low-stock list contains "([^"]*)"$`, tc.lowStockContains)
	ctx.Step(`^the low-stock list does not contain "([^"]*)"$`, tc.lowStockDoesNotContain)
	ctx.Step(`^the inventory has (\d+) products$`, tc.theInventoryHasProducts)
	ctx.Step(`^the transaction log is empty$`, tc.theTransactionLogIsEmpty)
	ctx.Step(`^the transaction log reads "([^"]*)"$`, tc.theTransactionLogReads)
	ctx.Step(`^sorting by price gives "([^"]*)"$`, tc.sortingByPriceGives)
	ctx.Step(`^sorting by value gives "([^"]*)"$`, tc.sortingByValueGives)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
