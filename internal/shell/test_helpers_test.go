package shell_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-cli/internal/inventory"
	"github.com/rogerio-castellano/inventory-cli/internal/shell"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newStore() *inventory.Store {
	return inventory.NewInMemoryStore(inventory.WithLogger(quietLogger()))
}

// runScript feeds lines to a shell over store and returns everything it printed.
func runScript(t *testing.T, store *inventory.Store, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	sh := shell.New(store, input, &out, shell.WithLogger(quietLogger()))

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error from Run: %v", err)
	}
	return out.String()
}

func addLines(sku, name, category, price, qty string) []string {
	return []string{"1", sku, name, category, price, qty}
}

func script(parts ...[]string) []string {
	var lines []string
	for _, p := range parts {
		lines = append(lines, p...)
	}
	return lines
}

func expectContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("expected output to contain %q, got:\n%s", w, out)
		}
	}
}

func expectNotContains(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(out, u) {
			t.Errorf("expected output not to contain %q, got:\n%s", u, out)
		}
	}
}

// expectInOrder checks that each want appears after the previous one.
func expectInOrder(t *testing.T, out string, want ...string) {
	t.Helper()
	rest := out
	for _, w := range want {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Errorf("expected %q in order %v, got:\n%s", w, want, out)
			return
		}
		rest = rest[i+len(w):]
	}
}
