// Package shell is the numbered-menu front end of the inventory store.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/inventory-cli/internal/inventory"
	"github.com/sirupsen/logrus"
)

const defaultCurrency = "₹"

// Shell reads menu choices and field values line by line and prints results.
type Shell struct {
	store    *inventory.Store
	in       *bufio.Reader
	out      io.Writer
	log      logrus.FieldLogger
	currency string

	startReader sync.Once
	lines       chan string
	readErr     error
}

type Option func(*Shell)

func WithCurrency(symbol string) Option {
	return func(s *Shell) { s.currency = symbol }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Shell) { s.log = l }
}

func New(store *inventory.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:    store,
		in:       bufio.NewReader(in),
		out:      out,
		log:      logrus.StandardLogger(),
		currency: defaultCurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user exits, the input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		s.print("Enter choice: ")

		line, err := s.readLine(ctx)
		if errors.Is(err, errInputClosed) {
			s.println()
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := parseInt(line)
		if err != nil {
			s.println("Invalid choice")
			continue
		}
		if choice == choiceExit {
			s.println("Exiting...")
			return nil
		}

		action, found := s.actions()[choice]
		if !found {
			s.println("Invalid choice")
			continue
		}

		err = action(ctx)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, errInputClosed):
			s.println()
			return nil
		case errors.Is(err, errInvalidNumber):
			s.println("Invalid number.")
		default:
			s.log.WithError(err).WithField("choice", choice).Error("menu action failed")
			s.println("Error:", err)
		}
	}
}

func (s *Shell) print(a ...any) {
	fmt.Fprint(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}
