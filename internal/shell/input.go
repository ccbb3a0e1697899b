package shell

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	errInputClosed   = errors.New("input closed")
	errInvalidNumber = errors.New("invalid number")
)

// readInput feeds s.lines until the input ends. It runs at most once per Shell and
// outlives Run when ctx is cancelled mid-read.
func (s *Shell) readInput() {
	defer close(s.lines)
	for {
		line, err := s.in.ReadString('\n')
		if line != "" {
			s.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			if err != io.EOF {
				s.readErr = errors.Wrap(err, "read input")
			}
			return
		}
	}
}

// readLine returns the next input line, errInputClosed at end of input, or the
// context error once ctx is done.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	s.startReader.Do(func() {
		s.lines = make(chan string)
		go s.readInput()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			if s.readErr != nil {
				return "", s.readErr
			}
			return "", errInputClosed
		}
		// A line racing a cancellation is dropped.
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return line, nil
	}
}

// ask prints a prompt and reads the answer.
func (s *Shell) ask(ctx context.Context, prompt string) (string, error) {
	s.print(prompt)
	return s.readLine(ctx)
}

func (s *Shell) askInt(ctx context.Context, prompt string) (int, error) {
	line, err := s.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parseInt(line)
}

func (s *Shell) askDecimal(ctx context.Context, prompt string) (decimal.Decimal, error) {
	line, err := s.ask(ctx, prompt)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(errInvalidNumber, "%q", line)
	}
	return d, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(errInvalidNumber, "%q", s)
	}
	return v, nil
}
