package inventory

import (
	"github.com/pkg/errors"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

var (
	// ErrDuplicateKey is returned when adding a product whose SKU is already stored.
	ErrDuplicateKey = repo.ErrDuplicatedValueUnique
	// ErrNotFound is returned when no product has the requested SKU.
	ErrNotFound = repo.ErrProductNotFound
	// ErrEmptyHistory is returned by Undo when there is nothing to undo.
	ErrEmptyHistory = errors.New("nothing to undo")
)
