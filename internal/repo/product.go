package repo

import "github.com/pkg/errors"

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicatedValueUnique is returned when a product with the same SKU already exists.
	ErrDuplicatedValueUnique = errors.New("product already exists")
)
