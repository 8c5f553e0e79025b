package rounddb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested trip does not exist in the store.
	ErrNotFound = errors.New("trip not found")

	// ErrAlreadyExists indicates a trip with the same ID was already created.
	ErrAlreadyExists = errors.New("trip already exists")
)
