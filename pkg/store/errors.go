package store

import "github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"

// Sentinel errors returned by Database implementations. They are the same
// values as the catalog package errors, so errors.Is works with either.
var (
	ErrNotFound      = catalog.ErrNotFound
	ErrConflict      = catalog.ErrConflict
	ErrInvalidEntity = catalog.ErrInvalidEntity
)
