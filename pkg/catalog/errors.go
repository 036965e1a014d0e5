package catalog

import "errors"

// ErrNotFound is returned when a lookup by id or by name and namespace has no single match
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write contradicts the stored state
var ErrConflict = errors.New("conflict")

// ErrInvalidEntity is returned when an envelope is missing required fields
var ErrInvalidEntity = errors.New("invalid entity")
