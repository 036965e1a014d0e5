package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// Ensure Database implements store.Database
var _ store.Database = (*Database)(nil)

// Database implements store.Database using GORM
type Database struct {
	db *gorm.DB
}

// NewDatabase creates a new Database
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Transaction runs fn with a Database bound to a new transaction.
// Nested calls use savepoints.
func (d *Database) Transaction(ctx context.Context, fn func(tx store.Database) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Database{db: tx})
	})
}
