// Package store provides the storage abstraction of the software catalog.
//
// Callers depend on the Database interface rather than on a concrete
// database, so ingestion and the CLI can be exercised against fakes. The
// GORM implementation lives in the gorm subpackage.
//
// # Usage
//
//	db := gormstore.NewDatabase(conn)
//	resp, err := db.Entity(ctx, "my-service", nil)
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
