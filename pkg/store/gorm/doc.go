// Package gorm provides the GORM-based implementation of store.Database.
//
// Entities are flattened into the entities table: uid and generation become
// the id and generation columns, name and namespace are copied out for the
// uniqueness constraint, and the remaining metadata and the spec are stored
// as JSON text.
package gorm
