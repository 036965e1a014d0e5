// Package model defines the database models of the catalog.
//
// These are row types only. The public types live in the catalog package
// and are converted by the store implementation.
//
// # Database Schema
//
//   - locations: registered entity sources, unique by target
//   - entities: flattened entities, unique by (name, namespace)
//   - entities_search: key/value projections of entities, removed with their entity
//   - location_update_log: append-only ingestion outcomes per location
package model
