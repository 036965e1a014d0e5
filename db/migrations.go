// Package db embeds the SQL schema migrations of the catalog.
//
// Migrations follow the golang-migrate naming scheme
// (<version>_<title>.up.sql / .down.sql) and are written in SQL that both
// PostgreSQL and SQLite accept.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
