// Package config provides configuration management for the catalog.
//
// Values are resolved in three layers, each overriding the previous one:
//
//   - built-in defaults
//   - the YAML file ${CATALOG_CONFIG_PATH:-/etc/catalog}/catalog.yml
//   - CATALOG_* environment variables
//
// The layer each attribute came from is tracked and reported by
// Attributes, FormatText and FormatJSON.
//
// # Attributes
//
//   - log_level (CATALOG_LOG_LEVEL): debug, info, warn or error
//   - sql_log (CATALOG_SQL_LOG): log every SQL statement
//   - location_types (CATALOG_LOCATION_TYPES): comma separated list of accepted location types
//   - popup_poll_interval_ms (CATALOG_POPUP_POLL_INTERVAL_MS): login popup closure check interval
//
// DATABASE_URL is read by the db package, not here.
package config
