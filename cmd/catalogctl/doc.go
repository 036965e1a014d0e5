// Command catalogctl manages a software catalog stored in PostgreSQL.
//
// The catalog holds entities, structured descriptors of software components
// shaped like Kubernetes objects, and the locations they were read from.
//
// # Quick Start
//
//	# Create the schema
//	catalogctl db migrate
//
//	# Register a descriptor file and ingest it
//	catalogctl location add file /srv/catalog/catalog-info.yaml
//	catalogctl location refresh <location-id>
//
//	# Inspect the result
//	catalogctl entity list
//	catalogctl location log <location-id>
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - CATALOG_CONFIG_PATH: directory holding catalog.yml (default: /etc/catalog)
//   - CATALOG_LOG_LEVEL: Log level (debug, info, warn, error)
//   - CATALOG_SQL_LOG: Set to "true" to log SQL statements
package main
