package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/config"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/db"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
	gormstore "github.com/doodlesbykumbi/catalog-in-go/pkg/store/gorm"
)

// openDatabase connects to DATABASE_URL using the loaded configuration.
func openDatabase() (store.Database, error) {
	conn, err := db.Connect(db.Config{LogSQL: config.Get().SQLLog})
	if err != nil {
		return nil, err
	}
	return gormstore.NewDatabase(conn), nil
}

// writeOutput encodes v as json or yaml.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q (expected yaml or json)", format)
}

// splitRef parses "namespace/name" or "name".
func splitRef(ref string) (name string, namespace *string) {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ns := ref[:i]
		return ref[i+1:], &ns
	}
	return ref, nil
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
