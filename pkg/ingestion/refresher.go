// Package ingestion reads entity descriptors from a location and applies
// them to the catalog.
package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// LocationTypeFile is the type of locations whose target is a local path
const LocationTypeFile = "file"

// ErrUnsupportedLocationType is returned for locations that cannot be read
var ErrUnsupportedLocationType = errors.New("unsupported location type")

// Result summarizes one refresh of a location
type Result struct {
	Applied []catalog.EntityResponse
	Failed  []Failure
}

// Failure is a descriptor that could not be applied
type Failure struct {
	Name string
	Err  error
}

// Refresher applies the descriptors of a location to the catalog
type Refresher struct {
	db store.Database
}

// NewRefresher creates a new Refresher
func NewRefresher(db store.Database) *Refresher {
	return &Refresher{db: db}
}

// Refresh reads every descriptor of the location and adds or updates the
// matching entities. Each descriptor gets its own update log event. A
// location that cannot be read or parsed gets a single fail event and the
// error is returned. Failures of individual descriptors are reported in the
// Result, not as an error.
func (r *Refresher) Refresh(ctx context.Context, location catalog.Location) (Result, error) {
	if location.Type != LocationTypeFile {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedLocationType, location.Type)
	}

	entities, err := readDescriptors(location.Target)
	if err != nil {
		msg := err.Error()
		if logErr := r.db.AddLocationUpdateLogEvent(ctx, location.ID, catalog.StatusFail, nil, &msg); logErr != nil {
			return Result{}, errors.Join(err, logErr)
		}
		return Result{}, err
	}

	var result Result
	for _, entity := range entities {
		name := entity.Name()
		var componentName *string
		if name != "" {
			componentName = &name
		}

		resp, err := r.db.AddOrUpdateEntity(ctx, catalog.AddEntityRequest{
			LocationID: &location.ID,
			Entity:     entity,
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to apply entity", "location", location.ID, "ref", entity.Ref(), "error", err)
			result.Failed = append(result.Failed, Failure{Name: name, Err: err})

			msg := err.Error()
			if logErr := r.db.AddLocationUpdateLogEvent(ctx, location.ID, catalog.StatusFail, componentName, &msg); logErr != nil {
				return result, logErr
			}
			continue
		}

		result.Applied = append(result.Applied, *resp)
		if err := r.db.AddLocationUpdateLogEvent(ctx, location.ID, catalog.StatusSuccess, componentName, nil); err != nil {
			return result, err
		}
	}

	slog.InfoContext(ctx, "location refreshed",
		"location", location.ID,
		"target", location.Target,
		"applied", len(result.Applied),
		"failed", len(result.Failed),
	)
	return result, nil
}

// readDescriptors decodes the descriptor file at path.
func readDescriptors(path string) ([]catalog.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	entities, err := DecodeDescriptors(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entities, nil
}

// DecodeDescriptors decodes a stream of YAML documents, one entity each.
// Empty documents are skipped.
func DecodeDescriptors(r io.Reader) ([]catalog.Entity, error) {
	var entities []catalog.Entity
	decoder := yaml.NewDecoder(r)
	for i := 1; ; i++ {
		var node yaml.Node
		if err := decoder.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(node.Content) == 0 || (node.Content[0].Kind == yaml.ScalarNode && node.Content[0].Tag == "!!null") {
			continue
		}

		var entity catalog.Entity
		if err := node.Decode(&entity); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
