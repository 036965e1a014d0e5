package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/model"
)

// toEntityRow flattens a request into a row. A uid is generated when the
// entity has none. Generation is left at zero for the caller to set.
func toEntityRow(req catalog.AddEntityRequest) (*model.Entity, error) {
	entity := req.Entity
	row := &model.Entity{
		ID:         entity.UID(),
		LocationID: req.LocationID,
		APIVersion: entity.APIVersion,
		Kind:       entity.Kind,
		Namespace:  entity.Namespace(),
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if name := entity.Name(); name != "" {
		row.Name = &name
	}

	if entity.Metadata != nil {
		meta := *entity.Metadata
		meta.UID = ""
		meta.Generation = 0
		data, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to encode metadata: %w", err)
		}
		row.Metadata = datatypes.JSON(data)
	}

	if entity.Spec != nil {
		data, err := json.Marshal(entity.Spec)
		if err != nil {
			return nil, fmt.Errorf("failed to encode spec: %w", err)
		}
		row.Spec = datatypes.JSON(data)
	}

	return row, nil
}

// toEntityResponse rebuilds the envelope from a row, merging the id and
// generation columns back into the metadata.
func toEntityResponse(row *model.Entity) (*catalog.EntityResponse, error) {
	meta := &catalog.EntityMeta{}
	if present(row.Metadata) {
		if err := json.Unmarshal(row.Metadata, meta); err != nil {
			return nil, fmt.Errorf("failed to decode metadata of entity %s: %w", row.ID, err)
		}
	}
	meta.UID = row.ID
	meta.Generation = row.Generation

	var spec map[string]any
	if present(row.Spec) {
		if err := json.Unmarshal(row.Spec, &spec); err != nil {
			return nil, fmt.Errorf("failed to decode spec of entity %s: %w", row.ID, err)
		}
	}

	return &catalog.EntityResponse{
		LocationID: row.LocationID,
		Entity: catalog.Entity{
			APIVersion: row.APIVersion,
			Kind:       row.Kind,
			Metadata:   meta,
			Spec:       spec,
		},
	}, nil
}

// present reports whether a JSON column holds a value. datatypes.JSON scans
// SQL NULL as the literal null.
func present(data datatypes.JSON) bool {
	return len(data) > 0 && string(data) != "null"
}
