package gorm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/model"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// AddOrUpdateEntity inserts or updates an entity inside one transaction and
// returns the row as stored.
func (d *Database) AddOrUpdateEntity(ctx context.Context, req catalog.AddEntityRequest) (*catalog.EntityResponse, error) {
	if err := req.Entity.Validate(); err != nil {
		return nil, err
	}

	row, err := toEntityRow(req)
	if err != nil {
		return nil, err
	}

	var resp *catalog.EntityResponse
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findExisting(tx, req.Entity, row)
		if err != nil {
			return err
		}

		if existing == nil {
			row.Generation = 1
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			slog.DebugContext(ctx, "entity created", "uid", row.ID, "ref", req.Entity.Ref())
		} else {
			if err := updateEntity(tx, existing, row, req); err != nil {
				return err
			}
			slog.DebugContext(ctx, "entity updated", "uid", existing.ID, "ref", req.Entity.Ref(), "generation", existing.Generation+1)
		}

		var stored model.Entity
		if err := tx.Where("id = ?", row.ID).First(&stored).Error; err != nil {
			return err
		}
		resp, err = toEntityResponse(&stored)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// findExisting returns the row the request refers to, or nil when the
// request describes a new entity. row.ID is pointed at the existing row.
func findExisting(tx *gorm.DB, entity catalog.Entity, row *model.Entity) (*model.Entity, error) {
	if uid := entity.UID(); uid != "" {
		var existing model.Entity
		err := tx.Where("id = ?", uid).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unexpected uid %s for new entity", store.ErrConflict, uid)
		}
		if err != nil {
			return nil, err
		}
		return &existing, nil
	}

	if row.Name == nil {
		return nil, nil
	}

	var matches []model.Entity
	if err := whereNameNamespace(tx, *row.Name, row.Namespace).Limit(1).Find(&matches).Error; err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	row.ID = matches[0].ID
	return &matches[0], nil
}

func updateEntity(tx *gorm.DB, existing, row *model.Entity, req catalog.AddEntityRequest) error {
	if gen := req.Entity.Generation(); gen != 0 && gen != existing.Generation {
		return fmt.Errorf("%w: stale generation %d for entity %s, stored generation is %d",
			store.ErrConflict, gen, existing.ID, existing.Generation)
	}

	if !sameString(existing.Name, row.Name) || !sameString(existing.Namespace, row.Namespace) {
		if row.Name != nil {
			var count int64
			err := whereNameNamespace(tx.Model(&model.Entity{}), *row.Name, row.Namespace).
				Where("id <> ?", existing.ID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: %s is already taken by another entity", store.ErrConflict, req.Entity.Ref())
			}
		}
	}

	updates := map[string]interface{}{
		"generation":  existing.Generation + 1,
		"api_version": row.APIVersion,
		"kind":        row.Kind,
		"name":        row.Name,
		"namespace":   row.Namespace,
		"metadata":    row.Metadata,
		"spec":        row.Spec,
	}
	if req.LocationID != nil {
		updates["location_id"] = *req.LocationID
	}

	result := tx.Model(&model.Entity{}).
		Where("id = ? AND generation = ?", existing.ID, existing.Generation).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: entity %s was modified concurrently", store.ErrConflict, existing.ID)
	}
	return nil
}

// Entities returns every entity ordered by namespace and name. Entities
// without a namespace come first.
func (d *Database) Entities(ctx context.Context) ([]catalog.EntityResponse, error) {
	var rows []model.Entity
	if err := d.db.WithContext(ctx).Order("COALESCE(namespace, ''), COALESCE(name, '')").Find(&rows).Error; err != nil {
		return nil, err
	}

	entities := make([]catalog.EntityResponse, 0, len(rows))
	for i := range rows {
		resp, err := toEntityResponse(&rows[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, *resp)
	}
	return entities, nil
}

// Entity returns the single entity with the given name and namespace.
func (d *Database) Entity(ctx context.Context, name string, namespace *string) (*catalog.EntityResponse, error) {
	if namespace != nil && *namespace == "" {
		namespace = nil
	}

	var rows []model.Entity
	if err := whereNameNamespace(d.db.WithContext(ctx), name, namespace).Limit(2).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		if len(rows) > 1 {
			slog.WarnContext(ctx, "multiple entities share a name and namespace", "ref", refOf(name, namespace))
		}
		return nil, fmt.Errorf("%w: entity %s", store.ErrNotFound, refOf(name, namespace))
	}
	return toEntityResponse(&rows[0])
}

// EntityByUID returns the entity with the given uid.
func (d *Database) EntityByUID(ctx context.Context, uid string) (*catalog.EntityResponse, error) {
	var row model.Entity
	err := d.db.WithContext(ctx).Where("id = ?", uid).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: entity %s", store.ErrNotFound, uid)
		}
		return nil, err
	}
	return toEntityResponse(&row)
}

// RemoveEntity deletes an entity. Its search rows are removed by the
// ON DELETE CASCADE constraint.
func (d *Database) RemoveEntity(ctx context.Context, uid string) error {
	result := d.db.WithContext(ctx).Where("id = ?", uid).Delete(&model.Entity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: entity %s", store.ErrNotFound, uid)
	}
	return nil
}

func whereNameNamespace(tx *gorm.DB, name string, namespace *string) *gorm.DB {
	tx = tx.Where("name = ?", name)
	if namespace == nil {
		return tx.Where("namespace IS NULL")
	}
	return tx.Where("namespace = ?", *namespace)
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func refOf(name string, namespace *string) string {
	if namespace == nil {
		return name
	}
	return *namespace + "/" + name
}
