package gorm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/model"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// AddLocation registers a location. Registering a target twice returns the
// existing row. The id is always generated by the store.
func (d *Database) AddLocation(ctx context.Context, location catalog.Location) (*catalog.Location, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	var row model.Location
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("target = ?", location.Target).First(&row).Error
		if err == nil {
			slog.DebugContext(ctx, "location already registered", "id", row.ID, "target", row.Target)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row = model.Location{Type: location.Type, Target: location.Target}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		slog.DebugContext(ctx, "location created", "id", row.ID, "type", row.Type, "target", row.Target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocation(&row), nil
}

// RemoveLocation deletes a location. A foreign key violation raised by
// entities still referencing it is returned as is.
func (d *Database) RemoveLocation(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Location{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: location %s", store.ErrNotFound, id)
	}
	return nil
}

// Location returns a single location.
func (d *Database) Location(ctx context.Context, id string) (*catalog.Location, error) {
	var row model.Location
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: location %s", store.ErrNotFound, id)
		}
		return nil, err
	}
	return toLocation(&row), nil
}

// Locations returns every registered location ordered by target.
func (d *Database) Locations(ctx context.Context) ([]catalog.Location, error) {
	var rows []model.Location
	if err := d.db.WithContext(ctx).Order("target").Find(&rows).Error; err != nil {
		return nil, err
	}

	locations := make([]catalog.Location, 0, len(rows))
	for i := range rows {
		locations = append(locations, *toLocation(&rows[i]))
	}
	return locations, nil
}

// AddLocationUpdateLogEvent appends an event to the location update log.
func (d *Database) AddLocationUpdateLogEvent(ctx context.Context, locationID string, status catalog.Status, componentName, message *string) error {
	return d.db.WithContext(ctx).Exec(`
		INSERT INTO location_update_log (id, status, location_id, component_name, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		uuid.NewString(),
		status.String(),
		locationID,
		componentName,
		message,
		time.Now().UTC(),
	).Error
}

// LocationHistory returns the update log of a location, oldest first.
func (d *Database) LocationHistory(ctx context.Context, locationID string) ([]catalog.LocationUpdateLogEvent, error) {
	var rows []model.LocationUpdateLogEvent
	err := d.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]catalog.LocationUpdateLogEvent, 0, len(rows))
	for _, row := range rows {
		status, err := catalog.StatusString(row.Status)
		if err != nil {
			return nil, fmt.Errorf("location update log event %s: %w", row.ID, err)
		}
		events = append(events, catalog.LocationUpdateLogEvent{
			ID:            row.ID,
			Status:        status,
			LocationID:    row.LocationID,
			ComponentName: row.ComponentName,
			Message:       row.Message,
			CreatedAt:     row.CreatedAt,
		})
	}
	return events, nil
}

func toLocation(row *model.Location) *catalog.Location {
	return &catalog.Location{
		ID:     row.ID,
		Type:   row.Type,
		Target: row.Target,
	}
}
