package store

import (
	"context"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
)

// Database abstracts persistence of entities, locations and the location
// update log.
type Database interface {
	// Transaction runs fn inside a single unit of work. The Database passed
	// to fn is bound to the transaction; returning an error rolls it back.
	Transaction(ctx context.Context, fn func(tx Database) error) error

	EntitiesStore
	LocationsStore
}

// EntitiesStore abstracts entity storage operations
type EntitiesStore interface {
	// AddOrUpdateEntity inserts a new entity or updates the existing one
	// matched by uid or by (name, namespace).
	// Returns ErrConflict for an unknown uid, a stale generation or a
	// name/namespace collision, and ErrInvalidEntity for a bad envelope.
	AddOrUpdateEntity(ctx context.Context, req catalog.AddEntityRequest) (*catalog.EntityResponse, error)

	// Entities returns every entity ordered by namespace and name.
	Entities(ctx context.Context) ([]catalog.EntityResponse, error)

	// Entity returns the entity with the given name and namespace.
	// A nil or empty namespace matches entities without one.
	// Returns ErrNotFound unless exactly one entity matches.
	Entity(ctx context.Context, name string, namespace *string) (*catalog.EntityResponse, error)

	// EntityByUID returns the entity with the given uid.
	EntityByUID(ctx context.Context, uid string) (*catalog.EntityResponse, error)

	// RemoveEntity deletes an entity and its search rows.
	RemoveEntity(ctx context.Context, uid string) error
}

// LocationsStore abstracts location and update log storage operations
type LocationsStore interface {
	// AddLocation registers a location, returning the existing row when
	// the target is already registered.
	AddLocation(ctx context.Context, location catalog.Location) (*catalog.Location, error)

	// RemoveLocation deletes a location. Returns ErrNotFound if nothing was
	// deleted. Foreign key errors from the database are returned unchanged.
	RemoveLocation(ctx context.Context, id string) error

	// Location returns a single location.
	Location(ctx context.Context, id string) (*catalog.Location, error)

	// Locations returns every registered location.
	Locations(ctx context.Context) ([]catalog.Location, error)

	// AddLocationUpdateLogEvent appends an event to the location update log.
	AddLocationUpdateLogEvent(ctx context.Context, locationID string, status catalog.Status, componentName, message *string) error

	// LocationHistory returns the update log of a location, oldest first.
	LocationHistory(ctx context.Context, locationID string) ([]catalog.LocationUpdateLogEvent, error)
}
