package catalog

import (
	"fmt"
	"time"
)

// Location is a registered source of entities.
type Location struct {
	ID     string `json:"id" yaml:"id"`
	Type   string `json:"type" yaml:"type" validate:"required"`
	Target string `json:"target" yaml:"target" validate:"required"`
}

// Validate checks that the location has a type and a target.
func (l Location) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}
	return nil
}

// LocationUpdateLogEvent records the outcome of one ingestion attempt for a location.
type LocationUpdateLogEvent struct {
	ID            string    `json:"id" yaml:"id"`
	Status        Status    `json:"status" yaml:"status"`
	LocationID    string    `json:"locationId" yaml:"locationId"`
	ComponentName *string   `json:"componentName,omitempty" yaml:"componentName,omitempty"`
	Message       *string   `json:"message,omitempty" yaml:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`
}
