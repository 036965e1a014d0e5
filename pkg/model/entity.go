package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entity is the flattened row form of a catalog entity.
// Metadata holds the JSON encoded metadata without uid and generation, which
// live in the ID and Generation columns.
type Entity struct {
	ID         string         `gorm:"column:id;primaryKey"`
	Generation int64          `gorm:"column:generation;not null"`
	LocationID *string        `gorm:"column:location_id"`
	APIVersion string         `gorm:"column:api_version;not null"`
	Kind       string         `gorm:"column:kind;not null"`
	Name       *string        `gorm:"column:name"`
	Namespace  *string        `gorm:"column:namespace"`
	Metadata   datatypes.JSON `gorm:"column:metadata"`
	Spec       datatypes.JSON `gorm:"column:spec"`
}

func (Entity) TableName() string {
	return "entities"
}

func (e *Entity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EntitySearch is one searchable key/value projection of an entity
type EntitySearch struct {
	EntityID string  `gorm:"column:entity_id;not null"`
	Key      string  `gorm:"column:key;not null"`
	Value    *string `gorm:"column:value"`
}

func (EntitySearch) TableName() string {
	return "entities_search"
}
