package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a registered source of entities
type Location struct {
	ID     string `gorm:"column:id;primaryKey"`
	Type   string `gorm:"column:type;not null"`
	Target string `gorm:"column:target;not null;uniqueIndex"`
}

func (Location) TableName() string {
	return "locations"
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
