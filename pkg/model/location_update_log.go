package model

import "time"

// LocationUpdateLogEvent is an append-only record of an ingestion attempt
type LocationUpdateLogEvent struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Status        string    `gorm:"column:status;not null"`
	LocationID    string    `gorm:"column:location_id;not null"`
	ComponentName *string   `gorm:"column:component_name"`
	Message       *string   `gorm:"column:message"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (LocationUpdateLogEvent) TableName() string {
	return "location_update_log"
}
