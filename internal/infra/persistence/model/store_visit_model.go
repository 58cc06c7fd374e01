package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreVisitModel is the GORM-specific struct for the 'store_visits' table.
// Append-only; rows are aggregated by the dashboard use case.
type StoreVisitModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index:idx_store_visits_on_store_time,priority:1"`
	Source    string    `gorm:"type:varchar(50);not null"`
	VisitedAt time.Time `gorm:"not null;index:idx_store_visits_on_store_time,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (StoreVisitModel) TableName() string {
	return "store_visits"
}
