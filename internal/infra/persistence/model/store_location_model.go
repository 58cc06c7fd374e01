package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreLocationModel is the GORM-specific struct for the 'store_locations' table.
type StoreLocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index:idx_store_locations_on_store"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	City        string    `gorm:"type:varchar(100);not null;index:idx_store_locations_on_city"`
	Governorate string    `gorm:"type:varchar(100);not null"`
	Address     string    `gorm:"type:text;not null;default:''"`
	IsPrimary   bool      `gorm:"not null;default:false;index:idx_store_locations_on_primary"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreLocationModel) TableName() string {
	return "store_locations"
}
