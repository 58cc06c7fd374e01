package model

import (
	"time"

	"github.com/google/uuid"
)

// StorePhotoModel is the GORM-specific struct for the 'store_photos' table.
type StorePhotoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index:idx_store_photos_on_store"`
	URL       string    `gorm:"type:text;not null"`
	Caption   string    `gorm:"type:varchar(255);not null;default:''"`
	Featured  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StorePhotoModel) TableName() string {
	return "store_photos"
}
