// Package model holds the GORM persistence structs, kept separate from the
// pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TradingName string               `gorm:"type:varchar(255);not null;index:idx_stores_on_trading_name"`
	Description string               `gorm:"type:text;not null;default:''"`
	Category    string               `gorm:"type:varchar(100);not null;index:idx_stores_on_category"`
	Verified    bool                 `gorm:"not null;default:false;index:idx_stores_on_visibility"`
	Active      bool                 `gorm:"not null;default:true;index:idx_stores_on_visibility"`
	Locations   []StoreLocationModel `gorm:"foreignKey:StoreID"`
	Photos      []StorePhotoModel    `gorm:"foreignKey:StoreID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
