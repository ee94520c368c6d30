package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID      uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name    string         `gorm:"type:varchar(255);not null;index"`
	Address datatypes.JSON `gorm:"type:jsonb;not null"`
	// FullAddress duplicates the display string out of the JSON document so
	// search can ILIKE against a plain column.
	FullAddress string         `gorm:"type:text;not null;index"`
	Location    datatypes.JSON `gorm:"type:jsonb"`
	PhotoURL    string         `gorm:"type:text"`
	IsValidated bool           `gorm:"not null;default:false;index"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// OwnershipModel mirrors the 'restaurant_owners' join table.
type OwnershipModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OwnershipModel) TableName() string {
	return "restaurant_owners"
}
