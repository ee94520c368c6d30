package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReviewModel mirrors the 'reviews' table. Ratings holds the standard and
// custom score maps as one JSON document; OverallRating is the server-computed
// mean stored at creation time and never rewritten.
type ReviewModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Text          string         `gorm:"type:text"`
	Photos        datatypes.JSON `gorm:"type:jsonb"`
	VisitDate     time.Time      `gorm:"not null"`
	Ratings       datatypes.JSON `gorm:"type:jsonb;not null"`
	OverallRating float64        `gorm:"type:decimal(3,2);not null"`
	CreatedAt     time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
