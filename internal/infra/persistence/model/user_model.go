package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderUID string         `gorm:"type:varchar(255);unique;not null"`
	Email       string         `gorm:"type:varchar(255);unique;not null"`
	Name        string         `gorm:"type:varchar(100)"`
	PhotoURL    string         `gorm:"type:text"`
	Role        string         `gorm:"type:varchar(20);not null;default:'user'"`
	Preferences datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	PushSubscriptions []PushSubscriptionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PushSubscriptionModel mirrors the 'push_subscriptions' table. One row per
// registered device token; tokens are unique so re-registration upserts.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"type:text;not null;uniqueIndex"`
	Platform  string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
