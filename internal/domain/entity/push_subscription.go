// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription ties a user to one device push endpoint. A user may hold
// multiple concurrent subscriptions (one per device).
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Device token issued by Firebase Cloud Messaging.
	Platform  string    `json:"platform"`  // e.g. "web", "ios", "android".
	CreatedAt time.Time `json:"created_at"`
}
