// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Authentication itself is handled
// by an external identity provider; ProviderUID is the stable key linking a
// platform account to that provider's identity.
type User struct {
	ID          uuid.UUID               `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	ProviderUID string                  `json:"provider_uid"` // Opaque identifier issued by the external identity provider.
	Email       string                  `json:"email"`        // The user's primary contact email.
	Name        string                  `json:"name"`         // The user's display name.
	PhotoURL    string                  `json:"photo_url"`    // Optional avatar reference. Opaque to the domain.
	Role        Role                    `json:"role"`         // Either RoleUser or RoleAdmin.
	Preferences NotificationPreferences `json:"preferences"`  // Per-channel notification opt-ins.
	CreatedAt   time.Time               `json:"created_at"`   // Timestamp of when this account was created.
	UpdatedAt   time.Time               `json:"updated_at"`   // Timestamp of the last modification.
}

// NotificationPreferences holds the four independent notification opt-ins a
// user controls. Each gate is checked at delivery time, not at publish time.
type NotificationPreferences struct {
	Comment          bool `json:"comment"`           // Notify when someone comments on one of the user's reviews.
	NewReview        bool `json:"new_review"`        // Notify when a restaurant the user reviewed receives a new review.
	CategoryApproval bool `json:"category_approval"` // Notify when a category suggested by the user is approved.
	Newsletter       bool `json:"newsletter"`        // Opt-in to the periodic newsletter.
}

// DefaultNotificationPreferences returns the opt-in state a fresh account
// starts with. Every channel defaults to enabled.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		Comment:          true,
		NewReview:        true,
		CategoryApproval: true,
		Newsletter:       true,
	}
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
