// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryCreatorAdmin is the reserved creator sentinel for platform-seeded
// categories. Seeded categories are born approved and never trigger approval
// notifications.
const CategoryCreatorAdmin = "admin"

// CategoryStatus is the moderation lifecycle of a community category.
type CategoryStatus string

const (
	// CategoryStatusPending is the initial state of every community-created category.
	CategoryStatusPending CategoryStatus = "pending"
	// CategoryStatusApproved makes the category available to reviewers.
	CategoryStatusApproved CategoryStatus = "approved"
	// CategoryStatusRejected hides the category from pickers and summaries.
	CategoryStatusRejected CategoryStatus = "rejected"
)

// String returns the string representation of the CategoryStatus.
func (s CategoryStatus) String() string {
	return string(s)
}

// IsValid checks if the CategoryStatus is a valid value.
func (s CategoryStatus) IsValid() bool {
	switch s {
	case CategoryStatusPending, CategoryStatusApproved, CategoryStatusRejected:
		return true
	default:
		return false
	}
}

// Category is a rating dimension. Names are unique case-insensitively.
// CreatedBy is either a user ID rendered as a string or the "admin" sentinel.
type Category struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	CreatedBy string         `json:"created_by"`
	Status    CategoryStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// IsSeeded reports whether the category was created by the platform seed
// process rather than a user.
func (c *Category) IsSeeded() bool {
	return c.CreatedBy == CategoryCreatorAdmin
}
