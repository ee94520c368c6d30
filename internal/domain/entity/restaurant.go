// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Address is the structured postal address of a restaurant. FullAddress is
// the display string shown in listings and matched by search.
type Address struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	FullAddress string `json:"full_address"`
}

// Location is an optional geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the location to an orb.Point (lng/lat order).
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Restaurant represents a listed establishment. It is created unvalidated and
// becomes discoverable in default listings only after administrator
// validation. Validation is monotonic: once set it never reverts.
type Restaurant struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the restaurant.
	Name        string    `json:"name"`         // Display name.
	Address     Address   `json:"address"`      // Structured postal address.
	Location    *Location `json:"location"`     // Optional coordinates; nil when unknown.
	PhotoURL    string    `json:"photo_url"`    // Optional photo reference. Opaque to the domain.
	IsValidated bool      `json:"is_validated"` // False until an administrator validates the listing.
	CreatedBy   uuid.UUID `json:"created_by"`   // The user who submitted the listing.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RestaurantRating is the display-ready aggregate derived lazily from a
// restaurant's reviews. It is never persisted.
type RestaurantRating struct {
	Overall     float64 `json:"overall"`      // Mean of the reviews' stored overall ratings; 0 with no reviews.
	ReviewCount int     `json:"review_count"` // Number of reviews; surfaced separately, never used as a weight.
}

// Ownership is a pure many-to-many association granting a user edit rights
// over a restaurant.
type Ownership struct {
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}
