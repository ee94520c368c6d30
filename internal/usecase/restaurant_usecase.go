package usecase

import (
	"context"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterRestaurantInput carries a new restaurant submission. The validation
// flag is not accepted from clients; every new listing starts unvalidated.
type RegisterRestaurantInput struct {
	Name     string           `json:"name" validate:"required"`
	Address  entity.Address   `json:"address" validate:"required"`
	Location *entity.Location `json:"location"`
	PhotoURL string           `json:"photo_url"`
}

// UpdateRestaurantInput is a partial patch; nil fields are left unchanged.
type UpdateRestaurantInput struct {
	Name     *string          `json:"name"`
	Address  *entity.Address  `json:"address"`
	Location *entity.Location `json:"location"`
	PhotoURL *string          `json:"photo_url"`
}

// SearchRestaurantsInput carries the search parameters. Validated filters to
// validated listings only when set; Lat/Lng/RadiusKm adds a proximity filter
// when all three are present.
type SearchRestaurantsInput struct {
	Query     string
	Validated *bool
	Lat       *float64
	Lng       *float64
	RadiusKm  *float64
}

// RestaurantWithRating pairs a restaurant with its lazily derived rating.
type RestaurantWithRating struct {
	Restaurant *entity.Restaurant      `json:"restaurant"`
	Rating     entity.RestaurantRating `json:"rating"`
}

// RestaurantUsecase defines the interface for restaurant management use cases.
type RestaurantUsecase interface {
	// Register persists a new unvalidated restaurant submitted by creator.
	Register(ctx context.Context, creator uuid.UUID, input *RegisterRestaurantInput) (*entity.Restaurant, error)

	// Get retrieves one restaurant with its derived rating.
	Get(ctx context.Context, id uuid.UUID) (*RestaurantWithRating, error)

	// List retrieves restaurants, optionally filtered by validation status.
	List(ctx context.Context, validated *bool) ([]*entity.Restaurant, error)

	// Search matches names and addresses, returning each hit with its
	// derived rating.
	Search(ctx context.Context, input *SearchRestaurantsInput) ([]*RestaurantWithRating, error)

	// Update applies an ownership-gated patch. The requester must own the
	// restaurant or hold the admin role.
	Update(ctx context.Context, id uuid.UUID, requester *entity.User, input *UpdateRestaurantInput) (*entity.Restaurant, error)

	// Validate marks the restaurant validated. Idempotent.
	Validate(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// AddOwner grants a user edit rights over a restaurant.
	AddOwner(ctx context.Context, restaurantID, userID uuid.UUID) error

	// RemoveOwner revokes a user's edit rights over a restaurant.
	RemoveOwner(ctx context.Context, restaurantID, userID uuid.UUID) error

	// ListOwned retrieves the restaurants a user owns.
	ListOwned(ctx context.Context, userID uuid.UUID) ([]*entity.Restaurant, error)

	// ShareQR renders the PNG QR code of the restaurant's public page.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
