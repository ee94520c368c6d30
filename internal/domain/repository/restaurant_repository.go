package repository

import (
	"context"
	"errors"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantSearchResult pairs a restaurant with the rating aggregate the
// search query computed alongside it.
type RestaurantSearchResult struct {
	Restaurant    *entity.Restaurant
	AverageRating float64
	ReviewCount   int
}

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// FindByID retrieves a single restaurant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// List retrieves restaurants, optionally filtered by validation status.
	// A nil filter returns every restaurant.
	List(ctx context.Context, validated *bool) ([]*entity.Restaurant, error)

	// Search matches the query case-insensitively against restaurant names
	// and full display addresses, joining the per-restaurant review
	// aggregate (average overall rating and review count).
	Search(ctx context.Context, query string, validated *bool) ([]*RestaurantSearchResult, error)

	// Create persists a new restaurant.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies an existing restaurant.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Validate sets the validation flag to true. The flag is monotonic;
	// validating an already-validated restaurant is a no-op success.
	Validate(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
}
