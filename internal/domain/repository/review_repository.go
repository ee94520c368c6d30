package repository

import (
	"context"
	"errors"
	"time"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
// Reviews are immutable once written; there is no update operation.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByRestaurant retrieves a restaurant's reviews, newest first.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error)

	// ListByUser retrieves a user's reviews, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// ListRecent retrieves reviews created at or after the given time,
	// newest first.
	ListRecent(ctx context.Context, since time.Time) ([]*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// DistinctReviewerIDs returns the IDs of users who have reviewed the
	// restaurant, each ID once, regardless of how many reviews they wrote.
	DistinctReviewerIDs(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error)
}
