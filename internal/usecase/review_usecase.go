package usecase

import (
	"context"
	"time"

	"opinalocal/internal/domain/entity"
	"opinalocal/internal/domain/rating"

	"github.com/google/uuid"
)

// SubmitReviewInput carries a new review. Any client-supplied overall rating
// is ignored; the stored value is always recomputed server-side.
type SubmitReviewInput struct {
	RestaurantID uuid.UUID      `json:"restaurant_id" validate:"required"`
	Text         string         `json:"text" validate:"required"`
	Photos       []string       `json:"photos"`
	VisitDate    time.Time      `json:"visit_date" validate:"required"`
	Standard     map[string]int `json:"standard"`
	Custom       map[string]int `json:"custom"`
}

// ReviewTimeframe filters review listings by age.
type ReviewTimeframe string

// Supported timeframe filter values.
const (
	TimeframeToday ReviewTimeframe = "today"
	TimeframeWeek  ReviewTimeframe = "week"
	TimeframeMonth ReviewTimeframe = "month"
)

// CategorySummary is a restaurant's display-ready rating breakdown.
type CategorySummary struct {
	Overall     float64                       `json:"overall"`
	ReviewCount int                           `json:"review_count"`
	Categories  []rating.CategorySummaryEntry `json:"categories"`
}

// ReviewUsecase defines the interface for review use cases.
type ReviewUsecase interface {
	// Submit validates and persists a new review, then fans a
	// review.created event out to the restaurant's prior reviewers.
	Submit(ctx context.Context, userID uuid.UUID, input *SubmitReviewInput) (*entity.Review, error)

	// Get retrieves one review.
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByRestaurant retrieves a restaurant's reviews, newest first.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error)

	// ListByUser retrieves a user's reviews, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// ListRecent retrieves reviews within the timeframe, newest first.
	ListRecent(ctx context.Context, timeframe ReviewTimeframe) ([]*entity.Review, error)

	// Summary assembles the restaurant's overall rating, review count, and
	// per-category averages restricted to currently approved categories.
	Summary(ctx context.Context, restaurantID uuid.UUID) (*CategorySummary, error)
}
