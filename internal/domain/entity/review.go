// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// The four canonical rating dimensions always offered to reviewers.
// Community categories live in Ratings.Custom and are moderated separately.
const (
	StandardCategoryFood     = "Food"
	StandardCategoryService  = "Service"
	StandardCategoryAmbience = "Ambience"
	StandardCategoryPrice    = "Price"
)

// StandardCategories lists the canonical category names in display order.
var StandardCategories = []string{
	StandardCategoryFood,
	StandardCategoryService,
	StandardCategoryAmbience,
	StandardCategoryPrice,
}

// IsStandardCategory reports whether name is one of the four canonical
// rating dimensions.
func IsStandardCategory(name string) bool {
	for _, s := range StandardCategories {
		if s == name {
			return true
		}
	}

	return false
}

// Ratings partitions a review's scores into the fixed standard dimensions
// and open-ended community dimensions. All scores are integers in 1..5.
type Ratings struct {
	Standard map[string]int `json:"standard"`
	Custom   map[string]int `json:"custom"`
}

// Score looks up a category score, giving the standard map precedence when a
// name appears in both: standard categories are canonical.
func (r Ratings) Score(category string) (int, bool) {
	if score, ok := r.Standard[category]; ok {
		return score, true
	}
	score, ok := r.Custom[category]

	return score, ok
}

// Mean returns the unweighted mean of every score across both maps.
// Returns 0 when both maps are empty.
func (r Ratings) Mean() float64 {
	sum := 0
	count := 0
	for _, score := range r.Standard {
		sum += score
		count++
	}
	for _, score := range r.Custom {
		sum += score
		count++
	}
	if count == 0 {
		return 0
	}

	return float64(sum) / float64(count)
}

// Review is one user's rating of one restaurant on a given visit. Reviews
// are immutable once created: no update or delete operation exists.
// OverallRating is computed server-side at submission time and stored; it is
// never recomputed afterwards.
type Review struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	Text          string    `json:"text"`
	Photos        []string  `json:"photos"`     // Ordered opaque photo references.
	VisitDate     time.Time `json:"visit_date"` // Date precision; time-of-day is not meaningful.
	Ratings       Ratings   `json:"ratings"`
	OverallRating float64   `json:"overall_rating"`
	CreatedAt     time.Time `json:"created_at"`
}
