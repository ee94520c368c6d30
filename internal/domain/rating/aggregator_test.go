package rating

import (
	"testing"

	"opinalocal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func review(overall float64, standard, custom map[string]int) *entity.Review {
	return &entity.Review{
		OverallRating: overall,
		Ratings: entity.Ratings{
			Standard: standard,
			Custom:   custom,
		},
	}
}

func TestOverallRating_MeanOfStoredRatings(t *testing.T) {
	reviews := []*entity.Review{
		review(4.4, nil, nil),
		review(4.0, nil, nil),
		review(4.5, nil, nil),
	}

	assert.InDelta(t, 4.3, OverallRating(reviews), 1e-9)
}

func TestOverallRating_Empty(t *testing.T) {
	assert.Equal(t, 0.0, OverallRating(nil))
	assert.Equal(t, 0.0, OverallRating([]*entity.Review{}))
}

func TestRatingsMean_CombinesStandardAndCustom(t *testing.T) {
	r := entity.Ratings{
		Standard: map[string]int{"Food": 5, "Service": 4, "Ambience": 4, "Price": 4},
		Custom:   map[string]int{},
	}
	assert.InDelta(t, 4.25, r.Mean(), 1e-9)

	r.Custom = map[string]int{"Wi-Fi": 5}
	assert.InDelta(t, 4.4, r.Mean(), 1e-9)
}

func TestRatingsMean_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, entity.Ratings{}.Mean())
}

func TestCategoryAverage(t *testing.T) {
	reviews := []*entity.Review{
		review(0, map[string]int{"Food": 5}, map[string]int{"Wi-Fi": 3}),
		review(0, map[string]int{"Food": 4}, nil),
		review(0, nil, map[string]int{"Wi-Fi": 5}),
	}

	assert.InDelta(t, 4.5, CategoryAverage(reviews, "Food"), 1e-9)
	assert.InDelta(t, 4.0, CategoryAverage(reviews, "Wi-Fi"), 1e-9)
}

func TestCategoryAverage_AbsentCategoryIsZero(t *testing.T) {
	reviews := []*entity.Review{
		review(0, map[string]int{"Food": 5}, nil),
	}

	assert.Equal(t, 0.0, CategoryAverage(reviews, "Cleanliness"))
}

func TestCategoryAverage_StandardTakesPrecedenceOnCollision(t *testing.T) {
	reviews := []*entity.Review{
		review(0, map[string]int{"Food": 5}, map[string]int{"Food": 1}),
	}

	assert.InDelta(t, 5.0, CategoryAverage(reviews, "Food"), 1e-9)
}

func TestReviewCount(t *testing.T) {
	assert.Equal(t, 0, ReviewCount(nil))
	assert.Equal(t, 2, ReviewCount([]*entity.Review{review(1, nil, nil), review(2, nil, nil)}))
}

func TestCategoriesInUse_UnionInDiscoveryOrder(t *testing.T) {
	reviews := []*entity.Review{
		review(0, map[string]int{"Service": 4, "Food": 5}, map[string]int{"Wi-Fi": 5}),
		review(0, map[string]int{"Price": 3}, map[string]int{"Wi-Fi": 4, "Kid-friendly": 5}),
	}

	assert.Equal(t,
		[]string{"Food", "Service", "Wi-Fi", "Price", "Kid-friendly"},
		CategoriesInUse(reviews))
}

func TestSummarize_SuppressesUnapprovedCategories(t *testing.T) {
	reviews := []*entity.Review{
		review(0, map[string]int{"Food": 5}, map[string]int{"Wi-Fi": 4, "Smoking area": 2}),
	}
	approved := map[string]struct{}{
		"Food":  {},
		"Wi-Fi": {},
		// "Smoking area" was rejected after being used in a review.
	}

	entries := Summarize(reviews, approved)

	assert.Equal(t, []CategorySummaryEntry{
		{Category: "Food", Average: 5},
		{Category: "Wi-Fi", Average: 4},
	}, entries)
}

func TestSummarize_ApprovedButUnusedCategoryExcluded(t *testing.T) {
	reviews := []*entity.Review{
		review(0, map[string]int{"Food": 4}, nil),
	}
	approved := map[string]struct{}{
		"Food":        {},
		"Cleanliness": {},
	}

	entries := Summarize(reviews, approved)

	assert.Len(t, entries, 1)
	assert.Equal(t, "Food", entries[0].Category)
}
