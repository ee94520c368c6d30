// Package rating derives display-ready rating figures from a restaurant's
// review set. Every function here is a pure computation over already
// validated records: there is no persisted cache and no incremental update,
// results are recomputed on every read, and empty inputs yield zero values
// rather than errors.
package rating

import (
	"sort"

	"opinalocal/internal/domain/entity"
)

// OverallRating returns the unweighted mean of each review's stored overall
// rating. A restaurant's displayed rating is a mean of per-review ratings,
// not a mean of per-category means. Returns 0 for an empty input. No
// rounding is applied; display layers format to one decimal.
func OverallRating(reviews []*entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0.0
	for _, review := range reviews {
		sum += review.OverallRating
	}

	return sum / float64(len(reviews))
}

// CategoryAverage averages the scores given to one category across the
// reviews that rated it. The standard map takes precedence when a name
// appears in both maps of a review. Returns 0 when no review contains the
// category.
func CategoryAverage(reviews []*entity.Review, category string) float64 {
	sum := 0
	count := 0
	for _, review := range reviews {
		if score, ok := review.Ratings.Score(category); ok {
			sum += score
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return float64(sum) / float64(count)
}

// ReviewCount returns the number of reviews. The count is surfaced alongside
// the rating for display and ranking context; it is never used as a scoring
// weight.
func ReviewCount(reviews []*entity.Review) int {
	return len(reviews)
}

// CategoriesInUse returns the union of category names appearing in the
// standard and custom maps across the given reviews, in first-seen order:
// standard keys of a review before its custom keys, reviews in input order.
func CategoriesInUse(reviews []*entity.Review) []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, review := range reviews {
		// Range over a map is unordered; surface standard names in their
		// canonical order so summaries render deterministically.
		for _, name := range entity.StandardCategories {
			if _, ok := review.Ratings.Standard[name]; ok {
				add(name)
			}
		}
		for _, name := range sortedKeys(review.Ratings.Custom) {
			add(name)
		}
	}

	return names
}

// CategorySummaryEntry pairs a category name with its average across the
// reviews it appears in.
type CategorySummaryEntry struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
}

// Summarize computes a category summary restricted to the given approved
// names. Categories that appear in reviews but are not approved (for
// example, rejected after use) are suppressed; the underlying review data is
// untouched. Order follows CategoriesInUse discovery order.
func Summarize(reviews []*entity.Review, approved map[string]struct{}) []CategorySummaryEntry {
	var entries []CategorySummaryEntry
	for _, name := range CategoriesInUse(reviews) {
		if _, ok := approved[name]; !ok {
			continue
		}
		entries = append(entries, CategorySummaryEntry{
			Category: name,
			Average:  CategoryAverage(reviews, name),
		})
	}

	return entries
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
