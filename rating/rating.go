// Package rating selects well-rated items.
package rating

import "github.com/samber/lo"

// MinRating is the lowest rating FilterByRating keeps.
const MinRating = 4

type Item struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

// FilterByRating returns, in their original order, the items rated at least
// MinRating. items is left untouched.
func FilterByRating(items []Item) []Item {
	return lo.Filter(items, func(item Item, _ int) bool {
		return item.Rating >= MinRating
	})
}
