package rating_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/on-the-ground/typed_basics_go/rating"
	"github.com/stretchr/testify/assert"
)

func TestFilterByRating(t *testing.T) {
	tests := []struct {
		name  string
		items []rating.Item
		want  []rating.Item
	}{
		{
			name:  "empty input",
			items: nil,
			want:  []rating.Item{},
		},
		{
			name: "keeps boundary and order",
			items: []rating.Item{
				{Title: "Book A", Rating: 4.5},
				{Title: "Book B", Rating: 3.2},
				{Title: "Book C", Rating: 5.0},
				{Title: "Book D", Rating: 4},
				{Title: "Book E", Rating: 3.99},
			},
			want: []rating.Item{
				{Title: "Book A", Rating: 4.5},
				{Title: "Book C", Rating: 5.0},
				{Title: "Book D", Rating: 4},
			},
		},
		{
			name:  "nothing qualifies",
			items: []rating.Item{{Title: "Low", Rating: 1}},
			want:  []rating.Item{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rating.FilterByRating(tt.items)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterByRating() mismatch (-want +got):\n%s", diff)
			}
			assert.NotNil(t, got)
		})
	}
}

func TestFilterByRating_DoesNotMutateInput(t *testing.T) {
	items := []rating.Item{{Title: "x", Rating: 1}, {Title: "y", Rating: 5}}
	before := append([]rating.Item(nil), items...)

	_ = rating.FilterByRating(items)
	assert.Equal(t, before, items)
}

func itemsOf(ratings []float64) []rating.Item {
	items := make([]rating.Item, len(ratings))
	for i, r := range ratings {
		items[i] = rating.Item{Title: fmt.Sprintf("item-%d", i), Rating: r}
	}
	return items
}

func TestFilterByRating_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	ratings := gen.SliceOf(gen.Float64Range(0, 5))

	properties.Property("keeps exactly the rating >= 4 subsequence", prop.ForAll(
		func(rs []float64) bool {
			items := itemsOf(rs)
			want := make([]rating.Item, 0, len(items))
			for _, item := range items {
				if item.Rating >= rating.MinRating {
					want = append(want, item)
				}
			}
			return cmp.Equal(want, rating.FilterByRating(items))
		},
		ratings,
	))
	properties.Property("idempotent", prop.ForAll(
		func(rs []float64) bool {
			once := rating.FilterByRating(itemsOf(rs))
			return cmp.Equal(once, rating.FilterByRating(once))
		},
		ratings,
	))

	properties.TestingRun(t)
}
