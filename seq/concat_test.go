package seq_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/on-the-ground/typed_basics_go/seq"
	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want []int
	}{
		{"no sequences", nil, []int{}},
		{"single", [][]int{{1, 2}}, []int{1, 2}},
		{"keeps order and duplicates", [][]int{{1, 2}, {3, 4}, {2, 1}}, []int{1, 2, 3, 4, 2, 1}},
		{"skips empty inputs", [][]int{{}, {5}, nil}, []int{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seq.Concat(tt.in...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Concat() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConcat_Strings(t *testing.T) {
	got := seq.Concat([]string{"a", "b"}, []string{"c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestConcat_ZeroArgs(t *testing.T) {
	got := seq.Concat[string]()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConcat_DoesNotAliasInputs(t *testing.T) {
	first := []int{1, 2}
	got := seq.Concat(first)
	got[0] = 99
	assert.Equal(t, 1, first[0])
}

func TestConcat_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("length is the sum of input lengths", prop.ForAll(
		func(xs [][]int) bool {
			total := 0
			for _, x := range xs {
				total += len(x)
			}
			return len(seq.Concat(xs...)) == total
		},
		gen.SliceOf(gen.SliceOf(gen.Int())),
	))

	properties.TestingRun(t)
}
