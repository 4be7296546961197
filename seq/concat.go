// Package seq joins slices.
package seq

import "github.com/samber/lo"

// Concat returns a new slice holding the elements of every seq in order,
// duplicates included. With no arguments it returns an empty slice.
func Concat[T any](seqs ...[]T) []T {
	return lo.Flatten(seqs)
}
