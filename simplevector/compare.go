package simplevector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements.
func Equal[T comparable](a, b *SimpleVector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// Compare compares a and b lexicographically.
func Compare[T cmp.Ordered](a, b *SimpleVector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// Less reports whether a sorts before b.
func Less[T cmp.Ordered](a, b *SimpleVector[T]) bool {
	return Compare(a, b) < 0
}
