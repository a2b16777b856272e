// Package simplevector implements SimpleVector, a growable array whose
// slots are always initialized. It is the plain-value predecessor of
// package vector.
package simplevector

import (
	"fmt"
	"iter"

	"github.com/imgk/go-containers/memory"
)

// OutOfRangeError is returned by Get for an index outside [0, Size).
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("simplevector: try to get element at index %d for vector size %d", e.Index, e.Size)
}

// ReserveProxy carries a capacity to WithCapacity.
type ReserveProxy struct {
	capacity int
}

// Reserve wraps a capacity for WithCapacity.
func Reserve(capacity int) ReserveProxy {
	return ReserveProxy{capacity: capacity}
}

// SimpleVector is a dynamic array of T. The zero value is empty.
type SimpleVector[T any] struct {
	elements memory.ArrayPtr[T]
	size     int
}

// New returns a vector of size zero values.
func New[T any](size int) *SimpleVector[T] {
	v := &SimpleVector[T]{size: max(size, 0)}
	v.elements.Swap(memory.NewArrayPtr[T](size))
	return v
}

// NewFilled returns a vector of size copies of value.
func NewFilled[T any](size int, value T) *SimpleVector[T] {
	v := New[T](size)
	for i := range v.Slice() {
		*v.elements.At(i) = value
	}
	return v
}

// Of returns a vector holding values.
func Of[T any](values ...T) *SimpleVector[T] {
	v := New[T](len(values))
	copy(v.elements.Get(), values)
	return v
}

// WithCapacity returns an empty vector with the reserved capacity.
func WithCapacity[T any](r ReserveProxy) *SimpleVector[T] {
	v := &SimpleVector[T]{}
	v.Reserve(r.capacity)
	return v
}

// Size is the number of elements.
func (v *SimpleVector[T]) Size() int {
	return v.size
}

// Capacity is the number of allocated slots.
func (v *SimpleVector[T]) Capacity() int {
	return len(v.elements.Get())
}

// Empty reports whether v has no element.
func (v *SimpleVector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at index without checking it against Size.
func (v *SimpleVector[T]) At(index int) *T {
	return v.elements.At(index)
}

// Get returns the element at index or an *OutOfRangeError.
func (v *SimpleVector[T]) Get(index int) (*T, error) {
	if index < 0 || index >= v.size {
		return nil, &OutOfRangeError{Index: index, Size: v.size}
	}
	return v.elements.At(index), nil
}

// Slice returns the elements of v.
func (v *SimpleVector[T]) Slice() []T {
	return v.elements.Get()[:v.size:v.size]
}

// All iterates over the elements with their index.
func (v *SimpleVector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.elements.At(i)) {
				return
			}
		}
	}
}

// Clear sets the size to zero and keeps the capacity.
func (v *SimpleVector[T]) Clear() {
	clear(v.Slice())
	v.size = 0
}

// Reserve grows the capacity to at least capacity.
func (v *SimpleVector[T]) Reserve(capacity int) {
	if capacity <= v.Capacity() {
		return
	}
	v.realloc(capacity)
}

func (v *SimpleVector[T]) realloc(capacity int) {
	elements := memory.NewArrayPtr[T](capacity)
	copy(elements.Get(), v.Slice())
	v.elements.Swap(elements)
}

// Resize changes the size. New elements are zero values; growing past the
// capacity reallocates to max(2*Capacity, size).
func (v *SimpleVector[T]) Resize(size int) {
	size = max(size, 0)
	switch {
	case size <= v.size:
		clear(v.elements.Get()[size:v.size])
	case size <= v.Capacity():
		clear(v.elements.Get()[v.size:size])
	default:
		v.realloc(max(2*v.Capacity(), size))
	}
	v.size = size
}

func (v *SimpleVector[T]) grow() {
	if v.size < v.Capacity() {
		return
	}
	if v.size == 0 {
		v.realloc(1)
		return
	}
	v.realloc(2 * v.size)
}

// PushBack appends value.
func (v *SimpleVector[T]) PushBack(value T) {
	v.grow()
	*v.elements.At(v.size) = value
	v.size++
}

// PopBack removes the last element. It does nothing on an empty vector.
func (v *SimpleVector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	var zero T
	*v.elements.At(v.size) = zero
}

// Insert puts value at pos, shifting the rest right, and returns pos.
// pos must be in [0, Size].
func (v *SimpleVector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panic(&OutOfRangeError{Index: pos, Size: v.size})
	}
	v.grow()
	s := v.elements.Get()
	copy(s[pos+1:v.size+1], s[pos:v.size])
	s[pos] = value
	v.size++
	return pos
}

// Erase removes the element at pos and returns pos.
func (v *SimpleVector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(&OutOfRangeError{Index: pos, Size: v.size})
	}
	s := v.elements.Get()
	copy(s[pos:], s[pos+1:v.size])
	v.size--
	var zero T
	s[v.size] = zero
	return pos
}

// Swap exchanges the contents of v and other.
func (v *SimpleVector[T]) Swap(other *SimpleVector[T]) {
	v.elements.Swap(&other.elements)
	v.size, other.size = other.size, v.size
}

// Clone returns a copy of v with capacity equal to its size.
func (v *SimpleVector[T]) Clone() *SimpleVector[T] {
	return Of(v.Slice()...)
}

// Move transfers the contents of v to a new vector and leaves v empty.
func (v *SimpleVector[T]) Move() *SimpleVector[T] {
	n := &SimpleVector[T]{}
	n.Swap(v)
	return n
}

// Assign makes v a copy of rhs.
func (v *SimpleVector[T]) Assign(rhs *SimpleVector[T]) {
	if v == rhs {
		return
	}
	c := rhs.Clone()
	v.Swap(c)
}
