// Package vector implements Vector, a growable array that manages the life
// of its elements inside raw storage.
//
// Slots [0, Size) hold live elements, slots [Size, Capacity) are
// uninitialized. Operations that reallocate build the new block completely
// before the old one is released, so a failing element copy leaves the
// vector as it was.
package vector

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/imgk/go-containers/memory"
)

// Vector is a dynamic array of T. The zero value is an empty vector whose
// element hooks come from TraitsFor[T]. A Vector must not be copied, use
// Clone or Move.
type Vector[T any] struct {
	data   memory.RawMemory[T]
	size   int
	traits *Traits[T]
}

// Option configures a new Vector.
type Option[T any] func(*Vector[T])

// WithTraits sets the element hooks instead of detecting them from T.
func WithTraits[T any](tr Traits[T]) Option[T] {
	return func(v *Vector[T]) {
		v.traits = &tr
	}
}

func newVector[T any](opts []Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// New returns a vector of size default-constructed elements, its capacity
// is exactly size. If an element fails to construct, the ones built before
// it are destroyed and no vector is returned.
func New[T any](size int, opts ...Option[T]) (*Vector[T], error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "size %d", size)
	}

	v := newVector(opts)
	data, err := memory.New[T](size)
	if err != nil {
		return nil, err
	}
	if err := v.ops().constructN(data.Slice(0, size)); err != nil {
		data.Free()
		return nil, err
	}
	v.data.Swap(data)
	v.size = size
	return v, nil
}

// NewFilled returns a vector of size copies of value.
func NewFilled[T any](size int, value T, opts ...Option[T]) (*Vector[T], error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "size %d", size)
	}

	v := newVector(opts)
	data, err := memory.New[T](size)
	if err != nil {
		return nil, err
	}
	if err := v.ops().fillN(data.Slice(0, size), &value); err != nil {
		data.Free()
		return nil, err
	}
	v.data.Swap(data)
	v.size = size
	return v, nil
}

func (v *Vector[T]) ops() *Traits[T] {
	if v.traits == nil {
		tr := TraitsFor[T]()
		v.traits = &tr
	}
	return v.traits
}

// Clone copy-constructs a new vector whose capacity equals v.Size().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith(v.ops())
}

func (v *Vector[T]) cloneWith(tr *Traits[T]) (*Vector[T], error) {
	data, err := memory.New[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := tr.copyN(data.Slice(0, v.size), v.Slice()); err != nil {
		data.Free()
		return nil, err
	}

	c := &Vector[T]{traits: tr, size: v.size}
	c.data.Swap(data)
	return c, nil
}

// Move transfers the block and the elements of v to a new vector. v is
// left empty with no capacity. No element is touched.
func (v *Vector[T]) Move() *Vector[T] {
	n := &Vector[T]{traits: v.traits}
	n.Swap(v)
	return n
}

// Assign makes v a copy of rhs.
//
// When rhs does not fit into the capacity of v it behaves like
// AssignStrict. Otherwise the common prefix is copy-assigned, extra
// elements are copy-constructed into spare capacity and surplus elements
// are destroyed. A failure on that path leaves v valid but partially
// assigned.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.Capacity() {
		return v.AssignStrict(rhs)
	}

	tr := v.ops()
	common := min(v.size, rhs.size)
	for i := 0; i < common; i++ {
		if err := tr.assign(v.data.At(i), rhs.data.At(i)); err != nil {
			return errors.Wrapf(err, "assign element %d", i)
		}
	}

	if v.size < rhs.size {
		for i := v.size; i < rhs.size; i++ {
			if err := tr.copy(v.data.At(i), rhs.data.At(i)); err != nil {
				v.size = i
				return errors.Wrapf(err, "copy element %d", i)
			}
		}
	} else {
		tr.destroyN(v.data.Slice(rhs.size, v.size))
	}
	v.size = rhs.size
	return nil
}

// AssignStrict makes v a copy of rhs by building the copy aside and
// swapping it in. On failure v is unchanged.
func (v *Vector[T]) AssignStrict(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}

	tmp, err := rhs.cloneWith(v.ops())
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.Free()
	return nil
}

// MoveAssign exchanges the contents of v and rhs. rhs takes over the old
// elements of v and releases them with its own Free.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Swap(rhs)
}

// Swap exchanges the blocks and sizes of v and other. Element hooks stay
// with their vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Free destroys every element and releases the block. v is empty and
// usable afterwards.
func (v *Vector[T]) Free() {
	v.ops().destroyN(v.Slice())
	v.data.Free()
	v.size = 0
}

// Size is the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity is the number of slots in the block.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// Empty reports whether v holds no element.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at index without checking it against Size.
func (v *Vector[T]) At(index int) *T {
	return v.data.At(index)
}

// Get returns the element at index or an *OutOfRangeError.
func (v *Vector[T]) Get(index int) (*T, error) {
	if index < 0 || index >= v.size {
		return nil, &OutOfRangeError{Index: index, Size: v.size}
	}
	return v.data.At(index), nil
}

// Slice returns the live elements. It is invalidated by any operation that
// reallocates.
func (v *Vector[T]) Slice() []T {
	return v.data.Slice(0, v.size)
}

// All iterates over [0, Size) yielding each index and element.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.At(i)) {
				return
			}
		}
	}
}

// Values iterates over the element values in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}
