package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/imgk/go-containers/memory"
)

// Reserve grows the capacity to exactly capacity. It does nothing when the
// current capacity is enough. Elements are moved or copied into the new
// block according to the element traits; if a copy fails the new block is
// discarded and v is unchanged.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.Capacity() {
		return nil
	}

	data, err := memory.New[T](capacity)
	if err != nil {
		return err
	}
	if err := v.ops().relocateN(data.Slice(0, v.size), v.Slice()); err != nil {
		data.Free()
		return errors.Wrapf(err, "reserve %d", capacity)
	}
	v.adopt(data)
	return nil
}

// adopt ends the elements of the current block and takes over data, whose
// first v.size slots already hold their replacements. Copied sources are
// still live and get destroyed, moved-from ones are released.
func (v *Vector[T]) adopt(data *memory.RawMemory[T]) {
	tr := v.ops()
	if tr.relocatesByMove() {
		tr.releaseN(v.Slice())
	} else {
		tr.destroyN(v.Slice())
	}
	v.data.Swap(data)
	data.Free()
}

// grownCapacity is the capacity used when an insertion finds v full.
func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}

// Resize sets the number of elements to size. Surplus elements are
// destroyed, missing ones are default-constructed. Growing past the
// capacity first reserves max(2*Capacity, size).
//
// If constructing the new tail fails, the tail built so far is destroyed
// and Size is unchanged, though the capacity may have grown.
func (v *Vector[T]) Resize(size int) error {
	if size < 0 {
		return errors.Wrapf(ErrNegativeSize, "size %d", size)
	}

	tr := v.ops()
	if size <= v.size {
		tr.destroyN(v.data.Slice(size, v.size))
		v.size = size
		return nil
	}

	if size > v.Capacity() {
		if err := v.Reserve(max(2*v.Capacity(), size)); err != nil {
			return err
		}
	}
	if err := tr.constructN(v.data.Slice(v.size, size)); err != nil {
		return errors.Wrapf(err, "resize to %d", size)
	}
	v.size = size
	return nil
}

// PushBack moves value to the end of v.
func (v *Vector[T]) PushBack(value T) error {
	tr := v.ops()
	moved := false
	_, err := v.emplaceBack(func(dst *T) error {
		tr.move(dst, &value)
		moved = true
		return nil
	})
	if moved {
		tr.release(&value)
	} else {
		tr.destroy(&value)
	}
	return err
}

// PushBackCopy copy-constructs *src at the end of v. src may point into v
// itself, the copy is made before the old block goes away.
func (v *Vector[T]) PushBackCopy(src *T) error {
	tr := v.ops()
	_, err := v.emplaceBack(func(dst *T) error {
		return tr.copy(dst, src)
	})
	return err
}

// EmplaceBack runs init on a zeroed slot at the end of v and returns the
// new element.
func (v *Vector[T]) EmplaceBack(init func(*T) error) (*T, error) {
	return v.emplaceBack(init)
}

func (v *Vector[T]) emplaceBack(construct func(*T) error) (*T, error) {
	tr := v.ops()
	if v.size < v.Capacity() {
		slot := v.data.At(v.size)
		if err := tr.build(slot, construct); err != nil {
			return nil, errors.Wrapf(err, "construct element %d", v.size)
		}
		v.size++
		return slot, nil
	}

	data, err := memory.New[T](v.grownCapacity())
	if err != nil {
		return nil, err
	}
	slot := data.At(v.size)
	if err := tr.build(slot, construct); err != nil {
		data.Free()
		return nil, errors.Wrapf(err, "construct element %d", v.size)
	}
	if err := tr.relocateN(data.Slice(0, v.size), v.Slice()); err != nil {
		tr.destroy(slot)
		data.Free()
		return nil, errors.Wrap(err, "relocate")
	}
	v.adopt(data)
	v.size++
	return slot, nil
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic(&OutOfRangeError{Index: -1, Size: 0})
	}
	v.size--
	v.ops().destroy(v.data.At(v.size))
}

// Insert moves value to position pos, shifting the elements at and after
// pos to the right, and returns pos. pos must be in [0, Size].
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	tr := v.ops()
	moved := false
	pos, err := v.emplace(pos, func(dst *T) error {
		tr.move(dst, &value)
		moved = true
		return nil
	})
	if moved {
		tr.release(&value)
	} else {
		tr.destroy(&value)
	}
	return pos, err
}

// InsertCopy copy-constructs *src at position pos. Like PushBackCopy, src
// may point into v.
func (v *Vector[T]) InsertCopy(pos int, src *T) (int, error) {
	tr := v.ops()
	return v.emplace(pos, func(dst *T) error {
		return tr.copy(dst, src)
	})
}

// Emplace runs init to build a new element at position pos.
func (v *Vector[T]) Emplace(pos int, init func(*T) error) (int, error) {
	return v.emplace(pos, init)
}

func (v *Vector[T]) emplace(pos int, construct func(*T) error) (int, error) {
	if pos < 0 || pos > v.size {
		panic(&OutOfRangeError{Index: pos, Size: v.size})
	}
	if pos == v.size {
		_, err := v.emplaceBack(construct)
		return pos, err
	}

	tr := v.ops()
	if v.size < v.Capacity() {
		// The new value is built aside first, construct may read from
		// the elements that are about to shift.
		var tmp T
		if err := tr.build(&tmp, construct); err != nil {
			return pos, errors.Wrapf(err, "construct element %d", pos)
		}
		tr.move(v.data.At(v.size), v.data.At(v.size-1))
		if tr.transfers() {
			// Every slot from pos on is dead once its value moved right.
			for i := v.size - 1; i > pos; i-- {
				tr.move(v.data.At(i), v.data.At(i-1))
			}
			tr.move(v.data.At(pos), &tmp)
		} else {
			for i := v.size - 1; i > pos; i-- {
				tr.moveAssign(v.data.At(i), v.data.At(i-1))
			}
			tr.moveAssign(v.data.At(pos), &tmp)
			tr.destroy(&tmp)
		}
		v.size++
		return pos, nil
	}

	data, err := memory.New[T](v.grownCapacity())
	if err != nil {
		return pos, err
	}
	slot := data.At(pos)
	if err := tr.build(slot, construct); err != nil {
		data.Free()
		return pos, errors.Wrapf(err, "construct element %d", pos)
	}
	if err := tr.relocateN(data.Slice(0, pos), v.data.Slice(0, pos)); err != nil {
		tr.destroy(slot)
		data.Free()
		return pos, errors.Wrap(err, "relocate prefix")
	}
	if err := tr.relocateN(data.Slice(pos+1, v.size+1), v.data.Slice(pos, v.size)); err != nil {
		tr.destroyN(data.Slice(0, pos+1))
		data.Free()
		return pos, errors.Wrap(err, "relocate suffix")
	}
	v.adopt(data)
	v.size++
	return pos, nil
}

// Erase removes the element at pos, shifting the following elements left,
// and returns pos, which now indexes the next element or equals Size.
// Capacity is unchanged.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(&OutOfRangeError{Index: pos, Size: v.size})
	}

	tr := v.ops()
	if tr.transfers() {
		tr.destroy(v.data.At(pos))
		for i := pos; i < v.size-1; i++ {
			tr.move(v.data.At(i), v.data.At(i+1))
		}
		v.size--
		return pos
	}

	for i := pos; i < v.size-1; i++ {
		tr.moveAssign(v.data.At(i), v.data.At(i+1))
	}
	v.size--
	tr.destroy(v.data.At(v.size))
	return pos
}

// Clear destroys every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.ops().destroyN(v.Slice())
	v.size = 0
}
