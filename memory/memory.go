// Package memory owns uninitialized element storage. Nothing in this
// package constructs or destroys elements: a RawMemory only knows how many
// slots it holds, never which of them are live.
package memory

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// maxAllocBytes bounds a single block, it matches the runtime's limit on
// 64-bit platforms.
const maxAllocBytes uint64 = 1 << 47

var (
	// ErrInvalidCapacity is returned for a negative capacity.
	ErrInvalidCapacity = errors.New("memory: invalid capacity")
	// ErrCapacityOverflow is returned when capacity*sizeof(T) is too large.
	ErrCapacityOverflow = errors.New("memory: capacity overflows allocation limit")
)

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawMemory is a block of capacity slots of T. A nil buffer is the empty
// block and capacity is then 0.
type RawMemory[T any] struct {
	_ noCopy

	buffer []T
	free   func()
}

// New allocates a block for capacity elements. A zero capacity allocates
// nothing.
func New[T any](capacity int) (*RawMemory[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	if capacity == 0 {
		return &RawMemory[T]{}, nil
	}

	var zero T
	if size := uint64(unsafe.Sizeof(zero)); size != 0 && uint64(capacity) > maxAllocBytes/size {
		return nil, errors.Wrapf(ErrCapacityOverflow, "capacity %d of %d-byte elements", capacity, size)
	}

	buf, free, err := alloc[T](capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "allocate %d elements", capacity)
	}
	return &RawMemory[T]{buffer: buf, free: free}, nil
}

// Capacity is the number of slots in the block.
func (m *RawMemory[T]) Capacity() int {
	return len(m.buffer)
}

// At returns the slot at index. Whether it holds a live element is up to
// the caller.
func (m *RawMemory[T]) At(index int) *T {
	return &m.buffer[index]
}

// Slice returns the slots in [from, to).
func (m *RawMemory[T]) Slice(from, to int) []T {
	return m.buffer[from:to:to]
}

// Swap exchanges the blocks of m and other.
func (m *RawMemory[T]) Swap(other *RawMemory[T]) {
	m.buffer, other.buffer = other.buffer, m.buffer
	m.free, other.free = other.free, m.free
}

// Move transfers the block to a new RawMemory and leaves m empty.
func (m *RawMemory[T]) Move() *RawMemory[T] {
	n := &RawMemory[T]{}
	n.Swap(m)
	return n
}

// Free releases the block. Live elements must have been destroyed before.
// Calling Free on an empty block is a no-op.
func (m *RawMemory[T]) Free() {
	if m.free != nil {
		m.free()
	}
	m.buffer = nil
	m.free = nil
}
