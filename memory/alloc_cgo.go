//go:build malloc_cgo
// +build malloc_cgo

package memory

import (
	"github.com/cockroachdb/errors"

	gomem "github.com/imgk/memory-go"
)

// alloc returns a block of n slots from memory-go. Only pointer-free
// element types may live in such a block, the garbage collector does not
// scan it.
func alloc[T any](n int) ([]T, func(), error) {
	ptr, b, err := gomem.Alloc[T](n)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "memory-go alloc %d", n)
	}
	if len(b) < n {
		gomem.Free(ptr)
		return nil, nil, errors.Newf("memory-go returned %d slots, want %d", len(b), n)
	}
	b = b[:n:n]
	clear(b)
	return b, func() { gomem.Free(ptr) }, nil
}
