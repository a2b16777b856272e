package vector

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotCopyable is returned by copy operations on a type that
	// declares NoCopy.
	ErrNotCopyable = errors.New("vector: element type is not copyable")
	// ErrNegativeSize is returned for a negative size.
	ErrNegativeSize = errors.New("vector: negative size")
)

// OutOfRangeError reports a checked access outside [0, Size).
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range for size %d", e.Index, e.Size)
}
