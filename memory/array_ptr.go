package memory

// ArrayPtr owns an array of initialized elements. Unlike RawMemory every
// slot holds a value, so the array can be handed out and taken back.
type ArrayPtr[T any] struct {
	_ noCopy

	raw []T
}

// NewArrayPtr allocates size zero-valued elements. Size 0 holds nothing.
func NewArrayPtr[T any](size int) *ArrayPtr[T] {
	if size <= 0 {
		return &ArrayPtr[T]{}
	}
	return &ArrayPtr[T]{raw: make([]T, size)}
}

// AdoptArray takes ownership of raw.
func AdoptArray[T any](raw []T) *ArrayPtr[T] {
	return &ArrayPtr[T]{raw: raw}
}

// Get returns the owned array without giving up ownership.
func (p *ArrayPtr[T]) Get() []T {
	return p.raw
}

// At returns the element at index.
func (p *ArrayPtr[T]) At(index int) *T {
	return &p.raw[index]
}

// Valid reports whether p holds an array.
func (p *ArrayPtr[T]) Valid() bool {
	return p.raw != nil
}

// Release gives up ownership and returns the array.
func (p *ArrayPtr[T]) Release() []T {
	raw := p.raw
	p.raw = nil
	return raw
}

// Swap exchanges the arrays of p and other.
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.raw, other.raw = other.raw, p.raw
}
