// Package optional implements Optional, a value that may be absent.
package optional

import "github.com/cockroachdb/errors"

// ErrBadOptionalAccess is returned when reading an empty Optional.
var ErrBadOptionalAccess = errors.New("bad optional access")

// Destroyer is implemented by *T to release what a held value owns. Set,
// Reset and Emplace call it before dropping the value.
type Destroyer interface {
	Destroy()
}

// Optional holds a T or nothing. The zero value holds nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// HasValue reports whether o holds a value.
func (o *Optional[T]) HasValue() bool {
	return o.ok
}

// Value returns the held value or ErrBadOptionalAccess.
func (o *Optional[T]) Value() (*T, error) {
	if !o.ok {
		return nil, ErrBadOptionalAccess
	}
	return &o.value, nil
}

// MustValue is like Value but panics on an empty Optional.
func (o *Optional[T]) MustValue() *T {
	p, err := o.Value()
	if err != nil {
		panic(err)
	}
	return p
}

// Ptr returns the value slot without checking HasValue.
func (o *Optional[T]) Ptr() *T {
	return &o.value
}

// ValueOr returns the held value or def.
func (o *Optional[T]) ValueOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Set stores v. A held value is destroyed first.
func (o *Optional[T]) Set(v T) {
	o.Reset()
	o.value = v
	o.ok = true
}

// Assign makes o hold what other holds.
func (o *Optional[T]) Assign(other *Optional[T]) {
	if o == other {
		return
	}
	if !other.ok {
		o.Reset()
		return
	}
	o.Set(other.value)
}

// Emplace drops the held value and builds a new one in place with init.
// If init fails o is left empty.
func (o *Optional[T]) Emplace(init func(*T) error) error {
	o.Reset()
	if err := init(&o.value); err != nil {
		var zero T
		o.value = zero
		return errors.Wrap(err, "optional: emplace")
	}
	o.ok = true
	return nil
}

// Reset drops the held value, if any.
func (o *Optional[T]) Reset() {
	if !o.ok {
		return
	}
	if d, ok := any(&o.value).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	o.value = zero
	o.ok = false
}
