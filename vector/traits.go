package vector

import "github.com/cockroachdb/errors"

// Constructor is implemented by *T when the default value of T needs more
// than the zero value. Construct runs on a zeroed slot.
type Constructor interface {
	Construct() error
}

// Copier is implemented by *T to copy-construct into a zeroed slot.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Assigner is implemented by *T to copy-assign over a live element.
type Assigner[T any] interface {
	AssignFrom(src *T) error
}

// Mover is implemented by *T to move-construct into a zeroed slot.
type Mover[T any] interface {
	MoveFrom(src *T)
}

// MoveAssigner is implemented by *T to move-assign over a live element.
type MoveAssigner[T any] interface {
	MoveAssignFrom(src *T)
}

// Destroyer is implemented by *T to release what an element holds.
type Destroyer interface {
	Destroy()
}

// NothrowMover marks element types whose relocation is preferred over
// copying when the vector grows.
type NothrowMover interface {
	NothrowMove()
}

// NoCopier marks element types that cannot be copied.
type NoCopier interface {
	NoCopy()
}

// Traits are the lifecycle hooks of an element type. Nil hooks fall back
// to plain Go value semantics.
type Traits[T any] struct {
	Construct  func(dst *T) error
	Copy       func(dst, src *T) error
	Assign     func(dst, src *T) error
	Move       func(dst, src *T)
	MoveAssign func(dst, src *T)
	Destroy    func(p *T)

	// NothrowMove declares that moving never fails, so growth moves
	// elements instead of copying them.
	NothrowMove bool
	// NoCopy declares the type not copyable. Growth then always moves and
	// copy operations fail with ErrNotCopyable.
	NoCopy bool
}

// TraitsFor builds Traits from the interfaces implemented by *T.
func TraitsFor[T any]() Traits[T] {
	var tr Traits[T]

	p := any((*T)(nil))
	if _, ok := p.(Constructor); ok {
		tr.Construct = func(dst *T) error { return any(dst).(Constructor).Construct() }
	}
	if _, ok := p.(Copier[T]); ok {
		tr.Copy = func(dst, src *T) error { return any(dst).(Copier[T]).CopyFrom(src) }
	}
	if _, ok := p.(Assigner[T]); ok {
		tr.Assign = func(dst, src *T) error { return any(dst).(Assigner[T]).AssignFrom(src) }
	}
	if _, ok := p.(Mover[T]); ok {
		tr.Move = func(dst, src *T) { any(dst).(Mover[T]).MoveFrom(src) }
	}
	if _, ok := p.(MoveAssigner[T]); ok {
		tr.MoveAssign = func(dst, src *T) { any(dst).(MoveAssigner[T]).MoveAssignFrom(src) }
	}
	if _, ok := p.(Destroyer); ok {
		tr.Destroy = func(p *T) { any(p).(Destroyer).Destroy() }
	}
	_, tr.NothrowMove = p.(NothrowMover)
	_, tr.NoCopy = p.(NoCopier)

	return tr
}

// relocatesByMove reports whether growth moves elements. Types without a
// copy hook copy bitwise, which is the same as moving and cannot fail.
func (tr *Traits[T]) relocatesByMove() bool {
	return tr.NothrowMove || tr.NoCopy || tr.Copy == nil
}

// build runs fn on the zeroed slot dst and zeroes it again if fn fails.
func (tr *Traits[T]) build(dst *T, fn func(*T) error) error {
	if err := fn(dst); err != nil {
		var zero T
		*dst = zero
		return err
	}
	return nil
}

func (tr *Traits[T]) construct(dst *T) error {
	if tr.Construct == nil {
		return nil
	}
	return tr.build(dst, tr.Construct)
}

func (tr *Traits[T]) copy(dst, src *T) error {
	if tr.NoCopy {
		return ErrNotCopyable
	}
	if tr.Copy == nil {
		*dst = *src
		return nil
	}
	return tr.build(dst, func(dst *T) error { return tr.Copy(dst, src) })
}

func (tr *Traits[T]) assign(dst, src *T) error {
	if tr.NoCopy {
		return ErrNotCopyable
	}
	if tr.Assign != nil {
		return tr.Assign(dst, src)
	}
	if tr.Copy == nil {
		*dst = *src
		return nil
	}

	var tmp T
	if err := tr.copy(&tmp, src); err != nil {
		return err
	}
	tr.destroy(dst)
	*dst = tmp
	return nil
}

// move hands *src over to the zeroed slot dst. Without a Move hook the
// value is copied bitwise and *src is zeroed, the moved-from slot then owns
// nothing and must be released, not destroyed.
func (tr *Traits[T]) move(dst, src *T) {
	if tr.Move == nil {
		*dst = *src
		var zero T
		*src = zero
		return
	}
	tr.Move(dst, src)
}

// transfers reports whether moves hand over ownership bitwise, leaving dead
// slots behind.
func (tr *Traits[T]) transfers() bool {
	return tr.Move == nil && tr.MoveAssign == nil
}

// release ends a moved-from element. A Move hook leaves a valid object that
// is destroyed like any other; a bitwise move leaves a zeroed slot that
// owns nothing.
func (tr *Traits[T]) release(p *T) {
	if tr.Move == nil {
		var zero T
		*p = zero
		return
	}
	tr.destroy(p)
}

func (tr *Traits[T]) releaseN(s []T) {
	for i := range s {
		tr.release(&s[i])
	}
}

func (tr *Traits[T]) moveAssign(dst, src *T) {
	if tr.MoveAssign == nil {
		tr.destroy(dst)
		tr.move(dst, src)
		return
	}
	tr.MoveAssign(dst, src)
}

// destroy ends the life of the element at p and zeroes its slot.
func (tr *Traits[T]) destroy(p *T) {
	if tr.Destroy != nil {
		tr.Destroy(p)
	}
	var zero T
	*p = zero
}

func (tr *Traits[T]) destroyN(s []T) {
	for i := range s {
		tr.destroy(&s[i])
	}
}

// constructN default-constructs every slot of dst. On failure the slots
// constructed so far are destroyed.
func (tr *Traits[T]) constructN(dst []T) error {
	for i := range dst {
		if err := tr.construct(&dst[i]); err != nil {
			tr.destroyN(dst[:i])
			return errors.Wrapf(err, "construct element %d", i)
		}
	}
	return nil
}

// fillN copy-constructs every slot of dst from value, rolling back on
// failure like constructN.
func (tr *Traits[T]) fillN(dst []T, value *T) error {
	for i := range dst {
		if err := tr.copy(&dst[i], value); err != nil {
			tr.destroyN(dst[:i])
			return errors.Wrapf(err, "copy element %d", i)
		}
	}
	return nil
}

// copyN copy-constructs dst from src, rolling back on failure.
func (tr *Traits[T]) copyN(dst, src []T) error {
	for i := range src {
		if err := tr.copy(&dst[i], &src[i]); err != nil {
			tr.destroyN(dst[:i])
			return errors.Wrapf(err, "copy element %d", i)
		}
	}
	return nil
}

func (tr *Traits[T]) moveN(dst, src []T) {
	for i := range src {
		tr.move(&dst[i], &src[i])
	}
}

// relocateN moves or copies src into the uninitialized dst. The source
// elements stay live either way and are destroyed by the caller.
func (tr *Traits[T]) relocateN(dst, src []T) error {
	if tr.relocatesByMove() {
		tr.moveN(dst, src)
		return nil
	}
	return tr.copyN(dst, src)
}
