// Package list implements a singly linked list with a sentinel head.
package list

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNilPosition is returned when inserting after the end position.
var ErrNilPosition = errors.New("list: position points to nil")

type node[T any] struct {
	value T
	next  *node[T]
}

// Iterator is a position in a list. The zero Iterator is the end position.
// Iterators compare with ==.
type Iterator[T any] struct {
	node *node[T]
}

// Next returns the following position. Next of the end position is the
// end position.
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		return it
	}
	return Iterator[T]{node: it.node.next}
}

// Value returns the element at it. It must not be called on the end or
// before-begin position.
func (it Iterator[T]) Value() *T {
	return &it.node.value
}

// SingleLinkedList is a forward list. The zero value is empty.
type SingleLinkedList[T any] struct {
	head node[T]
	size int
}

// Of returns a list holding values in order.
func Of[T any](values ...T) *SingleLinkedList[T] {
	l := &SingleLinkedList[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
	return l
}

// Clone returns a copy of l.
func (l *SingleLinkedList[T]) Clone() *SingleLinkedList[T] {
	c := &SingleLinkedList[T]{}
	tail := c.BeforeBegin()
	for v := range l.All() {
		tail.node.next = &node[T]{value: v}
		tail = tail.Next()
	}
	c.size = l.size
	return c
}

// Assign makes l a copy of rhs.
func (l *SingleLinkedList[T]) Assign(rhs *SingleLinkedList[T]) {
	if l == rhs {
		return
	}
	c := rhs.Clone()
	l.Swap(c)
}

// Swap exchanges the elements of l and other.
func (l *SingleLinkedList[T]) Swap(other *SingleLinkedList[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Size is the number of elements.
func (l *SingleLinkedList[T]) Size() int {
	return l.size
}

// Empty reports whether l has no element.
func (l *SingleLinkedList[T]) Empty() bool {
	return l.head.next == nil
}

// BeforeBegin is the position before the first element, usable with
// InsertAfter and EraseAfter.
func (l *SingleLinkedList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{node: &l.head}
}

// Begin is the position of the first element.
func (l *SingleLinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head.next}
}

// End is the position past the last element.
func (l *SingleLinkedList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// PushFront inserts value at the front.
func (l *SingleLinkedList[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PushBack appends value. It walks the list.
func (l *SingleLinkedList[T]) PushBack(value T) {
	l.InsertAfter(l.beforeEnd(), value)
}

// InsertAfter inserts value after pos and returns its position.
func (l *SingleLinkedList[T]) InsertAfter(pos Iterator[T], value T) (Iterator[T], error) {
	if pos.node == nil {
		return Iterator[T]{}, ErrNilPosition
	}
	pos.node.next = &node[T]{value: value, next: pos.node.next}
	l.size++
	return Iterator[T]{node: pos.node.next}, nil
}

// EraseAfter removes the element after pos and returns the position that
// follows it. Nothing happens when pos has no successor.
func (l *SingleLinkedList[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.node == nil || pos.node.next == nil {
		return Iterator[T]{}
	}
	erased := pos.node.next
	pos.node.next = erased.next
	erased.next = nil
	l.size--
	return Iterator[T]{node: pos.node.next}
}

// PopFront removes the first element, if any.
func (l *SingleLinkedList[T]) PopFront() {
	l.EraseAfter(l.BeforeBegin())
}

// PopBack removes the last element, if any. It walks the list.
func (l *SingleLinkedList[T]) PopBack() {
	if l.Empty() {
		return
	}
	pos := l.BeforeBegin()
	for pos.node.next.next != nil {
		pos = pos.Next()
	}
	l.EraseAfter(pos)
}

// beforeEnd is the position of the last element, or BeforeBegin for an
// empty list.
func (l *SingleLinkedList[T]) beforeEnd() Iterator[T] {
	pos := l.BeforeBegin()
	for pos.node.next != nil {
		pos = pos.Next()
	}
	return pos
}

// Clear removes every element.
func (l *SingleLinkedList[T]) Clear() {
	for !l.Empty() {
		l.PopFront()
	}
}

// All iterates over the element values in order.
func (l *SingleLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String renders l as [(a)->(b)->(c)].
func (l *SingleLinkedList[T]) String() string {
	var b strings.Builder
	b.WriteString("[(")
	first := true
	for v := range l.All() {
		if !first {
			b.WriteString(")->(")
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteString(")]")
	return b.String()
}

// Equal reports whether a and b hold the same elements in order.
func Equal[T comparable](a, b *SingleLinkedList[T]) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil && y != nil; x, y = x.next, y.next {
		if x.value != y.value {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically.
func Compare[T cmp.Ordered](a, b *SingleLinkedList[T]) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp.Compare(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}
