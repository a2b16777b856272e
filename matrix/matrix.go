// Package matrix implements a dense row-major matrix with cheap repeated
// transposition.
package matrix

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrShapeMismatch is returned when data does not fit a shape.
var ErrShapeMismatch = errors.New("matrix: data does not match shape")

// Shape is the number of rows and columns.
type Shape struct {
	Rows int
	Cols int
}

// Len is the number of elements of a matrix of this shape.
func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// Matrix stores Rows*Cols elements row by row. The buffer of the previous
// orientation is kept and reused by the next transposition.
type Matrix[T any] struct {
	shape    Shape
	elements []T
	spare    []T
}

// Valid reports whether neither dimension is negative.
func (s Shape) Valid() bool {
	return s.Rows >= 0 && s.Cols >= 0
}

// New returns a matrix of zero values. It panics if the shape is not
// Valid, use FromData for a checked constructor.
func New[T any](shape Shape) *Matrix[T] {
	if !shape.Valid() {
		panic(errors.Wrapf(ErrShapeMismatch, "negative shape %dx%d", shape.Rows, shape.Cols))
	}
	return &Matrix[T]{shape: shape, elements: make([]T, shape.Len())}
}

// NewFilled returns a matrix whose elements are all v.
func NewFilled[T any](shape Shape, v T) *Matrix[T] {
	m := New[T](shape)
	for i := range m.elements {
		m.elements[i] = v
	}
	return m
}

// FromData returns a rows x cols matrix holding a copy of data.
func FromData[T any](rows, cols int, data []T) (*Matrix[T], error) {
	shape := Shape{Rows: rows, Cols: cols}
	if !shape.Valid() {
		return nil, errors.Wrapf(ErrShapeMismatch, "negative shape %dx%d", rows, cols)
	}
	if len(data) != shape.Len() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d elements for %dx%d", len(data), rows, cols)
	}
	m := New[T](shape)
	copy(m.elements, data)
	return m, nil
}

// Shape returns the current shape.
func (m *Matrix[T]) Shape() Shape {
	return m.shape
}

// Data returns the elements in row-major order.
func (m *Matrix[T]) Data() []T {
	return m.elements
}

// Row returns a view of row i.
func (m *Matrix[T]) Row(i int) []T {
	return m.elements[i*m.shape.Cols : (i+1)*m.shape.Cols : (i+1)*m.shape.Cols]
}

// At returns the element at row r, column c.
func (m *Matrix[T]) At(r, c int) *T {
	return &m.elements[r*m.shape.Cols+c]
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := New[T](m.shape)
	copy(c.elements, m.elements)
	return c
}

// Swap exchanges the contents of m and other.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	m.shape, other.shape = other.shape, m.shape
	m.elements, other.elements = other.elements, m.elements
	m.spare, other.spare = other.spare, m.spare
}

// T returns a transposed copy of m.
func (m *Matrix[T]) T() *Matrix[T] {
	return m.Clone().Transpose()
}

// Transpose transposes m in place and returns it.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	m.flip(m.elements)
	return m
}

// TransposeFrom replaces the elements of m with the transpose of data,
// read in the current shape of m.
func (m *Matrix[T]) TransposeFrom(data []T) (*Matrix[T], error) {
	if len(data) != m.shape.Len() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d elements for %dx%d", len(data), m.shape.Rows, m.shape.Cols)
	}
	m.flip(data)
	return m, nil
}

// flip writes the transpose of src into the spare buffer and makes it the
// current one.
func (m *Matrix[T]) flip(src []T) {
	if len(m.spare) != len(m.elements) {
		m.spare = make([]T, len(m.elements))
	}
	rows, cols := m.shape.Rows, m.shape.Cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.spare[c*rows+r] = src[r*cols+c]
		}
	}
	m.elements, m.spare = m.spare, m.elements
	m.shape.Rows, m.shape.Cols = cols, rows
}

// String prints one row per line.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for r := 0; r < m.shape.Rows; r++ {
		for _, v := range m.Row(r) {
			fmt.Fprint(&b, v)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
