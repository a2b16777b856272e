package matrix

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestTransposeFrom(t *testing.T) {
	shape := Shape{Rows: 2, Cols: 3}
	f := []int{0, 1, 2, 3, 4, 5}

	m := New[int](shape)
	_, err := m.TransposeFrom(f)
	require.NoError(t, err)
	require.Equal(t, Shape{Rows: 3, Cols: 2}, m.Shape())

	*m.At(0, 0) = -1
	require.Equal(t, []int{-1, 3, 1, 4, 2, 5}, m.Data())
	require.Equal(t, "-1 3 \n1 4 \n2 5 \n", m.String())

	tr := m.T()
	require.Equal(t, Shape{Rows: 2, Cols: 3}, tr.Shape())
	require.Equal(t, []int{-1, 1, 2}, tr.Row(0))
	require.Equal(t, Shape{Rows: 3, Cols: 2}, m.Shape(), "T must not change m")

	_, err = m.TransposeFrom([]int{1})
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestTransposeTwice(t *testing.T) {
	m, err := FromData(2, 2, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	m.Transpose()
	require.Equal(t, []string{"a", "c", "b", "d"}, m.Data())
	*m.At(1, 0) = "x"
	m.Transpose()
	require.Equal(t, []string{"a", "x", "c", "d"}, m.Data())
	require.Equal(t, "x", m.Row(0)[1])
}

func TestRowView(t *testing.T) {
	m := NewFilled(Shape{Rows: 2, Cols: 2}, 1)
	row := m.Row(1)
	row[0] = 9
	require.Equal(t, 9, *m.At(1, 0))
	require.Len(t, row, 2)
	require.Equal(t, 2, cap(row))
}

func TestFromDataMismatch(t *testing.T) {
	_, err := FromData(2, 2, []int{1, 2, 3})
	require.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = FromData(-1, -1, []int{1})
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestNewNegativeShape(t *testing.T) {
	require.False(t, Shape{Rows: -1, Cols: 3}.Valid())
	require.True(t, Shape{}.Valid())
	require.Panics(t, func() { New[int](Shape{Rows: -1, Cols: 3}) })
}

func TestCloneAndSwap(t *testing.T) {
	a, err := FromData(1, 2, []int{1, 2})
	require.NoError(t, err)
	b := a.Clone()
	*b.At(0, 0) = 7
	require.Equal(t, 1, *a.At(0, 0))

	c := New[int](Shape{Rows: 3, Cols: 1})
	a.Swap(c)
	require.Equal(t, Shape{Rows: 3, Cols: 1}, a.Shape())
	require.Equal(t, []int{1, 2}, c.Data())
}
