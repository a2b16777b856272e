package vector

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromInts(t *testing.T, values ...int) *Vector[int] {
	t.Helper()
	v := &Vector[int]{}
	for _, x := range values {
		require.NoError(t, v.PushBack(x))
	}
	return v
}

func TestNew(t *testing.T) {
	for _, size := range []int{0, 1, 5, 100} {
		v, err := New[int](size)
		require.NoError(t, err)
		require.Equal(t, size, v.Size())
		require.Equal(t, size, v.Capacity())
		for x := range v.Values() {
			require.Zero(t, x)
		}
	}

	_, err := New[int](-1)
	require.True(t, errors.Is(err, ErrNegativeSize), "got %v", err)
}

func TestNewFilled(t *testing.T) {
	v, err := NewFilled(3, "hi")
	require.NoError(t, err)
	require.Equal(t, 3, v.Capacity())
	require.Equal(t, []string{"hi", "hi", "hi"}, v.Slice())

	resetObjStats()
	o, err := NewFilled(4, newObj(7))
	require.NoError(t, err)
	require.Equal(t, 4, objStats.copied)
	require.Equal(t, []int{7, 7, 7, 7}, objIDs(o))
	o.Free()
}

func TestZeroValue(t *testing.T) {
	var v Vector[int]
	require.True(t, v.Empty())
	require.Equal(t, 0, v.Capacity())
	require.Empty(t, v.Slice())
	require.NoError(t, v.PushBack(1))
	require.Equal(t, []int{1}, v.Slice())
}

func TestNewConstructFailure(t *testing.T) {
	const size = 100

	resetObjStats()
	objStats.constructFailCountdown = size / 2

	v, err := New[obj](size)
	require.Nil(t, v)
	require.True(t, errors.Is(err, errOops), "got %v", err)
	require.Equal(t, size/2-1, objStats.defaultConstructed)
	require.Equal(t, 0, aliveObjs())
}

func TestCloneFailure(t *testing.T) {
	const size = 100

	resetObjStats()
	v, err := New[obj](size)
	require.NoError(t, err)

	v.At(size / 2).failOnCopy = true
	c, err := v.Clone()
	require.Nil(t, c)
	require.True(t, errors.Is(err, errOops), "got %v", err)
	require.Equal(t, size/2, objStats.copied)
	require.Equal(t, size, aliveObjs())

	v.Free()
	require.Equal(t, 0, aliveObjs())
}

func TestCloneIndependence(t *testing.T) {
	v, err := New[int](100)
	require.NoError(t, err)
	*v.At(10) = 42

	c, err := v.Clone()
	require.NoError(t, err)
	require.Equal(t, v.Size(), c.Capacity())
	require.NotSame(t, v.At(10), c.At(10))
	require.Equal(t, *v.At(10), *c.At(10))

	*c.At(10) = 7
	require.Equal(t, 42, *v.At(10))
	if diff := cmp.Diff(v.Slice()[:10], c.Slice()[:10]); diff != "" {
		t.Errorf("prefix differs (-v +c):\n%s", diff)
	}
}

func TestMove(t *testing.T) {
	resetObjStats()
	v, err := New[obj](3)
	require.NoError(t, err)
	require.NoError(t, v.Reserve(8))
	first := v.At(0)

	before := objStats
	m := v.Move()
	require.Equal(t, before, objStats, "move must not touch elements")

	require.Equal(t, 0, v.Size())
	require.Equal(t, 0, v.Capacity())
	require.Equal(t, 3, m.Size())
	require.Equal(t, 8, m.Capacity())
	require.Same(t, first, m.At(0))

	require.NoError(t, v.PushBack(newObj(1)))
	v.Free()
	m.Free()
	require.Equal(t, 0, aliveObjs())
}

func TestAssignReallocates(t *testing.T) {
	dst := fromInts(t, 1, 2)
	src := fromInts(t, 5, 6, 7, 8, 9)

	require.NoError(t, dst.Assign(src))
	require.Equal(t, src.Slice(), dst.Slice())
	require.Equal(t, 5, dst.Capacity())
	require.NotSame(t, src.At(0), dst.At(0))
}

func TestAssignInPlace(t *testing.T) {
	resetObjStats()

	dst, err := New[obj](10)
	require.NoError(t, err)
	src, err := New[obj](3)
	require.NoError(t, err)
	for i := range src.Size() {
		src.At(i).id = i + 1
	}

	require.NoError(t, dst.Assign(src))
	require.Equal(t, 3, objStats.assigned)
	require.Equal(t, 7, objStats.destroyed)
	require.Equal(t, 3, dst.Size())
	require.Equal(t, 10, dst.Capacity())
	require.Equal(t, []int{1, 2, 3}, objIDs(dst))

	grow, err := New[obj](1)
	require.NoError(t, err)
	require.NoError(t, grow.Reserve(5))
	resetObjStats()
	require.NoError(t, grow.Assign(src))
	require.Equal(t, 1, objStats.assigned)
	require.Equal(t, 2, objStats.copied)
	require.Equal(t, []int{1, 2, 3}, objIDs(grow))
	require.Equal(t, 5, grow.Capacity())

	require.NoError(t, dst.Assign(dst))
	require.Equal(t, []int{1, 2, 3}, objIDs(dst))
}

func TestAssignInPlaceFailure(t *testing.T) {
	resetObjStats()

	dst, err := New[obj](2)
	require.NoError(t, err)
	require.NoError(t, dst.Reserve(10))
	src, err := New[obj](5)
	require.NoError(t, err)
	for i := range src.Size() {
		src.At(i).id = i + 1
	}
	src.At(3).failOnCopy = true

	err = dst.Assign(src)
	require.True(t, errors.Is(err, errOops), "got %v", err)

	// Partially assigned but consistent.
	require.Equal(t, 3, dst.Size())
	require.Equal(t, []int{1, 2, 3}, objIDs(dst))

	dst.Free()
	src.Free()
	require.Equal(t, 0, aliveObjs())
}

func TestAssignStrictFailure(t *testing.T) {
	resetObjStats()

	dst, err := New[obj](2)
	require.NoError(t, err)
	require.NoError(t, dst.Reserve(10))
	dst.At(0).id, dst.At(1).id = 10, 20

	src, err := New[obj](5)
	require.NoError(t, err)
	src.At(3).failOnCopy = true

	err = dst.AssignStrict(src)
	require.True(t, errors.Is(err, errOops), "got %v", err)
	require.Equal(t, []int{10, 20}, objIDs(dst))
	require.Equal(t, 10, dst.Capacity())
	require.Equal(t, 7, aliveObjs())
}

func TestMoveAssign(t *testing.T) {
	a := fromInts(t, 1, 2, 3)
	b := fromInts(t, 4)

	a.MoveAssign(b)
	require.Equal(t, []int{4}, a.Slice())
	require.Equal(t, []int{1, 2, 3}, b.Slice())

	a.MoveAssign(a)
	require.Equal(t, []int{4}, a.Slice())
}

func TestSwap(t *testing.T) {
	a := fromInts(t, 1, 2, 3)
	b := fromInts(t, 4, 5)
	pa, pb := a.At(0), b.At(0)
	capA, capB := a.Capacity(), b.Capacity()

	a.Swap(b)
	assert.Same(t, pb, a.At(0))
	assert.Same(t, pa, b.At(0))
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, capB, a.Capacity())
	assert.Equal(t, capA, b.Capacity())
}

func TestGet(t *testing.T) {
	v := fromInts(t, 1, 2, 3)

	p, err := v.Get(2)
	require.NoError(t, err)
	require.Same(t, v.At(2), p)

	for _, index := range []int{-1, 3, 10} {
		_, err := v.Get(index)
		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor), "got %v", err)
		require.Equal(t, index, oor.Index)
		require.Equal(t, 3, oor.Size)
	}
}

func TestFree(t *testing.T) {
	resetObjStats()
	v, err := New[obj](10)
	require.NoError(t, err)

	v.Free()
	require.Equal(t, 0, aliveObjs())
	require.Equal(t, 0, v.Capacity())

	require.NoError(t, v.PushBack(newObj(3)))
	require.Equal(t, []int{3}, objIDs(v))
	v.Free()
	require.Equal(t, 0, aliveObjs())
}

func TestIteration(t *testing.T) {
	v := fromInts(t, 1, 2, 3, 4)

	for i, p := range v.All() {
		*p *= 10
		if i == 1 {
			break
		}
	}
	require.Equal(t, []int{10, 20, 3, 4}, v.Slice())

	var sum int
	for x := range v.Values() {
		sum += x
	}
	require.Equal(t, 37, sum)
}
