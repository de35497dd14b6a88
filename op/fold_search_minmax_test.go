package op_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/op"
	"github.com/katalvlaran/flux/source"
)

func TestFoldSumsElements(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3, 4})
	require.Equal(t, 10, op.Fold[int, int](s, 0, func(acc, v int) int { return acc + v }))
}

func TestSumAndProduct(t *testing.T) {
	require.Equal(t, 10, op.Sum[int](source.NewContiguous([]int{1, 2, 3, 4})))
	require.Equal(t, 24, op.Product[int](source.NewContiguous([]int{1, 2, 3, 4}), 1))
}

func TestCountWithAndWithoutPredicate(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3, 4, 5})
	require.Equal(t, 5, op.Count[int](s, nil))
	require.Equal(t, 2, op.Count[int](s, func(v int) bool { return v%2 == 0 }))
}

func TestFindContainsAllAnyNone(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	c, ok := op.Find[int](s, func(v int) bool { return v == 2 }).Get()
	require.True(t, ok)
	require.Equal(t, 2, s.ReadAt(c))

	require.True(t, op.Contains[int](s, 3))
	require.False(t, op.Contains[int](s, 9))
	require.True(t, op.All[int](s, func(v int) bool { return v > 0 }))
	require.True(t, op.Any[int](s, func(v int) bool { return v == 2 }))
	require.True(t, op.None[int](s, func(v int) bool { return v > 10 }))
}

func TestFrontBack(t *testing.T) {
	s := source.NewContiguous([]int{10, 20, 30})
	front, ok := op.Front[int](s).Get()
	require.True(t, ok)
	require.Equal(t, 10, front)

	back, ok := op.Back[int](s).Get()
	require.True(t, ok)
	require.Equal(t, 30, back)
}

func TestFrontBackEmpty(t *testing.T) {
	s := source.NewContiguous([]int{})
	require.False(t, op.Front[int](s).IsPresent())
	require.False(t, op.Back[int](s).IsPresent())
}

func TestMinMax(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	s := source.NewContiguous([]int{5, 1, 9, 3})
	min, ok := op.Min[int](s, less).Get()
	require.True(t, ok)
	require.Equal(t, 1, min)

	max, ok := op.Max[int](source.NewContiguous([]int{5, 1, 9, 3}), less).Get()
	require.True(t, ok)
	require.Equal(t, 9, max)

	lo, hi := op.MinMax[int](source.NewContiguous([]int{5, 1, 9, 3}), less)
	require.Equal(t, 1, lo.OrElse(0))
	require.Equal(t, 9, hi.OrElse(0))
}

func TestFindMinFindMax(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	s := source.NewContiguous([]int{5, 1, 9, 3})
	c, ok := op.FindMin[int](s, less).Get()
	require.True(t, ok)
	require.Equal(t, 1, s.ReadAt(c))

	c2, ok := op.FindMax[int](s, less).Get()
	require.True(t, ok)
	require.Equal(t, 9, s.ReadAt(c2))
}
