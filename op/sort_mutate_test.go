package op_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/op"
	"github.com/katalvlaran/flux/source"
)

func TestSortOrdersInPlace(t *testing.T) {
	s := source.NewContiguous([]int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0, 11, 10, 12})
	op.Sort[int](s, func(a, b int) bool { return a < b })
	require.True(t, op.IsSorted[int](s, func(a, b int) bool { return a < b }))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, s.Slice())
}

func TestIsSortedDetectsUnsorted(t *testing.T) {
	s := source.NewContiguous([]int{1, 3, 2})
	require.False(t, op.IsSorted[int](s, func(a, b int) bool { return a < b }))
}

func TestFillOverwritesEveryElement(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	op.Fill[int](s, 9)
	require.Equal(t, []int{9, 9, 9}, s.Slice())
}

func TestCopyIntoStopsAtShorterTarget(t *testing.T) {
	src := source.NewContiguous([]int{1, 2, 3, 4})
	dst := source.NewContiguous(make([]int, 2))
	n := op.CopyInto[int](src, dst)
	require.Equal(t, 2, n)
	require.Equal(t, []int{1, 2}, dst.Slice())
}

func TestReverseInPlace(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3, 4, 5})
	op.ReverseInPlace[int](s)
	require.Equal(t, []int{5, 4, 3, 2, 1}, s.Slice())
}
