package op_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/adaptor"
	"github.com/katalvlaran/flux/op"
	"github.com/katalvlaran/flux/source"
)

func TestEqualAndCompare(t *testing.T) {
	a := source.NewContiguous([]int{1, 2, 3})
	b := source.NewContiguous([]int{1, 2, 3})
	c := source.NewContiguous([]int{1, 2, 4})
	require.True(t, op.Equal[int](a, b))
	require.False(t, op.Equal[int](a, c))

	less := func(x, y int) bool { return x < y }
	require.Equal(t, 0, op.Compare[int](a, b, less))
	require.Equal(t, -1, op.Compare[int](a, c, less))
	require.Equal(t, 1, op.Compare[int](c, a, less))
}

func TestEqualBytesFastPath(t *testing.T) {
	a := source.NewContiguous([]byte("hello"))
	b := source.NewContiguous([]byte("hello"))
	c := source.NewContiguous([]byte("world"))
	require.True(t, op.Equal[byte](a, b))
	require.False(t, op.Equal[byte](a, c))
}

func TestStartsWith(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3, 4})
	prefix := source.NewContiguous([]int{1, 2})
	require.True(t, op.StartsWith[int](s, prefix))

	notPrefix := source.NewContiguous([]int{2, 2})
	require.False(t, op.StartsWith[int](s, notPrefix))
}

func TestCollectPreallocatesViaSizer(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, op.Collect[int](s))
}

func TestCollectMapDrainsPairs(t *testing.T) {
	pairs := source.NewContiguous([]adaptor.Pair[string, int]{
		{First: "a", Second: 1},
		{First: "b", Second: 2},
	})
	got := op.CollectMap[string, int](pairs)
	require.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}
