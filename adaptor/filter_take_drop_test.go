package adaptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/adaptor"
	"github.com/katalvlaran/flux/op"
	"github.com/katalvlaran/flux/source"
)

func TestFilterKeepsOnlyMatching(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3, 4, 5, 6})
	f := adaptor.NewFilter[int](base, func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{2, 4, 6}, op.Collect[int](f))
}

func TestTakeLimitsCount(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3, 4, 5})
	tk := adaptor.NewTake[int](base, 3)
	require.Equal(t, []int{1, 2, 3}, op.Collect[int](tk))
	require.Equal(t, 3, tk.Size())
}

func TestTakeMoreThanAvailable(t *testing.T) {
	base := source.NewContiguous([]int{1, 2})
	tk := adaptor.NewTake[int](base, 10)
	require.Equal(t, []int{1, 2}, op.Collect[int](tk))
	require.Equal(t, 2, tk.Size())
}

func TestDropSkipsPrefix(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3, 4, 5})
	d := adaptor.NewDrop[int](base, 2)
	require.Equal(t, []int{3, 4, 5}, op.Collect[int](d))
	require.Equal(t, 3, d.Size())
}

func TestTakeWhileStopsAtFirstFailure(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3, 10, 1})
	tw := adaptor.NewTakeWhile[int](base, func(v int) bool { return v < 5 })
	require.Equal(t, []int{1, 2, 3}, op.Collect[int](tw))
}

func TestDropWhileSkipsLeadingRun(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3, 10, 1})
	dw := adaptor.NewDropWhile[int](base, func(v int) bool { return v < 5 })
	require.Equal(t, []int{10, 1}, op.Collect[int](dw))
}
