package flux_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux"
	"github.com/katalvlaran/flux/adaptor"
)

func TestFilterMapSumPipeline(t *testing.T) {
	total := flux.Sum[int](flux.Map(
		flux.FromSlice([]int{1, 2, 3, 4, 5, 6}).Filter(func(v int) bool { return v%2 == 0 }),
		func(v int) int { return v * v },
	))
	require.Equal(t, 4+16+36, total)
}

func TestTakeDropChainCollect(t *testing.T) {
	a := flux.FromSlice([]int{1, 2, 3})
	b := flux.FromSlice([]int{4, 5, 6})
	got := a.Chain(b).Drop(1).Take(3).Collect()
	require.Equal(t, []int{2, 3, 4}, got)
}

func TestReverseSortIsSorted(t *testing.T) {
	s := flux.FromSlice([]int{5, 3, 1, 4, 2})
	s.Sort(func(a, b int) bool { return a < b })
	require.True(t, s.IsSorted(func(a, b int) bool { return a < b }))
	require.Equal(t, []int{5, 4, 3, 2, 1}, s.Reverse().Collect())
}

func TestZipAndCollectMap(t *testing.T) {
	keys := flux.FromSlice([]string{"a", "b", "c"})
	vals := flux.FromSlice([]int{1, 2, 3})
	pairs := flux.Zip[string, int](keys, vals)
	m := flux.CollectMap[string, int](pairs)
	require.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, m)
}

func TestCartesianPairsEveryCombination(t *testing.T) {
	outer := flux.FromSlice([]int{1, 2})
	got := flux.Cartesian[int, string](outer, func(n int) flux.Seq[string] {
		return flux.FromSlice([]string{"x", "y"})
	}).Collect()
	require.Equal(t, []adaptor.Pair[int, string]{
		{First: 1, Second: "x"}, {First: 1, Second: "y"},
		{First: 2, Second: "x"}, {First: 2, Second: "y"},
	}, got)
}

func TestFoldAndScan(t *testing.T) {
	s := flux.FromSlice([]int{1, 2, 3, 4})
	require.Equal(t, 10, flux.Fold[int, int](s, 0, func(acc, v int) int { return acc + v }))
	require.Equal(t, []int{1, 3, 6, 10}, flux.Scan[int, int](s, 0, func(acc, v int) int { return acc + v }).Collect())
}

func TestEqualContainsStartsWithCompare(t *testing.T) {
	a := flux.FromSlice([]int{1, 2, 3})
	b := flux.FromSlice([]int{1, 2, 3})
	require.True(t, flux.Equal[int](a, b))
	require.True(t, flux.Contains[int](flux.FromSlice([]int{1, 2, 3}), 2))
	require.True(t, flux.StartsWith[int](flux.FromSlice([]int{1, 2, 3}), flux.FromSlice([]int{1, 2})))
	require.Equal(t, 0, flux.Compare[int](flux.FromSlice([]int{1, 2}), flux.FromSlice([]int{1, 2}), func(x, y int) bool { return x < y }))
}

func TestInfiniteSourceTakeTerminates(t *testing.T) {
	got := flux.FromInt(1).Take(5).Collect()
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestJoin(t *testing.T) {
	require.Equal(t, "1,2,3", flux.FromSlice([]int{1, 2, 3}).Join(","))
}
