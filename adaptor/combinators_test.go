package adaptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/adaptor"
	"github.com/katalvlaran/flux/op"
	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/source"
)

func TestMapTransformsElementType(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3})
	m := adaptor.NewMap[int, string](base, func(v int) string {
		if v == 1 {
			return "one"
		}
		return "?"
	})
	got := op.Collect[string](m)
	require.Equal(t, []string{"one", "?", "?"}, got)
}

func TestReverseWalksBackward(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3})
	r := adaptor.NewReverse[int](base)
	require.Equal(t, []int{3, 2, 1}, op.Collect[int](r))
}

func TestChainConcatenatesTwoSequences(t *testing.T) {
	a := source.NewContiguous([]int{1, 2})
	b := source.NewContiguous([]int{3, 4})
	c := adaptor.NewChain[int](a, b)
	require.Equal(t, []int{1, 2, 3, 4}, op.Collect[int](c))
}

func TestChainFirstSkipsEmptyA(t *testing.T) {
	a := source.NewContiguous([]int{})
	b := source.NewContiguous([]int{9})
	c := adaptor.NewChain[int](a, b)
	require.Equal(t, []int{9}, op.Collect[int](c))
}

func TestZipStopsAtShorterSide(t *testing.T) {
	a := source.NewContiguous([]int{1, 2, 3})
	b := source.NewContiguous([]string{"a", "b"})
	z := adaptor.NewZip[int, string](a, b)
	got := op.Collect[adaptor.Pair[int, string]](z)
	require.Equal(t, []adaptor.Pair[int, string]{{First: 1, Second: "a"}, {First: 2, Second: "b"}}, got)
}

func TestScanProducesRunningFold(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3, 4})
	s := adaptor.NewScan[int, int](base, 0, func(acc, v int) int { return acc + v })
	require.Equal(t, []int{1, 3, 6, 10}, op.Collect[int](s))
}

func TestStrideSkipsByN(t *testing.T) {
	base := source.NewContiguous([]int{0, 1, 2, 3, 4, 5, 6})
	s := adaptor.NewStride[int](base, 2)
	require.Equal(t, []int{0, 2, 4, 6}, op.Collect[int](s))
}

func TestCycleNRepeats(t *testing.T) {
	base := source.NewContiguous([]int{1, 2})
	c := adaptor.NewCycleN[int](base, 3)
	require.Equal(t, []int{1, 2, 1, 2, 1, 2}, op.Collect[int](c))
}

func TestChunkGroupsFixedSize(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 3, 4, 5})
	ch := adaptor.NewChunk[int](base, 2)
	got := op.Collect[[]int](ch)
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
}

func TestSplitDropsSeparators(t *testing.T) {
	base := source.NewContiguous([]int{1, 0, 2, 3, 0, 4})
	sp := adaptor.NewSplit[int](base, func(v int) bool { return v == 0 })
	got := op.Collect[[]int](sp)
	require.Equal(t, [][]int{{1}, {2, 3}, {4}}, got)
}

func TestAdjacentMapPairsConsecutive(t *testing.T) {
	base := source.NewContiguous([]int{1, 2, 4, 7})
	diffs := adaptor.NewAdjacentMap[int, int](base, func(a, b int) int { return b - a })
	require.Equal(t, []int{1, 2, 3}, op.Collect[int](diffs))
}

func TestDedupRemovesConsecutiveDuplicates(t *testing.T) {
	base := source.NewContiguous([]int{1, 1, 2, 2, 2, 3, 1})
	d := adaptor.NewDedup[int](base, func(a, b int) bool { return a == b })
	require.Equal(t, []int{1, 2, 3, 1}, op.Collect[int](d))
}

func TestMaskSelectsByBoolean(t *testing.T) {
	values := source.NewContiguous([]int{10, 20, 30, 40})
	selectors := source.NewContiguous([]bool{true, false, true, false})
	m := adaptor.NewMask[int](values, selectors)
	require.Equal(t, []int{10, 30}, op.Collect[int](m))
}

func TestUnionIntersectionDifference(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	a := source.NewContiguous([]int{1, 2, 3, 5})
	b := source.NewContiguous([]int{2, 3, 4})

	u := adaptor.NewUnion[int](a, b, less)
	require.Equal(t, []int{1, 2, 3, 4, 5}, op.Collect[int](u))

	i := adaptor.NewIntersection[int](source.NewContiguous([]int{1, 2, 3, 5}), source.NewContiguous([]int{2, 3, 4}), less)
	require.Equal(t, []int{2, 3}, op.Collect[int](i))

	d := adaptor.NewDifference[int](source.NewContiguous([]int{1, 2, 3, 5}), source.NewContiguous([]int{2, 3, 4}), less)
	require.Equal(t, []int{1, 5}, op.Collect[int](d))
}

func TestFlattenConcatenatesNestedSequences(t *testing.T) {
	inner1 := source.NewContiguous([]int{1, 2})
	inner2 := source.NewContiguous([]int{3})
	outerData := []seq.Sequence[int]{inner1, inner2}
	outer := source.NewContiguous(outerData)
	fl := adaptor.NewFlatten[int](outer)
	require.Equal(t, []int{1, 2, 3}, op.Collect[int](fl))
}
