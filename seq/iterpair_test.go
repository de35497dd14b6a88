package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/source"
)

func TestIterRangesOverAllElements(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	var got []int
	for v := range seq.Iter[int](s) {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestIterStopsWhenYieldReturnsFalse(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3, 4})
	var got []int
	for v := range seq.Iter[int](s) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, got)
}

func TestIter2EnumeratesIndices(t *testing.T) {
	s := source.NewContiguous([]string{"a", "b", "c"})
	idx := map[int]string{}
	for i, v := range seq.Iter2[string](s) {
		idx[i] = v
	}
	require.Equal(t, map[int]string{0: "a", 1: "b", 2: "c"}, idx)
}
