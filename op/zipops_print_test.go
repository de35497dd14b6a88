package op_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/adaptor"
	"github.com/katalvlaran/flux/op"
	"github.com/katalvlaran/flux/source"
)

func TestForEachZippedStopsAtShorterSide(t *testing.T) {
	a := source.NewContiguous([]int{1, 2, 3})
	b := source.NewContiguous([]string{"a", "b"})
	var got []string
	op.ForEachZipped[int, string](a, b, func(n int, s string) {
		got = append(got, s)
	})
	require.Equal(t, []string{"a", "b"}, got)
}

func TestCollectZipped(t *testing.T) {
	a := source.NewContiguous([]int{1, 2})
	b := source.NewContiguous([]string{"x", "y"})
	got := op.CollectZipped[int, string](a, b)
	require.Equal(t, []adaptor.Pair[int, string]{{First: 1, Second: "x"}, {First: 2, Second: "y"}}, got)
}

func TestJoinAndPrint(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	require.Equal(t, "1,2,3", op.Join[int](s, ","))

	var b strings.Builder
	err := op.Print[int](&b, source.NewContiguous([]int{4, 5}), "-")
	require.NoError(t, err)
	require.Equal(t, "4-5", b.String())
}
