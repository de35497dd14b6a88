package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/source"
)

func TestForEachWhileStopsEarly(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3, 4, 5})
	var seen []int
	stop := seq.ForEachWhile[int](s, func(v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
	require.Equal(t, 2, stop)
}

func TestForEachWhileRunsToCompletion(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	n := 0
	stop := seq.ForEachWhile[int](s, func(int) bool { n++; return true })
	require.Equal(t, 3, n)
	require.True(t, s.IsLast(stop))
}

func TestIncNAndDistance(t *testing.T) {
	s := source.NewContiguous([]int{10, 20, 30, 40})
	c := s.First()
	seq.IncN[int](s, &c, 2)
	require.Equal(t, 30, s.ReadAt(c))
	require.Equal(t, 2, seq.Distance[int](s, s.First(), c))
}

func TestDecFailsOnNonDecrementer(t *testing.T) {
	s := source.Generate(func(yield source.Yield[int]) {
		yield(1)
	})
	require.Panics(t, func() {
		c := s.First()
		seq.Dec[int](s, &c)
	})
}

func TestReadAtUncheckedFallsBackToReadAt(t *testing.T) {
	s := source.One(9)
	require.Equal(t, 9, seq.ReadAtUnchecked[int](s, s.First()))
}
