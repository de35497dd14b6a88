package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/source"
)

func TestRepeatForever(t *testing.T) {
	s := source.Forever("x")
	require.True(t, s.IsInfinite())
	c := s.First()
	for i := 0; i < 5; i++ {
		require.Equal(t, "x", s.ReadAt(c))
		s.Inc(&c)
	}
}

func TestRepeatN(t *testing.T) {
	s := source.RepeatN(7, 3)
	var got []int
	for c := s.First(); !s.IsLast(c); s.Inc(&c) {
		got = append(got, s.ReadAt(c))
	}
	require.Equal(t, []int{7, 7, 7}, got)
	require.Equal(t, 3, s.Size())
}

func TestUnfoldPowersOfTwo(t *testing.T) {
	s := source.NewUnfold(1, func(v int) int { return v * 2 })
	require.True(t, s.IsInfinite())
	c := s.First()
	var got []int
	for i := 0; i < 5; i++ {
		got = append(got, s.ReadAt(c))
		s.Inc(&c)
	}
	require.Equal(t, []int{1, 2, 4, 8, 16}, got)
}

var _ seq.Infinite = (*source.Unfold[int])(nil)
