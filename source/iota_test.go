package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/seq/seqtest"
	"github.com/katalvlaran/flux/source"
)

func TestIotaRangeBounded(t *testing.T) {
	s := source.Range(3, 6)
	var got []int
	for c := s.First(); !s.IsLast(c); s.Inc(&c) {
		got = append(got, s.ReadAt(c))
	}
	require.Equal(t, []int{3, 4, 5}, got)
	require.Equal(t, 3, s.Size())
	require.False(t, s.IsInfinite())

	seqtest.CheckSizeMatchesTraversal[int](t, s)
	seqtest.CheckDistanceMatchesSize[int](t, s)
	seqtest.CheckRandomAccessRoundTrip[int](t, s, 2)
	seqtest.CheckBidirectionalRoundTrip[int](t, s)
}

func TestIotaFromUnbounded(t *testing.T) {
	s := source.From(1)
	require.True(t, s.IsInfinite())
	require.False(t, s.IsLast(s.First()))

	c := s.First()
	seq.IncN[int](s, &c, 4)
	require.Equal(t, 5, s.ReadAt(c))
}

func TestIotaUnboundedSizeFails(t *testing.T) {
	s := source.From(0)
	require.Panics(t, func() {
		s.Size()
	})
}
