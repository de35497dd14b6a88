package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq/seqtest"
	"github.com/katalvlaran/flux/source"
)

func TestSingleYieldsOneValue(t *testing.T) {
	s := source.One(42)
	c := s.First()
	require.False(t, s.IsLast(c))
	require.Equal(t, 42, s.ReadAt(c))
	s.Inc(&c)
	require.True(t, s.IsLast(c))
	require.Equal(t, 1, s.Size())

	seqtest.CheckSizeMatchesTraversal[int](t, s)
	seqtest.CheckBidirectionalRoundTrip[int](t, s)
}

func TestSingleWriteAt(t *testing.T) {
	s := source.One("a")
	s.WriteAt(s.First(), "b")
	require.Equal(t, "b", s.ReadAt(s.First()))
	require.Equal(t, []string{"b"}, s.Slice())
}

func TestEmptyIsAlwaysLast(t *testing.T) {
	s := source.Nothing[int]()
	seqtest.CheckEmptyFirstIsLast[int](t, s, true)
	require.Equal(t, 0, s.Size())
	require.Nil(t, s.Data())
	require.Nil(t, s.Slice())
}

func TestEmptyReadAtFails(t *testing.T) {
	s := source.Nothing[int]()
	require.Panics(t, func() {
		s.ReadAt(s.First())
	})
}
