package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/builder"
)

func TestRandomIntsRespectsBoundsAndSize(t *testing.T) {
	s := builder.RandomInts(100, 5, 10, builder.WithSeed(1))
	data := s.Slice()
	require.Len(t, data, 100)
	for _, v := range data {
		require.GreaterOrEqual(t, v, 5)
		require.Less(t, v, 10)
	}
}

func TestRandomIntsDeterministicWithSameSeed(t *testing.T) {
	a := builder.RandomInts(20, 0, 100, builder.WithSeed(7))
	b := builder.RandomInts(20, 0, 100, builder.WithSeed(7))
	require.Equal(t, a.Slice(), b.Slice())
}

func TestRandomIntsBadSizePanics(t *testing.T) {
	require.Panics(t, func() {
		builder.RandomInts(-1, 0, 10)
	})
	require.Panics(t, func() {
		builder.RandomInts(5, 10, 10)
	})
}

func TestRandomEdgesWithinVertexRange(t *testing.T) {
	s := builder.RandomEdges(50, 10, builder.WithSeed(3))
	for _, e := range s.Slice() {
		require.GreaterOrEqual(t, e.From, 0)
		require.Less(t, e.From, 10)
		require.GreaterOrEqual(t, e.To, 0)
		require.Less(t, e.To, 10)
	}
}

func TestWithRandNilPanics(t *testing.T) {
	require.Panics(t, func() {
		builder.WithRand(nil)
	})
}
