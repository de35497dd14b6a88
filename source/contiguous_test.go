package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/seq/seqtest"
	"github.com/katalvlaran/flux/source"
)

func TestContiguousTraversal(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	require.False(t, s.IsLast(s.First()))
	require.Equal(t, 1, s.ReadAt(s.First()))
	require.Equal(t, 3, s.Size())

	seqtest.CheckEmptyFirstIsLast[int](t, s, false)
	seqtest.CheckSizeMatchesTraversal[int](t, s)
	seqtest.CheckDistanceMatchesSize[int](t, s)
	seqtest.CheckRandomAccessRoundTrip[int](t, s, 2)
	seqtest.CheckBidirectionalRoundTrip[int](t, s)
	seqtest.CheckMultipassIndependence[int](t, s)
	seqtest.CheckContiguousIdentity[int](t, s, s)
}

func TestContiguousEmpty(t *testing.T) {
	s := source.NewContiguous([]int{})
	seqtest.CheckEmptyFirstIsLast[int](t, s, true)
	require.Nil(t, s.Data())
}

func TestContiguousOutOfBoundsFails(t *testing.T) {
	s := source.NewContiguous([]int{1})
	require.Panics(t, func() {
		s.ReadAt(5)
	})
}

func TestContiguousWriteAtAndSlice(t *testing.T) {
	s := source.NewContiguous([]int{1, 2, 3})
	s.WriteAt(1, 99)
	require.Equal(t, []int{1, 99, 3}, s.Slice())
}

func TestContiguousSharesBackingArray(t *testing.T) {
	data := []int{1, 2, 3}
	s := source.NewContiguous(data)
	data[0] = 42
	require.Equal(t, 42, s.ReadAt(s.First()))
}

func TestContiguousDecAtFirstFails(t *testing.T) {
	s := source.NewContiguous([]int{1, 2})
	require.Panics(t, func() {
		c := s.First()
		s.Dec(&c)
	})
}

var _ seq.Sequence[int] = (*source.Contiguous[int])(nil)
