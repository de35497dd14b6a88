// Package seqtest holds the universal-invariant checks from
// SPEC_FULL.md §12, written once as generic helpers so a test file in
// any package can apply them to its fixtures
// instead of re-deriving them, the common Go pattern of factoring
// shared test assertions into helpers — except the helpers must be
// exported here since fixtures live in many packages, not one.
package seqtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
)

// CheckEmptyFirstIsLast verifies invariant 1: IsLast(First()) iff empty.
func CheckEmptyFirstIsLast[E any](t *testing.T, s seq.Sequence[E], wantEmpty bool) {
	t.Helper()
	require.Equal(t, wantEmpty, s.IsLast(s.First()))
}

// CheckSizeMatchesTraversal verifies invariant 2: repeatedly Inc-ing from
// First until IsLast visits exactly Size() elements, when s is Sizer.
func CheckSizeMatchesTraversal[E any](t *testing.T, s seq.Sequence[E]) {
	t.Helper()
	sz, ok := s.(seq.Sizer)
	if !ok {
		return
	}
	n := 0
	c := s.First()
	for !s.IsLast(c) {
		n++
		s.Inc(&c)
	}
	require.Equal(t, sz.Size(), n)
}

// CheckDistanceMatchesSize verifies invariant 3: Distance(First, Last)
// == Size when s is both Boundary and Jumper.
func CheckDistanceMatchesSize[E any](t *testing.T, s seq.Sequence[E]) {
	t.Helper()
	b, okB := s.(seq.Boundary)
	j, okJ := s.(seq.Jumper)
	sz, okS := s.(seq.Sizer)
	if !okB || !okJ || !okS {
		return
	}
	require.Equal(t, sz.Size(), j.Distance(s.First(), b.Last()))
}

// CheckRandomAccessRoundTrip verifies invariant 4: IncN(c,k); IncN(c,-k)
// restores c, and Distance(a,b) == -Distance(b,a).
func CheckRandomAccessRoundTrip[E any](t *testing.T, s seq.Sequence[E], k int) {
	t.Helper()
	j, ok := s.(seq.Jumper)
	if !ok {
		return
	}
	a := s.First()
	b := a
	j.IncN(&b, k)
	back := b
	j.IncN(&back, -k)
	require.Equal(t, a, back)
	require.Equal(t, j.Distance(a, b), -j.Distance(b, a))
}

// CheckBidirectionalRoundTrip verifies invariant 5: for a non-first
// cursor, Inc(Dec(c)) == c and Dec(Inc(c)) == c.
func CheckBidirectionalRoundTrip[E any](t *testing.T, s seq.Sequence[E]) {
	t.Helper()
	d, ok := s.(seq.Decrementer)
	if !ok {
		return
	}
	first := s.First()
	c := first
	s.Inc(&c)
	if s.IsLast(c) {
		return // fewer than two elements, nothing to check
	}
	orig := c
	back := c
	d.Dec(&back)
	s.Inc(&back)
	require.Equal(t, orig, back)

	fwd := orig
	s.Inc(&fwd)
	d.Dec(&fwd)
	require.Equal(t, orig, fwd)
}

// CheckMultipassIndependence verifies invariant 6: copying a cursor and
// advancing the copy does not disturb the original.
func CheckMultipassIndependence[E any](t *testing.T, s seq.Sequence[E]) {
	t.Helper()
	c := s.First()
	if s.IsLast(c) {
		return
	}
	cp := c
	s.Inc(&cp)
	require.NotEqual(t, c, cp)
	require.Equal(t, s.First(), c)
}

// CheckContiguousIdentity verifies invariant 7: ReadAt(First()) equals
// *Data() for a contiguous source. ReadAt returns V by value (the
// DataPointer tier is what carries pointer identity, not ReadAt), so the
// check is value equality against the dereferenced Data() pointer rather
// than pointer identity between the two.
func CheckContiguousIdentity[V comparable](t *testing.T, s seq.Sequence[V], d interface{ Data() *V }) {
	t.Helper()
	if s.IsLast(s.First()) {
		return
	}
	require.Equal(t, *d.Data(), s.ReadAt(s.First()))
}
