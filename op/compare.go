package op

import (
	"bytes"

	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/source"
)

// Equal reports whether a and b yield the same elements in the same
// order. When both are backed by source.Contiguous[byte] it
// specialises to bytes.Equal, the fast path worth calling out
// explicitly for byte sequences.
func Equal[E comparable](a, b seq.Sequence[E]) bool {
	if ab, ok := any(a).(*source.Contiguous[byte]); ok {
		if bb, ok := any(b).(*source.Contiguous[byte]); ok {
			return bytes.Equal(ab.Slice(), bb.Slice())
		}
	}
	ca, cb := a.First(), b.First()
	for {
		aLast, bLast := a.IsLast(ca), b.IsLast(cb)
		if aLast || bLast {
			return aLast == bLast
		}
		if a.ReadAt(ca) != b.ReadAt(cb) {
			return false
		}
		a.Inc(&ca)
		b.Inc(&cb)
	}
}

// Compare performs a three-way lexicographical comparison of a and b
// under less, returning -1, 0, or 1 (SPEC_FULL.md §7). When both are
// backed by source.Contiguous[byte] it specialises to bytes.Compare.
func Compare[E any](a, b seq.Sequence[E], less func(x, y E) bool) int {
	if ab, ok := any(a).(*source.Contiguous[byte]); ok {
		if bb, ok := any(b).(*source.Contiguous[byte]); ok {
			return bytes.Compare(ab.Slice(), bb.Slice())
		}
	}
	ca, cb := a.First(), b.First()
	for {
		aLast, bLast := a.IsLast(ca), b.IsLast(cb)
		if aLast && bLast {
			return 0
		}
		if aLast {
			return -1
		}
		if bLast {
			return 1
		}
		av, bv := a.ReadAt(ca), b.ReadAt(cb)
		switch {
		case less(av, bv):
			return -1
		case less(bv, av):
			return 1
		}
		a.Inc(&ca)
		b.Inc(&cb)
	}
}

// StartsWith reports whether s begins with every element of prefix in
// order (SPEC_FULL.md §7).
func StartsWith[E comparable](s, prefix seq.Sequence[E]) bool {
	cs, cp := s.First(), prefix.First()
	for !prefix.IsLast(cp) {
		if s.IsLast(cs) {
			return false
		}
		if s.ReadAt(cs) != prefix.ReadAt(cp) {
			return false
		}
		s.Inc(&cs)
		prefix.Inc(&cp)
	}
	return true
}
