package op

import "github.com/katalvlaran/flux/seq"

// Fill overwrites every element of s with v (SPEC_FULL.md §7). When s is
// backed by a contiguous writable region this specialises to a tight
// loop equivalent to C's memset for the width of the stored type — Go
// has no generic memset primitive, so the fast path here is simply
// avoiding the ReadAt/WriteAt round trip and writing straight into the
// backing slice.
func Fill[E any](s seq.Sequence[E], v E) {
	if w, ok := s.(Writable[E]); ok {
		if sl := w.Slice(); sl != nil {
			for i := range sl {
				sl[i] = v
			}
			return
		}
	}
	c := s.First()
	for !s.IsLast(c) {
		w := s.(Writable[E])
		w.WriteAt(c, v)
		s.Inc(&c)
	}
}

// sliceSource is satisfied by any sequence that exposes its backing
// slice for a read-only fast path (source.Contiguous is the common
// example); OutputTo uses it the same way Equal/Compare use
// source.Contiguous directly for their own fast paths.
type sliceSource[E any] interface {
	Slice() []E
}

// OutputTo drains src through consume, a single-pass output sink
// (SPEC_FULL.md §7's output_to) — the callback-oriented counterpart to
// CopyInto's Writable-destination form, for sinks that are not
// themselves a flux sequence (an io.Writer-backed encoder, a channel,
// a test collector). When src exposes a backing slice, elements are
// pushed straight off it instead of through ReadAt/Inc, CopyInto's
// memmove-equivalent fast path mirrored on the read side.
func OutputTo[E any](src seq.Sequence[E], consume func(E)) int {
	if sl, ok := src.(sliceSource[E]); ok {
		backing := sl.Slice()
		for _, v := range backing {
			consume(v)
		}
		return len(backing)
	}
	n := 0
	c := src.First()
	for !src.IsLast(c) {
		consume(src.ReadAt(c))
		src.Inc(&c)
		n++
	}
	return n
}

// Writable is implemented by sources whose elements can be overwritten
// in place (source.Contiguous is the canonical example). Fill and
// CopyInto use it; sources without it cannot be targets of either.
type Writable[E any] interface {
	WriteAt(c seq.Cur, v E)
	// Slice, when non-nil, exposes the whole backing store for a
	// bulk-write fast path.
	Slice() []E
}

// CopyInto copies elements from src into dst until either is exhausted,
// returning the number of elements copied (SPEC_FULL.md §7's output_to).
// When dst exposes a backing slice, elements are written straight into
// that slice instead of through WriteAt.
func CopyInto[E any](src seq.Sequence[E], dst Writable[E]) int {
	if sl := dst.Slice(); sl != nil {
		n := 0
		c := src.First()
		for n < len(sl) && !src.IsLast(c) {
			sl[n] = src.ReadAt(c)
			src.Inc(&c)
			n++
		}
		return n
	}
	n := 0
	cs := src.First()
	cd := dst.(seq.Sequence[E]).First()
	for !src.IsLast(cs) && !dst.(seq.Sequence[E]).IsLast(cd) {
		dst.WriteAt(cd, src.ReadAt(cs))
		src.Inc(&cs)
		dst.(seq.Sequence[E]).Inc(&cd)
		n++
	}
	return n
}

// ReverseInPlace reverses s in place, requiring s to be both Decrementer-paired
// (i.e. bidirectional and random-access enough to swap from both ends)
// and Writable (SPEC_FULL.md §7's in-place reverse).
func ReverseInPlace[E any](s seq.Sequence[E]) {
	w, ok := s.(Writable[E])
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	b, ok := s.(seq.Boundary)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	d, ok := s.(seq.Decrementer)
	if !ok {
		seq.Fail(seq.ErrDecAtFirst)
	}
	lo := s.First()
	hi := b.Last()
	for lo != hi {
		d.Dec(&hi)
		if lo == hi {
			break
		}
		lv, hv := s.ReadAt(lo), s.ReadAt(hi)
		w.WriteAt(lo, hv)
		w.WriteAt(hi, lv)
		s.Inc(&lo)
	}
}
