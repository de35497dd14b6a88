package adaptor

import "github.com/katalvlaran/flux/seq"

// flattenCur holds the outer cursor and the currently active inner
// sequence's cursor.
type flattenCur struct {
	outer seq.Cur
	inner seq.Cur
}

// Flatten concatenates the inner sequences produced by reading each of
// Base's elements as a sequence itself (SPEC_FULL.md §6's flatten): the
// sequence-of-sequences equivalent of Chain generalised to an arbitrary
// count of segments instead of exactly two. Sequence-tier only, since
// neither segment boundary nor total length is known without a full
// traversal.
type Flatten[E any] struct {
	Outer seq.Sequence[seq.Sequence[E]]
}

func NewFlatten[E any](outer seq.Sequence[seq.Sequence[E]]) *Flatten[E] {
	return &Flatten[E]{Outer: outer}
}

func (f *Flatten[E]) First() seq.Cur {
	oc := f.Outer.First()
	for !f.Outer.IsLast(oc) {
		inner := f.Outer.ReadAt(oc)
		ic := inner.First()
		if !inner.IsLast(ic) {
			return flattenCur{outer: oc, inner: ic}
		}
		f.Outer.Inc(&oc)
	}
	return flattenCur{outer: oc}
}

func (f *Flatten[E]) IsLast(c seq.Cur) bool {
	return f.Outer.IsLast(c.(flattenCur).outer)
}

func (f *Flatten[E]) ReadAt(c seq.Cur) E {
	fc := c.(flattenCur)
	return f.Outer.ReadAt(fc.outer).ReadAt(fc.inner)
}

func (f *Flatten[E]) Inc(c *seq.Cur) {
	fc := (*c).(flattenCur)
	inner := f.Outer.ReadAt(fc.outer)
	inner.Inc(&fc.inner)
	for !f.Outer.IsLast(fc.outer) {
		if !inner.IsLast(fc.inner) {
			*c = fc
			return
		}
		f.Outer.Inc(&fc.outer)
		if f.Outer.IsLast(fc.outer) {
			break
		}
		inner = f.Outer.ReadAt(fc.outer)
		fc.inner = inner.First()
	}
	*c = fc
}

// flattenWithCur adds an atSep flag to flattenCur's (outer, inner)
// pair: a separator is its own emitted position, not read from any
// inner sequence, so it cannot be represented by an inner cursor alone.
type flattenWithCur struct {
	outer seq.Cur
	inner seq.Cur
	atSep bool
}

// FlattenWith is Flatten with a separator value inserted between
// consecutive inner sequences (SPEC_FULL.md §6's flatten_with), the
// adaptor that makes split(s, d).flatten_with(d) == s a genuine round
// trip: unlike Flatten, an empty inner sequence still contributes the
// separator on either side of it instead of being skipped over
// invisibly, since the boundary itself — not the segment's contents —
// is what a separator marks.
type FlattenWith[E any] struct {
	Outer seq.Sequence[seq.Sequence[E]]
	sep   E
}

func NewFlattenWith[E any](outer seq.Sequence[seq.Sequence[E]], sep E) *FlattenWith[E] {
	return &FlattenWith[E]{Outer: outer, sep: sep}
}

func (f *FlattenWith[E]) First() seq.Cur {
	oc := f.Outer.First()
	if f.Outer.IsLast(oc) {
		return flattenWithCur{outer: oc}
	}
	return f.settle(oc, f.Outer.ReadAt(oc).First())
}

// settle walks forward from (oc, ic) — oc not yet known to be
// Outer-last — until it finds a readable position: a non-exhausted
// inner cursor, a separator before the next outer element, or the true
// end. An inner sequence exhausted with no further outer element
// behind it collapses straight to the end with no trailing separator.
func (f *FlattenWith[E]) settle(oc, ic seq.Cur) seq.Cur {
	inner := f.Outer.ReadAt(oc)
	if !inner.IsLast(ic) {
		return flattenWithCur{outer: oc, inner: ic}
	}
	f.Outer.Inc(&oc)
	if f.Outer.IsLast(oc) {
		return flattenWithCur{outer: oc}
	}
	return flattenWithCur{outer: oc, atSep: true}
}

func (f *FlattenWith[E]) IsLast(c seq.Cur) bool {
	fc := c.(flattenWithCur)
	if fc.atSep {
		return false
	}
	return f.Outer.IsLast(fc.outer)
}

func (f *FlattenWith[E]) ReadAt(c seq.Cur) E {
	fc := c.(flattenWithCur)
	if fc.atSep {
		return f.sep
	}
	return f.Outer.ReadAt(fc.outer).ReadAt(fc.inner)
}

func (f *FlattenWith[E]) Inc(c *seq.Cur) {
	fc := (*c).(flattenWithCur)
	if fc.atSep {
		*c = f.settle(fc.outer, f.Outer.ReadAt(fc.outer).First())
		return
	}
	inner := f.Outer.ReadAt(fc.outer)
	inner.Inc(&fc.inner)
	*c = f.settle(fc.outer, fc.inner)
}
