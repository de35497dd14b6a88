package adaptor

import "github.com/katalvlaran/flux/seq"

// setOpCur holds both input cursors; the merge-style set operations
// below only ever need one of them exposed to the caller, so the
// exposed seq.Cur wraps both and ReadAt picks whichever side currently
// holds the next output element.
type setOpCur struct {
	a, b  seq.Cur
	fromA bool
}

// Union merges two ascending sequences (ordered by less) into their
// sorted union, emitting an element present on both sides once;
// duplicates within one side are kept
// (SPEC_FULL.md §6/§13's set-operation family, grounded on the standard
// merge-based set-union algorithm). Both A and B must already be sorted
// ascending by less and free of internal duplicates for the result to
// itself be a valid ascending set.
type Union[E any] struct {
	A, B seq.Sequence[E]
	less func(a, b E) bool
}

func NewUnion[E any](a, b seq.Sequence[E], less func(a, b E) bool) *Union[E] {
	return &Union[E]{A: a, B: b, less: less}
}

func (u *Union[E]) First() seq.Cur {
	return u.normalize(setOpCur{a: u.A.First(), b: u.B.First()})
}

// normalize decides, given raw a/b cursors, which side the exposed
// cursor should read from, without advancing past a genuine tie (a tie
// means the next Inc must advance both sides to avoid a duplicate).
func (u *Union[E]) normalize(c setOpCur) seq.Cur {
	if u.A.IsLast(c.a) && u.B.IsLast(c.b) {
		return c
	}
	if u.A.IsLast(c.a) {
		c.fromA = false
		return c
	}
	if u.B.IsLast(c.b) {
		c.fromA = true
		return c
	}
	av, bv := u.A.ReadAt(c.a), u.B.ReadAt(c.b)
	c.fromA = !u.less(bv, av) // a <= b picks a, ties included
	return c
}

func (u *Union[E]) IsLast(c seq.Cur) bool {
	cc := c.(setOpCur)
	return u.A.IsLast(cc.a) && u.B.IsLast(cc.b)
}

func (u *Union[E]) ReadAt(c seq.Cur) E {
	cc := c.(setOpCur)
	if cc.fromA {
		return u.A.ReadAt(cc.a)
	}
	return u.B.ReadAt(cc.b)
}

func (u *Union[E]) Inc(c *seq.Cur) {
	cc := (*c).(setOpCur)
	if !u.A.IsLast(cc.a) && !u.B.IsLast(cc.b) {
		av, bv := u.A.ReadAt(cc.a), u.B.ReadAt(cc.b)
		if !u.less(av, bv) && !u.less(bv, av) {
			u.A.Inc(&cc.a) // tie: advance both, emit one
			u.B.Inc(&cc.b)
			*c = u.normalize(cc)
			return
		}
	}
	if cc.fromA {
		u.A.Inc(&cc.a)
	} else {
		u.B.Inc(&cc.b)
	}
	*c = u.normalize(cc)
}

// Intersection merges two ascending sequences into their sorted
// intersection (SPEC_FULL.md §6/§13), grounded on the same standard
// two-pointer merge idea as Union but emitting only on a match.
type Intersection[E any] struct {
	A, B seq.Sequence[E]
	less func(a, b E) bool
}

func NewIntersection[E any](a, b seq.Sequence[E], less func(a, b E) bool) *Intersection[E] {
	return &Intersection[E]{A: a, B: b, less: less}
}

func (x *Intersection[E]) First() seq.Cur {
	c := setOpCur{a: x.A.First(), b: x.B.First()}
	x.skip(&c)
	return c
}

func (x *Intersection[E]) skip(c *setOpCur) {
	for !x.A.IsLast(c.a) && !x.B.IsLast(c.b) {
		av, bv := x.A.ReadAt(c.a), x.B.ReadAt(c.b)
		switch {
		case x.less(av, bv):
			x.A.Inc(&c.a)
		case x.less(bv, av):
			x.B.Inc(&c.b)
		default:
			return
		}
	}
}

func (x *Intersection[E]) IsLast(c seq.Cur) bool {
	cc := c.(setOpCur)
	return x.A.IsLast(cc.a) || x.B.IsLast(cc.b)
}

func (x *Intersection[E]) ReadAt(c seq.Cur) E {
	return x.A.ReadAt(c.(setOpCur).a)
}

func (x *Intersection[E]) Inc(c *seq.Cur) {
	cc := (*c).(setOpCur)
	x.A.Inc(&cc.a)
	x.B.Inc(&cc.b)
	x.skip(&cc)
	*c = cc
}

// Difference merges two ascending sequences into A's elements that do
// not also appear in B (SPEC_FULL.md §6/§13).
type Difference[E any] struct {
	A, B seq.Sequence[E]
	less func(a, b E) bool
}

func NewDifference[E any](a, b seq.Sequence[E], less func(a, b E) bool) *Difference[E] {
	return &Difference[E]{A: a, B: b, less: less}
}

func (d *Difference[E]) First() seq.Cur {
	c := setOpCur{a: d.A.First(), b: d.B.First()}
	d.skip(&c)
	return c
}

func (d *Difference[E]) skip(c *setOpCur) {
	for !d.A.IsLast(c.a) {
		if d.B.IsLast(c.b) {
			return
		}
		av, bv := d.A.ReadAt(c.a), d.B.ReadAt(c.b)
		switch {
		case d.less(av, bv):
			return
		case d.less(bv, av):
			d.B.Inc(&c.b)
		default:
			d.A.Inc(&c.a)
			d.B.Inc(&c.b)
		}
	}
}

func (d *Difference[E]) IsLast(c seq.Cur) bool {
	return d.A.IsLast(c.(setOpCur).a)
}

func (d *Difference[E]) ReadAt(c seq.Cur) E {
	return d.A.ReadAt(c.(setOpCur).a)
}

func (d *Difference[E]) Inc(c *seq.Cur) {
	cc := (*c).(setOpCur)
	d.A.Inc(&cc.a)
	d.skip(&cc)
	*c = cc
}

// SetSymmetricDifference merges two ascending sequences into the
// elements present in exactly one of them (SPEC_FULL.md §6/§13's
// fourth set adaptor), the same two-pointer merge as Union/
// Intersection/Difference but emitting on a mismatch instead of a
// match.
type SetSymmetricDifference[E any] struct {
	A, B seq.Sequence[E]
	less func(a, b E) bool
}

func NewSetSymmetricDifference[E any](a, b seq.Sequence[E], less func(a, b E) bool) *SetSymmetricDifference[E] {
	return &SetSymmetricDifference[E]{A: a, B: b, less: less}
}

func (s *SetSymmetricDifference[E]) First() seq.Cur {
	c := setOpCur{a: s.A.First(), b: s.B.First()}
	s.skip(&c)
	return c
}

// skip advances past every pair of matching leading elements until it
// reaches a position where the two sides diverge (or one is
// exhausted), then records in fromA which side holds the next element
// to emit.
func (s *SetSymmetricDifference[E]) skip(c *setOpCur) {
	for !s.A.IsLast(c.a) && !s.B.IsLast(c.b) {
		av, bv := s.A.ReadAt(c.a), s.B.ReadAt(c.b)
		switch {
		case s.less(av, bv):
			c.fromA = true
			return
		case s.less(bv, av):
			c.fromA = false
			return
		default:
			s.A.Inc(&c.a)
			s.B.Inc(&c.b)
		}
	}
	c.fromA = !s.A.IsLast(c.a)
}

func (s *SetSymmetricDifference[E]) IsLast(c seq.Cur) bool {
	cc := c.(setOpCur)
	return s.A.IsLast(cc.a) && s.B.IsLast(cc.b)
}

func (s *SetSymmetricDifference[E]) ReadAt(c seq.Cur) E {
	cc := c.(setOpCur)
	if cc.fromA {
		return s.A.ReadAt(cc.a)
	}
	return s.B.ReadAt(cc.b)
}

func (s *SetSymmetricDifference[E]) Inc(c *seq.Cur) {
	cc := (*c).(setOpCur)
	if cc.fromA {
		s.A.Inc(&cc.a)
	} else {
		s.B.Inc(&cc.b)
	}
	s.skip(&cc)
	*c = cc
}
