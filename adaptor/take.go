package adaptor

import "github.com/katalvlaran/flux/seq"

// takeCur pairs the base cursor with how many elements remain to be
// taken, since Take's own end condition (count exhausted) is orthogonal
// to Base's.
type takeCur struct {
	base seq.Cur
	left int
}

// Take exposes at most n leading elements of Base (SPEC_FULL.md §6).
// It preserves Sizer and Boundary when Base does (the result is always
// bounded, since n itself bounds it even over an infinite Base), and
// Decrementer when Base does, since walking backward within the first n
// elements is exactly walking Base backward. Take does not implement
// Jumper.
type Take[E any] struct {
	Base seq.Sequence[E]
	n    int
}

func NewTake[E any](base seq.Sequence[E], n int) *Take[E] {
	return &Take[E]{Base: base, n: seq.ClampNonNegative(n)}
}

func (t *Take[E]) First() seq.Cur {
	return takeCur{base: t.Base.First(), left: t.n}
}

func (t *Take[E]) IsLast(c seq.Cur) bool {
	tc := c.(takeCur)
	return tc.left <= 0 || t.Base.IsLast(tc.base)
}

func (t *Take[E]) ReadAt(c seq.Cur) E {
	return t.Base.ReadAt(c.(takeCur).base)
}

func (t *Take[E]) Inc(c *seq.Cur) {
	tc := (*c).(takeCur)
	t.Base.Inc(&tc.base)
	tc.left--
	*c = tc
}

func (t *Take[E]) Dec(c *seq.Cur) {
	d, ok := t.Base.(seq.Decrementer)
	if !ok {
		seq.Fail(seq.ErrDecAtFirst)
		return
	}
	tc := (*c).(takeCur)
	d.Dec(&tc.base)
	tc.left++
	*c = tc
}

func (t *Take[E]) Last() seq.Cur {
	c := t.First()
	for !t.IsLast(c) {
		t.Inc(&c)
	}
	return c
}

func (t *Take[E]) Size() int {
	if s, ok := t.Base.(seq.Sizer); ok && !seq.IsInfinite[E](t.Base) {
		base := s.Size()
		if base < t.n {
			return base
		}
		return t.n
	}
	return t.n
}
