package adaptor

import "github.com/katalvlaran/flux/seq"

// AdjacentMap applies f to each consecutive pair (Base[i], Base[i+1])
// (SPEC_FULL.md §6's adjacent_filter/pairwise family). It yields one
// fewer element than Base. The cursor it exposes is Base's cursor at
// the pair's first element; beyond forward traversal the only extension
// it implements is Size, derived from Base's size.
type AdjacentMap[E, R any] struct {
	Base seq.Sequence[E]
	f    func(a, b E) R
}

func NewAdjacentMap[E, R any](base seq.Sequence[E], f func(a, b E) R) *AdjacentMap[E, R] {
	return &AdjacentMap[E, R]{Base: base, f: f}
}

func (a *AdjacentMap[E, R]) First() seq.Cur { return a.Base.First() }

func (a *AdjacentMap[E, R]) IsLast(c seq.Cur) bool {
	if a.Base.IsLast(c) {
		return true
	}
	next := c
	a.Base.Inc(&next)
	return a.Base.IsLast(next)
}

func (a *AdjacentMap[E, R]) ReadAt(c seq.Cur) R {
	next := c
	a.Base.Inc(&next)
	return a.f(a.Base.ReadAt(c), a.Base.ReadAt(next))
}

func (a *AdjacentMap[E, R]) Inc(c *seq.Cur) { a.Base.Inc(c) }

func (a *AdjacentMap[E, R]) Size() int {
	s, ok := a.Base.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return seq.ClampNonNegative(s.Size() - 1)
}

// Dedup removes consecutive duplicate elements under same
// (SPEC_FULL.md §6's adjacent_filter specialised to equality) — the
// lazy equivalent of sort | uniq's second half. Like Filter, it drops
// to the plain sequence tier: the surviving-element count is unknown
// without a full traversal.
type Dedup[E any] struct {
	Base seq.Sequence[E]
	same func(a, b E) bool
}

func NewDedup[E any](base seq.Sequence[E], same func(a, b E) bool) *Dedup[E] {
	return &Dedup[E]{Base: base, same: same}
}

func (d *Dedup[E]) First() seq.Cur { return d.Base.First() }

func (d *Dedup[E]) IsLast(c seq.Cur) bool { return d.Base.IsLast(c) }

func (d *Dedup[E]) ReadAt(c seq.Cur) E { return d.Base.ReadAt(c) }

func (d *Dedup[E]) Inc(c *seq.Cur) {
	prev := d.Base.ReadAt(*c)
	d.Base.Inc(c)
	for !d.Base.IsLast(*c) && d.same(prev, d.Base.ReadAt(*c)) {
		d.Base.Inc(c)
	}
}
