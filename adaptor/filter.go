package adaptor

import "github.com/katalvlaran/flux/seq"

// Filter exposes only the elements of Base for which pred holds
// (SPEC_FULL.md §6). It drops every other capability down to the plain
// sequence tier: the count of surviving elements, and therefore any
// notion of size, boundary, or random access, is not knowable without a
// full traversal, so Filter implements none of Decrementer, Jumper,
// Boundary, or Sizer even when Base does.
type Filter[E any] struct {
	passthrough[E]
	pred func(E) bool

	firstCached bool
	firstCur    seq.Cur
}

func NewFilter[E any](base seq.Sequence[E], pred func(E) bool) *Filter[E] {
	f := &Filter[E]{passthrough: passthrough[E]{Base: base}, pred: pred}
	return f
}

// First returns the cursor of the first element satisfying pred, or the
// base's Last if none do. The skip scan runs once; repeated calls
// return the cached cursor, making First O(1) amortized.
func (f *Filter[E]) First() seq.Cur {
	if f.firstCached {
		return f.firstCur
	}
	c := f.Base.First()
	f.skip(&c)
	f.firstCur = c
	f.firstCached = true
	return c
}

func (f *Filter[E]) IsLast(c seq.Cur) bool { return f.Base.IsLast(c) }

func (f *Filter[E]) ReadAt(c seq.Cur) E { return f.Base.ReadAt(c) }

// Inc advances past the current match to the next one.
func (f *Filter[E]) Inc(c *seq.Cur) {
	f.Base.Inc(c)
	f.skip(c)
}

func (f *Filter[E]) skip(c *seq.Cur) {
	for !f.Base.IsLast(*c) && !f.pred(f.Base.ReadAt(*c)) {
		f.Base.Inc(c)
	}
}

// ForEachWhile fuses the predicate test into the traversal loop instead
// of running skip's own scan on top of the generic driver.
func (f *Filter[E]) ForEachWhile(pred func(E) bool) seq.Cur {
	c := f.Base.First()
	for !f.Base.IsLast(c) {
		v := f.Base.ReadAt(c)
		if f.pred(v) && !pred(v) {
			return c
		}
		f.Base.Inc(&c)
	}
	return c
}
