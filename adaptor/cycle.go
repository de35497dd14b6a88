package adaptor

import "github.com/katalvlaran/flux/seq"

// cycleCur pairs the base cursor with how many full passes have been
// restarted, so a bounded Cycle can still report IsLast once n passes
// complete.
type cycleCur struct {
	inner seq.Cur
	pass  int
}

// Cycle repeats Base's traversal indefinitely, or n times when n > 0
// (SPEC_FULL.md §6). Base must be multipass, since each pass restarts
// it from First. An unbounded Cycle (n == 0) is always Infinite; a
// bounded one is Sizer only when Base is. Cycle does not implement
// Boundary.
type Cycle[E any] struct {
	Base seq.Sequence[E]
	n    int // 0 means unbounded
}

func NewCycle[E any](base seq.Sequence[E]) *Cycle[E]        { return &Cycle[E]{Base: base} }
func NewCycleN[E any](base seq.Sequence[E], n int) *Cycle[E] { return &Cycle[E]{Base: base, n: n} }

func (c *Cycle[E]) First() seq.Cur {
	return cycleCur{inner: c.Base.First(), pass: 0}
}

func (c *Cycle[E]) IsLast(cur seq.Cur) bool {
	cc := cur.(cycleCur)
	if c.n > 0 && cc.pass >= c.n {
		return true
	}
	return false
}

func (c *Cycle[E]) ReadAt(cur seq.Cur) E {
	cc := cur.(cycleCur)
	return c.Base.ReadAt(cc.inner)
}

func (c *Cycle[E]) Inc(cur *seq.Cur) {
	cc := (*cur).(cycleCur)
	c.Base.Inc(&cc.inner)
	if c.Base.IsLast(cc.inner) {
		cc.pass++
		if c.n == 0 || cc.pass < c.n {
			cc.inner = c.Base.First()
		}
	}
	*cur = cc
}

func (c *Cycle[E]) IsInfinite() bool { return c.n == 0 }

func (c *Cycle[E]) Size() int {
	if c.n == 0 {
		seq.Fail(seq.ErrOutOfBounds)
	}
	s, ok := c.Base.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return seq.MulInt(s.Size(), c.n)
}
