package adaptor

import "github.com/katalvlaran/flux/seq"

// chainCur tracks which of the two bases is active and its cursor
// within that base.
type chainCur struct {
	second bool
	inner  seq.Cur
}

// Chain concatenates two sequences of the same element type
// (SPEC_FULL.md §6): traversal exhausts A before moving to B. The
// result is sized/bounded only when both A and B are. Chain does not
// implement Decrementer, so it is forward-only whatever A and B are.
type Chain[E any] struct {
	A, B seq.Sequence[E]
}

func NewChain[E any](a, b seq.Sequence[E]) *Chain[E] {
	return &Chain[E]{A: a, B: b}
}

func (c *Chain[E]) First() seq.Cur {
	fa := c.A.First()
	if !c.A.IsLast(fa) {
		return chainCur{second: false, inner: fa}
	}
	return chainCur{second: true, inner: c.B.First()}
}

func (c *Chain[E]) IsLast(cur seq.Cur) bool {
	cc := cur.(chainCur)
	if !cc.second {
		return false
	}
	return c.B.IsLast(cc.inner)
}

func (c *Chain[E]) ReadAt(cur seq.Cur) E {
	cc := cur.(chainCur)
	if !cc.second {
		return c.A.ReadAt(cc.inner)
	}
	return c.B.ReadAt(cc.inner)
}

func (c *Chain[E]) Inc(cur *seq.Cur) {
	cc := (*cur).(chainCur)
	if !cc.second {
		c.A.Inc(&cc.inner)
		if c.A.IsLast(cc.inner) {
			cc = chainCur{second: true, inner: c.B.First()}
		}
		*cur = cc
		return
	}
	c.B.Inc(&cc.inner)
	*cur = cc
}

func (c *Chain[E]) Size() int {
	sa, ok := c.A.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	sb, ok := c.B.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return seq.AddInt(sa.Size(), sb.Size())
}

func (c *Chain[E]) Last() seq.Cur {
	if _, ok := c.B.(seq.Boundary); !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return chainCur{second: true, inner: c.B.(seq.Boundary).Last()}
}

func (c *Chain[E]) IsInfinite() bool {
	return seq.IsInfinite[E](c.A) || seq.IsInfinite[E](c.B)
}
