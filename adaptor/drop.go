package adaptor

import "github.com/katalvlaran/flux/seq"

// Drop skips the first n elements of Base (SPEC_FULL.md §6), otherwise
// forwarding every capability Base has: a dropped prefix changes where
// First lands, nothing about what comes after it.
type Drop[E any] struct {
	passthrough[E]
	n int

	firstCached bool
	firstCur    seq.Cur
}

func NewDrop[E any](base seq.Sequence[E], n int) *Drop[E] {
	return &Drop[E]{passthrough: passthrough[E]{Base: base}, n: seq.ClampNonNegative(n)}
}

// First skips n elements eagerly on its first call and memoizes the
// result; when Base is not a Jumper this skip is O(n), so repeated
// First calls on the same Drop must not re-pay it.
func (d *Drop[E]) First() seq.Cur {
	if d.firstCached {
		return d.firstCur
	}
	c := d.Base.First()
	seq.IncN[E](d.Base, &c, d.n)
	d.firstCur = c
	d.firstCached = true
	return c
}

func (d *Drop[E]) Dec(c *seq.Cur) {
	if dd, ok := d.Base.(seq.Decrementer); ok {
		dd.Dec(c)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (d *Drop[E]) IncN(c *seq.Cur, n int) { seq.IncN[E](d.Base, c, n) }

func (d *Drop[E]) Distance(from, to seq.Cur) int { return seq.Distance[E](d.Base, from, to) }

func (d *Drop[E]) Last() seq.Cur {
	if b, ok := d.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (d *Drop[E]) Size() int {
	if s, ok := d.Base.(seq.Sizer); ok {
		return seq.ClampNonNegative(s.Size() - d.n)
	}
	seq.Fail(seq.ErrOutOfBounds)
	return 0
}

func (d *Drop[E]) IsInfinite() bool { return seq.IsInfinite[E](d.Base) }
