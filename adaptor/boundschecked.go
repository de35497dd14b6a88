package adaptor

import "github.com/katalvlaran/flux/seq"

// BoundsChecked wraps Base so every ReadAt/Inc/Dec call verifies the
// cursor is not already at (or past) Last before delegating
// (SPEC_FULL.md §11's seq.Bounds == BoundsChecked mode): a belt-and-
// braces layer for callers who want the checked behaviour even when
// flux's own global Bounds policy is BoundsUnchecked, or who are
// wrapping a source whose own checks they don't trust. Requires Base to
// be Boundary.
type BoundsChecked[E any] struct {
	passthrough[E]
	last seq.Cur
}

func NewBoundsChecked[E any](base seq.Sequence[E]) *BoundsChecked[E] {
	b, ok := base.(seq.Boundary)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return &BoundsChecked[E]{passthrough: passthrough[E]{Base: base}, last: b.Last()}
}

func (b *BoundsChecked[E]) ReadAt(c seq.Cur) E {
	if c == b.last {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return b.Base.ReadAt(c)
}

func (b *BoundsChecked[E]) Inc(c *seq.Cur) {
	if *c == b.last {
		seq.Fail(seq.ErrIncAtEnd)
	}
	b.Base.Inc(c)
}

func (b *BoundsChecked[E]) Dec(c *seq.Cur) {
	d, ok := b.Base.(seq.Decrementer)
	if !ok {
		seq.Fail(seq.ErrDecAtFirst)
		return
	}
	if *c == b.Base.First() {
		seq.Fail(seq.ErrDecAtFirst)
	}
	d.Dec(c)
}

func (b *BoundsChecked[E]) Last() seq.Cur { return b.last }
