package adaptor

import "github.com/katalvlaran/flux/seq"

// ReadOnly wraps Base and advertises the read-only flag
// (SPEC_FULL.md §3.1, §6) regardless of whether Base itself does,
// without otherwise changing any element or capability. Useful for
// exposing a mutable source (e.g. source.Contiguous over a caller's own
// slice) to downstream code that should only read it.
type ReadOnly[E any] struct {
	passthrough[E]
	seq.ReadOnlyMark
}

func NewReadOnly[E any](base seq.Sequence[E]) *ReadOnly[E] {
	return &ReadOnly[E]{passthrough: passthrough[E]{Base: base}}
}

func (r *ReadOnly[E]) Dec(c *seq.Cur) {
	if d, ok := r.Base.(seq.Decrementer); ok {
		d.Dec(c)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (r *ReadOnly[E]) IncN(c *seq.Cur, n int) { seq.IncN[E](r.Base, c, n) }

func (r *ReadOnly[E]) Distance(from, to seq.Cur) int { return seq.Distance[E](r.Base, from, to) }

func (r *ReadOnly[E]) Last() seq.Cur {
	if b, ok := r.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (r *ReadOnly[E]) Size() int {
	if s, ok := r.Base.(seq.Sizer); ok {
		return s.Size()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return 0
}

func (r *ReadOnly[E]) IsInfinite() bool { return seq.IsInfinite[E](r.Base) }
