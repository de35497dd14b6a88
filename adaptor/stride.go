package adaptor

import "github.com/katalvlaran/flux/seq"

// Stride visits every nth element of Base starting from its first
// (SPEC_FULL.md §6). It preserves Base's tier down through random
// access (an IncN(c,k) on Stride is IncN(c,k*n) on Base), but Last/Size
// require rounding the base length up to a whole number of strides.
type Stride[E any] struct {
	passthrough[E]
	n int
}

func NewStride[E any](base seq.Sequence[E], n int) *Stride[E] {
	if n <= 0 {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return &Stride[E]{passthrough: passthrough[E]{Base: base}, n: n}
}

func (s *Stride[E]) Inc(c *seq.Cur) { seq.IncN[E](s.Base, c, s.n) }

func (s *Stride[E]) Dec(c *seq.Cur) {
	if _, ok := s.Base.(seq.Decrementer); !ok {
		seq.Fail(seq.ErrDecAtFirst)
		return
	}
	seq.IncN[E](s.Base, c, -s.n)
}

func (s *Stride[E]) IncN(c *seq.Cur, k int) {
	if j, ok := s.Base.(seq.Jumper); ok {
		j.IncN(c, k*s.n)
		return
	}
	seq.IncN[E](s.Base, c, k*s.n)
}

func (s *Stride[E]) Distance(from, to seq.Cur) int {
	if j, ok := s.Base.(seq.Jumper); ok {
		return seq.CeilDiv(j.Distance(from, to), s.n)
	}
	return seq.CeilDiv(seq.Distance[E](s.Base, from, to), s.n)
}

func (s *Stride[E]) Last() seq.Cur {
	sz := s.Size()
	c := s.First()
	s.IncN(&c, sz)
	return c
}

func (s *Stride[E]) Size() int {
	sz, ok := s.Base.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return seq.CeilDiv(sz.Size(), s.n)
}

func (s *Stride[E]) IsInfinite() bool { return seq.IsInfinite[E](s.Base) }
