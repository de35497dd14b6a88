package adaptor

import "github.com/katalvlaran/flux/seq"

// Slide exposes overlapping windows of n consecutive elements
// (SPEC_FULL.md §6): window i covers Base elements [i, i+n). Base must
// be multipass; Slide requires it to also be random-access so that
// advancing the window is an O(1) pair of jumps rather than an O(n)
// re-scan.
type Slide[E any] struct {
	Base seq.Sequence[E]
	n    int
}

func NewSlide[E any](base seq.Sequence[E], n int) *Slide[E] {
	if _, ok := base.(seq.Jumper); !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	if n <= 0 {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return &Slide[E]{Base: base, n: n}
}

// First returns the cursor of the first window's start, or Base's Last
// if Base has fewer than n elements.
func (s *Slide[E]) First() seq.Cur {
	c := s.Base.First()
	end := c
	// Advance a lookahead cursor n-1 steps to confirm the window fits;
	// if Base ends first, the whole Slide is empty.
	for i := 0; i < s.n-1; i++ {
		if s.Base.IsLast(end) {
			return s.lastCur()
		}
		s.Base.Inc(&end)
	}
	return c
}

func (s *Slide[E]) lastCur() seq.Cur {
	if b, ok := s.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (s *Slide[E]) IsLast(c seq.Cur) bool {
	end := c
	j := s.Base.(seq.Jumper)
	j.IncN(&end, s.n-1)
	return s.Base.IsLast(end)
}

func (s *Slide[E]) ReadAt(c seq.Cur) []E {
	out := make([]E, s.n)
	cur := c
	for i := 0; i < s.n; i++ {
		out[i] = s.Base.ReadAt(cur)
		s.Base.Inc(&cur)
	}
	return out
}

func (s *Slide[E]) Inc(c *seq.Cur) { s.Base.Inc(c) }

func (s *Slide[E]) Dec(c *seq.Cur) {
	if d, ok := s.Base.(seq.Decrementer); ok {
		d.Dec(c)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (s *Slide[E]) Size() int {
	sz, ok := s.Base.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return seq.ClampNonNegative(sz.Size() - s.n + 1)
}
