package adaptor

import "github.com/katalvlaran/flux/seq"

// Slice restricts Base to the half-open cursor range [from, to)
// (SPEC_FULL.md §6's slice, the lazy equivalent of Go's s[from:to]).
// Base must be random-access: the range endpoints are arbitrary
// cursors, and computing Size requires an O(1) Distance.
type Slice[E any] struct {
	passthrough[E]
	from, to seq.Cur
}

func NewSlice[E any](base seq.Sequence[E], from, to seq.Cur) *Slice[E] {
	if _, ok := base.(seq.Jumper); !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return &Slice[E]{passthrough: passthrough[E]{Base: base}, from: from, to: to}
}

func (s *Slice[E]) First() seq.Cur { return s.from }

func (s *Slice[E]) IsLast(c seq.Cur) bool { return c == s.to }

func (s *Slice[E]) Last() seq.Cur { return s.to }

func (s *Slice[E]) Size() int {
	return s.Base.(seq.Jumper).Distance(s.from, s.to)
}

func (s *Slice[E]) Dec(c *seq.Cur) {
	if d, ok := s.Base.(seq.Decrementer); ok {
		d.Dec(c)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (s *Slice[E]) IncN(c *seq.Cur, n int) { s.Base.(seq.Jumper).IncN(c, n) }

func (s *Slice[E]) Distance(from, to seq.Cur) int { return s.Base.(seq.Jumper).Distance(from, to) }
