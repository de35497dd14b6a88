package adaptor

import "github.com/katalvlaran/flux/seq"

// Reverse walks Base back to front (SPEC_FULL.md §6). It requires Base
// to be bidirectional and bounded (a Last() to start from), and its own
// result is bidirectional but never random-access unless Base is also
// Jumper, since Reverse's Inc is Base's Dec and vice versa — the two
// only compose into O(1) jumps if Base already offers them.
type Reverse[E any] struct {
	Base seq.Sequence[E]
}

// NewReverse panics via seq.Fail if base is not both Decrementer and
// Boundary, since a reverse walk has nowhere to start from otherwise.
func NewReverse[E any](base seq.Sequence[E]) *Reverse[E] {
	if _, ok := base.(seq.Decrementer); !ok {
		seq.Fail(seq.ErrDecAtFirst)
	}
	if _, ok := base.(seq.Boundary); !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return &Reverse[E]{Base: base}
}

func (r *Reverse[E]) First() seq.Cur {
	return r.Base.(seq.Boundary).Last()
}

func (r *Reverse[E]) IsLast(c seq.Cur) bool {
	return cursorEqualsFirst(r.Base, c)
}

func cursorEqualsFirst[E any](base seq.Sequence[E], c seq.Cur) bool {
	return c == base.First()
}

func (r *Reverse[E]) ReadAt(c seq.Cur) E {
	prev := c
	r.Base.(seq.Decrementer).Dec(&prev)
	return r.Base.ReadAt(prev)
}

func (r *Reverse[E]) Inc(c *seq.Cur) {
	r.Base.(seq.Decrementer).Dec(c)
}

func (r *Reverse[E]) Dec(c *seq.Cur) {
	r.Base.Inc(c)
}

func (r *Reverse[E]) Last() seq.Cur { return r.Base.First() }

func (r *Reverse[E]) Size() int {
	if s, ok := r.Base.(seq.Sizer); ok {
		return s.Size()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return 0
}

func (r *Reverse[E]) IncN(c *seq.Cur, n int) {
	if j, ok := r.Base.(seq.Jumper); ok {
		j.IncN(c, -n)
		return
	}
	seq.IncN[E](r.Base, c, -n)
}

func (r *Reverse[E]) Distance(from, to seq.Cur) int {
	if j, ok := r.Base.(seq.Jumper); ok {
		return j.Distance(to, from)
	}
	return seq.Distance[E](r.Base, to, from)
}
