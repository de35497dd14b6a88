package adaptor

import "github.com/katalvlaran/flux/seq"

// Map applies f to every element (SPEC_FULL.md §6): tier is preserved
// except contiguity (pointer identity to the original storage is lost
// once f runs), and move_at is left at its default (ReadAt) since f's
// result is a fresh value each call, not a reference into Base.
type Map[E any, R any] struct {
	passthrough[E]
	f func(E) R
}

func NewMap[E any, R any](base seq.Sequence[E], f func(E) R) *Map[E, R] {
	return &Map[E, R]{passthrough: passthrough[E]{Base: base}, f: f}
}

func (m *Map[E, R]) ReadAt(c seq.Cur) R {
	return m.f(m.Base.ReadAt(c))
}

func (m *Map[E, R]) ReadAtUnchecked(c seq.Cur) R {
	return m.f(seq.ReadAtUnchecked[E](m.Base, c))
}

func (m *Map[E, R]) Dec(c *seq.Cur) {
	if d, ok := m.Base.(seq.Decrementer); ok {
		d.Dec(c)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (m *Map[E, R]) IncN(c *seq.Cur, n int) {
	seq.IncN[E](m.Base, c, n)
}

func (m *Map[E, R]) Distance(from, to seq.Cur) int {
	return seq.Distance[E](m.Base, from, to)
}

func (m *Map[E, R]) Last() seq.Cur {
	if b, ok := m.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (m *Map[E, R]) Size() int {
	if s, ok := m.Base.(seq.Sizer); ok {
		return s.Size()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return 0
}

func (m *Map[E, R]) IsInfinite() bool { return seq.IsInfinite[E](m.Base) }
