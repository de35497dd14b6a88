package adaptor

import "github.com/katalvlaran/flux/seq"

// Cursors re-exposes Base's own cursors as the element type
// (SPEC_FULL.md §6's cursors() view — useful for building an index over
// a source, e.g. `flux.From(src).Cursors().Filter(...)` to select
// positions rather than values before reading them back through Base.
type Cursors[E any] struct {
	Base seq.Sequence[E]
}

func NewCursors[E any](base seq.Sequence[E]) *Cursors[E] {
	return &Cursors[E]{Base: base}
}

func (c *Cursors[E]) First() seq.Cur { return c.Base.First() }

func (c *Cursors[E]) IsLast(cur seq.Cur) bool { return c.Base.IsLast(cur) }

// ReadAt returns the cursor itself as the element: Cursors[E] is a
// Sequence[seq.Cur], not a Sequence[E] — it yields positions, not
// values.
func (c *Cursors[E]) ReadAt(cur seq.Cur) seq.Cur { return cur }

func (c *Cursors[E]) Inc(cur *seq.Cur) { c.Base.Inc(cur) }

func (c *Cursors[E]) Dec(cur *seq.Cur) {
	if d, ok := c.Base.(seq.Decrementer); ok {
		d.Dec(cur)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (c *Cursors[E]) Last() seq.Cur {
	if b, ok := c.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (c *Cursors[E]) Size() int {
	if s, ok := c.Base.(seq.Sizer); ok {
		return s.Size()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return 0
}
