package adaptor

import "github.com/katalvlaran/flux/seq"

// Chunk groups Base's elements into non-overlapping slices of up to n
// elements each (SPEC_FULL.md §6); the final chunk may be shorter. Base
// must be multipass, since each chunk is materialised by reading n
// elements ahead without consuming the underlying traversal beyond what
// the next chunk needs — this adaptor buffers eagerly rather than
// returning a view, since a chunk does not promise contiguity.
type Chunk[E any] struct {
	Base seq.Sequence[E]
	n    int
}

func NewChunk[E any](base seq.Sequence[E], n int) *Chunk[E] {
	if n <= 0 {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return &Chunk[E]{Base: base, n: n}
}

func (c *Chunk[E]) First() seq.Cur { return c.Base.First() }

func (c *Chunk[E]) IsLast(cur seq.Cur) bool { return c.Base.IsLast(cur) }

func (c *Chunk[E]) ReadAt(cur seq.Cur) []E {
	out := make([]E, 0, c.n)
	bc := cur
	for i := 0; i < c.n && !c.Base.IsLast(bc); i++ {
		out = append(out, c.Base.ReadAt(bc))
		c.Base.Inc(&bc)
	}
	return out
}

func (c *Chunk[E]) Inc(cur *seq.Cur) {
	seq.IncN[E](c.Base, cur, c.n)
}

func (c *Chunk[E]) Size() int {
	s, ok := c.Base.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return seq.CeilDiv(s.Size(), c.n)
}
