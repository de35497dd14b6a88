package adaptor

import "github.com/katalvlaran/flux/seq"

// ChunkBy groups consecutive runs of Base's elements that compare equal
// under same (SPEC_FULL.md §6's "split_at/chunk_by" family), e.g.
// grouping a sorted slice's runs of identical keys. Like Chunk, it
// materialises each run eagerly into a slice.
type ChunkBy[E any] struct {
	Base seq.Sequence[E]
	same func(a, b E) bool
}

func NewChunkBy[E any](base seq.Sequence[E], same func(a, b E) bool) *ChunkBy[E] {
	return &ChunkBy[E]{Base: base, same: same}
}

func (c *ChunkBy[E]) First() seq.Cur { return c.Base.First() }

func (c *ChunkBy[E]) IsLast(cur seq.Cur) bool { return c.Base.IsLast(cur) }

func (c *ChunkBy[E]) ReadAt(cur seq.Cur) []E {
	bc := cur
	first := c.Base.ReadAt(bc)
	out := []E{first}
	c.Base.Inc(&bc)
	for !c.Base.IsLast(bc) {
		v := c.Base.ReadAt(bc)
		if !c.same(first, v) {
			break
		}
		out = append(out, v)
		c.Base.Inc(&bc)
	}
	return out
}

func (c *ChunkBy[E]) Inc(cur *seq.Cur) {
	bc := *cur
	first := c.Base.ReadAt(bc)
	c.Base.Inc(&bc)
	for !c.Base.IsLast(bc) && c.same(first, c.Base.ReadAt(bc)) {
		c.Base.Inc(&bc)
	}
	*cur = bc
}
