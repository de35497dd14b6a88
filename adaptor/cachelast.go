package adaptor

import "github.com/katalvlaran/flux/seq"

// CacheLast memoises the most recently read element so that calling
// ReadAt twice at the same cursor without an intervening Inc does not
// re-run an expensive Base.ReadAt (SPEC_FULL.md §6's cache_last, useful
// after a Map with a costly f or a Generator whose pull has side
// effects). It forwards every other method and extension through
// passthrough unchanged.
type CacheLast[E any] struct {
	passthrough[E]
	haveCached bool
	cachedAt   seq.Cur
	cached     E
}

func NewCacheLast[E any](base seq.Sequence[E]) *CacheLast[E] {
	return &CacheLast[E]{passthrough: passthrough[E]{Base: base}}
}

func (c *CacheLast[E]) ReadAt(cur seq.Cur) E {
	if c.haveCached && c.cachedAt == cur {
		return c.cached
	}
	v := c.Base.ReadAt(cur)
	c.cached, c.cachedAt, c.haveCached = v, cur, true
	return v
}

func (c *CacheLast[E]) Dec(cur *seq.Cur) {
	if d, ok := c.Base.(seq.Decrementer); ok {
		d.Dec(cur)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (c *CacheLast[E]) IncN(cur *seq.Cur, n int) { seq.IncN[E](c.Base, cur, n) }

func (c *CacheLast[E]) Distance(from, to seq.Cur) int { return seq.Distance[E](c.Base, from, to) }

func (c *CacheLast[E]) Last() seq.Cur {
	if b, ok := c.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (c *CacheLast[E]) Size() int {
	if s, ok := c.Base.(seq.Sizer); ok {
		return s.Size()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return 0
}
