package adaptor

import "github.com/katalvlaran/flux/seq"

// passthrough forwards First/IsLast/ReadAt/Inc to Base unchanged. Every
// adaptor in this package embeds it and overrides only what its contract
// changes (SPEC_FULL.md §6).
type passthrough[E any] struct {
	Base seq.Sequence[E]
}

func (p passthrough[E]) First() seq.Cur        { return p.Base.First() }
func (p passthrough[E]) IsLast(c seq.Cur) bool { return p.Base.IsLast(c) }
func (p passthrough[E]) ReadAt(c seq.Cur) E    { return p.Base.ReadAt(c) }
func (p passthrough[E]) Inc(c *seq.Cur)        { p.Base.Inc(c) }
