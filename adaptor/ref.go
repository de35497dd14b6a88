package adaptor

import "github.com/katalvlaran/flux/seq"

// Ref wraps an external source by pointer so a pipeline can be built
// non-owningly (SPEC_FULL.md §3.3, §6's ref/mut_ref/owning family).
// It changes nothing about the base's capability — it forwards every
// protocol method and every optional extension by delegating straight
// through to Base, so a Ref is exactly as strong as its referent, minus
// outliving it: a Ref must not be used after Base is gone.
type Ref[E any] struct {
	passthrough[E]
}

// NewRef does not copy or take ownership of base; the caller must keep
// base alive for at least as long as the returned Ref is used.
func NewRef[E any](base seq.Sequence[E]) *Ref[E] {
	return &Ref[E]{passthrough: passthrough[E]{Base: base}}
}

func (r *Ref[E]) Dec(c *seq.Cur) {
	if d, ok := r.Base.(seq.Decrementer); ok {
		d.Dec(c)
		return
	}
	seq.Fail(seq.ErrDecAtFirst)
}

func (r *Ref[E]) IncN(c *seq.Cur, n int) {
	if j, ok := r.Base.(seq.Jumper); ok {
		j.IncN(c, n)
		return
	}
	seq.IncN[E](r.Base, c, n)
}

func (r *Ref[E]) Distance(from, to seq.Cur) int {
	return seq.Distance[E](r.Base, from, to)
}

func (r *Ref[E]) Last() seq.Cur {
	if b, ok := r.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (r *Ref[E]) Size() int {
	if s, ok := r.Base.(seq.Sizer); ok {
		return s.Size()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return 0
}

func (r *Ref[E]) IsInfinite() bool {
	return seq.IsInfinite[E](r.Base)
}

// Owning copies base by value into the pipeline, the default ownership
// mode every other adaptor constructor uses implicitly — this type
// exists mainly so `from` (SPEC_FULL.md §3.3) has a single, explicit
// name to normalize any adaptable input to when the caller wants to be
// unambiguous about owning vs. referencing.
type Owning[E any] struct {
	passthrough[E]
}

func NewOwning[E any](base seq.Sequence[E]) *Owning[E] {
	return &Owning[E]{passthrough: passthrough[E]{Base: base}}
}
