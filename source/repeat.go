package source

import "github.com/katalvlaran/flux/seq"

// Repeat yields the same stored value forever, or n times when
// constructed via RepeatN (SPEC_FULL.md §5).
type Repeat[T any] struct {
	val     T
	n       int
	bounded bool
}

// Forever builds an infinite Repeat.
func Forever[T any](v T) *Repeat[T] { return &Repeat[T]{val: v} }

// RepeatN builds a Repeat bounded to n occurrences.
func RepeatN[T any](v T, n int) *Repeat[T] {
	return &Repeat[T]{val: v, n: n, bounded: true}
}

func (r *Repeat[T]) First() seq.Cur { return 0 }

func (r *Repeat[T]) IsLast(c seq.Cur) bool {
	if !r.bounded {
		return false
	}
	return c.(int) >= r.n
}

func (r *Repeat[T]) ReadAt(seq.Cur) T { return r.val }

func (r *Repeat[T]) Inc(c *seq.Cur) {
	if r.bounded && c.(int) >= r.n {
		seq.Fail(seq.ErrIncAtEnd)
	}
	*c = seq.AddInt(c.(int), 1)
}

func (r *Repeat[T]) Dec(c *seq.Cur) {
	if c.(int) <= 0 {
		seq.Fail(seq.ErrDecAtFirst)
	}
	*c = seq.SubInt(c.(int), 1)
}

func (r *Repeat[T]) IncN(c *seq.Cur, n int) { *c = seq.AddInt(c.(int), n) }

func (r *Repeat[T]) Distance(from, to seq.Cur) int {
	return seq.DistanceInt(from.(int), to.(int))
}

func (r *Repeat[T]) Last() seq.Cur {
	if !r.bounded {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return r.n
}

func (r *Repeat[T]) Size() int {
	if !r.bounded {
		seq.Fail(seq.ErrOverflow)
	}
	return r.n
}

func (r *Repeat[T]) IsInfinite() bool { return !r.bounded }
