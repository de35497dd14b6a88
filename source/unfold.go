package source

import "github.com/katalvlaran/flux/seq"

// Unfold is an infinite, single-pass source advanced by state = f(state)
// (SPEC_FULL.md §5). It is one of the memoized-state adaptors called out
// in SPEC_FULL.md §9: the current state lives in the source, not the
// cursor, so the cursor is a trivial token and copying it does not give
// an independent traversal — Unfold is sequence-tier only, never
// multipass, by design.
type Unfold[T any] struct {
	state T
	next  func(T) T
}

// NewUnfold builds an Unfold seeded at seed; the first read returns seed
// itself, and every subsequent Inc replaces the state with next(state).
func NewUnfold[T any](seed T, next func(T) T) *Unfold[T] {
	return &Unfold[T]{state: seed, next: next}
}

func (u *Unfold[T]) First() seq.Cur {
	return 0
}

func (u *Unfold[T]) IsLast(seq.Cur) bool { return false }

func (u *Unfold[T]) ReadAt(seq.Cur) T { return u.state }

func (u *Unfold[T]) Inc(c *seq.Cur) {
	u.state = u.next(u.state)
	*c = c.(int) + 1
}

func (u *Unfold[T]) IsInfinite() bool { return true }
