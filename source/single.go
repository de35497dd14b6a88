package source

import "github.com/katalvlaran/flux/seq"

type singleState int

const (
	singleValid singleState = iota
	singleDone
)

// Single holds exactly one value (SPEC_FULL.md §5): a two-state cursor,
// contiguous, sized 1.
type Single[T any] struct {
	val T
}

func One[T any](v T) *Single[T] { return &Single[T]{val: v} }

func (s *Single[T]) First() seq.Cur { return singleValid }

func (s *Single[T]) IsLast(c seq.Cur) bool { return c.(singleState) == singleDone }

func (s *Single[T]) ReadAt(c seq.Cur) T {
	if c.(singleState) == singleDone {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return s.val
}

// WriteAt overwrites the held value, satisfying op.Writable.
func (s *Single[T]) WriteAt(c seq.Cur, v T) {
	if c.(singleState) == singleDone {
		seq.Fail(seq.ErrOutOfBounds)
	}
	s.val = v
}

// Slice exposes the held value as a length-1 slice, satisfying
// op.Writable's bulk-write fast path.
func (s *Single[T]) Slice() []T { return (*[1]T)(&s.val)[:] }

func (s *Single[T]) Inc(c *seq.Cur) {
	if c.(singleState) == singleDone {
		seq.Fail(seq.ErrIncAtEnd)
	}
	*c = singleDone
}

func (s *Single[T]) Dec(c *seq.Cur) {
	if c.(singleState) == singleValid {
		seq.Fail(seq.ErrDecAtFirst)
	}
	*c = singleValid
}

func (s *Single[T]) Last() seq.Cur { return singleDone }

func (s *Single[T]) Size() int { return 1 }

func (s *Single[T]) Data() *T { return &s.val }
