package source

import "github.com/katalvlaran/flux/seq"

// Empty is the zero-length contiguous source (SPEC_FULL.md §5): ReadAt
// is always a precondition violation.
type Empty[T any] struct{}

func Nothing[T any]() *Empty[T] { return &Empty[T]{} }

func (e *Empty[T]) First() seq.Cur { return 0 }

func (e *Empty[T]) IsLast(seq.Cur) bool { return true }

func (e *Empty[T]) ReadAt(seq.Cur) T {
	seq.Fail(seq.ErrOutOfBounds)
	var zero T
	return zero
}

// Slice satisfies op.Writable with an always-empty backing slice.
func (e *Empty[T]) Slice() []T { return nil }

// WriteAt always fails: Empty has nowhere to write.
func (e *Empty[T]) WriteAt(seq.Cur, T) { seq.Fail(seq.ErrOutOfBounds) }

func (e *Empty[T]) Inc(*seq.Cur) { seq.Fail(seq.ErrIncAtEnd) }

func (e *Empty[T]) Last() seq.Cur { return 0 }

func (e *Empty[T]) Size() int { return 0 }

func (e *Empty[T]) Data() *T { return nil }
