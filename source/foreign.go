package source

import (
	"iter"

	"github.com/katalvlaran/flux/seq"
)

// Foreign lifts a Go-native iter.Seq[T] (the language's own iterator-pair
// equivalent) into the cursor protocol — SPEC_FULL.md §5's
// "foreign-range adaptor... preserving tier", rendered for Go's actual
// native iteration primitive rather than a begin/end pair. Foreign is
// single-pass only: iter.Seq offers no way to resume a partially-drained
// iteration from an arbitrary point. The first call to First starts an
// iter.Pull adapter and pulls the first value; later calls return the
// same cursor without restarting the iteration.
type Foreign[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	cur  T
	done bool
	init bool
}

// FromIterSeq wraps a standard-library-style push iterator.
func FromIterSeq[T any](s iter.Seq[T]) *Foreign[T] {
	return &Foreign[T]{seq: s}
}

// FromSlice wraps a plain Go slice without copying it.
func FromSlice[T any](s []T) *Foreign[T] {
	return FromIterSeq(func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	})
}

func (f *Foreign[T]) First() seq.Cur {
	if f.init {
		return 0
	}
	f.init = true
	f.next, f.stop = iter.Pull(f.seq)
	f.advance()
	return 0
}

func (f *Foreign[T]) advance() {
	v, ok := f.next()
	if !ok {
		f.done = true
		f.stop()
		return
	}
	f.cur = v
}

func (f *Foreign[T]) IsLast(seq.Cur) bool { return f.done }

func (f *Foreign[T]) ReadAt(seq.Cur) T {
	if f.done {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return f.cur
}

func (f *Foreign[T]) Inc(*seq.Cur) {
	if f.done {
		seq.Fail(seq.ErrIncAtEnd)
	}
	f.advance()
}
