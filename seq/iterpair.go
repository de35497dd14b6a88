package seq

import "iter"

// Iter synthesizes a Go-native iter.Seq[E] from any Sequence, the
// idiomatic Go replacement for the original spec's synthesized
// begin()/end() iterator pair (SPEC_FULL.md §8 — Go's range-over-func,
// not a begin/end pair, is the iterator-pair-equivalent surface a Go
// reader expects). This lets any flux pipeline terminate in an ordinary
// `for v := range seq.Iter(s) { ... }` loop.
func Iter[E any](s Sequence[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		c := s.First()
		for !s.IsLast(c) {
			if !yield(s.ReadAt(c)) {
				return
			}
			s.Inc(&c)
		}
	}
}

// Iter2 is Iter's indexed counterpart (iter.Seq2[int, E]), the Go
// equivalent of spec.md's "cursors" adaptor fused directly into the
// iterator-pair bridge for the common enumerate-while-ranging case.
func Iter2[E any](s Sequence[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		c := s.First()
		i := 0
		for !s.IsLast(c) {
			if !yield(i, s.ReadAt(c)) {
				return
			}
			s.Inc(&c)
			i++
		}
	}
}
