package op

import "github.com/katalvlaran/flux/seq"

// Min returns the smallest element of s under less, or seq.None if s is
// empty (SPEC_FULL.md §7). Ties keep the first occurrence.
func Min[E any](s seq.Sequence[E], less func(a, b E) bool) seq.Optional[E] {
	return extremum(s, func(candidate, best E) bool { return less(candidate, best) })
}

// Max returns the largest element of s under less, or seq.None if s is
// empty. Ties keep the last occurrence.
func Max[E any](s seq.Sequence[E], less func(a, b E) bool) seq.Optional[E] {
	return extremum(s, func(candidate, best E) bool { return !less(candidate, best) })
}

func extremum[E any](s seq.Sequence[E], better func(candidate, best E) bool) seq.Optional[E] {
	c := s.First()
	if s.IsLast(c) {
		return seq.None[E]()
	}
	best := s.ReadAt(c)
	s.Inc(&c)
	for !s.IsLast(c) {
		v := s.ReadAt(c)
		if better(v, best) {
			best = v
		}
		s.Inc(&c)
	}
	return seq.Some(best)
}

// MinMax returns both the smallest and largest element in a single
// traversal (a paired min/max, grounded on a
// own preference for one-pass combined statistics in matrix reductions).
func MinMax[E any](s seq.Sequence[E], less func(a, b E) bool) (seq.Optional[E], seq.Optional[E]) {
	c := s.First()
	if s.IsLast(c) {
		return seq.None[E](), seq.None[E]()
	}
	lo, hi := s.ReadAt(c), s.ReadAt(c)
	s.Inc(&c)
	for !s.IsLast(c) {
		v := s.ReadAt(c)
		if less(v, lo) {
			lo = v
		}
		if !less(v, hi) {
			hi = v
		}
		s.Inc(&c)
	}
	return seq.Some(lo), seq.Some(hi)
}

// FindMin returns the cursor of the first occurrence of the smallest
// element, or seq.None if s is empty.
func FindMin[E any](s seq.Sequence[E], less func(a, b E) bool) seq.Optional[seq.Cur] {
	return findExtremum(s, func(candidate, best E) bool { return less(candidate, best) })
}

// FindMax returns the cursor of the last occurrence of the largest
// element, or seq.None if s is empty.
func FindMax[E any](s seq.Sequence[E], less func(a, b E) bool) seq.Optional[seq.Cur] {
	return findExtremum(s, func(candidate, best E) bool { return !less(candidate, best) })
}

func findExtremum[E any](s seq.Sequence[E], better func(candidate, best E) bool) seq.Optional[seq.Cur] {
	c := s.First()
	if s.IsLast(c) {
		return seq.None[seq.Cur]()
	}
	bestCur := c
	best := s.ReadAt(c)
	s.Inc(&c)
	for !s.IsLast(c) {
		v := s.ReadAt(c)
		if better(v, best) {
			best, bestCur = v, c
		}
		s.Inc(&c)
	}
	return seq.Some(bestCur)
}
