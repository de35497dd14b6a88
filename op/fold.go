package op

import "github.com/katalvlaran/flux/seq"

// Fold reduces s to a single R by repeated application of f, starting
// from init (SPEC_FULL.md §7).
func Fold[E, R any](s seq.Sequence[E], init R, f func(acc R, v E) R) R {
	acc := init
	seq.ForEachWhile(s, func(v E) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}

// FoldFirst reduces s using its own first element as the seed, or
// returns seq.None if s is empty (SPEC_FULL.md §7).
func FoldFirst[E any](s seq.Sequence[E], f func(acc, v E) E) seq.Optional[E] {
	c := s.First()
	if s.IsLast(c) {
		return seq.None[E]()
	}
	acc := s.ReadAt(c)
	s.Inc(&c)
	for !s.IsLast(c) {
		acc = f(acc, s.ReadAt(c))
		s.Inc(&c)
	}
	return seq.Some(acc)
}

// Count returns the number of elements in s for which pred holds, or
// the total element count when pred is nil.
func Count[E any](s seq.Sequence[E], pred func(E) bool) int {
	n := 0
	seq.ForEachWhile(s, func(v E) bool {
		if pred == nil || pred(v) {
			n++
		}
		return true
	})
	return n
}

// Sum folds s with +, requiring E to support Go's arithmetic + operator.
func Sum[E Number](s seq.Sequence[E]) E {
	var zero E
	return Fold(s, zero, func(acc, v E) E { return acc + v })
}

// Product folds s with *, requiring E to support Go's arithmetic *
// operator; the caller supplies the multiplicative identity since Go
// cannot synthesise "1" generically for every Number.
func Product[E Number](s seq.Sequence[E], one E) E {
	return Fold(s, one, func(acc, v E) E { return acc * v })
}

// Number is the constraint shared by Sum, Product, and the numeric
// algorithms in minmax.go — every type Go's arithmetic operators accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ForEach calls f once per element of s, ignoring any early-stop
// signal — the unconditional counterpart to seq.ForEachWhile.
func ForEach[E any](s seq.Sequence[E], f func(E)) {
	seq.ForEachWhile(s, func(v E) bool {
		f(v)
		return true
	})
}
