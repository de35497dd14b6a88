package op

import "github.com/katalvlaran/flux/seq"

// Find returns the cursor of the first element for which pred holds, or
// seq.None if none does (SPEC_FULL.md §7).
func Find[E any](s seq.Sequence[E], pred func(E) bool) seq.Optional[seq.Cur] {
	var found seq.Cur
	var ok bool
	c := seq.ForEachWhile(s, func(v E) bool {
		if pred(v) {
			ok = true
			return false
		}
		return true
	})
	if ok {
		found = c
		return seq.Some(found)
	}
	return seq.None[seq.Cur]()
}

// Contains reports whether any element of s equals v.
func Contains[E comparable](s seq.Sequence[E], v E) bool {
	_, ok := Find(s, func(e E) bool { return e == v }).Get()
	return ok
}

// All reports whether pred holds for every element of s (vacuously true
// on an empty s).
func All[E any](s seq.Sequence[E], pred func(E) bool) bool {
	_, ok := Find(s, func(v E) bool { return !pred(v) }).Get()
	return !ok
}

// Any reports whether pred holds for at least one element of s.
func Any[E any](s seq.Sequence[E], pred func(E) bool) bool {
	_, ok := Find(s, pred).Get()
	return ok
}

// None reports whether pred holds for no element of s.
func None[E any](s seq.Sequence[E], pred func(E) bool) bool {
	return !Any(s, pred)
}

// Front returns the first element of s, or seq.None if s is empty
// (SPEC_FULL.md §7).
func Front[E any](s seq.Sequence[E]) seq.Optional[E] {
	c := s.First()
	if s.IsLast(c) {
		return seq.None[E]()
	}
	return seq.Some(s.ReadAt(c))
}

// Back returns the last element of s, or seq.None if s is empty.
// Requires s to be Boundary and Decrementer (SPEC_FULL.md §7).
func Back[E any](s seq.Sequence[E]) seq.Optional[E] {
	b, ok := s.(seq.Boundary)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	d, ok := s.(seq.Decrementer)
	if !ok {
		seq.Fail(seq.ErrDecAtFirst)
	}
	last := b.Last()
	if last == s.First() {
		return seq.None[E]()
	}
	d.Dec(&last)
	return seq.Some(s.ReadAt(last))
}

// EndsWith reports whether s ends with every element of suffix in
// order (SPEC_FULL.md §7, StartsWith's mirror image). Unlike
// StartsWith, which only needs forward iteration, comparing from the
// tail requires both s and suffix to be Boundary and Decrementer.
func EndsWith[E comparable](s, suffix seq.Sequence[E]) bool {
	sb, sbOk := s.(seq.Boundary)
	sd, sdOk := s.(seq.Decrementer)
	pb, pbOk := suffix.(seq.Boundary)
	pd, pdOk := suffix.(seq.Decrementer)
	if !sbOk || !sdOk || !pbOk || !pdOk {
		seq.Fail(seq.ErrOutOfBounds)
	}
	cs, cp := sb.Last(), pb.Last()
	firstS, firstP := s.First(), suffix.First()
	for cp != firstP {
		if cs == firstS {
			return false
		}
		sd.Dec(&cs)
		pd.Dec(&cp)
		if s.ReadAt(cs) != suffix.ReadAt(cp) {
			return false
		}
	}
	return true
}

// Bounds is a half-open [From, To) cursor range, the result type for
// Search (SPEC_FULL.md §7).
type Bounds struct {
	From, To seq.Cur
}

// Search finds the first occurrence of pattern within s, returning its
// bounds, or seq.None if pattern does not occur (SPEC_FULL.md §7's
// naive O(nm) substring search — it tries every starting position in s
// and walks pattern from scratch at each one, unlike a linear-time
// algorithm such as Knuth-Morris-Pratt). An empty pattern matches at
// s's own First position with an empty [From, From) range.
func Search[E comparable](s, pattern seq.Sequence[E]) seq.Optional[Bounds] {
	pFirst := pattern.First()
	if pattern.IsLast(pFirst) {
		c := s.First()
		return seq.Some(Bounds{From: c, To: c})
	}
	start := s.First()
	for !s.IsLast(start) {
		cs, cp := start, pFirst
		matched := true
		for !pattern.IsLast(cp) {
			if s.IsLast(cs) || s.ReadAt(cs) != pattern.ReadAt(cp) {
				matched = false
				break
			}
			s.Inc(&cs)
			pattern.Inc(&cp)
		}
		if matched {
			return seq.Some(Bounds{From: start, To: cs})
		}
		s.Inc(&start)
	}
	return seq.None[Bounds]()
}
