package seq

// ForEachWhile is the bulk driver every algorithm in the op package is a
// thin specialisation of (SPEC_FULL.md §4.1, §4.4, the "bulk driver" in
// the glossary). It advances from First, calling pred on each element,
// and stops at the first element for which pred returns false — or at
// the end — returning the cursor pointing at that element (or at the
// end).
//
// When s implements BulkDriver, its own fused implementation is used
// (the filter and take_while adaptors override this to skip work
// their base cannot skip on its own); otherwise DefaultForEachWhile
// drives the primitive First/IsLast/ReadAt/Inc loop.
func ForEachWhile[E any](s Sequence[E], pred func(E) bool) Cur {
	if bd, ok := s.(BulkDriver[E]); ok {
		return bd.ForEachWhile(pred)
	}
	return DefaultForEachWhile(s, pred)
}

// DefaultForEachWhile is the generic primitive-only loop, exported so
// adaptors that implement BulkDriver can still fall back to it for the
// part of their traversal they cannot fuse.
func DefaultForEachWhile[E any](s Sequence[E], pred func(E) bool) Cur {
	c := s.First()
	for !s.IsLast(c) {
		if !pred(s.ReadAt(c)) {
			return c
		}
		s.Inc(&c)
	}
	return c
}

// ReadAtUnchecked dispatches to s's own UncheckedReader implementation,
// or falls back to an ordinary (checked) ReadAt when s has none —
// DefaultReadAtUnchecked, per spec.md §4.1's "defaults to read_at".
func ReadAtUnchecked[E any](s Sequence[E], c Cur) E {
	if u, ok := s.(UncheckedReader[E]); ok {
		return u.ReadAtUnchecked(c)
	}
	return DefaultReadAtUnchecked(s, c)
}

// DefaultReadAtUnchecked is ReadAt with no separate precondition-only path.
func DefaultReadAtUnchecked[E any](s Sequence[E], c Cur) E {
	return s.ReadAt(c)
}

// MoveAt dispatches to s's own MoveReader implementation, or falls back
// to ReadAt when RElem(S) collapses to E (the common case in this
// rendering — see types.go's MoveReader doc comment).
func MoveAt[E any](s Sequence[E], c Cur) E {
	if m, ok := s.(MoveReader[E]); ok {
		return m.MoveAt(c)
	}
	return DefaultMoveAt(s, c)
}

// DefaultMoveAt is ReadAt, used whenever a source has no genuine
// destructive read to offer.
func DefaultMoveAt[E any](s Sequence[E], c Cur) E {
	return s.ReadAt(c)
}

// Dec dispatches to s's Decrementer implementation, Fail-ing with
// ErrDecAtFirst if s does not implement the bidirectional tier at all —
// a programmer error (calling Dec on a forward-only sequence is a type
// error the caller bypassed via the erased Cur boundary).
func Dec[E any](s Sequence[E], c *Cur) {
	d, ok := s.(Decrementer)
	if !ok {
		Fail(ErrDecAtFirst)
		return
	}
	d.Dec(c)
}

// IncN dispatches to s's Jumper implementation when present, else
// steps one at a time Δ times: forward with Inc, backward with Dec when
// s is a Decrementer, and failing with ErrDecAtFirst backward otherwise.
func IncN[E any](s Sequence[E], c *Cur, delta int) {
	if j, ok := s.(Jumper); ok {
		j.IncN(c, delta)
		return
	}
	if delta < 0 {
		if d, ok := s.(Decrementer); ok {
			for ; delta < 0; delta++ {
				d.Dec(c)
			}
			return
		}
		Fail(ErrDecAtFirst)
		return
	}
	for ; delta > 0; delta-- {
		s.Inc(c)
	}
}

// Distance dispatches to s's Jumper implementation, else counts steps
// from "from" to "to" by repeated Inc — O(n) fallback for sequences that
// only claim the sequence tier.
func Distance[E any](s Sequence[E], from, to Cur) int {
	if j, ok := s.(Jumper); ok {
		return j.Distance(from, to)
	}
	n := 0
	c := from
	for !s.IsLast(c) && !cursorEqual(c, to) {
		s.Inc(&c)
		n++
	}
	return n
}

// cursorEqual compares two type-erased cursors with ==, which panics if
// the dynamic type is not comparable. Every concrete cursor type in this
// module is a comparable struct or a plain int by convention (the
// "multipass" requirement documented in doc.go), so this is safe for any
// well-formed flux sequence.
func cursorEqual(a, b Cur) bool {
	return a == b
}
