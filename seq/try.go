package seq

// Try* functions are the checked siblings promised by SPEC_FULL.md §6:
// every primitive that can invoke Fail offers one that returns error
// instead, regardless of the active ErrorPolicy. Fail always panics —
// under PolicyPanic with the sentinel error, under PolicyError with a
// *RuntimeError — so each Try* wrapper runs the primitive under a
// deferred Recover and turns whichever panic comes out back into a
// normal (value, error) result.
//
// These exist for callers who want PolicyError's diagnostics (or
// PolicyPanic's cheaper fast path) without ever taking a panic across
// their own API boundary — a long-lived server loop, for instance,
// where a single malformed cursor should not take the process down.

// TryReadAt is ReadAt, recovering a Fail panic into an error instead of
// letting it propagate.
func TryReadAt[E any](s Sequence[E], c Cur) (e E, err error) {
	defer Recover(&err)
	e = s.ReadAt(c)
	return e, nil
}

// TryInc is Inc, recovering a Fail panic (ErrIncAtEnd at the least)
// into an error instead of letting it propagate.
func TryInc[E any](s Sequence[E], c *Cur) (err error) {
	defer Recover(&err)
	s.Inc(c)
	return nil
}

// TryDec is Dec, recovering a Fail panic (ErrDecAtFirst, or the
// not-Decrementer Fail that Dec itself raises) into an error.
func TryDec[E any](s Sequence[E], c *Cur) (err error) {
	defer Recover(&err)
	Dec(s, c)
	return nil
}

// TryIncN is IncN, recovering a Fail panic into an error.
func TryIncN[E any](s Sequence[E], c *Cur, delta int) (err error) {
	defer Recover(&err)
	IncN(s, c, delta)
	return nil
}

// TryDistance is Distance, recovering a Fail panic into an error. The
// O(n) fallback path in Distance never calls Fail, so this only ever
// returns a non-nil error when a Jumper implementation does.
func TryDistance[E any](s Sequence[E], from, to Cur) (n int, err error) {
	defer Recover(&err)
	n = Distance(s, from, to)
	return n, nil
}

// TryMoveAt is MoveAt, recovering a Fail panic into an error.
func TryMoveAt[E any](s Sequence[E], c Cur) (e E, err error) {
	defer Recover(&err)
	e = MoveAt(s, c)
	return e, nil
}
