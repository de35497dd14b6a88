package adaptor

import "github.com/katalvlaran/flux/seq"

// Scan produces the running fold of Base through f, yielding one R per
// Base element (SPEC_FULL.md §6 / §7's fold family rendered lazily).
// Because each element depends on the accumulated state, Scan is
// sequence-tier only: no Decrementer, Jumper, Boundary, or Sizer is
// offered even when Base has them, since replaying the accumulation
// from an arbitrary midpoint would require re-running f from First.
type Scan[E, R any] struct {
	Base seq.Sequence[E]
	init R
	f    func(acc R, v E) R
}

func NewScan[E, R any](base seq.Sequence[E], init R, f func(R, E) R) *Scan[E, R] {
	return &Scan[E, R]{Base: base, init: init, f: f}
}

// scanCur carries the base cursor alongside the accumulated state,
// since the state is not recoverable from the base cursor alone.
type scanCur[R any] struct {
	inner seq.Cur
	acc   R
}

func (s *Scan[E, R]) First() seq.Cur {
	c := s.Base.First()
	if s.Base.IsLast(c) {
		return scanCur[R]{inner: c, acc: s.init}
	}
	acc := s.f(s.init, s.Base.ReadAt(c))
	return scanCur[R]{inner: c, acc: acc}
}

func (s *Scan[E, R]) IsLast(cur seq.Cur) bool {
	return s.Base.IsLast(cur.(scanCur[R]).inner)
}

func (s *Scan[E, R]) ReadAt(cur seq.Cur) R {
	return cur.(scanCur[R]).acc
}

func (s *Scan[E, R]) Inc(cur *seq.Cur) {
	sc := (*cur).(scanCur[R])
	s.Base.Inc(&sc.inner)
	if !s.Base.IsLast(sc.inner) {
		sc.acc = s.f(sc.acc, s.Base.ReadAt(sc.inner))
	}
	*cur = sc
}

func (s *Scan[E, R]) IsInfinite() bool { return seq.IsInfinite[E](s.Base) }

// Prescan is Scan's exclusive, seed-first placement mode (SPEC_FULL.md
// §6's three scan variants): it yields init before any element of
// Base is folded, then the same running fold Scan produces —
// prescan([1,2,3,4], +, 0) yields [0,1,3,6,10] where scan yields
// [1,3,6,10]. One element longer than Base, including on an empty
// Base (where it yields just [init]).
type Prescan[E, R any] struct {
	Base seq.Sequence[E]
	init R
	f    func(acc R, v E) R
}

func NewPrescan[E, R any](base seq.Sequence[E], init R, f func(R, E) R) *Prescan[E, R] {
	return &Prescan[E, R]{Base: base, init: init, f: f}
}

// prescanCur tracks whether the position after the final accumulator
// has been reached, since the output is one element longer than Base
// and so cannot end where Base ends.
type prescanCur[R any] struct {
	inner seq.Cur
	acc   R
	done  bool
}

func (s *Prescan[E, R]) First() seq.Cur {
	return prescanCur[R]{inner: s.Base.First(), acc: s.init}
}

func (s *Prescan[E, R]) IsLast(cur seq.Cur) bool {
	return cur.(prescanCur[R]).done
}

func (s *Prescan[E, R]) ReadAt(cur seq.Cur) R {
	return cur.(prescanCur[R]).acc
}

func (s *Prescan[E, R]) Inc(cur *seq.Cur) {
	pc := (*cur).(prescanCur[R])
	if s.Base.IsLast(pc.inner) {
		pc.done = true
	} else {
		pc.acc = s.f(pc.acc, s.Base.ReadAt(pc.inner))
		s.Base.Inc(&pc.inner)
	}
	*cur = pc
}

func (s *Prescan[E, R]) IsInfinite() bool { return seq.IsInfinite[E](s.Base) }

// ScanFirst is Scan with no explicit seed: the first element of Base
// is both the first output and the seed for every fold after it
// (SPEC_FULL.md §6's third scan variant). On an empty Base there is no
// element to seed from, and the result is an empty sequence.
type ScanFirst[E any] struct {
	Base seq.Sequence[E]
	f    func(acc, v E) E
}

func NewScanFirst[E any](base seq.Sequence[E], f func(E, E) E) *ScanFirst[E] {
	return &ScanFirst[E]{Base: base, f: f}
}

func (s *ScanFirst[E]) First() seq.Cur {
	c := s.Base.First()
	if s.Base.IsLast(c) {
		return scanCur[E]{inner: c}
	}
	return scanCur[E]{inner: c, acc: s.Base.ReadAt(c)}
}

func (s *ScanFirst[E]) IsLast(cur seq.Cur) bool {
	return s.Base.IsLast(cur.(scanCur[E]).inner)
}

func (s *ScanFirst[E]) ReadAt(cur seq.Cur) E {
	return cur.(scanCur[E]).acc
}

func (s *ScanFirst[E]) Inc(cur *seq.Cur) {
	sc := (*cur).(scanCur[E])
	s.Base.Inc(&sc.inner)
	if !s.Base.IsLast(sc.inner) {
		sc.acc = s.f(sc.acc, s.Base.ReadAt(sc.inner))
	}
	*cur = sc
}

func (s *ScanFirst[E]) IsInfinite() bool { return seq.IsInfinite[E](s.Base) }
