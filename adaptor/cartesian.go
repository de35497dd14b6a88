package adaptor

import "github.com/katalvlaran/flux/seq"

// cartCur holds the outer sequence's fixed cursor and the inner
// sequence's current cursor; the inner sequence is restarted from
// InnerMaker each time the outer advances, per SPEC_FULL.md §6's
// "inner must be multipass" requirement (it is re-traversed once per
// outer element).
type cartCur struct {
	outer seq.Cur
	inner seq.Cur
}

// Cartesian yields Pair[A,B] for every (a,b) combination of Outer × a
// fresh Inner sequence built from InnerMaker per outer element
// (SPEC_FULL.md §6). Outer must be multipass (Cartesian re-reads it
// only once per element, which any sequence tier supports) but Inner's
// factory must be able to produce a fresh, independent traversal every
// call — a genuine multipass requirement on whatever InnerMaker
// returns.
type Cartesian[A, B any] struct {
	Outer      seq.Sequence[A]
	InnerMaker func(A) seq.Sequence[B]
}

func NewCartesian[A, B any](outer seq.Sequence[A], innerMaker func(A) seq.Sequence[B]) *Cartesian[A, B] {
	return &Cartesian[A, B]{Outer: outer, InnerMaker: innerMaker}
}

func (c *Cartesian[A, B]) First() seq.Cur {
	oc := c.Outer.First()
	for !c.Outer.IsLast(oc) {
		inner := c.InnerMaker(c.Outer.ReadAt(oc))
		ic := inner.First()
		if !inner.IsLast(ic) {
			return cartCur{outer: oc, inner: ic}
		}
		c.Outer.Inc(&oc)
	}
	return cartCur{outer: oc, inner: nil}
}

func (c *Cartesian[A, B]) IsLast(cur seq.Cur) bool {
	cc := cur.(cartCur)
	return c.Outer.IsLast(cc.outer)
}

func (c *Cartesian[A, B]) ReadAt(cur seq.Cur) Pair[A, B] {
	cc := cur.(cartCur)
	a := c.Outer.ReadAt(cc.outer)
	inner := c.InnerMaker(a)
	return Pair[A, B]{First: a, Second: inner.ReadAt(cc.inner)}
}

func (c *Cartesian[A, B]) Inc(cur *seq.Cur) {
	cc := (*cur).(cartCur)
	a := c.Outer.ReadAt(cc.outer)
	inner := c.InnerMaker(a)
	inner.Inc(&cc.inner)
	for !c.Outer.IsLast(cc.outer) {
		if !inner.IsLast(cc.inner) {
			*cur = cc
			return
		}
		c.Outer.Inc(&cc.outer)
		if c.Outer.IsLast(cc.outer) {
			break
		}
		inner = c.InnerMaker(c.Outer.ReadAt(cc.outer))
		cc.inner = inner.First()
	}
	*cur = cc
}

// NewCartesianProduct2 recovers the ordinary, non-dependent binary
// cartesian product as the special case of Cartesian's dependent-pair
// design where Inner ignores the outer element entirely (SPEC_FULL.md
// §6's fixed CartesianProduct2..CartesianProduct4 arity family — see
// DESIGN.md's Open Question decisions).
func NewCartesianProduct2[A, B any](a seq.Sequence[A], b seq.Sequence[B]) *Cartesian[A, B] {
	return NewCartesian(a, func(A) seq.Sequence[B] { return b })
}

type cartProd3Cur struct {
	a, b, c seq.Cur
	done    bool
}

// CartesianProduct3 is the ordinary (non-dependent) ternary cartesian
// product, walked as an odometer over three independent bases.
type CartesianProduct3[A, B, C any] struct {
	SeqA seq.Sequence[A]
	SeqB seq.Sequence[B]
	SeqC seq.Sequence[C]
}

func NewCartesianProduct3[A, B, C any](a seq.Sequence[A], b seq.Sequence[B], c seq.Sequence[C]) *CartesianProduct3[A, B, C] {
	return &CartesianProduct3[A, B, C]{SeqA: a, SeqB: b, SeqC: c}
}

func (p *CartesianProduct3[A, B, C]) First() seq.Cur {
	a, b, c := p.SeqA.First(), p.SeqB.First(), p.SeqC.First()
	if p.SeqA.IsLast(a) || p.SeqB.IsLast(b) || p.SeqC.IsLast(c) {
		return cartProd3Cur{done: true}
	}
	return cartProd3Cur{a: a, b: b, c: c}
}

func (p *CartesianProduct3[A, B, C]) IsLast(cur seq.Cur) bool { return cur.(cartProd3Cur).done }

func (p *CartesianProduct3[A, B, C]) ReadAt(cur seq.Cur) Triple[A, B, C] {
	cc := cur.(cartProd3Cur)
	return Triple[A, B, C]{First: p.SeqA.ReadAt(cc.a), Second: p.SeqB.ReadAt(cc.b), Third: p.SeqC.ReadAt(cc.c)}
}

// Inc advances the rightmost dimension first, carrying into the next
// dimension to its left on overflow — the same odometer discipline
// CartesianPower uses over a single repeated base.
func (p *CartesianProduct3[A, B, C]) Inc(cur *seq.Cur) {
	cc := (*cur).(cartProd3Cur)
	p.SeqC.Inc(&cc.c)
	if !p.SeqC.IsLast(cc.c) {
		*cur = cc
		return
	}
	cc.c = p.SeqC.First()
	p.SeqB.Inc(&cc.b)
	if !p.SeqB.IsLast(cc.b) {
		*cur = cc
		return
	}
	cc.b = p.SeqB.First()
	p.SeqA.Inc(&cc.a)
	if !p.SeqA.IsLast(cc.a) {
		*cur = cc
		return
	}
	cc.done = true
	*cur = cc
}

type cartProd4Cur struct {
	a, b, c, d seq.Cur
	done       bool
}

// CartesianProduct4 is the ordinary (non-dependent) quaternary
// cartesian product, walked the same way as CartesianProduct3.
type CartesianProduct4[A, B, C, D any] struct {
	SeqA seq.Sequence[A]
	SeqB seq.Sequence[B]
	SeqC seq.Sequence[C]
	SeqD seq.Sequence[D]
}

func NewCartesianProduct4[A, B, C, D any](a seq.Sequence[A], b seq.Sequence[B], c seq.Sequence[C], d seq.Sequence[D]) *CartesianProduct4[A, B, C, D] {
	return &CartesianProduct4[A, B, C, D]{SeqA: a, SeqB: b, SeqC: c, SeqD: d}
}

func (p *CartesianProduct4[A, B, C, D]) First() seq.Cur {
	a, b, c, d := p.SeqA.First(), p.SeqB.First(), p.SeqC.First(), p.SeqD.First()
	if p.SeqA.IsLast(a) || p.SeqB.IsLast(b) || p.SeqC.IsLast(c) || p.SeqD.IsLast(d) {
		return cartProd4Cur{done: true}
	}
	return cartProd4Cur{a: a, b: b, c: c, d: d}
}

func (p *CartesianProduct4[A, B, C, D]) IsLast(cur seq.Cur) bool { return cur.(cartProd4Cur).done }

func (p *CartesianProduct4[A, B, C, D]) ReadAt(cur seq.Cur) Quad[A, B, C, D] {
	cc := cur.(cartProd4Cur)
	return Quad[A, B, C, D]{
		First:  p.SeqA.ReadAt(cc.a),
		Second: p.SeqB.ReadAt(cc.b),
		Third:  p.SeqC.ReadAt(cc.c),
		Fourth: p.SeqD.ReadAt(cc.d),
	}
}

func (p *CartesianProduct4[A, B, C, D]) Inc(cur *seq.Cur) {
	cc := (*cur).(cartProd4Cur)
	p.SeqD.Inc(&cc.d)
	if !p.SeqD.IsLast(cc.d) {
		*cur = cc
		return
	}
	cc.d = p.SeqD.First()
	p.SeqC.Inc(&cc.c)
	if !p.SeqC.IsLast(cc.c) {
		*cur = cc
		return
	}
	cc.c = p.SeqC.First()
	p.SeqB.Inc(&cc.b)
	if !p.SeqB.IsLast(cc.b) {
		*cur = cc
		return
	}
	cc.b = p.SeqB.First()
	p.SeqA.Inc(&cc.a)
	if !p.SeqA.IsLast(cc.a) {
		*cur = cc
		return
	}
	cc.done = true
	*cur = cc
}

type cartProdNCur struct {
	digits []seq.Cur
	done   bool
}

// CartesianProductN is the Any-boxed fallback for more than four
// independent bases, mirroring ZipN's trade of static element typing
// for arity.
type CartesianProductN struct {
	Seqs []seq.Sequence[any]
}

func NewCartesianProductN(seqs ...seq.Sequence[any]) *CartesianProductN {
	return &CartesianProductN{Seqs: seqs}
}

func (p *CartesianProductN) First() seq.Cur {
	if len(p.Seqs) == 0 {
		return cartProdNCur{}
	}
	digits := make([]seq.Cur, len(p.Seqs))
	for i, s := range p.Seqs {
		c := s.First()
		if s.IsLast(c) {
			return cartProdNCur{done: true}
		}
		digits[i] = c
	}
	return cartProdNCur{digits: digits}
}

func (p *CartesianProductN) IsLast(cur seq.Cur) bool { return cur.(cartProdNCur).done }

func (p *CartesianProductN) ReadAt(cur seq.Cur) []any {
	cc := cur.(cartProdNCur)
	out := make([]any, len(cc.digits))
	for i, s := range p.Seqs {
		out[i] = s.ReadAt(cc.digits[i])
	}
	return out
}

func (p *CartesianProductN) Inc(cur *seq.Cur) {
	cc := (*cur).(cartProdNCur)
	if len(p.Seqs) == 0 {
		cc.done = true
		*cur = cc
		return
	}
	for i := len(cc.digits) - 1; i >= 0; i-- {
		p.Seqs[i].Inc(&cc.digits[i])
		if !p.Seqs[i].IsLast(cc.digits[i]) {
			*cur = cc
			return
		}
		if i == 0 {
			cc.done = true
			*cur = cc
			return
		}
		cc.digits[i] = p.Seqs[i].First()
	}
	*cur = cc
}

// cartPowerCur is an odometer: one cursor per digit, all into the same
// Base, plus a done flag for the one state no digit cursor alone can
// represent (exhausted entirely, including the N==0 case that has no
// digits at all).
type cartPowerCur struct {
	digits []seq.Cur
	done   bool
}

// CartesianPower yields every ordered N-tuple of Base × Base × ... × Base
// (N copies) as a []A, the N-ary self-product named in SPEC_FULL.md §6
// alongside the binary Cartesian. Base must be multipass: each digit
// position re-traverses it independently, like Cartesian's Inner. N==0
// yields exactly one empty tuple, matching the usual definition of a
// zeroth power.
type CartesianPower[A any] struct {
	Base seq.Sequence[A]
	N    int
}

func NewCartesianPower[A any](base seq.Sequence[A], n int) *CartesianPower[A] {
	return &CartesianPower[A]{Base: base, N: n}
}

func (c *CartesianPower[A]) First() seq.Cur {
	if c.N == 0 {
		return cartPowerCur{}
	}
	first := c.Base.First()
	if c.Base.IsLast(first) {
		return cartPowerCur{done: true}
	}
	digits := make([]seq.Cur, c.N)
	for i := range digits {
		digits[i] = first
	}
	return cartPowerCur{digits: digits}
}

func (c *CartesianPower[A]) IsLast(cur seq.Cur) bool {
	return cur.(cartPowerCur).done
}

func (c *CartesianPower[A]) ReadAt(cur seq.Cur) []A {
	cc := cur.(cartPowerCur)
	out := make([]A, len(cc.digits))
	for i, dc := range cc.digits {
		out[i] = c.Base.ReadAt(dc)
	}
	return out
}

// Inc advances like an odometer: increment the rightmost digit; on
// overflow, reset it to Base.First() and carry into the digit to its
// left. Overflowing the leftmost digit means every tuple has been
// produced.
func (c *CartesianPower[A]) Inc(cur *seq.Cur) {
	cc := (*cur).(cartPowerCur)
	if c.N == 0 {
		cc.done = true
		*cur = cc
		return
	}
	for i := len(cc.digits) - 1; i >= 0; i-- {
		c.Base.Inc(&cc.digits[i])
		if !c.Base.IsLast(cc.digits[i]) {
			*cur = cc
			return
		}
		if i == 0 {
			cc.done = true
			*cur = cc
			return
		}
		cc.digits[i] = c.Base.First()
	}
	*cur = cc
}
