package adaptor

import "github.com/katalvlaran/flux/seq"

// zipCur pairs the two bases' cursors.
type zipCur struct {
	a, b seq.Cur
}

// Pair is Zip's element type, a minimal two-tuple since Go has no
// anonymous tuple literal.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip walks two sequences in lockstep, stopping as soon as either is
// exhausted (SPEC_FULL.md §6). It is sized to the shorter of the two
// when both are Sizer. Zip does not implement Jumper, even when both
// bases do.
type Zip[A, B any] struct {
	SeqA seq.Sequence[A]
	SeqB seq.Sequence[B]
}

func NewZip[A, B any](a seq.Sequence[A], b seq.Sequence[B]) *Zip[A, B] {
	return &Zip[A, B]{SeqA: a, SeqB: b}
}

func (z *Zip[A, B]) First() seq.Cur {
	return zipCur{a: z.SeqA.First(), b: z.SeqB.First()}
}

func (z *Zip[A, B]) IsLast(c seq.Cur) bool {
	zc := c.(zipCur)
	return z.SeqA.IsLast(zc.a) || z.SeqB.IsLast(zc.b)
}

func (z *Zip[A, B]) ReadAt(c seq.Cur) Pair[A, B] {
	zc := c.(zipCur)
	return Pair[A, B]{First: z.SeqA.ReadAt(zc.a), Second: z.SeqB.ReadAt(zc.b)}
}

func (z *Zip[A, B]) Inc(c *seq.Cur) {
	zc := (*c).(zipCur)
	z.SeqA.Inc(&zc.a)
	z.SeqB.Inc(&zc.b)
	*c = zc
}

func (z *Zip[A, B]) Size() int {
	sa, ok := z.SeqA.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	sb, ok := z.SeqB.(seq.Sizer)
	if !ok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	na, nb := sa.Size(), sb.Size()
	if na < nb {
		return na
	}
	return nb
}

func (z *Zip[A, B]) IsInfinite() bool {
	return seq.IsInfinite[A](z.SeqA) && seq.IsInfinite[B](z.SeqB)
}

// Triple is Zip3's element type.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type zip3Cur struct{ a, b, c seq.Cur }

// Zip3 is Zip generalized to three sequences walked in lockstep
// (SPEC_FULL.md §6's fixed Zip2..Zip4 arity family — see DESIGN.md's
// Open Question decisions for why the family stops at a fixed arity
// instead of going fully variadic).
type Zip3[A, B, C any] struct {
	SeqA seq.Sequence[A]
	SeqB seq.Sequence[B]
	SeqC seq.Sequence[C]
}

func NewZip3[A, B, C any](a seq.Sequence[A], b seq.Sequence[B], c seq.Sequence[C]) *Zip3[A, B, C] {
	return &Zip3[A, B, C]{SeqA: a, SeqB: b, SeqC: c}
}

func (z *Zip3[A, B, C]) First() seq.Cur {
	return zip3Cur{a: z.SeqA.First(), b: z.SeqB.First(), c: z.SeqC.First()}
}

func (z *Zip3[A, B, C]) IsLast(cur seq.Cur) bool {
	zc := cur.(zip3Cur)
	return z.SeqA.IsLast(zc.a) || z.SeqB.IsLast(zc.b) || z.SeqC.IsLast(zc.c)
}

func (z *Zip3[A, B, C]) ReadAt(cur seq.Cur) Triple[A, B, C] {
	zc := cur.(zip3Cur)
	return Triple[A, B, C]{First: z.SeqA.ReadAt(zc.a), Second: z.SeqB.ReadAt(zc.b), Third: z.SeqC.ReadAt(zc.c)}
}

func (z *Zip3[A, B, C]) Inc(cur *seq.Cur) {
	zc := (*cur).(zip3Cur)
	z.SeqA.Inc(&zc.a)
	z.SeqB.Inc(&zc.b)
	z.SeqC.Inc(&zc.c)
	*cur = zc
}

func (z *Zip3[A, B, C]) Size() int {
	na, aok := z.SeqA.(seq.Sizer)
	nb, bok := z.SeqB.(seq.Sizer)
	nc, cok := z.SeqC.(seq.Sizer)
	if !aok || !bok || !cok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return minInt([]int{na.Size(), nb.Size(), nc.Size()})
}

func (z *Zip3[A, B, C]) IsInfinite() bool {
	return seq.IsInfinite[A](z.SeqA) && seq.IsInfinite[B](z.SeqB) && seq.IsInfinite[C](z.SeqC)
}

// Quad is Zip4's element type.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

type zip4Cur struct{ a, b, c, d seq.Cur }

// Zip4 is Zip generalized to four sequences walked in lockstep.
type Zip4[A, B, C, D any] struct {
	SeqA seq.Sequence[A]
	SeqB seq.Sequence[B]
	SeqC seq.Sequence[C]
	SeqD seq.Sequence[D]
}

func NewZip4[A, B, C, D any](a seq.Sequence[A], b seq.Sequence[B], c seq.Sequence[C], d seq.Sequence[D]) *Zip4[A, B, C, D] {
	return &Zip4[A, B, C, D]{SeqA: a, SeqB: b, SeqC: c, SeqD: d}
}

func (z *Zip4[A, B, C, D]) First() seq.Cur {
	return zip4Cur{a: z.SeqA.First(), b: z.SeqB.First(), c: z.SeqC.First(), d: z.SeqD.First()}
}

func (z *Zip4[A, B, C, D]) IsLast(cur seq.Cur) bool {
	zc := cur.(zip4Cur)
	return z.SeqA.IsLast(zc.a) || z.SeqB.IsLast(zc.b) || z.SeqC.IsLast(zc.c) || z.SeqD.IsLast(zc.d)
}

func (z *Zip4[A, B, C, D]) ReadAt(cur seq.Cur) Quad[A, B, C, D] {
	zc := cur.(zip4Cur)
	return Quad[A, B, C, D]{
		First:  z.SeqA.ReadAt(zc.a),
		Second: z.SeqB.ReadAt(zc.b),
		Third:  z.SeqC.ReadAt(zc.c),
		Fourth: z.SeqD.ReadAt(zc.d),
	}
}

func (z *Zip4[A, B, C, D]) Inc(cur *seq.Cur) {
	zc := (*cur).(zip4Cur)
	z.SeqA.Inc(&zc.a)
	z.SeqB.Inc(&zc.b)
	z.SeqC.Inc(&zc.c)
	z.SeqD.Inc(&zc.d)
	*cur = zc
}

func (z *Zip4[A, B, C, D]) Size() int {
	na, aok := z.SeqA.(seq.Sizer)
	nb, bok := z.SeqB.(seq.Sizer)
	nc, cok := z.SeqC.(seq.Sizer)
	nd, dok := z.SeqD.(seq.Sizer)
	if !aok || !bok || !cok || !dok {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return minInt([]int{na.Size(), nb.Size(), nc.Size(), nd.Size()})
}

func (z *Zip4[A, B, C, D]) IsInfinite() bool {
	return seq.IsInfinite[A](z.SeqA) && seq.IsInfinite[B](z.SeqB) &&
		seq.IsInfinite[C](z.SeqC) && seq.IsInfinite[D](z.SeqD)
}

func minInt(ns []int) int {
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return m
}

// ZipN is the Any-boxed fallback for more than four sequences
// (SPEC_FULL.md §6/DESIGN.md's arity-family decision): each element is
// a []any of one ReadAt per base, in order, trading static element
// typing for arity the same way the type-erased seq.Cur already trades
// static cursor typing for heterogeneous bases.
type ZipN struct {
	Seqs []seq.Sequence[any]
}

func NewZipN(seqs ...seq.Sequence[any]) *ZipN {
	return &ZipN{Seqs: seqs}
}

func (z *ZipN) First() seq.Cur {
	cs := make([]seq.Cur, len(z.Seqs))
	for i, s := range z.Seqs {
		cs[i] = s.First()
	}
	return cs
}

func (z *ZipN) IsLast(cur seq.Cur) bool {
	cs := cur.([]seq.Cur)
	for i, s := range z.Seqs {
		if s.IsLast(cs[i]) {
			return true
		}
	}
	return false
}

func (z *ZipN) ReadAt(cur seq.Cur) []any {
	cs := cur.([]seq.Cur)
	out := make([]any, len(z.Seqs))
	for i, s := range z.Seqs {
		out[i] = s.ReadAt(cs[i])
	}
	return out
}

func (z *ZipN) Inc(cur *seq.Cur) {
	cs := (*cur).([]seq.Cur)
	next := make([]seq.Cur, len(cs))
	copy(next, cs)
	for i, s := range z.Seqs {
		s.Inc(&next[i])
	}
	*cur = next
}

func (z *ZipN) Size() int {
	sizes := make([]int, len(z.Seqs))
	for i, s := range z.Seqs {
		sz, ok := s.(seq.Sizer)
		if !ok {
			seq.Fail(seq.ErrOutOfBounds)
		}
		sizes[i] = sz.Size()
	}
	if len(sizes) == 0 {
		return 0
	}
	return minInt(sizes)
}

func (z *ZipN) IsInfinite() bool {
	for _, s := range z.Seqs {
		if !seq.IsInfinite[any](s) {
			return false
		}
	}
	return len(z.Seqs) > 0
}
