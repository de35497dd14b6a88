package adaptor

import "github.com/katalvlaran/flux/seq"

// TakeWhile exposes the leading run of Base's elements satisfying pred
// (SPEC_FULL.md §6), grounded directly on
// original_source/include/flux/op/take_while.hpp's passthrough_iface_base
// use: IsLast changes (it also stops at the first failing element), and
// a fused ForEachWhile stops at the same point; everything else forwards
// unchanged through passthrough.
type TakeWhile[E any] struct {
	passthrough[E]
	pred func(E) bool
}

func NewTakeWhile[E any](base seq.Sequence[E], pred func(E) bool) *TakeWhile[E] {
	return &TakeWhile[E]{passthrough: passthrough[E]{Base: base}, pred: pred}
}

func (t *TakeWhile[E]) IsLast(c seq.Cur) bool {
	return t.Base.IsLast(c) || !t.pred(t.Base.ReadAt(c))
}

func (t *TakeWhile[E]) ForEachWhile(pred func(E) bool) seq.Cur {
	c := t.Base.First()
	for !t.Base.IsLast(c) {
		v := t.Base.ReadAt(c)
		if !t.pred(v) {
			return c
		}
		if !pred(v) {
			return c
		}
		t.Base.Inc(&c)
	}
	return c
}
