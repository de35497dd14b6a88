package adaptor

import "github.com/katalvlaran/flux/seq"

// DropWhile skips Base's leading run of elements satisfying pred
// (SPEC_FULL.md §6). First is the only method that changes; once past
// the dropped prefix, DropWhile forwards the rest of the protocol
// unchanged, since nothing about Base's remaining elements has been
// altered. Of Base's extensions only Last and IsInfinite are forwarded.
type DropWhile[E any] struct {
	passthrough[E]
	pred func(E) bool

	firstCached bool
	firstCur    seq.Cur
}

func NewDropWhile[E any](base seq.Sequence[E], pred func(E) bool) *DropWhile[E] {
	return &DropWhile[E]{passthrough: passthrough[E]{Base: base}, pred: pred}
}

// First skips the leading run eagerly on its first call and memoizes
// the result so repeated calls do not re-scan the dropped prefix.
func (d *DropWhile[E]) First() seq.Cur {
	if d.firstCached {
		return d.firstCur
	}
	c := d.Base.First()
	for !d.Base.IsLast(c) && d.pred(d.Base.ReadAt(c)) {
		d.Base.Inc(&c)
	}
	d.firstCur = c
	d.firstCached = true
	return c
}

func (d *DropWhile[E]) Last() seq.Cur {
	if b, ok := d.Base.(seq.Boundary); ok {
		return b.Last()
	}
	seq.Fail(seq.ErrOutOfBounds)
	return nil
}

func (d *DropWhile[E]) IsInfinite() bool { return seq.IsInfinite[E](d.Base) }

// DropWhile never implements Sizer: the length of the dropped prefix is
// not knowable without the same scan First already performs, so unlike
// Drop (whose prefix length n is known up front), no O(1) size exists
// to report even when Base is Sizer. This is the "delete the operation"
// case doc.go describes, not the delegate-and-Fail case.
