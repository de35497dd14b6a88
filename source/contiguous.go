package source

import "github.com/katalvlaran/flux/seq"

// Contiguous is the cursor-protocol wrapper over a Go slice
// (SPEC_FULL.md §5's "contiguous buffer view"): the cursor is a signed
// index, ReadAt bounds-checks against len, and the backing array is
// pointer-stable for the lifetime of the Contiguous value (it never
// reslices or reallocates on its own).
type Contiguous[T any] struct {
	data []T
}

// NewContiguous wraps data without copying it; mutations to data made
// through other references are visible through the returned sequence.
func NewContiguous[T any](data []T) *Contiguous[T] {
	return &Contiguous[T]{data: data}
}

func (c *Contiguous[T]) First() seq.Cur { return 0 }

func (c *Contiguous[T]) IsLast(cur seq.Cur) bool {
	return cur.(int) >= len(c.data)
}

func (c *Contiguous[T]) ReadAt(cur seq.Cur) T {
	i := cur.(int)
	if i < 0 || i >= len(c.data) {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return c.data[i]
}

func (c *Contiguous[T]) ReadAtUnchecked(cur seq.Cur) T {
	return c.data[cur.(int)]
}

// WriteAt overwrites the element at cur, satisfying op.Writable.
func (c *Contiguous[T]) WriteAt(cur seq.Cur, v T) {
	i := cur.(int)
	if i < 0 || i >= len(c.data) {
		seq.Fail(seq.ErrOutOfBounds)
	}
	c.data[i] = v
}

func (c *Contiguous[T]) Inc(cur *seq.Cur) {
	i := cur.(int)
	if i >= len(c.data) {
		seq.Fail(seq.ErrIncAtEnd)
	}
	*cur = i + 1
}

func (c *Contiguous[T]) Dec(cur *seq.Cur) {
	i := cur.(int)
	if i <= 0 {
		seq.Fail(seq.ErrDecAtFirst)
	}
	*cur = i - 1
}

func (c *Contiguous[T]) IncN(cur *seq.Cur, n int) {
	*cur = seq.AddInt(cur.(int), n)
}

func (c *Contiguous[T]) Distance(from, to seq.Cur) int {
	return seq.DistanceInt(from.(int), to.(int))
}

func (c *Contiguous[T]) Last() seq.Cur { return len(c.data) }

func (c *Contiguous[T]) Size() int { return len(c.data) }

// Data exposes the raw backing pointer; ReadAt(First()) refers to
// *Data() per the contiguous tier's pointer-identity requirement.
func (c *Contiguous[T]) Data() *T {
	if len(c.data) == 0 {
		return nil
	}
	return &c.data[0]
}

// Slice returns the live backing slice, for algorithms (sort, fill,
// output_to) that want the fast contiguous path directly.
func (c *Contiguous[T]) Slice() []T { return c.data }
