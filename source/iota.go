package source

import "github.com/katalvlaran/flux/seq"

// Iota is the integer-range source (SPEC_FULL.md §5): the cursor *is*
// the integer. With no End set it is Infinite; otherwise it is bounded,
// sized, and random-access like Contiguous, but with no backing storage
// at all — ReadAt is the identity function.
//
// Capability tiers are advertised per Go type, not per value, so an
// unbounded *Iota still has Last/Size methods and therefore still
// satisfies seq.Boundary/seq.Sizer at compile time; calling either on an
// unbounded instance is a precondition violation routed through Fail,
// same as any other protocol misuse. Callers that need the distinction
// checked statically should consult IsInfinite first.
type Iota struct {
	start   int
	end     int // valid only when bounded
	bounded bool
}

// From builds an unbounded Iota starting at start: start, start+1,
// start+2, ... forever.
func From(start int) *Iota {
	return &Iota{start: start}
}

// Range builds a bounded Iota over [start, end).
func Range(start, end int) *Iota {
	return &Iota{start: start, end: end, bounded: true}
}

func (it *Iota) First() seq.Cur { return it.start }

func (it *Iota) IsLast(c seq.Cur) bool {
	if !it.bounded {
		return false
	}
	return c.(int) >= it.end
}

func (it *Iota) ReadAt(c seq.Cur) int { return c.(int) }

func (it *Iota) Inc(c *seq.Cur) {
	if it.bounded && c.(int) >= it.end {
		seq.Fail(seq.ErrIncAtEnd)
	}
	*c = seq.AddInt(c.(int), 1)
}

func (it *Iota) Dec(c *seq.Cur) {
	if c.(int) <= it.start {
		seq.Fail(seq.ErrDecAtFirst)
	}
	*c = seq.SubInt(c.(int), 1)
}

func (it *Iota) IncN(c *seq.Cur, n int) {
	*c = seq.AddInt(c.(int), n)
}

func (it *Iota) Distance(from, to seq.Cur) int {
	return seq.DistanceInt(from.(int), to.(int))
}

func (it *Iota) Last() seq.Cur {
	if !it.bounded {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return it.end
}

func (it *Iota) Size() int {
	if !it.bounded {
		seq.Fail(seq.ErrOverflow)
	}
	return seq.ClampNonNegative(it.end - it.start)
}

func (it *Iota) IsInfinite() bool { return !it.bounded }
