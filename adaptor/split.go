package adaptor

import "github.com/katalvlaran/flux/seq"

// Split divides Base into runs separated by elements for which isSep
// returns true (SPEC_FULL.md §6); separators themselves are dropped, as
// in strings.Split/bytes.Split, for an arbitrary element type and
// predicate. Unlike strings.Split, a trailing separator yields no final
// empty run. Each read materialises the run as a
// slice, same trade-off as Chunk/ChunkBy.
type Split[E any] struct {
	Base  seq.Sequence[E]
	isSep func(E) bool
}

func NewSplit[E any](base seq.Sequence[E], isSep func(E) bool) *Split[E] {
	return &Split[E]{Base: base, isSep: isSep}
}

func (s *Split[E]) First() seq.Cur { return s.Base.First() }

func (s *Split[E]) IsLast(c seq.Cur) bool { return s.Base.IsLast(c) }

func (s *Split[E]) ReadAt(c seq.Cur) []E {
	var out []E
	bc := c
	for !s.Base.IsLast(bc) {
		v := s.Base.ReadAt(bc)
		if s.isSep(v) {
			break
		}
		out = append(out, v)
		s.Base.Inc(&bc)
	}
	return out
}

func (s *Split[E]) Inc(c *seq.Cur) {
	for !s.Base.IsLast(*c) && !s.isSep(s.Base.ReadAt(*c)) {
		s.Base.Inc(c)
	}
	if !s.Base.IsLast(*c) {
		s.Base.Inc(c) // step past the separator itself
	}
}

// NewSplitByValue splits base at every element equal to delim
// (SPEC_FULL.md §6's "split by single delimiter, using find" form):
// the equality test Find drives is exactly the isSep predicate Split
// already takes, so this is Split specialised to one rather than a
// distinct type.
func NewSplitByValue[E comparable](base seq.Sequence[E], delim E) *Split[E] {
	return NewSplit(base, func(e E) bool { return e == delim })
}

// SplitByPattern divides Base into runs separated by occurrences of a
// multi-element delimiter, Split's "by sub-sequence pattern, using
// search" form (SPEC_FULL.md §6). Pattern must be multipass: every
// candidate position in Base is matched against it from Pattern's own
// First, the same requirement Cartesian places on its Inner sequences.
type SplitByPattern[E comparable] struct {
	Base    seq.Sequence[E]
	Pattern seq.Sequence[E]
}

func NewSplitByPattern[E comparable](base, pattern seq.Sequence[E]) *SplitByPattern[E] {
	return &SplitByPattern[E]{Base: base, Pattern: pattern}
}

func (s *SplitByPattern[E]) First() seq.Cur { return s.Base.First() }

func (s *SplitByPattern[E]) IsLast(c seq.Cur) bool { return s.Base.IsLast(c) }

// matchAt reports whether Pattern occurs starting at c, returning the
// cursor just past the match when it does. An empty Pattern never
// matches, since an empty delimiter could not separate anything
// without splitting every position into its own run.
func (s *SplitByPattern[E]) matchAt(c seq.Cur) (seq.Cur, bool) {
	pc := s.Pattern.First()
	if s.Pattern.IsLast(pc) {
		return c, false
	}
	bc := c
	for !s.Pattern.IsLast(pc) {
		if s.Base.IsLast(bc) || s.Base.ReadAt(bc) != s.Pattern.ReadAt(pc) {
			return c, false
		}
		s.Base.Inc(&bc)
		s.Pattern.Inc(&pc)
	}
	return bc, true
}

func (s *SplitByPattern[E]) ReadAt(c seq.Cur) []E {
	var out []E
	bc := c
	for !s.Base.IsLast(bc) {
		if _, ok := s.matchAt(bc); ok {
			break
		}
		out = append(out, s.Base.ReadAt(bc))
		s.Base.Inc(&bc)
	}
	return out
}

func (s *SplitByPattern[E]) Inc(c *seq.Cur) {
	for !s.Base.IsLast(*c) {
		if after, ok := s.matchAt(*c); ok {
			*c = after
			return
		}
		s.Base.Inc(c)
	}
}
