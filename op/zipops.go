package op

import (
	"github.com/katalvlaran/flux/adaptor"
	"github.com/katalvlaran/flux/seq"
)

// ForEachZipped walks a and b in lockstep, calling f on each pair and
// stopping as soon as either is exhausted — the eager counterpart to
// adaptor.Zip for callers who want a callback instead of a materialised
// pair sequence (SPEC_FULL.md §7's zip_with).
func ForEachZipped[A, B any](a seq.Sequence[A], b seq.Sequence[B], f func(A, B)) {
	z := adaptor.NewZip(a, b)
	seq.ForEachWhile[adaptor.Pair[A, B]](z, func(p adaptor.Pair[A, B]) bool {
		f(p.First, p.Second)
		return true
	})
}

// CollectZipped drains a and b, in lockstep, into a slice of pairs.
func CollectZipped[A, B any](a seq.Sequence[A], b seq.Sequence[B]) []adaptor.Pair[A, B] {
	return Collect[adaptor.Pair[A, B]](adaptor.NewZip(a, b))
}
