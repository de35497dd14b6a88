package flux

import (
	"io"

	"github.com/katalvlaran/flux/adaptor"
	"github.com/katalvlaran/flux/op"
	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/source"
)

// Seq is the fluent entry point over the cursor protocol: a thin
// wrapper around a seq.Sequence[E] that lets pipelines read
// left-to-right (From(x).Filter(...).Take(...).Collect()) instead of
// nesting adaptor constructors inside one another.
//
// Go methods cannot introduce a type parameter beyond their receiver's,
// so every operation that changes the element type — Map, Scan, Zip,
// Cartesian, Flatten, and the comparable-constrained algorithms
// (Equal, Contains, CollectMap) — is a package-level generic function
// taking a Seq[E] rather than a Seq[E] method. Endofunctor operations
// (Filter, Take, Reverse, Sort, ...), which keep E fixed, are ordinary
// methods.
type Seq[E any] struct {
	inner seq.Sequence[E]
}

// From wraps an existing seq.Sequence, the normalizing "from" operation
// every adaptable input eventually passes through.
func From[E any](s seq.Sequence[E]) Seq[E] { return Seq[E]{inner: s} }

// FromSlice wraps a Go slice without copying it.
func FromSlice[E any](data []E) Seq[E] { return From[E](source.NewContiguous(data)) }

// FromOne wraps a single value.
func FromOne[E any](v E) Seq[E] { return From[E](source.One(v)) }

// FromNothing builds an always-empty sequence of E.
func FromNothing[E any]() Seq[E] { return From[E](source.Nothing[E]()) }

// FromRange builds a bounded ascending integer sequence over [start, end).
func FromRange(start, end int) Seq[int] { return From[int](source.Range(start, end)) }

// FromInt builds an unbounded ascending integer sequence starting at start.
func FromInt(start int) Seq[int] { return From[int](source.From(start)) }

// FromRepeat builds a sequence that yields v forever.
func FromRepeat[E any](v E) Seq[E] { return From[E](source.Forever(v)) }

// FromRepeatN builds a sequence that yields v exactly n times.
func FromRepeatN[E any](v E, n int) Seq[E] { return From[E](source.RepeatN(v, n)) }

// FromGenerator wraps a coroutine-style producer.
func FromGenerator[E any](produce func(yield source.Yield[E])) Seq[E] {
	return From[E](source.Generate(produce))
}

// FromUnfold builds an infinite sequence from a seed and a step function.
func FromUnfold[E any](seed E, next func(E) E) Seq[E] {
	return From[E](source.NewUnfold(seed, next))
}

// FromReader reads whitespace-separated values of type E from r using
// fmt.Fscan.
func FromReader[E any](r io.Reader) Seq[E] { return From[E](source.NewStreamValues[E](r)) }

// FromBytes reads bytes one at a time from r.
func FromBytes(r io.Reader) Seq[byte] { return From[byte](source.NewStreamBytes(r)) }

// Unwrap returns the underlying seq.Sequence, for callers that need to
// pass it to a function expecting the raw protocol type.
func (s Seq[E]) Unwrap() seq.Sequence[E] { return s.inner }

// --- lazy, element-type-preserving adaptors (methods) ---

func (s Seq[E]) Filter(pred func(E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewFilter(s.inner, pred)}
}

func (s Seq[E]) Take(n int) Seq[E] { return Seq[E]{inner: adaptor.NewTake(s.inner, n)} }

func (s Seq[E]) Drop(n int) Seq[E] { return Seq[E]{inner: adaptor.NewDrop(s.inner, n)} }

func (s Seq[E]) TakeWhile(pred func(E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewTakeWhile(s.inner, pred)}
}

func (s Seq[E]) DropWhile(pred func(E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewDropWhile(s.inner, pred)}
}

func (s Seq[E]) Reverse() Seq[E] { return Seq[E]{inner: adaptor.NewReverse(s.inner)} }

func (s Seq[E]) Stride(n int) Seq[E] { return Seq[E]{inner: adaptor.NewStride(s.inner, n)} }

func (s Seq[E]) Cycle() Seq[E] { return Seq[E]{inner: adaptor.NewCycle(s.inner)} }

func (s Seq[E]) CycleN(n int) Seq[E] { return Seq[E]{inner: adaptor.NewCycleN(s.inner, n)} }

func (s Seq[E]) CacheLast() Seq[E] { return Seq[E]{inner: adaptor.NewCacheLast(s.inner)} }

func (s Seq[E]) ReadOnly() Seq[E] { return Seq[E]{inner: adaptor.NewReadOnly(s.inner)} }

func (s Seq[E]) BoundsChecked() Seq[E] { return Seq[E]{inner: adaptor.NewBoundsChecked(s.inner)} }

func (s Seq[E]) Dedup(same func(a, b E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewDedup(s.inner, same)}
}

func (s Seq[E]) SliceBetween(from, to seq.Cur) Seq[E] {
	return Seq[E]{inner: adaptor.NewSlice(s.inner, from, to)}
}

func (s Seq[E]) Cursors() Seq[seq.Cur] { return Seq[seq.Cur]{inner: adaptor.NewCursors(s.inner)} }

func (s Seq[E]) Chain(other Seq[E]) Seq[E] {
	return Seq[E]{inner: adaptor.NewChain(s.inner, other.inner)}
}

func (s Seq[E]) Mask(selectors Seq[bool]) Seq[E] {
	return Seq[E]{inner: adaptor.NewMask(s.inner, selectors.inner)}
}

func (s Seq[E]) Ref() Seq[E] { return Seq[E]{inner: adaptor.NewRef(s.inner)} }

// --- lazy, materialising-chunk adaptors ---

func (s Seq[E]) Chunk(n int) Seq[[]E] { return Seq[[]E]{inner: adaptor.NewChunk(s.inner, n)} }

func (s Seq[E]) ChunkBy(same func(a, b E) bool) Seq[[]E] {
	return Seq[[]E]{inner: adaptor.NewChunkBy(s.inner, same)}
}

func (s Seq[E]) Slide(n int) Seq[[]E] { return Seq[[]E]{inner: adaptor.NewSlide(s.inner, n)} }

func (s Seq[E]) Split(isSep func(E) bool) Seq[[]E] {
	return Seq[[]E]{inner: adaptor.NewSplit(s.inner, isSep)}
}

// SplitByValue splits s at every element equal to delim.
func SplitByValue[E comparable](s Seq[E], delim E) Seq[[]E] {
	return Seq[[]E]{inner: adaptor.NewSplitByValue(s.inner, delim)}
}

// SplitByPattern splits s at every occurrence of the multi-element
// pattern, using it as the separator rather than dropping single
// elements.
func SplitByPattern[E comparable](s, pattern Seq[E]) Seq[[]E] {
	return Seq[[]E]{inner: adaptor.NewSplitByPattern(s.inner, pattern.inner)}
}

// --- set operations over ascending sequences ---

func (s Seq[E]) Union(other Seq[E], less func(a, b E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewUnion(s.inner, other.inner, less)}
}

func (s Seq[E]) Intersection(other Seq[E], less func(a, b E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewIntersection(s.inner, other.inner, less)}
}

func (s Seq[E]) Difference(other Seq[E], less func(a, b E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewDifference(s.inner, other.inner, less)}
}

func (s Seq[E]) SetSymmetricDifference(other Seq[E], less func(a, b E) bool) Seq[E] {
	return Seq[E]{inner: adaptor.NewSetSymmetricDifference(s.inner, other.inner, less)}
}

// --- eager terminal operations that keep E fixed (methods) ---

func (s Seq[E]) ForEach(f func(E)) { op.ForEach[E](s.inner, f) }

func (s Seq[E]) Count(pred func(E) bool) int { return op.Count[E](s.inner, pred) }

func (s Seq[E]) Collect() []E { return op.Collect[E](s.inner) }

func (s Seq[E]) Find(pred func(E) bool) seq.Optional[seq.Cur] { return op.Find[E](s.inner, pred) }

func (s Seq[E]) All(pred func(E) bool) bool { return op.All[E](s.inner, pred) }

func (s Seq[E]) Any(pred func(E) bool) bool { return op.Any[E](s.inner, pred) }

func (s Seq[E]) None(pred func(E) bool) bool { return op.None[E](s.inner, pred) }

func (s Seq[E]) Front() seq.Optional[E] { return op.Front[E](s.inner) }

func (s Seq[E]) Back() seq.Optional[E] { return op.Back[E](s.inner) }

func (s Seq[E]) Min(less func(a, b E) bool) seq.Optional[E] { return op.Min[E](s.inner, less) }

func (s Seq[E]) Max(less func(a, b E) bool) seq.Optional[E] { return op.Max[E](s.inner, less) }

func (s Seq[E]) MinMax(less func(a, b E) bool) (seq.Optional[E], seq.Optional[E]) {
	return op.MinMax[E](s.inner, less)
}

func (s Seq[E]) FindMin(less func(a, b E) bool) seq.Optional[seq.Cur] {
	return op.FindMin[E](s.inner, less)
}

func (s Seq[E]) FindMax(less func(a, b E) bool) seq.Optional[seq.Cur] {
	return op.FindMax[E](s.inner, less)
}

func (s Seq[E]) FoldFirst(f func(acc, v E) E) seq.Optional[E] { return op.FoldFirst[E](s.inner, f) }

func (s Seq[E]) Sort(less func(a, b E) bool) { op.Sort[E](s.inner, less) }

func (s Seq[E]) IsSorted(less func(a, b E) bool) bool { return op.IsSorted[E](s.inner, less) }

func (s Seq[E]) Join(sep string) string { return op.Join[E](s.inner, sep) }

func (s Seq[E]) Print(w io.Writer, sep string) error { return op.Print[E](w, s.inner, sep) }

// OutputTo drains s through consume, a single-pass output sink.
func (s Seq[E]) OutputTo(consume func(E)) int { return op.OutputTo[E](s.inner, consume) }

// --- numeric terminal operations ---

// Sum folds s with +. E must satisfy op.Number.
func Sum[E op.Number](s Seq[E]) E { return op.Sum[E](s.inner) }

// Product folds s with *, seeded by one.
func Product[E op.Number](s Seq[E], one E) E { return op.Product[E](s.inner, one) }

// --- element-type-changing operations (package-level functions) ---

// Map applies f to every element of s, lazily.
func Map[E, R any](s Seq[E], f func(E) R) Seq[R] {
	return Seq[R]{inner: adaptor.NewMap(s.inner, f)}
}

// Scan produces the running fold of s through f, lazily.
func Scan[E, R any](s Seq[E], init R, f func(acc R, v E) R) Seq[R] {
	return Seq[R]{inner: adaptor.NewScan(s.inner, init, f)}
}

// Prescan is Scan's exclusive, seed-first placement mode: init is
// yielded before any element of s is folded.
func Prescan[E, R any](s Seq[E], init R, f func(acc R, v E) R) Seq[R] {
	return Seq[R]{inner: adaptor.NewPrescan(s.inner, init, f)}
}

// ScanFirst is Scan with no explicit seed: s's first element doubles
// as the seed and the first output. An empty s yields an empty sequence.
func ScanFirst[E any](s Seq[E], f func(acc, v E) E) Seq[E] {
	return Seq[E]{inner: adaptor.NewScanFirst(s.inner, f)}
}

// AdjacentMap applies f to each consecutive pair of s's elements,
// lazily.
func AdjacentMap[E, R any](s Seq[E], f func(a, b E) R) Seq[R] {
	return Seq[R]{inner: adaptor.NewAdjacentMap(s.inner, f)}
}

// Zip pairs up a and b lockstep, lazily.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[adaptor.Pair[A, B]] {
	return Seq[adaptor.Pair[A, B]]{inner: adaptor.NewZip(a.inner, b.inner)}
}

// Cartesian yields every (a, innerMaker(a)-element) combination, lazily.
func Cartesian[A, B any](outer Seq[A], innerMaker func(A) Seq[B]) Seq[adaptor.Pair[A, B]] {
	return Seq[adaptor.Pair[A, B]]{
		inner: adaptor.NewCartesian(outer.inner, func(a A) seq.Sequence[B] {
			return innerMaker(a).inner
		}),
	}
}

// CartesianProduct2 is the ordinary (non-dependent) binary cartesian
// product: a's and b's elements are paired up independently of each
// other's value.
func CartesianProduct2[A, B any](a Seq[A], b Seq[B]) Seq[adaptor.Pair[A, B]] {
	return Seq[adaptor.Pair[A, B]]{inner: adaptor.NewCartesianProduct2(a.inner, b.inner)}
}

// CartesianProduct3 is the ternary cartesian product.
func CartesianProduct3[A, B, C any](a Seq[A], b Seq[B], c Seq[C]) Seq[adaptor.Triple[A, B, C]] {
	return Seq[adaptor.Triple[A, B, C]]{inner: adaptor.NewCartesianProduct3(a.inner, b.inner, c.inner)}
}

// CartesianProduct4 is the quaternary cartesian product.
func CartesianProduct4[A, B, C, D any](a Seq[A], b Seq[B], c Seq[C], d Seq[D]) Seq[adaptor.Quad[A, B, C, D]] {
	return Seq[adaptor.Quad[A, B, C, D]]{inner: adaptor.NewCartesianProduct4(a.inner, b.inner, c.inner, d.inner)}
}

// CartesianProductN is the Any-boxed cartesian product fallback for
// more than four independent bases.
func CartesianProductN(seqs ...Seq[any]) Seq[[]any] {
	bases := make([]seq.Sequence[any], len(seqs))
	for i, s := range seqs {
		bases[i] = s.inner
	}
	return Seq[[]any]{inner: adaptor.NewCartesianProductN(bases...)}
}

// CartesianPower yields every N-tuple of base × base × ... × base (N
// copies), lazily, as a []A.
func CartesianPower[A any](base Seq[A], n int) Seq[[]A] {
	return Seq[[]A]{inner: adaptor.NewCartesianPower(base.inner, n)}
}

// Zip3 zips three sequences in lockstep, lazily.
func Zip3[A, B, C any](a Seq[A], b Seq[B], c Seq[C]) Seq[adaptor.Triple[A, B, C]] {
	return Seq[adaptor.Triple[A, B, C]]{inner: adaptor.NewZip3(a.inner, b.inner, c.inner)}
}

// Zip4 zips four sequences in lockstep, lazily.
func Zip4[A, B, C, D any](a Seq[A], b Seq[B], c Seq[C], d Seq[D]) Seq[adaptor.Quad[A, B, C, D]] {
	return Seq[adaptor.Quad[A, B, C, D]]{inner: adaptor.NewZip4(a.inner, b.inner, c.inner, d.inner)}
}

// ZipN is the Any-boxed zip fallback for more than four sequences.
func ZipN(seqs ...Seq[any]) Seq[[]any] {
	bases := make([]seq.Sequence[any], len(seqs))
	for i, s := range seqs {
		bases[i] = s.inner
	}
	return Seq[[]any]{inner: adaptor.NewZipN(bases...)}
}

// Flatten concatenates the sequences produced by reading each element
// of outer, lazily.
func Flatten[E any](outer Seq[Seq[E]]) Seq[E] {
	bridge := adaptor.NewMap[Seq[E], seq.Sequence[E]](outer.inner, func(s Seq[E]) seq.Sequence[E] {
		return s.inner
	})
	return Seq[E]{inner: adaptor.NewFlatten[E](bridge)}
}

// FlattenWith is Flatten with sep inserted between consecutive inner
// sequences.
func FlattenWith[E any](outer Seq[Seq[E]], sep E) Seq[E] {
	bridge := adaptor.NewMap[Seq[E], seq.Sequence[E]](outer.inner, func(s Seq[E]) seq.Sequence[E] {
		return s.inner
	})
	return Seq[E]{inner: adaptor.NewFlattenWith[E](bridge, sep)}
}

// Fold reduces s to a single R by repeated application of f.
func Fold[E, R any](s Seq[E], init R, f func(acc R, v E) R) R {
	return op.Fold[E, R](s.inner, init, f)
}

// ForEachZipped walks a and b in lockstep eagerly.
func ForEachZipped[A, B any](a Seq[A], b Seq[B], f func(A, B)) {
	op.ForEachZipped[A, B](a.inner, b.inner, f)
}

// CollectZipped drains a and b, in lockstep, into a slice of pairs.
func CollectZipped[A, B any](a Seq[A], b Seq[B]) []adaptor.Pair[A, B] {
	return op.CollectZipped[A, B](a.inner, b.inner)
}

// CollectMap drains a sequence of key/value pairs into a Go map.
func CollectMap[K comparable, V any](s Seq[adaptor.Pair[K, V]]) map[K]V {
	return op.CollectMap[K, V](s.inner)
}

// --- comparable-constrained operations (package-level functions) ---

// Equal reports whether a and b yield the same elements in the same
// order.
func Equal[E comparable](a, b Seq[E]) bool { return op.Equal[E](a.inner, b.inner) }

// Contains reports whether any element of s equals v.
func Contains[E comparable](s Seq[E], v E) bool { return op.Contains[E](s.inner, v) }

// StartsWith reports whether s begins with every element of prefix in
// order.
func StartsWith[E comparable](s, prefix Seq[E]) bool { return op.StartsWith[E](s.inner, prefix.inner) }

// EndsWith reports whether s ends with every element of suffix in
// order. Requires both s and suffix to be Boundary and Decrementer.
func EndsWith[E comparable](s, suffix Seq[E]) bool { return op.EndsWith[E](s.inner, suffix.inner) }

// Search finds the first occurrence of pattern within s, returning its
// bounds, or seq.None if pattern does not occur.
func Search[E comparable](s, pattern Seq[E]) seq.Optional[op.Bounds] {
	return op.Search[E](s.inner, pattern.inner)
}

// Compare performs a three-way lexicographical comparison of a and b
// under less.
func Compare[E any](a, b Seq[E], less func(x, y E) bool) int {
	return op.Compare[E](a.inner, b.inner, less)
}
