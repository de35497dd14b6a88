// Package flux is a lazy, composable sequence-pipeline library built on
// a cursor protocol rather than Go's push-style range-over-func
// iterators.
//
// 🚀 What is flux?
//
//	A generics-based library that brings together:
//
//	  • Sources: slices, integer ranges, infinite generators, streams
//	  • Adaptors: map, filter, take, zip, chunk, and 20+ more lazy views
//	  • Algorithms: fold, sort, compare, collect — eager terminal operations
//
// ✨ Why choose flux?
//
//   - Composable  — chain Seq[E] operations without materialising
//     intermediate slices
//   - Capability-aware — a sequence advertises what it can do
//     (bidirectional, random-access, sized, contiguous) through ordinary
//     Go interfaces, and algorithms pick the fastest path available
//   - Pure Go    — no cgo, generics all the way down
//
// Under the hood, everything is organized under four subpackages:
//
//	seq/      — the cursor protocol itself: Sequence[E], capability
//	            interfaces, error policy, checked arithmetic
//	source/   — sequences with no upstream: slices, ranges, generators
//	adaptor/  — lazy sequence-to-sequence views: map, filter, take, zip...
//	op/       — eager terminal algorithms: fold, sort, collect, compare...
//
// The root package wraps all four into one fluent Seq[E] type; operations
// that change the element type or need a constraint (Map, Sum, ...) are
// package-level functions taking a Seq[E]:
//
//	evens := flux.FromSlice([]int{1, 2, 3, 4, 5}).
//		Filter(func(n int) bool { return n%2 == 0 })
//	total := flux.Sum(flux.Map(evens, func(n int) int { return n * n }))
//
// Dive into DESIGN.md for the grounding behind every package's choices.
package flux
