// Package seq defines the cursor protocol that every flux source and
// adaptor implements: a closed, small vocabulary of primitive operations
// (First, IsLast, ReadAt, Inc) plus a handful of optional extensions
// (Dec, IncN/Distance, Last, Size, Data, ForEachWhile) that a sequence may
// additionally support to climb the capability lattice described in
// SPEC_FULL.md §3.1 — sequence < multipass < bidirectional < random-access
// < contiguous, with bounded/sized/infinite/read-only as orthogonal flags.
//
// # Cursor representation
//
// Go's generics have no counterpart to C++ partial template specialization:
// a function cannot infer a type parameter that appears only inside another
// parameter's constraint. The cursor protocol's original design hangs an
// associated cursor type Cur(S) off of each source type S; carrying that as
// a free type parameter through every adaptor and algorithm in this module
// would force nearly every call site in the library to instantiate type
// arguments explicitly, with no benefit to callers (a flux pipeline never
// inspects a cursor's static type — it only ever compares, advances, or
// dereferences it through the protocol).
//
// flux therefore fixes the cursor representation library-wide to Cur, an
// alias for any. Every concrete source or adaptor still has its own real
// cursor type internally (an int, a struct of sub-cursors, a tagged union) —
// Cur only erases that type at the Sequence interface boundary, the same
// trade a great deal of reflection- and container-adjacent Go code makes
// (container/list.Element, sort.Interface's index-based protocol). The
// element type E remains a genuine, uneraised type parameter throughout,
// since it is what callers actually read, map, and fold.
//
// # Capability tiers
//
// A type's tier is determined by which of the optional interfaces below it
// implements, not by a marker it must declare:
//
//	sequence        Sequence[E]                      (required)
//	multipass       Sequence[E] with a comparable,
//	                copyable concrete cursor           (by convention)
//	bidirectional   + Decrementer
//	random-access   + Jumper
//	contiguous      + DataPointer[V]
//
// Bounded (+ Boundary), sized (+ Sizer), and infinite (+ Infinite) are
// orthogonal flags queried the same way. Multipass has no extra method:
// it is a promise about the concrete cursor type (it must be safely
// copyable and comparable with ==), which Go cannot check structurally
// through the any-erased Cur, so it is documented per source/adaptor
// rather than enforced by the type system.
package seq
