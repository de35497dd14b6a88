// Package source provides the primitive inhabitants of the cursor
// protocol (SPEC_FULL.md §5): contiguous buffers, integer ranges, single
// values, the empty sequence, repeat, unfold, a pull-based generator, and
// the stream and foreign-range adaptors that lift external data into a
// flux pipeline.
//
// Every type here is constructed by value and returned by pointer —
// *Contiguous[T], *Iota, and so on — mirroring the pointer-receiver
// convention used throughout this module's own core types, and the one
// that lets memoizing sources (Repeat's shared value, Unfold's and
// Generator's live state) carry mutable fields without the caller
// accidentally copying that state along with the value.
package source
