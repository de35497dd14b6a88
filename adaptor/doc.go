// Package adaptor provides the derived sequences of SPEC_FULL.md §6: each
// one wraps a base sequence (or several) and re-exports the cursor
// protocol, usually at a weaker capability tier than its base.
//
// Every adaptor follows the "passthrough trait" pattern described in
// original_source/include/flux/op/take_while.hpp: a passthrough[E] struct
// forwards First/IsLast/ReadAt/Inc unchanged by default, and the adaptor
// type embeds it, overriding only the methods its contract actually
// changes.
//
// Capability extensions (Decrementer, Jumper, Boundary, Sizer,
// DataPointer) are a special case: single-base adaptors that could
// plausibly preserve them (map, drop, ref, ...) implement
// Dec/IncN/Distance/Last/Size unconditionally and delegate to the base
// via a type assertion at call time, routing through Fail when the base
// turns out not to implement the extension after all. This is a
// deliberate, documented consequence of capability tiers being a
// static, per-type promise in the original design: Go cannot make a
// generic adaptor type conditionally implement an interface based on
// its base's *runtime* value, only on a type parameter — and flux's
// adaptors are parameterized over the element type, not the concrete
// base type, precisely so one adaptor type can wrap any base of that
// element type (SPEC_FULL.md §4's Cur-erasure). Adaptors whose contract
// never supports an extension regardless of the base (filter is never
// random-access, reverse is never infinite) simply omit that method —
// Go's way of "deleting" an operation, as the original's
// `void dec() = delete;` does.
package adaptor
