package seq

// ErrorPolicyKind selects what Fail does when a precondition violation
// is raised (SPEC_FULL.md §6 "error policy").
type ErrorPolicyKind int

const (
	// PolicyPanic ("terminate" in the original): Fail panics with the
	// sentinel error directly. The caller is never expected to recover.
	PolicyPanic ErrorPolicyKind = iota
	// PolicyError ("unwind" in the original): Fail panics with a
	// *RuntimeError that Recover can translate back into a normal error.
	PolicyError
)

// OverflowPolicyKind selects checked.go's behavior on integer overflow.
type OverflowPolicyKind int

const (
	OverflowRaise OverflowPolicyKind = iota // Fail(ErrOverflow)
	OverflowWrap                            // wrap modulo 2^n, i.e. plain Go wraparound
	OverflowIgnore                          // undefined on overflow; fastest path
)

// DivZeroPolicyKind selects checked.go's behavior on division/modulo by zero.
type DivZeroPolicyKind int

const (
	DivZeroRaise  DivZeroPolicyKind = iota // Fail(ErrDivideByZero)
	DivZeroIgnore                          // undefined (Go itself panics on integer /0; see checked.go)
)

// BoundsPolicyKind names whether ReadAt/Inc-family checks run. No code in
// this module reads Bounds: those checks always run.
type BoundsPolicyKind int

const (
	BoundsChecked BoundsPolicyKind = iota
	BoundsUnchecked
)

// Package-level policy switches (SPEC_FULL.md §6's compile-time
// configuration table, rendered as process-wide vars since Go has no
// true compile-time specialization outside build tags). ErrorPolicy,
// OverflowPolicy, and DivZeroPolicy default per config_debug.go /
// config_release.go depending on the "release" build tag; Bounds
// defaults to BoundsChecked in both, since the per-call
// seq.ReadAtUnchecked is the documented opt-out rather than a global
// flag flip (SPEC_FULL.md §9 "Bounds/overflow checking hooks").
var Bounds = BoundsChecked
