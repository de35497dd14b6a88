//go:build !release

package seq

// Debug-build defaults (no "release" build tag): overflow and
// divide-by-zero raise, precondition violations panic directly.
// Matches SPEC_FULL.md §6's "in debug builds, overflow and
// divide-by-zero raise".
var (
	ErrorPolicy   = PolicyPanic
	OverflowPolicy = OverflowRaise
	DivZeroPolicy  = DivZeroRaise
)
