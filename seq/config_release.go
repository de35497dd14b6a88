//go:build release

package seq

// Release-build defaults (build with -tags release): overflow wraps and
// divide-by-zero is undefined, matching SPEC_FULL.md §6's "in release,
// overflow wraps and divide-by-zero is undefined". Go itself always
// traps integer division by zero at the machine level regardless of this
// setting (see checked.go); DivZeroIgnore here only skips flux's own
// pre-check, it cannot make the hardware trap go away.
var (
	ErrorPolicy    = PolicyPanic
	OverflowPolicy = OverflowWrap
	DivZeroPolicy  = DivZeroIgnore
)
