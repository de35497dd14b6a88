package seq

import "math"

// AddInt, SubInt, MulInt, and DistanceInt implement SPEC_FULL.md §4's
// "all arithmetic on cursors/indices uses the checked-integer module":
// they validate the distance type, fixed here to Go's int, against
// OverflowPolicy.

// AddInt returns a+b, applying OverflowPolicy on over/underflow.
func AddInt(a, b int) int {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return overflowed(s)
	}
	return s
}

// SubInt returns a-b, applying OverflowPolicy on over/underflow.
func SubInt(a, b int) int {
	s := a - b
	if (b < 0 && s < a) || (b > 0 && s > a) {
		return overflowed(s)
	}
	return s
}

// MulInt returns a*b, applying OverflowPolicy on over/underflow.
func MulInt(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		return overflowed(p)
	}
	return p
}

// DistanceInt returns to-from, the random-access tier's O(1) distance
// primitive (SPEC_FULL.md §4.1), applying OverflowPolicy.
func DistanceInt(from, to int) int {
	return SubInt(to, from)
}

// DivInt returns a/b, applying DivZeroPolicy when b==0. Go's own integer
// division already traps (a real hardware SIGFPE) on division by zero
// regardless of policy, so DivZeroIgnore only skips flux's own
// pre-check and lets that trap happen, matching "undefined" honestly
// rather than pretending Go can suppress it.
func DivInt(a, b int) int {
	if b == 0 {
		if DivZeroPolicy == DivZeroRaise {
			Fail(ErrDivideByZero)
		}
		return a / b // traps: Go has no way to make this UB silent.
	}
	return a / b
}

// ModInt returns a%b, applying DivZeroPolicy when b==0.
func ModInt(a, b int) int {
	if b == 0 {
		if DivZeroPolicy == DivZeroRaise {
			Fail(ErrDivideByZero)
		}
		return a % b
	}
	return a % b
}

func overflowed(wrapped int) int {
	switch OverflowPolicy {
	case OverflowRaise:
		Fail(ErrOverflow)
		return 0 // unreachable: Fail never returns
	case OverflowWrap:
		return wrapped
	default: // OverflowIgnore
		return wrapped
	}
}

// ClampNonNegative is a small helper used by sized adaptors (take, drop,
// slide, adjacent_map) to keep derived sizes from going negative after
// subtraction, e.g. slide's size = max(0, base_size - n + 1).
func ClampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// CeilDiv computes ceil(a/b) for non-negative a and positive b, used by
// stride's "sized via ceiling-divide" contract.
func CeilDiv(a, b int) int {
	if b <= 0 {
		Fail(ErrDivideByZero)
	}
	return (a + b - 1) / b
}

// MaxInt is math.MaxInt, the largest value AddInt and its siblings can
// return without overflowing.
const MaxInt = math.MaxInt
