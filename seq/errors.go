package seq

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for the two failure classes in SPEC_FULL.md §11.
//
// Precondition violations never unwind as an ordinary Go error return —
// they route through Fail, whose behavior is governed by ErrorPolicy
// (config.go). Protocol-expression "failures" (end of sequence, an empty
// Optional) are not errors at all and are never wrapped in a
// RuntimeError; they are ordinary zero values and boolean flags.
var (
	ErrOutOfBounds  = errors.New("seq: cursor out of bounds")
	ErrIncAtEnd     = errors.New("seq: Inc called at end of sequence")
	ErrDecAtFirst   = errors.New("seq: Dec called at first position")
	ErrDivideByZero = errors.New("seq: division by zero")
	ErrOverflow     = errors.New("seq: integer overflow")
	ErrEmpty        = errors.New("seq: sequence is empty")
)

// RuntimeError is the "unrecoverable error" value flux panics with under
// PolicyError. It always carries a source location, mirroring the
// original library's file/line diagnostics (SPEC_FULL.md §6).
type RuntimeError struct {
	Err  error
	File string
	Line int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// Fail is the single runtime-error hook every precondition violation in
// flux routes through (SPEC_FULL.md §1, §11). It never returns.
//
//   - PolicyPanic (default): panics with err directly, terminate-style;
//     the caller is not expected to recover.
//   - PolicyError: panics with a *RuntimeError wrapping err, carrying the
//     caller's file/line. A boundary that wants to expose this as an
//     ordinary Go error return defers Recover(&err) (see below).
func Fail(err error) {
	if ErrorPolicy == PolicyError {
		_, file, line, _ := runtime.Caller(1)
		panic(&RuntimeError{Err: err, File: file, Line: line})
	}
	panic(err)
}

// Recover converts a Fail-raised panic, under either ErrorPolicy, into
// an ordinary error return. Call it deferred at a package boundary that
// wants Fail-raised panics translated to a normal (value, error) result:
//
//	func TryFirst(s MySource) (c Cur, err error) {
//	    defer seq.Recover(&err)
//	    return s.First(), nil
//	}
//
// Under PolicyError, Fail panics with a *RuntimeError; Recover unwraps
// it as-is. Under PolicyPanic, Fail panics with the sentinel error
// directly; Recover assigns it to *errp unmodified, since there is no
// caller frame left to attribute a RuntimeError's file/line to once
// the panic has already unwound past Fail. Any panic value that is
// neither is assumed to not have come from Fail and is re-panicked.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *RuntimeError:
		*errp = v
	case error:
		*errp = v
	default:
		panic(r)
	}
}
