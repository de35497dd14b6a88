package op

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/flux/seq"
)

// Print writes s's elements to w separated by sep, the eager rendering
// of a write_to/print family, grounded on a
// own preference for fmt.Fprintf-based diagnostic output (matrix's
// String methods) over building a big string first.
func Print[E any](w io.Writer, s seq.Sequence[E], sep string) error {
	first := true
	var writeErr error
	seq.ForEachWhile(s, func(v E) bool {
		if !first {
			if _, writeErr = io.WriteString(w, sep); writeErr != nil {
				return false
			}
		}
		first = false
		if _, writeErr = fmt.Fprint(w, v); writeErr != nil {
			return false
		}
		return true
	})
	return writeErr
}

// Join is Print rendered into a string, the common case when the
// caller does not already have an io.Writer at hand.
func Join[E any](s seq.Sequence[E], sep string) string {
	var b strings.Builder
	_ = Print(&b, s, sep)
	return b.String()
}
