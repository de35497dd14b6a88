package builder

import "errors"

// ErrBadSize indicates an invalid fixture size or range was requested
// (n < 0, hi <= lo, or numVertices <= 0).
var ErrBadSize = errors.New("builder: invalid size")
