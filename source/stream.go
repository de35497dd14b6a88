package source

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/flux/seq"
)

// StreamValues reads successive T values from r using fmt.Fscan, one at
// a time, until extraction fails — the "stream-value source" in
// SPEC_FULL.md §5, generalized from the original's ">>" extraction
// operator to Go's nearest stdlib equivalent. Single-pass; IsLast
// becomes true once a read fails (EOF or a malformed token).
type StreamValues[T any] struct {
	r       io.Reader
	cur     T
	done    bool
	started bool
}

func NewStreamValues[T any](r io.Reader) *StreamValues[T] {
	return &StreamValues[T]{r: r}
}

func (s *StreamValues[T]) First() seq.Cur {
	if !s.started {
		s.started = true
		s.advance()
	}
	return 0
}

func (s *StreamValues[T]) advance() {
	var v T
	if _, err := fmt.Fscan(s.r, &v); err != nil {
		s.done = true
		return
	}
	s.cur = v
}

func (s *StreamValues[T]) IsLast(seq.Cur) bool { return s.done }

func (s *StreamValues[T]) ReadAt(seq.Cur) T {
	if s.done {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return s.cur
}

func (s *StreamValues[T]) Inc(*seq.Cur) {
	if s.done {
		seq.Fail(seq.ErrIncAtEnd)
	}
	s.advance()
}

// StreamBytes reads characters directly from a buffered reader
// (SPEC_FULL.md §5's "stream-byte source"), avoiding fmt's per-value
// overhead when the element type is already byte.
type StreamBytes struct {
	r    *bufio.Reader
	cur  byte
	done bool
	init bool
}

func NewStreamBytes(r io.Reader) *StreamBytes {
	return &StreamBytes{r: bufio.NewReader(r)}
}

func (s *StreamBytes) First() seq.Cur {
	if !s.init {
		s.init = true
		s.advance()
	}
	return 0
}

func (s *StreamBytes) advance() {
	b, err := s.r.ReadByte()
	if err != nil {
		s.done = true
		return
	}
	s.cur = b
}

func (s *StreamBytes) IsLast(seq.Cur) bool { return s.done }

func (s *StreamBytes) ReadAt(seq.Cur) byte {
	if s.done {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return s.cur
}

func (s *StreamBytes) Inc(*seq.Cur) {
	if s.done {
		seq.Fail(seq.ErrIncAtEnd)
	}
	s.advance()
}
