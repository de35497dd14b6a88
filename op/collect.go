package op

import (
	"github.com/katalvlaran/flux/adaptor"
	"github.com/katalvlaran/flux/seq"
)

// Collect drains s into a freshly allocated slice (SPEC_FULL.md §7's
// to<vector>/collect rendering). When s is Sizer, the slice is
// preallocated to the exact size to avoid growth reallocation.
func Collect[E any](s seq.Sequence[E]) []E {
	var out []E
	if sz, ok := s.(seq.Sizer); ok {
		out = make([]E, 0, sz.Size())
	}
	c := s.First()
	for !s.IsLast(c) {
		out = append(out, s.ReadAt(c))
		s.Inc(&c)
	}
	return out
}

// CollectMap drains a Sequence of adaptor.Pair[K,V] into a Go map,
// later keys overwriting earlier ones on collision (SPEC_FULL.md §7's
// to<map> rendering).
func CollectMap[K comparable, V any](s seq.Sequence[adaptor.Pair[K, V]]) map[K]V {
	m := make(map[K]V)
	c := s.First()
	for !s.IsLast(c) {
		p := s.ReadAt(c)
		m[p.First] = p.Second
		s.Inc(&c)
	}
	return m
}
