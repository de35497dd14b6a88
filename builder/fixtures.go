package builder

import (
	"github.com/katalvlaran/flux/seq"
	"github.com/katalvlaran/flux/source"
)

// RandomInts builds a source.Contiguous fixture of n pseudo-random
// integers in [lo, hi), reshaped from graph-generator-style fixture
// RandomRegular graph generators into a flat numeric fixture a flux
// pipeline can consume directly.
func RandomInts(n, lo, hi int, opts ...BuilderOption) *source.Contiguous[int] {
	if n < 0 {
		seq.Fail(ErrBadSize)
	}
	if hi <= lo {
		seq.Fail(ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	data := make([]int, n)
	span := hi - lo
	for i := range data {
		data[i] = lo + cfg.rng.Intn(span)
	}
	return source.NewContiguous(data)
}

// Edge is a lightweight (From, To) fixture pair, standing in for the
// weighted-edge triples now that there is no graph type to
// attach them to.
type Edge struct {
	From, To int
}

// RandomEdges builds n random (From, To) pairs over vertex indices
// [0, numVertices), the fixture shape random-graph
// RandomGraphAdjacency-style constructors produced before any core.Graph
// existed to hold them — useful for exercising adaptor.Zip/Mask/Union
// style pipelines over paired data in tests.
func RandomEdges(n, numVertices int, opts ...BuilderOption) *source.Contiguous[Edge] {
	if n < 0 || numVertices <= 0 {
		seq.Fail(ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	data := make([]Edge, n)
	for i := range data {
		data[i] = Edge{From: cfg.rng.Intn(numVertices), To: cfg.rng.Intn(numVertices)}
	}
	return source.NewContiguous(data)
}
