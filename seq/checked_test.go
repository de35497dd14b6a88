package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
)

func TestAddSubMulInt(t *testing.T) {
	require.Equal(t, 7, seq.AddInt(3, 4))
	require.Equal(t, -1, seq.SubInt(3, 4))
	require.Equal(t, 12, seq.MulInt(3, 4))
	require.Equal(t, 0, seq.MulInt(0, 9))
}

func TestAddIntOverflowPanics(t *testing.T) {
	require.Panics(t, func() {
		seq.AddInt(seq.MaxInt, 1)
	})
}

func TestDistanceInt(t *testing.T) {
	require.Equal(t, 5, seq.DistanceInt(2, 7))
	require.Equal(t, -5, seq.DistanceInt(7, 2))
}

func TestDivModInt(t *testing.T) {
	require.Equal(t, 3, seq.DivInt(10, 3))
	require.Equal(t, 1, seq.ModInt(10, 3))
}

func TestDivIntByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		seq.DivInt(1, 0)
	})
}

func TestClampNonNegative(t *testing.T) {
	require.Equal(t, 0, seq.ClampNonNegative(-3))
	require.Equal(t, 4, seq.ClampNonNegative(4))
}

func TestCeilDiv(t *testing.T) {
	require.Equal(t, 4, seq.CeilDiv(10, 3))
	require.Equal(t, 0, seq.CeilDiv(0, 3))
	require.Panics(t, func() { seq.CeilDiv(1, 0) })
}
