package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
)

func TestOptionalSome(t *testing.T) {
	o := seq.Some(42)
	v, ok := o.Get()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.True(t, o.IsPresent())
	require.Equal(t, 42, o.MustGet())
	require.Equal(t, 42, o.OrElse(0))
}

func TestOptionalNone(t *testing.T) {
	o := seq.None[int]()
	v, ok := o.Get()
	require.False(t, ok)
	require.Zero(t, v)
	require.False(t, o.IsPresent())
	require.Equal(t, 7, o.OrElse(7))
}

func TestOptionalMustGetOnNonePanics(t *testing.T) {
	require.Panics(t, func() {
		seq.None[int]().MustGet()
	})
}
