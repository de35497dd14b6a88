package seq_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flux/seq"
)

func TestFailUnderPolicyPanic(t *testing.T) {
	defer func() { seq.ErrorPolicy = seq.PolicyPanic }()
	seq.ErrorPolicy = seq.PolicyPanic

	defer func() {
		r := recover()
		require.Equal(t, seq.ErrOutOfBounds, r)
	}()
	seq.Fail(seq.ErrOutOfBounds)
}

func TestRecoverUnderPolicyError(t *testing.T) {
	defer func() { seq.ErrorPolicy = seq.PolicyPanic }()
	seq.ErrorPolicy = seq.PolicyError

	var err error
	func() {
		defer seq.Recover(&err)
		seq.Fail(seq.ErrEmpty)
	}()

	require.Error(t, err)
	require.True(t, errors.Is(err, seq.ErrEmpty))

	var re *seq.RuntimeError
	require.True(t, errors.As(err, &re))
	require.NotEmpty(t, re.File)
}

func TestRecoverRepanicsForeignPanic(t *testing.T) {
	defer func() { seq.ErrorPolicy = seq.PolicyPanic }()
	seq.ErrorPolicy = seq.PolicyError

	require.Panics(t, func() {
		var err error
		defer seq.Recover(&err)
		panic("not a seq.Fail panic")
	})
}
