package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	require := require.New(t)

	ok := Ok("Hi!")
	v, err := ok.Get()
	require.NoError(err)
	require.Equal("Hi!", v)
	require.True(ok.IsOk())
	require.Equal("Ok(Hi!)", ok.String())

	errBoom := errors.New("boom")
	failed := Err[int](errBoom)
	n, err := failed.Get()
	require.ErrorIs(err, errBoom)
	require.Zero(n)
	require.False(failed.IsOk())
	require.Equal(7, failed.ValueOr(7))
	require.Equal("Err(boom)", failed.String())

	require.True(Of(3, nil).IsOk())
	require.Equal(3, Of(3, nil).ValueOr(0))
	require.ErrorIs(Of(3, errBoom).Err(), errBoom)
	require.True(Err[int](nil).IsOk())
}
