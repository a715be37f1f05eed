package ptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	require.Equal(t, "a", *String("a"))
	require.Equal(t, int32(7), *Int32(7))
	require.Equal(t, int64(-1), *Int64(-1))
	require.Equal(t, true, *Bool(true))
}

func TestPtrDistinct(t *testing.T) {
	a := Int64(5)
	b := Int64(5)
	require.NotSame(t, a, b)
}
