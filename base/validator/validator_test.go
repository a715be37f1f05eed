package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	require.True(t, IsValidAddress("0xd1e715b2d9b573daa21e07cbdfb21bbc1171fed5"))
	// checksummed form, as emitted by Address.Hex()
	require.True(t, IsValidAddress("0xd1E715b2d9b573DAA21e07CbDfB21BBc1171fED5"))
	require.True(t, IsValidAddress("0xD1E715B2D9B573DAA21E07CBDFB21BBC1171FED5"))
	require.False(t, IsValidAddress("0x123"))
	require.False(t, IsValidAddress("not an address"))
}

func TestIsBigInt(t *testing.T) {
	require.True(t, IsBigInt("0"))
	require.True(t, IsBigInt("123456789012345678901234567890"))
	require.True(t, IsBigInt("-5"))
	require.False(t, IsBigInt("1.5"))
	require.False(t, IsBigInt("0xff"))
	require.False(t, IsBigInt(""))
}
