package background

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8000")
	require.NoError(t, err)
	require.EqualValues(t, 0xFF, c.R)
	require.EqualValues(t, 0x80, c.G)
	require.EqualValues(t, 0x00, c.B)
	require.EqualValues(t, 0xFF, c.A)

	c, err = ParseColor("0x11223344")
	require.NoError(t, err)
	require.EqualValues(t, 0x11, c.R)
	require.EqualValues(t, 0x44, c.A)

	c, err = ParseColor("000000")
	require.NoError(t, err)
	require.EqualValues(t, 0xFF, c.A)

	_, err = ParseColor("zzzzzz")
	require.Error(t, err)
	_, err = ParseColor("12345")
	require.Error(t, err)
}
