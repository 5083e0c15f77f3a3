package uuid25

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint128_Base36RoundTrip(t *testing.T) {
	values := []uint128{
		{0, 0},
		{0, 1},
		{0, 35},
		{0, 36},
		{0, 0xFFFFFFFFFFFFFFFF}, // 2^64 - 1
		{1, 0},                  // 2^64
		{1, 1},
		{0x123456789ABCDEF0, 0x0FEDCBA987654321},
		{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, // 2^128 - 1
	}

	for _, n := range values {
		s := n.encodeBase36()
		require.Len(t, s, 25)
		assert.Equal(t, n, decodeBase36(s), "value %q", s)
	}
}

func TestUint128_Boundaries(t *testing.T) {
	assert.Equal(t, "0000000000000000000000000", uint128{}.encodeBase36())
	assert.Equal(t, "f5lxx1zz5pnorynqglhzmsp33",
		uint128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}.encodeBase36())

	// The high/low split is invisible in the encoded forms.
	assert.Equal(t, "0000000000000000ffffffffffffffff", uint128{0, 0xFFFFFFFFFFFFFFFF}.encodeHex())
	assert.Equal(t, "00000000000000010000000000000000", uint128{1, 0}.encodeHex())
}

func TestUint128_BytesRoundTrip(t *testing.T) {
	for _, tt := range preparedCases {
		raw, err := hex.DecodeString(tt.hex)
		require.NoError(t, err)

		n := uint128FromBytes(raw)
		b := n.bytes()
		assert.Equal(t, raw, b[:])
		assert.Equal(t, tt.uuid25, n.encodeBase36())
		assert.Equal(t, tt.hex, n.encodeHex())
		assert.Equal(t, tt.hyphenated, n.encodeHyphenated())
	}
}
