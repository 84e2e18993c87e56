package tokenid

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestStrikeRoundTripExhaustive(t *testing.T) {
	for s := int32(MinStrike); ; s++ {
		e := EncodeStrike(s)
		if e >= strikeSpan {
			t.Fatalf("EncodeStrike(%d) = %#x, outside 24-bit field", s, e)
		}
		if got := DecodeStrike(e); got != s {
			t.Fatalf("DecodeStrike(EncodeStrike(%d)) = %d", s, got)
		}
		if s == MaxStrike {
			break
		}
	}
}

func TestStrikeEncoding(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name    string
		strike  int32
		encoded uint32
	}{
		{name: "zero", strike: 0, encoded: 0},
		{name: "one", strike: 1, encoded: 1},
		{name: "minusOne", strike: -1, encoded: 0xffffff},
		{name: "max", strike: MaxStrike, encoded: 0x7fffff},
		{name: "min", strike: MinStrike, encoded: 0x800000},
		{name: "positiveTick", strike: 100, encoded: 100},
		{name: "negativeTick", strike: -800, encoded: 16776416},
	}

	for _, test := range tests {
		require.Equal(test.encoded, EncodeStrike(test.strike), test.name)
		require.Equal(test.strike, DecodeStrike(test.encoded), test.name)
	}
}

func TestMask64(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(0), mask64(0))
	require.Equal(uint64(1), mask64(1))
	require.Equal(uint64(0x7f), mask64(7))
	require.Equal(uint64(0xffffff), mask64(24))
	require.Equal(uint64(0xffffffffff), mask64(40))
	require.Equal(uint64(1)<<63-1, mask64(63))
	require.Equal(^uint64(0), mask64(64))
	require.Equal(^uint64(0), mask64(100))
}

func TestExtractInject(t *testing.T) {
	require := require.New(t)

	var u uint256.Int
	inject(&u, 0xabc, 100, 12)
	require.Equal(uint64(0xabc), extract(&u, 100, 12))

	// Neighbors of the injected field stay clear.
	require.Equal(uint64(0), extract(&u, 88, 12))
	require.Equal(uint64(0), extract(&u, 112, 12))

	// A second field ORs in without disturbing the first.
	inject(&u, 0x5, 112, 3)
	require.Equal(uint64(0xabc), extract(&u, 100, 12))
	require.Equal(uint64(0x5), extract(&u, 112, 3))
}

func TestInjectMasksValue(t *testing.T) {
	require := require.New(t)

	var u uint256.Int
	inject(&u, 0x1fff, 0, 12)
	require.Equal(uint64(0xfff), extract(&u, 0, 12))
	require.True(uint256.NewInt(0xfff).Eq(&u))
}

func TestExtractAcrossWordBoundary(t *testing.T) {
	require := require.New(t)

	// A field straddling the 64-bit word seam must shift, not wrap.
	var u uint256.Int
	inject(&u, 0xfed, 60, 12)
	require.Equal(uint64(0xfed), extract(&u, 60, 12))
	require.Equal(uint64(0xd), extract(&u, 60, 4))
	require.Equal(uint64(0xfe), extract(&u, 64, 8))
}
