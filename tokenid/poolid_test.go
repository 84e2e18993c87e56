package tokenid

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	// USDC/WETH 0.3% on mainnet, tick spacing 60.
	testPoolAddr = common.HexToAddress("0x8ad599c3A0ff1De082011EFDDc58f1908eb6e6D8")
	// Hash of the native/USDC 0.05% pool key, tick spacing 10.
	testPoolKeyHash = common.HexToHash("0x21c67e77068de97969ba93d4aab21826d33ca12bb9f565d8496e8fda8a82ca27")
)

func TestV3PoolID(t *testing.T) {
	require := require.New(t)

	got := V3PoolID(testPoolAddr, 60)
	require.Equal(uint64(0x003c04908eb6e6d8), got)

	ref := DecodePoolID(got)
	require.Equal(uint64(0x908eb6e6d8), ref.Fragment)
	require.Equal(uint8(DefaultVegoid), ref.Vegoid)
	require.Equal(int32(60), ref.TickSpacing)
	require.Equal(got, ref.Uint64())
	require.Equal("003c04908eb6e6d8", ref.Hex())
}

func TestV3PoolIDWithVegoid(t *testing.T) {
	require := require.New(t)

	got := V3PoolIDWithVegoid(testPoolAddr, 60, 7)
	require.Equal(uint64(0x003c07908eb6e6d8), got)
	require.Equal(uint8(7), DecodePoolID(got).Vegoid)
}

func TestV4PoolID(t *testing.T) {
	require := require.New(t)

	got := V4PoolID(testPoolKeyHash, 10)
	require.Equal(uint64(0x000a04da8a82ca27), got)

	ref := DecodePoolID(got)
	require.Equal(uint64(0xda8a82ca27), ref.Fragment)
	require.Equal(int32(10), ref.TickSpacing)
}

func TestPoolIDFromHex(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		tickSpacing int32
		vegoid      uint8
		want        uint64
		wantErr     error
	}{
		{
			name:        "checksummedAddress",
			in:          "0x8ad599c3A0ff1De082011EFDDc58f1908eb6e6D8",
			tickSpacing: 60,
			vegoid:      4,
			want:        0x003c04908eb6e6d8,
		},
		{
			name:        "lowercaseNoPrefix",
			in:          "8ad599c3a0ff1de082011efddc58f1908eb6e6d8",
			tickSpacing: 60,
			vegoid:      4,
			want:        0x003c04908eb6e6d8,
		},
		{
			name:        "poolKeyHash",
			in:          "0x21c67e77068de97969ba93d4aab21826d33ca12bb9f565d8496e8fda8a82ca27",
			tickSpacing: 10,
			vegoid:      4,
			want:        0x000a04da8a82ca27,
		},
		{
			name:        "bareFragment",
			in:          "908eb6e6d8",
			tickSpacing: 1,
			vegoid:      0,
			want:        0x000100908eb6e6d8,
		},
		{
			name:        "customVegoid",
			in:          "0x8ad599c3A0ff1De082011EFDDc58f1908eb6e6D8",
			tickSpacing: 60,
			vegoid:      9,
			want:        0x003c09908eb6e6d8,
		},
		{
			name:        "tooShort",
			in:          "0x8eb6e6d8",
			tickSpacing: 60,
			vegoid:      4,
			wantErr:     ErrInvalidPoolID,
		},
		{
			name:        "empty",
			in:          "",
			tickSpacing: 60,
			vegoid:      4,
			wantErr:     ErrInvalidPoolID,
		},
		{
			name:        "prefixOnly",
			in:          "0x",
			tickSpacing: 60,
			vegoid:      4,
			wantErr:     ErrInvalidPoolID,
		},
		{
			name:        "nonHexTail",
			in:          "0x908eb6e6dg",
			tickSpacing: 60,
			vegoid:      4,
			wantErr:     ErrInvalidPoolID,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			got, err := PoolIDFromHex(test.in, test.tickSpacing, test.vegoid)
			if test.wantErr != nil {
				require.ErrorIs(err, test.wantErr)
				return
			}
			require.NoError(err)
			require.Equal(test.want, got)
		})
	}
}

func TestPoolReferenceRoundTrip(t *testing.T) {
	require := require.New(t)

	refs := []PoolReference{
		{Fragment: 0, Vegoid: 0, TickSpacing: 0},
		{Fragment: 0xffffffffff, Vegoid: 0xff, TickSpacing: 32767},
		{Fragment: 0x908eb6e6d8, Vegoid: 4, TickSpacing: 60},
		{Fragment: 0xda8a82ca27, Vegoid: 4, TickSpacing: 10},
	}
	for _, ref := range refs {
		require.Equal(ref, DecodePoolID(ref.Uint64()))
	}
}
