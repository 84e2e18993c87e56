// Package pool models the concentrated-liquidity pools that position
// identifiers reference: V3 pools deployed at their own address and V4 pools
// keyed by the hash of their pool key. Either form reduces to the 64-bit
// pool reference the tokenid package stores.
package pool

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/alanyoungcy/panoptic-go/tokenid"
)

// Token describes one side of a pool pair.
type Token struct {
	Address  common.Address `json:"address" toml:"address"`
	Symbol   string         `json:"symbol" toml:"symbol"`
	Decimals uint8          `json:"decimals" toml:"decimals"`
}

// Pool describes a V3 pool deployed at a fixed address.
type Pool struct {
	Address     common.Address `json:"address"`
	Token0      Token          `json:"token0"`
	Token1      Token          `json:"token1"`
	Fee         uint32         `json:"fee"`
	TickSpacing int32          `json:"tickSpacing"`
}

// Reference returns the pool's 64-bit identifier reference with the default
// vegoid.
func (p Pool) Reference() uint64 {
	return tokenid.V3PoolID(p.Address, p.TickSpacing)
}

// ReferenceWithVegoid returns the pool's 64-bit identifier reference with an
// explicit vegoid.
func (p Pool) ReferenceWithVegoid(vegoid uint8) uint64 {
	return tokenid.V3PoolIDWithVegoid(p.Address, p.TickSpacing, vegoid)
}

// TickSpacingForFee maps a V3 fee tier, in hundredths of a bip, to its tick
// spacing. ok is false for fees outside the canonical tiers.
func TickSpacingForFee(fee uint32) (int32, bool) {
	switch fee {
	case 100:
		return 1, true
	case 500:
		return 10, true
	case 3000:
		return 60, true
	case 10000:
		return 200, true
	default:
		return 0, false
	}
}
