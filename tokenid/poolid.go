package tokenid

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// The low 64 bits of an identifier reference the pool: a 40-bit fragment of
// the pool's address (or pool-key hash), an 8-bit vegoid, and the pool's
// 16-bit tick spacing.
const (
	// DefaultVegoid is the vegoid written by the plain pool-id constructors.
	DefaultVegoid = 4

	fragmentBytes    = 5
	fragmentMask     = 1<<(8*fragmentBytes) - 1
	vegoidShift      = 8 * fragmentBytes
	tickSpacingShift = 48
)

// poolFragment packs the trailing five bytes of b in reversed byte order,
// byte i of the reversed tail landing at bits 8*i through 8*i+7.
func poolFragment(b []byte) uint64 {
	tail := b[len(b)-fragmentBytes:]
	var frag uint64
	for i := 0; i < fragmentBytes; i++ {
		frag |= uint64(tail[fragmentBytes-1-i]) << (8 * uint(i))
	}
	return frag
}

func packPoolID(fragment uint64, vegoid uint8, tickSpacing int32) uint64 {
	id := fragment & fragmentMask
	id |= uint64(vegoid) << vegoidShift
	id |= uint64(uint16(tickSpacing)) << tickSpacingShift
	return id
}

// V3PoolID derives the 64-bit pool reference for a V3 pool address with the
// default vegoid.
func V3PoolID(addr common.Address, tickSpacing int32) uint64 {
	return V3PoolIDWithVegoid(addr, tickSpacing, DefaultVegoid)
}

// V3PoolIDWithVegoid derives the 64-bit pool reference for a V3 pool address.
func V3PoolIDWithVegoid(addr common.Address, tickSpacing int32, vegoid uint8) uint64 {
	return packPoolID(poolFragment(addr[:]), vegoid, tickSpacing)
}

// V4PoolID derives the 64-bit pool reference for a V4 pool-key hash with the
// default vegoid.
func V4PoolID(poolID common.Hash, tickSpacing int32) uint64 {
	return V4PoolIDWithVegoid(poolID, tickSpacing, DefaultVegoid)
}

// V4PoolIDWithVegoid derives the 64-bit pool reference for a V4 pool-key hash.
func V4PoolIDWithVegoid(poolID common.Hash, tickSpacing int32, vegoid uint8) uint64 {
	return packPoolID(poolFragment(poolID[:]), vegoid, tickSpacing)
}

// PoolIDFromHex derives the 64-bit pool reference from a hex-encoded pool
// address or pool-key hash. The string may carry a 0x prefix and mixed case;
// only its trailing ten hex characters are read. Returns ErrInvalidPoolID
// when fewer than ten hex characters remain or the tail is not valid hex.
func PoolIDFromHex(s string, tickSpacing int32, vegoid uint8) (uint64, error) {
	h := strings.TrimPrefix(strings.ToLower(s), "0x")
	if len(h) < 2*fragmentBytes {
		return 0, fmt.Errorf("tokenid: pool hex %q shorter than %d characters: %w", s, 2*fragmentBytes, ErrInvalidPoolID)
	}
	tail, err := hex.DecodeString(h[len(h)-2*fragmentBytes:])
	if err != nil {
		return 0, fmt.Errorf("tokenid: pool hex %q: %w", s, ErrInvalidPoolID)
	}
	return packPoolID(poolFragment(tail), vegoid, tickSpacing), nil
}

// PoolReference is the decoded form of the low 64 bits of an identifier.
type PoolReference struct {
	// Fragment holds the trailing five bytes of the pool address or
	// pool-key hash, in the reversed byte order the identifier stores.
	Fragment uint64 `json:"fragment"`
	// Vegoid disambiguates successive deployments against the same pool.
	Vegoid uint8 `json:"vegoid"`
	// TickSpacing is the pool's tick spacing.
	TickSpacing int32 `json:"tickSpacing"`
}

// DecodePoolID splits a 64-bit pool reference into its fields.
func DecodePoolID(id uint64) PoolReference {
	return PoolReference{
		Fragment:    id & fragmentMask,
		Vegoid:      uint8(id >> vegoidShift),
		TickSpacing: int32(uint16(id >> tickSpacingShift)),
	}
}

// Uint64 re-encodes the reference into its 64-bit wire form.
func (p PoolReference) Uint64() uint64 {
	return packPoolID(p.Fragment, p.Vegoid, p.TickSpacing)
}

// Hex renders the 64-bit wire form as sixteen zero-padded lowercase hex
// digits.
func (p PoolReference) Hex() string {
	return fmt.Sprintf("%016x", p.Uint64())
}
