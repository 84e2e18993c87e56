package pool

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/alanyoungcy/panoptic-go/tokenid"
)

// Key identifies a V4 pool. V4 pools have no deployed address of their own;
// the protocol keys them by the hash of this five-field tuple. Currencies
// are sorted ascending, with the zero address standing for the native token.
type Key struct {
	Currency0   common.Address `json:"currency0"`
	Currency1   common.Address `json:"currency1"`
	Fee         uint32         `json:"fee"`
	TickSpacing int32          `json:"tickSpacing"`
	Hooks       common.Address `json:"hooks"`
}

// ID returns keccak256 over the ABI encoding of the key: five 32-byte words
// in field order, addresses left-padded, integers big-endian with the signed
// tick spacing sign-extended.
func (k Key) ID() common.Hash {
	return common.BytesToHash(ethcrypto.Keccak256(
		concatBytes(
			common.LeftPadBytes(k.Currency0.Bytes(), 32),
			common.LeftPadBytes(k.Currency1.Bytes(), 32),
			uint32To32Bytes(k.Fee),
			int32To32Bytes(k.TickSpacing),
			common.LeftPadBytes(k.Hooks.Bytes(), 32),
		),
	))
}

// Reference returns the keyed pool's 64-bit identifier reference with the
// default vegoid.
func (k Key) Reference() uint64 {
	return tokenid.V4PoolID(k.ID(), k.TickSpacing)
}

// ReferenceWithVegoid returns the keyed pool's 64-bit identifier reference
// with an explicit vegoid.
func (k Key) ReferenceWithVegoid(vegoid uint8) uint64 {
	return tokenid.V4PoolIDWithVegoid(k.ID(), k.TickSpacing, vegoid)
}

// uint32To32Bytes returns the 32-byte big-endian representation of n.
func uint32To32Bytes(n uint32) []byte {
	w := make([]byte, 32)
	binary.BigEndian.PutUint32(w[28:], n)
	return w
}

// int32To32Bytes returns the 32-byte two's-complement big-endian
// representation of n.
func int32To32Bytes(n int32) []byte {
	w := make([]byte, 32)
	binary.BigEndian.PutUint32(w[28:], uint32(n))
	if n < 0 {
		for i := 0; i < 28; i++ {
			w[i] = 0xff
		}
	}
	return w
}

// concatBytes concatenates multiple byte slices into one.
func concatBytes(slices ...[]byte) []byte {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	buf := make([]byte, 0, total)
	for _, s := range slices {
		buf = append(buf, s...)
	}
	return buf
}
