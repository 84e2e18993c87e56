package tokenid

import "github.com/holiman/uint256"

// Strike bounds. A strike is a signed 24-bit tick stored in its unsigned
// two's-complement form inside the 24-bit field.
const (
	MinStrike  = -1 << 23  // -8388608
	MaxStrike  = 1<<23 - 1 // 8388607
	strikeSpan = 1 << 24
)

// mask64 returns a mask covering the low width bits of a 64-bit word.
func mask64(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}

// extract returns (u >> offset) & mask(width). No bounds checking; callers
// validate field domains before packing.
func extract(u *uint256.Int, offset, width uint) uint64 {
	var v uint256.Int
	v.Rsh(u, offset)
	return v.Uint64() & mask64(width)
}

// inject ORs (value & mask(width)) << offset into u in place. Fields are
// additive into zero-initialized slots; inject never clears bits.
func inject(u *uint256.Int, value uint64, offset, width uint) {
	var v uint256.Int
	v.SetUint64(value & mask64(width))
	v.Lsh(&v, offset)
	u.Or(u, &v)
}

// EncodeStrike maps a signed strike tick onto the unsigned bit pattern stored
// in the 24-bit strike field.
func EncodeStrike(strike int32) uint32 {
	if strike < 0 {
		return uint32(strike + strikeSpan)
	}
	return uint32(strike)
}

// DecodeStrike recovers the signed strike tick from its unsigned 24-bit
// field value. DecodeStrike(EncodeStrike(s)) == s for every s in
// [MinStrike, MaxStrike].
func DecodeStrike(encoded uint32) int32 {
	if encoded > MaxStrike {
		return int32(encoded) - strikeSpan
	}
	return int32(encoded)
}
