// Package tokenid encodes and decodes 256-bit perpetual-option position
// identifiers. An identifier carries a 64-bit pool reference in its low bits
// and up to four 48-bit option legs above it, and doubles as the ERC-1155
// token id of the position.
package tokenid

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// ID is a 256-bit position identifier. IDs are immutable values, safe to
// copy and to compare with ==. The zero value is the zero identifier, which
// no valid position uses.
type ID struct {
	u uint256.Int
}

// FromUint256 copies a 256-bit value into an identifier.
func FromUint256(u *uint256.Int) ID {
	return ID{u: *u}
}

// FromBig converts a big integer into an identifier. Nil, negative, and
// wider-than-256-bit values are rejected with ErrInvalidID.
func FromBig(b *big.Int) (ID, error) {
	if b == nil {
		return ID{}, fmt.Errorf("tokenid: nil value: %w", ErrInvalidID)
	}
	if b.Sign() < 0 {
		return ID{}, fmt.Errorf("tokenid: negative value %s: %w", b, ErrInvalidID)
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return ID{}, fmt.Errorf("tokenid: value %s exceeds 256 bits: %w", b, ErrInvalidID)
	}
	return ID{u: *u}, nil
}

// Parse reads an identifier from its decimal or 0x-prefixed hexadecimal
// string form.
func Parse(s string) (ID, error) {
	t, base := s, 10
	if len(t) >= 2 && (t[:2] == "0x" || t[:2] == "0X") {
		t, base = t[2:], 16
	}
	b, ok := new(big.Int).SetString(t, base)
	if !ok || b.Sign() < 0 {
		return ID{}, fmt.Errorf("tokenid: parse %q: %w", s, ErrInvalidID)
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return ID{}, fmt.Errorf("tokenid: parse %q: exceeds 256 bits: %w", s, ErrInvalidID)
	}
	return ID{u: *u}, nil
}

// Uint256 returns a copy of the identifier's 256-bit value.
func (id ID) Uint256() *uint256.Int {
	u := id.u
	return &u
}

// Big returns the identifier as a big integer.
func (id ID) Big() *big.Int { return id.u.ToBig() }

// Hex returns the 0x-prefixed minimal hexadecimal form.
func (id ID) Hex() string { return id.u.Hex() }

// Dec returns the decimal form, the ERC-1155 token-id convention.
func (id ID) Dec() string { return id.u.Dec() }

// String returns the decimal form.
func (id ID) String() string { return id.u.Dec() }

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.u.Dec()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the decimal
// and 0x-hex forms.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// PoolID returns the 64-bit pool reference stored in the low bits.
func (id ID) PoolID() uint64 { return id.u.Uint64() }

// AddressFragment returns the 40-bit pool address fragment.
func (id ID) AddressFragment() uint64 { return DecodePoolID(id.PoolID()).Fragment }

// Vegoid returns the identifier's vegoid byte.
func (id ID) Vegoid() uint8 { return DecodePoolID(id.PoolID()).Vegoid }

// TickSpacing returns the pool tick spacing recorded in the identifier.
func (id ID) TickSpacing() int32 { return DecodePoolID(id.PoolID()).TickSpacing }

// PoolIDHex renders the pool reference as sixteen zero-padded lowercase hex
// digits.
func (id ID) PoolIDHex() string { return DecodePoolID(id.PoolID()).Hex() }

// Leg decodes slot i whether or not it is active. Fails with ErrLegIndex
// when i is outside [0, MaxLegs).
func (id ID) Leg(i int) (Leg, error) {
	if i < 0 || i >= MaxLegs {
		return Leg{}, fmt.Errorf("tokenid: leg %d: %w", i, ErrLegIndex)
	}
	return decodeLeg(&id.u, i), nil
}

// Legs returns the active legs in slot order. Inactive slots are skipped, so
// identifiers with gaps decode cleanly.
func (id ID) Legs() []Leg {
	legs := make([]Leg, 0, MaxLegs)
	for i := 0; i < MaxLegs; i++ {
		if leg := decodeLeg(&id.u, i); leg.OptionRatio > 0 {
			legs = append(legs, leg)
		}
	}
	return legs
}

// LegCount returns the number of active legs.
func (id ID) LegCount() int {
	n := 0
	for i := 0; i < MaxLegs; i++ {
		if decodeLeg(&id.u, i).OptionRatio > 0 {
			n++
		}
	}
	return n
}
