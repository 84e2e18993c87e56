package tokenid

import "github.com/holiman/uint256"

// Position identifier layout. The low 64 bits hold the pool reference; each
// of the four 48-bit leg slots follows at legBitOffset(i).
const (
	// MaxLegs is the number of leg slots in an identifier.
	MaxLegs = 4
	// MaxOptionRatio is the largest encodable option ratio (7-bit field).
	MaxOptionRatio = 127
	// MaxWidth is the largest encodable range width (12-bit field).
	MaxWidth = 4095

	legBits = 48
	legBase = 64

	// Field bit positions within a leg slot.
	assetPos       = 0
	ratioPos       = 1
	longPos        = 8
	tokenTypePos   = 9
	riskPartnerPos = 10
	strikePos      = 12
	widthPos       = 36

	ratioMask       = 0x7f
	riskPartnerMask = 0x3
	strikeMask      = 0xffffff
	widthMask       = 0xfff
)

// legBitOffset returns the absolute bit offset of leg slot index.
func legBitOffset(index int) uint {
	return legBase + legBits*uint(index)
}

// Leg is the decoded form of one 48-bit leg record. A leg is active iff
// OptionRatio > 0; zero-ratio slots are treated as absent.
type Leg struct {
	// Asset selects which of the pool's two tokens the leg's notional is
	// denominated in (0 or 1).
	Asset uint8 `json:"asset"`
	// OptionRatio is the leg's multiplier in multi-leg ratio strategies.
	OptionRatio uint8 `json:"optionRatio"`
	// IsLong is the leg's direction.
	IsLong bool `json:"isLong"`
	// TokenType selects which token the payoff is keyed on. By convention
	// TokenType == Asset reads as call-like and TokenType != Asset as
	// put-like; the codec stores whatever is given.
	TokenType uint8 `json:"tokenType"`
	// RiskPartner is the slot index of the leg this one is margin-paired
	// with. A leg whose partner equals its own index is unpaired.
	RiskPartner uint8 `json:"riskPartner"`
	// Strike is the center tick of the leg's range, or the reference price
	// of a loan/credit leg.
	Strike int32 `json:"strike"`
	// Width is the range width in units of the pool's tick spacing. Width 0
	// is the loan/credit sentinel, not a degenerate option.
	Width uint16 `json:"width"`
}

// IsLoan reports whether the leg borrows notional from the pool
// (width-zero, short).
func (l Leg) IsLoan() bool { return l.Width == 0 && !l.IsLong }

// IsCredit reports whether the leg lends notional to the pool
// (width-zero, long).
func (l Leg) IsCredit() bool { return l.Width == 0 && l.IsLong }

// IsCallLike reports whether the leg's payoff is keyed on the same token its
// notional is denominated in.
func (l Leg) IsCallLike() bool { return l.TokenType == l.Asset }

// IsPutLike reports whether the leg's payoff is keyed on the opposite token.
func (l Leg) IsPutLike() bool { return l.TokenType != l.Asset }

// legValue packs a leg into its 48-bit slot value.
func legValue(leg Leg) uint64 {
	v := uint64(leg.Asset & 1)
	v |= uint64(leg.OptionRatio&ratioMask) << ratioPos
	if leg.IsLong {
		v |= 1 << longPos
	}
	v |= uint64(leg.TokenType&1) << tokenTypePos
	v |= uint64(leg.RiskPartner&riskPartnerMask) << riskPartnerPos
	v |= uint64(EncodeStrike(leg.Strike)&strikeMask) << strikePos
	v |= uint64(leg.Width&widthMask) << widthPos
	return v
}

// encodeLeg ORs the leg into slot index of u. Slots are zero-initialized and
// only ever written once, so encoding is purely additive.
func encodeLeg(u *uint256.Int, leg Leg, index int) {
	inject(u, legValue(leg), legBitOffset(index), legBits)
}

// decodeLeg extracts the leg stored in slot index of u.
func decodeLeg(u *uint256.Int, index int) Leg {
	v := extract(u, legBitOffset(index), legBits)
	return Leg{
		Asset:       uint8(v & 1),
		OptionRatio: uint8((v >> ratioPos) & ratioMask),
		IsLong:      (v>>longPos)&1 == 1,
		TokenType:   uint8((v >> tokenTypePos) & 1),
		RiskPartner: uint8((v >> riskPartnerPos) & riskPartnerMask),
		Strike:      DecodeStrike(uint32((v >> strikePos) & strikeMask)),
		Width:       uint16((v >> widthPos) & widthMask),
	}
}
