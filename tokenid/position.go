package tokenid

// PositionLeg is one active leg of a decoded position, annotated with its
// slot index and the tick range implied by the pool's tick spacing.
type PositionLeg struct {
	Leg
	// Index is the slot the leg occupies in the identifier.
	Index uint8 `json:"index"`
	// TickLower and TickUpper bound the leg's range. Width-zero legs
	// collapse onto the strike itself.
	TickLower int32 `json:"tickLower"`
	TickUpper int32 `json:"tickUpper"`
}

// Position is the decoded view of an identifier: the pool reference and the
// active legs in slot order.
type Position struct {
	Pool PoolReference `json:"pool"`
	Legs []PositionLeg `json:"legs"`
}

// Decode reconstructs the structured view of an identifier. Inactive slots
// are dropped; the originating slot of each leg survives in its Index. Tick
// bounds are strike plus and minus half the range, with the half range
// (width times tick spacing over two) truncated toward zero.
func Decode(id ID) Position {
	ref := DecodePoolID(id.PoolID())
	legs := make([]PositionLeg, 0, MaxLegs)
	for i := 0; i < MaxLegs; i++ {
		leg := decodeLeg(&id.u, i)
		if leg.OptionRatio == 0 {
			continue
		}
		half := int32(leg.Width) * ref.TickSpacing / 2
		legs = append(legs, PositionLeg{
			Leg:       leg,
			Index:     uint8(i),
			TickLower: leg.Strike - half,
			TickUpper: leg.Strike + half,
		})
	}
	return Position{Pool: ref, Legs: legs}
}

// Decode is the method form of the package-level Decode.
func (id ID) Decode() Position { return Decode(id) }

// LegCount returns the number of active legs.
func (p Position) LegCount() int { return len(p.Legs) }

// HasLongLeg reports whether any leg is long.
func (p Position) HasLongLeg() bool {
	for _, l := range p.Legs {
		if l.IsLong {
			return true
		}
	}
	return false
}

// IsShortOnly reports whether the position has at least one leg and no long
// legs.
func (p Position) IsShortOnly() bool {
	return len(p.Legs) > 0 && !p.HasLongLeg()
}

// IsSpread reports whether any leg is margin-paired with a slot other than
// its own.
func (p Position) IsSpread() bool {
	for _, l := range p.Legs {
		if l.RiskPartner != l.Index {
			return true
		}
	}
	return false
}

// AssetIndex returns the asset of the first active leg. ok is false when the
// position has no legs.
func (p Position) AssetIndex() (asset uint8, ok bool) {
	if len(p.Legs) == 0 {
		return 0, false
	}
	return p.Legs[0].Asset, true
}

// every reports whether the position has at least one leg and pred holds for
// all of them; any reports whether pred holds for at least one.
func (p Position) every(pred func(Leg) bool) bool {
	if len(p.Legs) == 0 {
		return false
	}
	for _, l := range p.Legs {
		if !pred(l.Leg) {
			return false
		}
	}
	return true
}

func (p Position) any(pred func(Leg) bool) bool {
	for _, l := range p.Legs {
		if pred(l.Leg) {
			return true
		}
	}
	return false
}

// IsLoan reports whether the position is a pure loan: every leg width-zero
// and short.
func (p Position) IsLoan() bool { return p.every(Leg.IsLoan) }

// IsCredit reports whether the position is a pure credit: every leg
// width-zero and long.
func (p Position) IsCredit() bool { return p.every(Leg.IsCredit) }

// HasLoanLeg reports whether any leg is a loan leg.
func (p Position) HasLoanLeg() bool { return p.any(Leg.IsLoan) }

// HasCreditLeg reports whether any leg is a credit leg.
func (p Position) HasCreditLeg() bool { return p.any(Leg.IsCredit) }

// HasLoanOrCredit reports whether any leg has zero width, in either
// direction.
func (p Position) HasLoanOrCredit() bool {
	return p.any(func(l Leg) bool { return l.Width == 0 })
}
