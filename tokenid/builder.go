package tokenid

import (
	"fmt"

	"github.com/holiman/uint256"
)

// LegParams carries the raw fields for one leg of a position under
// construction.
type LegParams struct {
	Asset       uint8
	OptionRatio uint8
	IsLong      bool
	TokenType   uint8
	// RiskPartner pairs the leg with another slot. Nil leaves the leg
	// unpaired (partner set to its own index).
	RiskPartner *uint8
	Strike      int32
	Width       uint16
}

// OptionParams carries the fields for a call or put leg; the token the
// payoff is keyed on follows from Asset.
type OptionParams struct {
	Asset       uint8
	OptionRatio uint8
	IsLong      bool
	RiskPartner *uint8
	Strike      int32
	Width       uint16
}

// NotionalParams carries the fields for a loan or credit leg. OptionRatio 0
// is taken as 1.
type NotionalParams struct {
	Asset       uint8
	OptionRatio uint8
	TokenType   uint8
	RiskPartner *uint8
	Strike      int32
}

// Builder assembles a position identifier one leg at a time. Legs fill the
// four slots in call order and cannot be removed individually; use Reset to
// start over on the same pool. A Builder is single-owner state and is not
// safe for concurrent use. The zero value is a builder for the zero pool,
// which no valid identifier uses; seed with NewBuilder.
type Builder struct {
	id     uint256.Int
	cursor int
}

// NewBuilder returns a builder seeded with a 64-bit pool reference, as
// produced by V3PoolID, V4PoolID or PoolIDFromHex.
func NewBuilder(poolID uint64) *Builder {
	b := &Builder{}
	b.id.SetUint64(poolID)
	return b
}

// AddLeg validates p and writes it into the next free slot. On error the
// builder is unchanged, so the call may be retried with corrected fields.
func (b *Builder) AddLeg(p LegParams) error {
	if b.cursor >= MaxLegs {
		return fmt.Errorf("tokenid: add leg: all %d slots filled: %w", MaxLegs, ErrTooManyLegs)
	}
	if p.OptionRatio == 0 || p.OptionRatio > MaxOptionRatio {
		return fmt.Errorf("tokenid: add leg: option ratio %d: %w", p.OptionRatio, ErrInvalidRatio)
	}
	if p.Width > MaxWidth {
		return fmt.Errorf("tokenid: add leg: width %d: %w", p.Width, ErrInvalidWidth)
	}
	if p.Strike < MinStrike || p.Strike > MaxStrike {
		return fmt.Errorf("tokenid: add leg: strike %d: %w", p.Strike, ErrInvalidStrike)
	}
	if p.Asset > 1 {
		return fmt.Errorf("tokenid: add leg: asset %d: %w", p.Asset, ErrInvalidAsset)
	}
	if p.TokenType > 1 {
		return fmt.Errorf("tokenid: add leg: token type %d: %w", p.TokenType, ErrInvalidTokenType)
	}
	partner := uint8(b.cursor)
	if p.RiskPartner != nil {
		if *p.RiskPartner >= MaxLegs {
			return fmt.Errorf("tokenid: add leg: risk partner %d: %w", *p.RiskPartner, ErrInvalidRiskPartner)
		}
		partner = *p.RiskPartner
	}
	encodeLeg(&b.id, Leg{
		Asset:       p.Asset,
		OptionRatio: p.OptionRatio,
		IsLong:      p.IsLong,
		TokenType:   p.TokenType,
		RiskPartner: partner,
		Strike:      p.Strike,
		Width:       p.Width,
	}, b.cursor)
	b.cursor++
	return nil
}

// AddCall adds an option leg whose payoff is keyed on its own asset token.
func (b *Builder) AddCall(p OptionParams) error {
	return b.AddLeg(LegParams{
		Asset:       p.Asset,
		OptionRatio: p.OptionRatio,
		IsLong:      p.IsLong,
		TokenType:   p.Asset,
		RiskPartner: p.RiskPartner,
		Strike:      p.Strike,
		Width:       p.Width,
	})
}

// AddPut adds an option leg whose payoff is keyed on the opposite token.
func (b *Builder) AddPut(p OptionParams) error {
	return b.AddLeg(LegParams{
		Asset:       p.Asset,
		OptionRatio: p.OptionRatio,
		IsLong:      p.IsLong,
		TokenType:   1 - p.Asset,
		RiskPartner: p.RiskPartner,
		Strike:      p.Strike,
		Width:       p.Width,
	})
}

// AddLoan adds a width-zero short leg borrowing notional at the reference
// strike.
func (b *Builder) AddLoan(p NotionalParams) error {
	return b.addFlat(p, false)
}

// AddCredit adds a width-zero long leg lending notional at the reference
// strike.
func (b *Builder) AddCredit(p NotionalParams) error {
	return b.addFlat(p, true)
}

func (b *Builder) addFlat(p NotionalParams, long bool) error {
	ratio := p.OptionRatio
	if ratio == 0 {
		ratio = 1
	}
	return b.AddLeg(LegParams{
		Asset:       p.Asset,
		OptionRatio: ratio,
		IsLong:      long,
		TokenType:   p.TokenType,
		RiskPartner: p.RiskPartner,
		Strike:      p.Strike,
	})
}

// LegCount returns the number of legs added so far.
func (b *Builder) LegCount() int { return b.cursor }

// Build returns the assembled identifier. At least one leg must have been
// added.
func (b *Builder) Build() (ID, error) {
	if b.cursor == 0 {
		return ID{}, fmt.Errorf("tokenid: build: %w", ErrNoLegs)
	}
	return ID{u: b.id}, nil
}

// Reset clears every leg slot, keeps the pool reference, and returns the
// builder.
func (b *Builder) Reset() *Builder {
	pool := b.id.Uint64()
	b.id.SetUint64(pool)
	b.cursor = 0
	return b
}
