// Package price converts between pool ticks and display prices. A tick t
// corresponds to a raw token1-per-token0 price of 1.0001^t. The arithmetic
// is float64 underneath and meant for rendering and sanity checks, not for
// settlement math.
package price

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// tickBase is the price ratio between adjacent ticks.
const tickBase = 1.0001

// ErrNonPositive is returned by TickAt for prices without a tick.
var ErrNonPositive = errors.New("price not positive")

// AtTick returns the raw token1-per-token0 price at tick.
func AtTick(tick int32) decimal.Decimal {
	p := math.Pow(tickBase, float64(tick))
	if p != 0 && !math.IsInf(p, 0) {
		return decimal.NewFromFloat(p)
	}
	// Ticks this far out overflow float64. Split the power into a decimal
	// exponent and a mantissa in [1, 10) via log10.
	l := float64(tick) * math.Log10(tickBase)
	e := math.Floor(l)
	m := math.Pow(10, l-e)
	return decimal.NewFromFloat(m).Shift(int32(e))
}

// Adjusted shifts the raw price at tick into human units by the pair's
// decimal difference: 1.0001^tick * 10^(decimals0-decimals1).
func Adjusted(tick int32, decimals0, decimals1 uint8) decimal.Decimal {
	return AtTick(tick).Shift(int32(decimals0) - int32(decimals1))
}

// TickAt returns the tick nearest to a positive raw price. The result is
// clamped to the int32 domain.
func TickAt(price decimal.Decimal) (int32, error) {
	if price.Sign() <= 0 {
		return 0, fmt.Errorf("price: tick at %s: %w", price, ErrNonPositive)
	}
	f, _ := price.Float64()
	t := math.Round(math.Log(f) / math.Log(tickBase))
	switch {
	case t >= math.MaxInt32:
		return math.MaxInt32, nil
	case t <= math.MinInt32:
		return math.MinInt32, nil
	}
	return int32(t), nil
}

// Range is a displayable price band over a leg's tick range.
type Range struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
}

// RangeAt returns the raw price band covering [lower, upper].
func RangeAt(lower, upper int32) Range {
	return Range{Lower: AtTick(lower), Upper: AtTick(upper)}
}

// AdjustedRangeAt returns the price band in human units.
func AdjustedRangeAt(lower, upper int32, decimals0, decimals1 uint8) Range {
	return Range{
		Lower: Adjusted(lower, decimals0, decimals1),
		Upper: Adjusted(upper, decimals0, decimals1),
	}
}
