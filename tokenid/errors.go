package tokenid

import "errors"

// Builder and decoder failures wrap one of these sentinels, one per parameter
// kind, so callers can classify with errors.Is. The wrapped message carries
// the offending value.
var (
	ErrTooManyLegs        = errors.New("too many legs")
	ErrInvalidRatio       = errors.New("invalid option ratio")
	ErrInvalidWidth       = errors.New("invalid width")
	ErrInvalidStrike      = errors.New("invalid strike")
	ErrInvalidAsset       = errors.New("invalid asset")
	ErrInvalidTokenType   = errors.New("invalid token type")
	ErrInvalidRiskPartner = errors.New("invalid risk partner")
	ErrNoLegs             = errors.New("no legs")
	ErrInvalidPoolID      = errors.New("invalid pool identifier")
	ErrLegIndex           = errors.New("leg index out of range")
	ErrInvalidID          = errors.New("invalid identifier")
)
