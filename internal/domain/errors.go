package domain

import "errors"

// Sentinel errors for domain-level failure modes.
// Callers match these with errors.Is.
var (
	ErrNegativeSteps        = errors.New("negative_steps")
	ErrNegativeSpread       = errors.New("negative_spread")
	ErrInvalidPriceNotation = errors.New("invalid_price_notation")
)
