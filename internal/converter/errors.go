package converter

import "errors"

// Validation failures reported by Convert. Callers discriminate with
// errors.Is; the wrapped message carries the offending input.
var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidUnit     = errors.New("invalid unit")
	ErrInvalidValue    = errors.New("invalid value")
)
