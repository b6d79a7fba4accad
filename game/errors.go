package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBounds    = errors.New("invalid price bounds")
	ErrPriceNotFinite   = errors.New("price is not a finite float")
	ErrPriceOutOfBounds = errors.New("price outside permitted range")
	ErrBudgetExceeded   = errors.New("move exceeded time budget")
)

// BoundsError reports a malformed (pmin, pmax) pair. It matches
// ErrInvalidBounds with errors.Is.
type BoundsError struct {
	Min    float64
	Max    float64
	Reason string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s (pmin=%g, pmax=%g)", ErrInvalidBounds, e.Reason, e.Min, e.Max)
}

func (e *BoundsError) Unwrap() error {
	return ErrInvalidBounds
}

// PriceError reports a chosen price that violates the round's contract.
type PriceError struct {
	Price float64
	Min   float64
	Max   float64

	err error
}

func (e *PriceError) Error() string {
	return fmt.Sprintf("%s: chosen price %g, must be between %g and %g", e.err, e.Price, e.Min, e.Max)
}

func (e *PriceError) Unwrap() error {
	return e.err
}
