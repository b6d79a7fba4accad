// Package game defines the contract between a pricing-game harness and a
// player: the profit callbacks, the permitted price range and the checks a
// chosen price has to pass.
package game

import (
	"math"
)

// ProfitFunc maps a pair of prices to a profit. The first argument is always
// the price of the player whose profit is returned.
//
// The harness hands a player two of these:
//
//	ownProfit(ownPrice, opponentPrice)
//	opponentProfit(opponentPrice, ownPrice)
//
// Note the swapped order on the opponent callback.
type ProfitFunc func(own, opponent float64) float64

// Player picks a price for one round.
type Player interface {
	// Name is the display label the harness shows for this player.
	Name() string

	// Play returns a price p with pmin <= p <= pmax, or an error if no
	// such price can be produced.
	Play(ownProfit, opponentProfit ProfitFunc, pmin, pmax float64) (float64, error)
}

// Bounds is the closed interval of permitted prices for a round.
type Bounds struct {
	Min float64 `json:"pmin" yaml:"pmin"`
	Max float64 `json:"pmax" yaml:"pmax"`
}

// Validate fails when either bound is not a finite number or Min > Max.
func (b Bounds) Validate() error {
	if !finite(b.Min) || !finite(b.Max) {
		return &BoundsError{Min: b.Min, Max: b.Max, Reason: "bounds must be finite"}
	}
	if b.Min > b.Max {
		return &BoundsError{Min: b.Min, Max: b.Max, Reason: "pmin greater than pmax"}
	}
	return nil
}

func (b Bounds) Contains(p float64) bool {
	return b.Min <= p && p <= b.Max
}

// Width is Max - Min.
func (b Bounds) Width() float64 {
	return b.Max - b.Min
}

func (b Bounds) Mid() float64 {
	return b.Min + b.Width()/2
}

// Clip clamps p into [pmin, pmax]. NaN is passed through unchanged so that
// CheckPrice can still report it.
func Clip(p, pmin, pmax float64) float64 {
	if p < pmin {
		return pmin
	}
	if p > pmax {
		return pmax
	}
	return p
}

// CheckPrice verifies that p is a finite float inside [pmin, pmax].
func CheckPrice(p, pmin, pmax float64) error {
	if !finite(p) {
		return &PriceError{Price: p, Min: pmin, Max: pmax, err: ErrPriceNotFinite}
	}
	if p < pmin || p > pmax {
		return &PriceError{Price: p, Min: pmin, Max: pmax, err: ErrPriceOutOfBounds}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
