package game

import (
	"errors"
	"fmt"
)

// Decide runs one round for p the way a harness would: malformed bounds fail
// before the player is asked, and the returned price is re-checked so that a
// contract violation reaches the caller instead of being corrected silently.
//
// On a contract violation the offending price is still returned alongside the
// error for reporting.
func Decide(p Player, ownProfit, opponentProfit ProfitFunc, pmin, pmax float64) (float64, error) {
	if p == nil {
		return 0, errors.New("decide: nil player")
	}
	if err := (Bounds{Min: pmin, Max: pmax}).Validate(); err != nil {
		return 0, err
	}

	price, err := p.Play(ownProfit, opponentProfit, pmin, pmax)
	if err != nil {
		return price, fmt.Errorf("player %q: %w", p.Name(), err)
	}
	if err := CheckPrice(price, pmin, pmax); err != nil {
		return price, fmt.Errorf("player %q: %w", p.Name(), err)
	}
	return price, nil
}
