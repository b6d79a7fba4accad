package game

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
)

// Timed wraps a Player and fails any move that takes longer than Budget.
// A zero Budget never fails.
type Timed struct {
	Player

	budget time.Duration
	clock  quartz.Clock
}

func NewTimed(p Player, budget time.Duration, clock quartz.Clock) *Timed {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Timed{Player: p, budget: budget, clock: clock}
}

func (t *Timed) Budget() time.Duration {
	return t.budget
}

func (t *Timed) Play(ownProfit, opponentProfit ProfitFunc, pmin, pmax float64) (float64, error) {
	start := t.clock.Now()
	price, err := t.Player.Play(ownProfit, opponentProfit, pmin, pmax)
	if err != nil {
		return price, err
	}

	if t.budget > 0 {
		if elapsed := t.clock.Since(start); elapsed > t.budget {
			return price, fmt.Errorf("%w: took %s, budget %s", ErrBudgetExceeded, elapsed, t.budget)
		}
	}
	return price, nil
}
