package player

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/rustyeddy/pricer/game"
)

// Random is the placeholder strategy: it ignores both profit callbacks and
// draws a price uniformly from [pmin, pmax].
//
// A Random is not safe for concurrent use; the harness plays one round at a
// time per player.
type Random struct {
	name   string
	rng    *rand.Rand
	logger *log.Logger
}

func NewRandom(opts ...Option) *Random {
	o := buildOptions(opts)
	return &Random{name: o.name, rng: o.rng, logger: o.logger}
}

func (r *Random) Name() string {
	return r.name
}

// Play draws p uniformly from [pmin, pmax]. The draw is clipped and checked
// before it is returned, so a malformed range or a non-finite result comes
// back as an error rather than a price.
func (r *Random) Play(_, _ game.ProfitFunc, pmin, pmax float64) (float64, error) {
	if err := (game.Bounds{Min: pmin, Max: pmax}).Validate(); err != nil {
		return 0, err
	}

	// Stays finite for any finite bounds; Clip absorbs rounding at the edges.
	u := r.rng.Float64()
	p := (1-u)*pmin + u*pmax
	p = game.Clip(p, pmin, pmax)

	if err := game.CheckPrice(p, pmin, pmax); err != nil {
		return 0, err
	}

	r.logger.Debug("price drawn", "player", r.name, "pmin", pmin, "pmax", pmax, "price", p)
	return p, nil
}

var _ game.Player = (*Random)(nil)
