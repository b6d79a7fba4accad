package player

import (
	"github.com/rustyeddy/pricer/game"
)

// Midpoint always plays the centre of the permitted range. It is a
// deterministic stand-in, handy when a test or a local run needs a
// predictable opponent.
type Midpoint struct {
	name string
}

func NewMidpoint(opts ...Option) *Midpoint {
	o := buildOptions(opts)
	return &Midpoint{name: o.name}
}

func (m *Midpoint) Name() string {
	return m.name
}

func (m *Midpoint) Play(_, _ game.ProfitFunc, pmin, pmax float64) (float64, error) {
	b := game.Bounds{Min: pmin, Max: pmax}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	p := game.Clip(b.Mid(), pmin, pmax)
	if err := game.CheckPrice(p, pmin, pmax); err != nil {
		return 0, err
	}
	return p, nil
}

var _ game.Player = (*Midpoint)(nil)
