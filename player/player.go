// Package player holds the strategies a pricer submission can play with.
//
// The shipped strategy is a placeholder: Random draws a uniform price from
// the permitted range. A real strategy would evaluate the profit callbacks
// before choosing.
package player

import (
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rustyeddy/pricer/internal/logging"
)

// DefaultName is the label the harness shows until a competitor sets their own.
const DefaultName = "xxx"

type options struct {
	name   string
	rng    *rand.Rand
	logger *log.Logger
}

type Option func(*options)

// WithName sets the display label reported to the harness.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithSeed makes the player's draws reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = newRand(seed) }
}

func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = DefaultName
	}
	if o.rng == nil {
		o.rng = newRand(time.Now().UnixNano())
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	return o
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// newRand derives the two PCG seeds from a single int64 so that a given
// seed always yields the same sequence.
func newRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
