package player

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rustyeddy/pricer/game"
)

// Factory builds a player from options.
type Factory func(opts ...Option) game.Player

var (
	mu       sync.RWMutex
	registry = make(map[string]Factory)
)

func init() {
	Register("random", func(opts ...Option) game.Player { return NewRandom(opts...) })
	Register("uniform", func(opts ...Option) game.Player { return NewRandom(opts...) })
	Register("midpoint", func(opts ...Option) game.Player { return NewMidpoint(opts...) })
	Register("mid", func(opts ...Option) game.Player { return NewMidpoint(opts...) })
}

// Register makes a strategy available under name. Names are case-insensitive;
// registering an existing name replaces it.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[normalize(name)] = f
}

// Get returns the factory registered under name, or nil.
func Get(name string) Factory {
	mu.RLock()
	defer mu.RUnlock()
	return registry[normalize(name)]
}

// ByName builds the named strategy.
func ByName(name string, opts ...Option) (game.Player, error) {
	f := Get(name)
	if f == nil {
		return nil, fmt.Errorf("unknown strategy %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return f(opts...), nil
}

// Names lists registered strategy names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
