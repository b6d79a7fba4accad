// Package journal records the decisions made through the pricer CLI.
// The player itself never touches it.
package journal

import (
	"fmt"
	"time"
)

// DecisionRecord is one call to a player and what came of it.
type DecisionRecord struct {
	ID       string
	Time     time.Time
	Player   string
	Strategy string

	PMin  float64
	PMax  float64
	Price float64

	// Profits evaluated at (Price, OpponentPrice) with the round's models.
	OpponentPrice  float64
	OwnProfit      float64
	OpponentProfit float64

	// Err is the failure text when the round failed, empty otherwise.
	Err string
}

func (r DecisionRecord) Failed() bool {
	return r.Err != ""
}

type Journal interface {
	RecordDecision(DecisionRecord) error
	Close() error
}

// Config selects a backend.
type Config struct {
	Type   string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	CSV    string `json:"csv,omitempty" yaml:"csv,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Open returns the backend described by cfg.
func Open(cfg Config) (Journal, error) {
	switch cfg.Type {
	case "", "none":
		return Nop{}, nil
	case "csv":
		if cfg.CSV == "" {
			return nil, fmt.Errorf("journal: csv path required")
		}
		return NewCSV(cfg.CSV)
	case "sqlite":
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("journal: db_path required")
		}
		return NewSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("journal: unknown type %q", cfg.Type)
	}
}

// Nop discards every record.
type Nop struct{}

func (Nop) RecordDecision(DecisionRecord) error { return nil }
func (Nop) Close() error                        { return nil }
