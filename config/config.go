package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/pricer/game"
	"github.com/rustyeddy/pricer/journal"
	"github.com/rustyeddy/pricer/player"
	"github.com/rustyeddy/pricer/profit"
)

// Config describes a local run of a player.
type Config struct {
	Player  PlayerConfig   `json:"player" yaml:"player"`
	Round   RoundConfig    `json:"round" yaml:"round"`
	Profit  ProfitConfig   `json:"profit" yaml:"profit"`
	Journal journal.Config `json:"journal" yaml:"journal"`
	Log     LogConfig      `json:"log" yaml:"log"`
}

type PlayerConfig struct {
	Name     string `json:"name" yaml:"name"`
	Strategy string `json:"strategy" yaml:"strategy"`
	Seed     int64  `json:"seed" yaml:"seed"` // 0 seeds from the clock
	Budget   string `json:"budget,omitempty" yaml:"budget,omitempty"`
}

// ParseBudget converts the budget string to a duration. Empty means no budget.
func (pc PlayerConfig) ParseBudget() (time.Duration, error) {
	if pc.Budget == "" {
		return 0, nil
	}
	return time.ParseDuration(pc.Budget)
}

type RoundConfig struct {
	PMin float64 `json:"pmin" yaml:"pmin"`
	PMax float64 `json:"pmax" yaml:"pmax"`

	// OpponentPrice is where profits are evaluated after the player has
	// chosen. It does not influence the choice.
	OpponentPrice float64 `json:"opponent_price" yaml:"opponent_price"`
}

func (rc RoundConfig) Bounds() game.Bounds {
	return game.Bounds{Min: rc.PMin, Max: rc.PMax}
}

type ProfitConfig struct {
	Own      profit.Params `json:"own" yaml:"own"`
	Opponent profit.Params `json:"opponent" yaml:"opponent"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile loads configuration from a YAML or JSON file and validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// YAML is a superset of JSON, but fall back anyway for clearer errors.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Player.Name) == "" {
		return fmt.Errorf("player.name is required")
	}
	if player.Get(c.Player.Strategy) == nil {
		return fmt.Errorf("unknown player.strategy %q", c.Player.Strategy)
	}
	budget, err := c.Player.ParseBudget()
	if err != nil {
		return fmt.Errorf("player.budget: %w", err)
	}
	if budget < 0 {
		return fmt.Errorf("player.budget must not be negative")
	}
	if err := c.Round.Bounds().Validate(); err != nil {
		return fmt.Errorf("round: %w", err)
	}
	if _, err := profit.ByName(c.Profit.Own); err != nil {
		return fmt.Errorf("profit.own: %w", err)
	}
	if _, err := profit.ByName(c.Profit.Opponent); err != nil {
		return fmt.Errorf("profit.opponent: %w", err)
	}
	switch c.Journal.Type {
	case "none", "":
	case "csv":
		if c.Journal.CSV == "" {
			return fmt.Errorf("journal.csv required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	linear := profit.Params{
		Model:      "linear",
		Intercept:  10,
		OwnSlope:   2,
		CrossSlope: 1,
		Cost:       1,
	}
	return &Config{
		Player: PlayerConfig{
			Name:     player.DefaultName,
			Strategy: "random",
			Budget:   "1s",
		},
		Round: RoundConfig{
			PMin:          0,
			PMax:          10,
			OpponentPrice: 5,
		},
		Profit: ProfitConfig{
			Own:      linear,
			Opponent: linear,
		},
		Journal: journal.Config{
			Type:   "sqlite",
			DBPath: "./pricer.sqlite",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
