// Package round drives a single decision locally: it hands a player the
// configured profit callbacks, checks what comes back, evaluates profits and
// journals the outcome.
package round

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/rustyeddy/pricer/config"
	"github.com/rustyeddy/pricer/game"
	"github.com/rustyeddy/pricer/journal"
	"github.com/rustyeddy/pricer/player"
	"github.com/rustyeddy/pricer/profit"
)

type Runner struct {
	Player   game.Player
	Strategy string
	Own      profit.Model
	Opponent profit.Model
	Recorder *journal.Recorder
	Logger   *log.Logger
}

// FromConfig builds a Runner and opens its journal. The caller owns the
// Runner and must Close it.
func FromConfig(cfg *config.Config, logger *log.Logger, clock quartz.Clock) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = quartz.NewReal()
	}

	opts := []player.Option{player.WithName(cfg.Player.Name), player.WithLogger(logger)}
	if cfg.Player.Seed != 0 {
		opts = append(opts, player.WithSeed(cfg.Player.Seed))
	}
	p, err := player.ByName(cfg.Player.Strategy, opts...)
	if err != nil {
		return nil, err
	}

	budget, err := cfg.Player.ParseBudget()
	if err != nil {
		return nil, fmt.Errorf("player.budget: %w", err)
	}
	if budget > 0 {
		p = game.NewTimed(p, budget, clock)
	}

	own, err := profit.ByName(cfg.Profit.Own)
	if err != nil {
		return nil, fmt.Errorf("profit.own: %w", err)
	}
	opp, err := profit.ByName(cfg.Profit.Opponent)
	if err != nil {
		return nil, fmt.Errorf("profit.opponent: %w", err)
	}

	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return nil, err
	}

	return &Runner{
		Player:   p,
		Strategy: cfg.Player.Strategy,
		Own:      own,
		Opponent: opp,
		Recorder: journal.NewRecorder(j, clock),
		Logger:   logger,
	}, nil
}

// Run asks the player for a price in b and, when the price is valid,
// evaluates both profits against opponentPrice. The decision is journaled
// whether or not the round failed; a failed round returns its error.
func (r *Runner) Run(b game.Bounds, opponentPrice float64) (journal.DecisionRecord, error) {
	own, opp := profit.Callbacks(r.Own, r.Opponent)

	rec := journal.DecisionRecord{
		Player:        r.Player.Name(),
		Strategy:      r.Strategy,
		PMin:          b.Min,
		PMax:          b.Max,
		OpponentPrice: opponentPrice,
	}

	price, playErr := game.Decide(r.Player, own, opp, b.Min, b.Max)
	rec.Price = price
	if playErr != nil {
		rec.Err = playErr.Error()
		r.logger().Error("round failed", "player", rec.Player, "err", playErr)
	} else {
		rec.OwnProfit = own(price, opponentPrice)
		rec.OpponentProfit = opp(opponentPrice, price)
		r.logger().Info("price chosen", "player", rec.Player, "price", price,
			"own_profit", rec.OwnProfit, "opponent_profit", rec.OpponentProfit)
	}

	rec, recErr := r.record(rec)
	return rec, errors.Join(playErr, recErr)
}

func (r *Runner) record(rec journal.DecisionRecord) (journal.DecisionRecord, error) {
	if r.Recorder == nil {
		return rec, nil
	}
	out, err := r.Recorder.Record(rec)
	if err != nil {
		return out, fmt.Errorf("journal: %w", err)
	}
	return out, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

func (r *Runner) Close() error {
	if r.Recorder == nil {
		return nil
	}
	return r.Recorder.Close()
}
