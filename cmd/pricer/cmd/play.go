package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricer/internal/round"
	"github.com/rustyeddy/pricer/journal"
)

type playOptions struct {
	pmin          float64
	pmax          float64
	opponentPrice float64
	strategy      string
	name          string
	seed          int64
	budget        string
	journalType   string
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Ask the player for one price",
		Long: `Run a single round locally: build the profit callbacks from the
configured models, ask the player for a price in [pmin, pmax], and report
both firms' profits at the chosen price against --opponent-price.

Flags override the matching config values.

Examples:
  pricer play --pmin 0 --pmax 10
  pricer play -c pricer.yaml --seed 42 --journal none`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.pmin, "pmin", 0, "lowest permitted price")
	f.Float64Var(&opts.pmax, "pmax", 0, "highest permitted price")
	f.Float64Var(&opts.opponentPrice, "opponent-price", 0, "opponent price used to evaluate profits")
	f.StringVarP(&opts.strategy, "strategy", "s", "", "strategy name (random, midpoint)")
	f.StringVarP(&opts.name, "name", "n", "", "player display name")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	f.StringVar(&opts.budget, "budget", "", "per-move time budget, e.g. 500ms")
	f.StringVar(&opts.journalType, "journal", "", "journal type override (csv, sqlite, none)")

	return cmd
}

func runPlay(cmd *cobra.Command, root *rootOptions, opts *playOptions) error {
	cfg, err := root.load()
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("pmin") {
		cfg.Round.PMin = opts.pmin
	}
	if f.Changed("pmax") {
		cfg.Round.PMax = opts.pmax
	}
	if f.Changed("opponent-price") {
		cfg.Round.OpponentPrice = opts.opponentPrice
	}
	if f.Changed("strategy") {
		cfg.Player.Strategy = opts.strategy
	}
	if f.Changed("name") {
		cfg.Player.Name = opts.name
	}
	if f.Changed("seed") {
		cfg.Player.Seed = opts.seed
	}
	if f.Changed("budget") {
		cfg.Player.Budget = opts.budget
	}
	if f.Changed("journal") {
		cfg.Journal.Type = opts.journalType
	}

	logger := root.logger(cmd, cfg)
	r, err := round.FromConfig(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer r.Close()

	rec, err := r.Run(cfg.Round.Bounds(), cfg.Round.OpponentPrice)
	if rerr := renderDecision(cmd, rec); rerr != nil {
		return rerr
	}
	return err
}

func renderDecision(cmd *cobra.Command, rec journal.DecisionRecord) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Field", "Value")

	rows := [][]string{
		{"player", rec.Player},
		{"strategy", rec.Strategy},
		{"range", fmt.Sprintf("[%s, %s]", num(rec.PMin), num(rec.PMax))},
		{"price", num(rec.Price)},
		{"opponent price", num(rec.OpponentPrice)},
		{"own profit", num(rec.OwnProfit)},
		{"opponent profit", num(rec.OpponentProfit)},
	}
	if rec.ID != "" {
		rows = append(rows, []string{"id", rec.ID})
	}
	if rec.Failed() {
		rows = append(rows, []string{"error", rec.Err})
	}

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
