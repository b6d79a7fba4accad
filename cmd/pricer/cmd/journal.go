package cmd

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricer/journal"
)

func newJournalCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query the decision journal",
		Long: `Query decision records from the SQLite journal.

Subcommands:
  list  - List the most recent decisions
  show  - Show a single decision by ID

Examples:
  pricer journal list -n 20
  pricer journal show 01HZX3J0Q4YB7W6M2D5K8N9P1R`,
	}
	cmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "./pricer.sqlite", "path to SQLite journal DB")

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent decisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := journal.NewSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer j.Close()

			recs, err := j.ListDecisions(limit)
			if err != nil {
				return fmt.Errorf("query decisions: %w", err)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("ID", "Time", "Player", "Strategy", "Range", "Price", "Own Profit", "Error")
			for _, r := range recs {
				err := table.Append([]string{
					r.ID,
					r.Time.Format(time.RFC3339),
					r.Player,
					r.Strategy,
					fmt.Sprintf("[%s, %s]", num(r.PMin), num(r.PMax)),
					num(r.Price),
					num(r.OwnProfit),
					r.Err,
				})
				if err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of decisions to show (0 for all)")

	showCmd := &cobra.Command{
		Use:   "show <decision-id>",
		Short: "Show a single decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := journal.NewSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer j.Close()

			rec, err := j.GetDecision(args[0])
			if err != nil {
				return fmt.Errorf("get decision: %w", err)
			}
			return renderDecision(cmd, rec)
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}
