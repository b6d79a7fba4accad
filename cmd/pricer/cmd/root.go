package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricer/config"
	"github.com/rustyeddy/pricer/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the full pricer command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "pricer",
		Short: "Pricing-game player and local round runner",
		Long: `Pricer holds a player for a two-firm pricing game and tools to drive it
outside the tournament harness.

It provides tools for:
  - Asking the player for a price given profit models and a price range
  - Generating and validating run configuration
  - Inspecting the journal of past decisions`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (YAML or JSON); defaults are used when empty")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newPlayCmd(opts),
		newConfigCmd(),
		newJournalCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the pricer CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// load returns the config named by --config, or the defaults.
func (o *rootOptions) load() (*config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(o.configPath)
}

func (o *rootOptions) logger(cmd *cobra.Command, cfg *config.Config) *log.Logger {
	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	return logging.New(level, cmd.ErrOrStderr())
}
