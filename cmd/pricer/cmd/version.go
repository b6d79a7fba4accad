package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set by ldflags during build
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pricer version %s\n", version)
		},
	}
}
