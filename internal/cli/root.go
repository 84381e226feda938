// Package cli implements the hyperlayout command-line interface.
//
// # Commands
//
//   - mst: minimum spanning forest of a generated topology (Kruskal or Prim).
//   - cycles: cycle verdict and a witness cycle.
//   - layout: hyperassociative-map layout, optionally exporting Prometheus metrics.
//
// # Logging
//
// Every command supports --verbose (-v) for debug-level logging. The logger
// travels through the command context.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the string shown by --version.
func SetVersion(v string) { version = v }

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "hyperlayout",
		Short:        "Graph algorithms and hyperassociative layouts over generated topologies",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMSTCmd())
	root.AddCommand(newCyclesCmd())
	root.AddCommand(newLayoutCmd())

	return root
}
