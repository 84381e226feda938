package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypermap/dfs"
)

func newCyclesCmd() *cobra.Command {
	var topo topologyFlags

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Report whether a generated topology has a cycle, with a witness",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := topo.build()
			if err != nil {
				return err
			}
			witness, found, err := dfs.FindCycle(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cyclic: %t\n", found)
			if found {
				fmt.Fprintf(out, "witness: %s\n", strings.Join(witness, " -> "))
			}
			loggerFromContext(cmd.Context()).Debug("cycle check", "nodes", g.NodeCount(), "edges", g.EdgeCount())

			return nil
		},
	}
	topo.register(cmd)
	cmd.Flags().BoolVar(&topo.directed, "directed", false, "generate directed edges")

	return cmd
}
