package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypermap/core"
	"github.com/katalvlaran/hypermap/prim_kruskal"
)

func newMSTCmd() *cobra.Command {
	var (
		topo             topologyFlags
		method           string
		requireConnected bool
	)

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning forest of a generated topology",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			g, err := topo.build()
			if err != nil {
				return err
			}
			opts := []prim_kruskal.Option{prim_kruskal.WithMethod(method)}
			if requireConnected {
				opts = append(opts, prim_kruskal.WithRequireConnected())
			}
			edges, total, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(opts...))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range edges {
				ns := e.Nodes()
				fmt.Fprintf(out, "%s - %s\t%g\n", ns[0], ns[1], core.WeightOf(e))
			}
			fmt.Fprintf(out, "total %g (%d edges, %s)\n", total, len(edges), method)
			prog.done("spanning forest computed", "nodes", g.NodeCount(), "edges", g.EdgeCount())

			return nil
		},
	}
	topo.register(cmd)
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "kruskal or prim")
	cmd.Flags().BoolVar(&requireConnected, "require-connected", false, "fail when the graph is disconnected")

	return cmd
}
