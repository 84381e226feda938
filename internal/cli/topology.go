package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypermap/builder"
	"github.com/katalvlaran/hypermap/core"
)

// topologyFlags selects a generated graph. Shared by every subcommand.
type topologyFlags struct {
	kind      string
	n         int
	p         float64
	seed      int64
	directed  bool
	maxWeight float64
}

func (f *topologyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "topology", "t", "cycle",
		"graph kind: path, cycle, star, wheel, complete, grid, random")
	cmd.Flags().IntVarP(&f.n, "nodes", "n", 8, "node count (grid: side length)")
	cmd.Flags().Float64Var(&f.p, "p", 0.3, "edge probability for --topology random")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "seed for random topologies and weights")
	cmd.Flags().Float64Var(&f.maxWeight, "max-weight", 0,
		"draw weights uniformly from [1, max-weight); 0 keeps every weight at 1")
}

func (f *topologyFlags) build() (*core.Graph[string], error) {
	var con builder.Constructor
	switch strings.ToLower(f.kind) {
	case "path":
		con = builder.Path(f.n)
	case "cycle":
		con = builder.Cycle(f.n)
	case "star":
		con = builder.Star(f.n)
	case "wheel":
		con = builder.Wheel(f.n)
	case "complete":
		con = builder.Complete(f.n)
	case "grid":
		con = builder.Grid(f.n, f.n)
	case "random":
		con = builder.RandomSparse(f.n, f.p)
	default:
		return nil, fmt.Errorf("unknown topology %q", f.kind)
	}

	opts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	if f.maxWeight > 1 {
		opts = append(opts, builder.WithUniformWeight(1, f.maxWeight))
	}
	if f.directed {
		opts = append(opts, builder.WithDirected())
	}

	return builder.BuildGraph(nil, opts, con)
}
