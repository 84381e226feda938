package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypermap/config"
	"github.com/katalvlaran/hypermap/hypermap"
	"github.com/katalvlaran/hypermap/metrics"
)

func newLayoutCmd() *cobra.Command {
	var (
		topo        topologyFlags
		configPath  string
		rounds      int
		dims        int
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out a generated topology with a hyperassociative map",
		Long: `Runs a fixed number of alignment rounds over a generated topology and
prints the final positions. Settings come from --config (YAML or TOML) and are
overridden by explicitly passed flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
					logger.SetLevel(cfg.Level())
				}
			}
			flags := cmd.Flags()
			if flags.Changed("rounds") {
				cfg.Rounds = rounds
			}
			if flags.Changed("dims") {
				cfg.Dimensions = dims
			}
			if flags.Changed("seed") {
				cfg.Seed = topo.seed
			}
			if flags.Changed("metrics-addr") {
				cfg.MetricsAddr = metricsAddr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			topo.seed = cfg.Seed

			g, err := topo.build()
			if err != nil {
				return err
			}
			poolCfg, err := cfg.PoolConfig()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			collector := metrics.New(reg)
			if cfg.MetricsAddr != "" {
				stop := serveMetrics(ctx, cfg.MetricsAddr, reg)
				defer stop()
				logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			}

			m, err := hypermap.New(g, cfg.Dimensions,
				hypermap.WithPoolConfig(poolCfg),
				hypermap.WithForceLaw(cfg.ForceLaw()),
				hypermap.WithSeed(cfg.Seed),
				hypermap.WithLogger(logger),
				hypermap.WithMetrics(collector),
			)
			if err != nil {
				return err
			}
			defer m.Close()

			prog := newProgress(logger)
			if err = m.Run(ctx, cfg.Rounds); err != nil {
				return err
			}
			prog.done("layout finished",
				"map", m.ID(), "nodes", len(m.Nodes()), "rounds", m.Rounds(),
				"centroid", m.Centroid().Norm())

			out := cmd.OutOrStdout()
			for _, n := range m.Nodes() {
				fmt.Fprintf(out, "%s\t%s\n", n.ID(), n.Position())
			}

			return nil
		},
	}
	topo.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "layout config file (.yaml, .yml or .toml)")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 100, "alignment rounds")
	cmd.Flags().IntVarP(&dims, "dims", "d", 3, "layout dimensions")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	return cmd
}

// serveMetrics exposes reg on addr/metrics until the returned stop is called.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) (stop func()) {
	logger := loggerFromContext(ctx)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "err", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
