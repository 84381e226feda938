package hypermap

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hypermap/metrics"
	"github.com/katalvlaran/hypermap/workpool"
)

// Option configures a Map at construction.
// Options are not generic so callers can write hypermap.WithSeed(1) for any N.
type Option func(*settings)

type settings struct {
	poolCfg workpool.Config
	pool    *workpool.Pool
	law     ForceLaw
	rng     *rand.Rand
	logger  *log.Logger
	metrics *metrics.Collector
}

func defaultSettings() settings {
	return settings{
		poolCfg: workpool.DefaultConfig(),
		law:     DefaultSpringLaw(),
		logger:  log.New(io.Discard),
	}
}

// WithPoolConfig replaces the whole pool configuration of an owned pool.
func WithPoolConfig(cfg workpool.Config) Option {
	return func(s *settings) { s.poolCfg = cfg }
}

// WithPoolSize sets the number of concurrent alignment workers.
func WithPoolSize(n int) Option {
	return func(s *settings) { s.poolCfg.PoolSize = n }
}

// WithMaxQueueDepth sets the task backlog before submission blocks.
func WithMaxQueueDepth(n int) Option {
	return func(s *settings) { s.poolCfg.MaxQueueDepth = n }
}

// WithIdleTimeout sets the idle worker teardown delay. 0 disables teardown.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *settings) { s.poolCfg.IdleTimeout = d }
}

// WithPool runs rounds on a shared pool. The map does not close it, and the
// pool configuration options are ignored.
func WithPool(p *workpool.Pool) Option {
	return func(s *settings) { s.pool = p }
}

// WithForceLaw replaces the default SpringLaw.
func WithForceLaw(law ForceLaw) Option {
	return func(s *settings) {
		if law != nil {
			s.law = law
		}
	}
}

// WithSeed seeds the generator used for initial positions.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r for initial positions. r must not be shared with other goroutines.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithLogger routes round diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records rounds on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *settings) { s.metrics = c }
}
