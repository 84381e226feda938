package workpool

import (
	"fmt"
	"runtime"
	"time"
)

// Deterministic defaults, proportional to available parallelism.
const (
	// queueDepthFactor scales NumCPU into the default backlog.
	queueDepthFactor = 5

	// DefaultIdleTimeout is how long an idle worker lingers before exiting.
	DefaultIdleTimeout = 20 * time.Second
)

// Config bounds a Pool.
type Config struct {
	// PoolSize is the maximum number of concurrent workers (>= 1).
	PoolSize int

	// MaxQueueDepth is the number of tasks that may wait for a free worker
	// before Submit blocks (>= 1).
	MaxQueueDepth int

	// IdleTimeout tears down a worker idle for this long. 0 keeps workers
	// alive until Close; negative values are invalid.
	IdleTimeout time.Duration
}

// DefaultConfig returns PoolSize = NumCPU, MaxQueueDepth = 5·NumCPU, and a
// 20s idle timeout.
func DefaultConfig() Config {
	procs := runtime.NumCPU()

	return Config{
		PoolSize:      procs,
		MaxQueueDepth: procs * queueDepthFactor,
		IdleTimeout:   DefaultIdleTimeout,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.PoolSize < 1:
		return fmt.Errorf("%w: pool size %d < 1", ErrInvalidConfig, c.PoolSize)
	case c.MaxQueueDepth < 1:
		return fmt.Errorf("%w: max queue depth %d < 1", ErrInvalidConfig, c.MaxQueueDepth)
	case c.IdleTimeout < 0:
		return fmt.Errorf("%w: idle timeout %s < 0", ErrInvalidConfig, c.IdleTimeout)
	}

	return nil
}
