// Package config loads layout run settings from YAML or TOML.
//
// Load starts from Default and overlays the file, so a file only needs the
// keys it changes. The format is picked by extension: .yaml/.yml or .toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypermap/hypermap"
	"github.com/katalvlaran/hypermap/workpool"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat is returned for an unknown file extension.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Layout is the full set of knobs for a layout run.
type Layout struct {
	Dimensions  int    `yaml:"dimensions" toml:"dimensions"`
	Rounds      int    `yaml:"rounds" toml:"rounds"`
	Seed        int64  `yaml:"seed" toml:"seed"`
	Pool        Pool   `yaml:"pool" toml:"pool"`
	Force       Force  `yaml:"force" toml:"force"`
	MetricsAddr string `yaml:"metrics_addr" toml:"metrics_addr"`
	LogLevel    string `yaml:"log_level" toml:"log_level"`
}

// Pool mirrors workpool.Config with a string idle timeout ("20s", "1m").
type Pool struct {
	PoolSize      int    `yaml:"pool_size" toml:"pool_size"`
	MaxQueueDepth int    `yaml:"max_queue_depth" toml:"max_queue_depth"`
	IdleTimeout   string `yaml:"idle_timeout" toml:"idle_timeout"`
}

// Force holds SpringLaw coefficients.
type Force struct {
	LearningRate float64 `yaml:"learning_rate" toml:"learning_rate"`
	Equilibrium  float64 `yaml:"equilibrium" toml:"equilibrium"`
	Repulsion    float64 `yaml:"repulsion" toml:"repulsion"`
}

// Default returns a 3-dimensional, 100-round layout on the default pool.
func Default() Layout {
	pc := workpool.DefaultConfig()
	law := hypermap.DefaultSpringLaw()

	return Layout{
		Dimensions: 3,
		Rounds:     100,
		Seed:       1,
		Pool: Pool{
			PoolSize:      pc.PoolSize,
			MaxQueueDepth: pc.MaxQueueDepth,
			IdleTimeout:   pc.IdleTimeout.String(),
		},
		Force: Force{
			LearningRate: law.LearningRate,
			Equilibrium:  law.Equilibrium,
			Repulsion:    law.Repulsion,
		},
		LogLevel: "info",
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Layout, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return Layout{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Layout{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Layout) Validate() error {
	if c.Dimensions < 1 {
		return fmt.Errorf("%w: dimensions %d < 1", ErrInvalidConfig, c.Dimensions)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("%w: rounds %d < 0", ErrInvalidConfig, c.Rounds)
	}
	if _, err := c.PoolConfig(); err != nil {
		return err
	}
	if err := c.ForceLaw().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// PoolConfig converts the pool section into a validated workpool.Config.
func (c Layout) PoolConfig() (workpool.Config, error) {
	idle := time.Duration(0)
	if c.Pool.IdleTimeout != "" {
		d, err := time.ParseDuration(c.Pool.IdleTimeout)
		if err != nil {
			return workpool.Config{}, fmt.Errorf("%w: idle_timeout: %w", ErrInvalidConfig, err)
		}
		idle = d
	}
	pc := workpool.Config{
		PoolSize:      c.Pool.PoolSize,
		MaxQueueDepth: c.Pool.MaxQueueDepth,
		IdleTimeout:   idle,
	}
	if err := pc.Validate(); err != nil {
		return workpool.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return pc, nil
}

// ForceLaw builds the SpringLaw described by the force section.
func (c Layout) ForceLaw() hypermap.SpringLaw {
	return hypermap.SpringLaw{
		LearningRate: c.Force.LearningRate,
		Equilibrium:  c.Force.Equilibrium,
		Repulsion:    c.Force.Repulsion,
	}
}

// Level parses LogLevel, falling back to info.
func (c Layout) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}
