package builder

import "math/rand"

// builderConfig is the resolved, immutable configuration handed to every
// Constructor of one BuildGraph call.
type builderConfig struct {
	idFn     IDFn       // index -> node ID
	rng      *rand.Rand // nil unless WithSeed/WithRand; required by RandomSparse
	weightFn WeightFn   // weight for each emitted edge
	directed bool       // emit DirectedEdge instead of UndirectedEdge

	leftPrefix  string // CompleteBipartite left side
	rightPrefix string // CompleteBipartite right side
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	// centerVertexID is the fixed hub of Star and Wheel.
	centerVertexID = "Center"
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
