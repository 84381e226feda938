package builder

import "math/rand"

// BuilderOption mutates builderConfig before construction.
// Option constructors panic on nil arguments: those are programmer errors.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → node ID mapping.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge-weight distribution.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithDirected emits directed edges. Symmetric topologies (Grid, Complete,
// spokes of Star and Wheel) then get both arcs.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithPartitionPrefix sets the CompleteBipartite side prefixes.
// Empty values fall back to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
