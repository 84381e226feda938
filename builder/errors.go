package builder

import "errors"

// Sentinel errors returned (wrapped) by constructors. Test with errors.Is.
var (
	// ErrTooFewVertices indicates n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRNG indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRNG = errors.New("builder: rng is required")

	// ErrInvalidDimensions indicates non-positive grid dimensions.
	ErrInvalidDimensions = errors.New("builder: invalid dimensions")

	// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
