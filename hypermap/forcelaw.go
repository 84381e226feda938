package hypermap

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hypermap/hyperpoint"
)

// ErrInvalidForceLaw reports out-of-range force-law coefficients.
var ErrInvalidForceLaw = errors.New("hypermap: invalid force law")

// ForceLaw computes a node's candidate position from the round snapshot.
//
// Implementations must be pure: the result may depend only on the arguments,
// which are copies owned by the callee. neighbors is a multiset (parallel
// edges repeat a neighbor); strangers holds every other placed node.
type ForceLaw interface {
	Align(self hyperpoint.Point, neighbors, strangers []hyperpoint.Point) (hyperpoint.Point, error)
}

// ForceLawFunc adapts a plain function to ForceLaw.
type ForceLawFunc func(self hyperpoint.Point, neighbors, strangers []hyperpoint.Point) (hyperpoint.Point, error)

// Align calls f.
func (f ForceLawFunc) Align(self hyperpoint.Point, neighbors, strangers []hyperpoint.Point) (hyperpoint.Point, error) {
	return f(self, neighbors, strangers)
}

// Default SpringLaw coefficients.
const (
	DefaultLearningRate = 0.4
	DefaultEquilibrium  = 1.0
	DefaultRepulsion    = 1.0
)

// SpringLaw pulls a node toward its neighbors with a zero-length spring and
// pushes strangers away with inverse-square strength.
//
// For self p, neighbors q₁..q_k and strangers s (d = |·| of the difference):
//
//	attraction: rate · (1/k) Σ (q − p)
//	repulsion:  rate · Σ Repulsion · Equilibrium³/d² · (p − s)/d
//
// The pull grows with distance and never turns into a push, so a node always
// moves toward its neighbors' mean; with a rate below 1 it never overshoots
// it. Equilibrium sets the repulsion scale: with Repulsion 1, a lone
// neighbor and a lone stranger at distance Equilibrium cancel. Equilibrium 0
// turns repulsion off. Strangers coincident with p (d = 0) contribute nothing.
type SpringLaw struct {
	LearningRate float64
	Equilibrium  float64
	Repulsion    float64
}

// DefaultSpringLaw returns SpringLaw{0.4, 1, 1}.
func DefaultSpringLaw() SpringLaw {
	return SpringLaw{
		LearningRate: DefaultLearningRate,
		Equilibrium:  DefaultEquilibrium,
		Repulsion:    DefaultRepulsion,
	}
}

// Validate requires a positive rate and non-negative equilibrium and
// repulsion, all finite.
func (s SpringLaw) Validate() error {
	if !(s.LearningRate > 0) || math.IsInf(s.LearningRate, 0) {
		return fmt.Errorf("%w: learning rate %v", ErrInvalidForceLaw, s.LearningRate)
	}
	if !(s.Equilibrium >= 0) || math.IsInf(s.Equilibrium, 0) {
		return fmt.Errorf("%w: equilibrium %v", ErrInvalidForceLaw, s.Equilibrium)
	}
	if !(s.Repulsion >= 0) || math.IsInf(s.Repulsion, 0) {
		return fmt.Errorf("%w: repulsion %v", ErrInvalidForceLaw, s.Repulsion)
	}

	return nil
}

// Align implements ForceLaw.
func (s SpringLaw) Align(self hyperpoint.Point, neighbors, strangers []hyperpoint.Point) (hyperpoint.Point, error) {
	delta, err := hyperpoint.New(self.Dimensions())
	if err != nil {
		return hyperpoint.Point{}, err
	}
	if len(neighbors) > 0 {
		mean, merr := hyperpoint.Mean(neighbors...)
		if merr != nil {
			return hyperpoint.Point{}, merr
		}
		if delta, err = mean.Sub(self); err != nil {
			return hyperpoint.Point{}, err
		}
	}

	push := s.Repulsion * s.Equilibrium * s.Equilibrium * s.Equilibrium
	if push > 0 {
		for _, q := range strangers {
			diff, derr := self.Sub(q)
			if derr != nil {
				return hyperpoint.Point{}, derr
			}
			d := diff.Norm()
			if d == 0 {
				continue
			}
			if delta, err = delta.Add(diff.Scale(push / (d * d * d))); err != nil {
				return hyperpoint.Point{}, err
			}
		}
	}

	return self.Add(delta.Scale(s.LearningRate))
}

var _ ForceLaw = SpringLaw{}
