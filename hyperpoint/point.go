package hyperpoint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for point construction and arithmetic.
var (
	// ErrInvalidDimensions indicates a dimensionality below 1.
	ErrInvalidDimensions = errors.New("hyperpoint: dimensions must be >= 1")

	// ErrDimensionMismatch indicates arithmetic between points of differing dimensionality.
	ErrDimensionMismatch = errors.New("hyperpoint: dimension mismatch")

	// ErrCoordinateOutOfRange indicates a coordinate index outside [1, D].
	ErrCoordinateOutOfRange = errors.New("hyperpoint: coordinate index out of range")
)

// euclidean is the L parameter for gonum's Norm/Distance.
const euclidean = 2

// Point is an ordered sequence of real coordinates with fixed dimensionality.
// The zero value is not usable; construct with New or FromCoordinates.
type Point struct {
	coords []float64
}

// New returns the origin of a dims-dimensional space.
func New(dims int) (Point, error) {
	if dims < 1 {
		return Point{}, fmt.Errorf("%w: got %d", ErrInvalidDimensions, dims)
	}

	return Point{coords: make([]float64, dims)}, nil
}

// FromCoordinates builds a point from the given coordinates, in order.
// The slice is copied.
func FromCoordinates(c ...float64) (Point, error) {
	if len(c) < 1 {
		return Point{}, fmt.Errorf("%w: got %d", ErrInvalidDimensions, len(c))
	}
	coords := make([]float64, len(c))
	copy(coords, c)

	return Point{coords: coords}, nil
}

// MustFromCoordinates is FromCoordinates for literals known to be valid.
// It panics on an empty argument list.
func MustFromCoordinates(c ...float64) Point {
	p, err := FromCoordinates(c...)
	if err != nil {
		panic(err)
	}

	return p
}

// Dimensions reports the dimensionality of p.
func (p Point) Dimensions() int { return len(p.coords) }

// Coordinate returns the i-th coordinate, 1-indexed.
func (p Point) Coordinate(i int) (float64, error) {
	if i < 1 || i > len(p.coords) {
		return 0, fmt.Errorf("%w: %d not in [1,%d]", ErrCoordinateOutOfRange, i, len(p.coords))
	}

	return p.coords[i-1], nil
}

// WithCoordinate returns a copy of p whose i-th coordinate (1-indexed) is v.
// p itself is left untouched.
func (p Point) WithCoordinate(i int, v float64) (Point, error) {
	if i < 1 || i > len(p.coords) {
		return Point{}, fmt.Errorf("%w: %d not in [1,%d]", ErrCoordinateOutOfRange, i, len(p.coords))
	}
	out := p.Clone()
	out.coords[i-1] = v

	return out, nil
}

// Coordinates returns a copy of the coordinate vector (0-indexed).
func (p Point) Coordinates() []float64 {
	out := make([]float64, len(p.coords))
	copy(out, p.coords)

	return out
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	return Point{coords: p.Coordinates()}
}

// Add returns p + q.
func (p Point) Add(q Point) (Point, error) {
	if err := p.sameDims(q); err != nil {
		return Point{}, err
	}
	out := make([]float64, len(p.coords))

	return Point{coords: floats.AddTo(out, p.coords, q.coords)}, nil
}

// Sub returns p - q.
func (p Point) Sub(q Point) (Point, error) {
	if err := p.sameDims(q); err != nil {
		return Point{}, err
	}
	out := make([]float64, len(p.coords))

	return Point{coords: floats.SubTo(out, p.coords, q.coords)}, nil
}

// Scale returns f·p.
func (p Point) Scale(f float64) Point {
	out := p.Coordinates()
	floats.Scale(f, out)

	return Point{coords: out}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) (float64, error) {
	if err := p.sameDims(q); err != nil {
		return 0, err
	}

	return floats.Distance(p.coords, q.coords, euclidean), nil
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return floats.Norm(p.coords, euclidean)
}

// IsFinite reports whether every coordinate is neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	for _, c := range p.coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// Equal reports whether p and q have the same dimensionality and all
// coordinates agree within tol.
func (p Point) Equal(q Point, tol float64) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}

	return floats.EqualApprox(p.coords, q.coords, tol)
}

// String renders p as "(x1, x2, ...)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', 6, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

func (p Point) sameDims(q Point) error {
	if len(p.coords) != len(q.coords) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(p.coords), len(q.coords))
	}

	return nil
}

// Mean returns the coordinate-wise mean of points.
// All points must share dimensionality; an empty input is ErrInvalidDimensions.
//
// Complexity: O(n·D).
func Mean(points ...Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, fmt.Errorf("%w: mean of no points", ErrInvalidDimensions)
	}
	sum := make([]float64, points[0].Dimensions())
	for _, q := range points {
		if len(q.coords) != len(sum) {
			return Point{}, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(sum), len(q.coords))
		}
		floats.Add(sum, q.coords)
	}
	floats.Scale(1/float64(len(points)), sum)

	return Point{coords: sum}, nil
}
