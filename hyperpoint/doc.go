// Package hyperpoint provides Point, a fixed-dimension real vector used as the
// position of a node in a hyperassociative map.
//
// Coordinates are 1-indexed: a Point of D dimensions exposes Coordinate(1)
// through Coordinate(D). Dimensionality is fixed at construction and never
// changes. Every binary operation (Add, Sub, Distance) requires both operands
// to share the same dimensionality and returns ErrDimensionMismatch otherwise.
//
// A Point is immutable: arithmetic and WithCoordinate return fresh values, so
// copies of a Point never alias each other's coordinates.
// The vector kernels are delegated to gonum's floats package.
//
// Errors:
//
//	ErrInvalidDimensions    - dimensionality below 1.
//	ErrDimensionMismatch    - operands of differing dimensionality.
//	ErrCoordinateOutOfRange - coordinate index outside [1, D].
package hyperpoint
