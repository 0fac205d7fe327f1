package geom

import "errors"

// Error kinds returned by the polygon core. Callers classify failures
// with errors.Is; the wrapped message carries the specific reason.
var (
	// ErrInvalidInput covers a wrong vertex count, an empty sequence,
	// or two vertices closer than Epsilon.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerate marks collinear vertices: the whole triangle, or
	// three consecutive quadrilateral vertices.
	ErrDegenerate = errors.New("degenerate shape")

	// ErrNonConvex marks a quadrilateral whose consecutive turns do
	// not share a single direction.
	ErrNonConvex = errors.New("non-convex quadrilateral")

	// ErrNotReady is returned when metrics are requested before a
	// successful SetVertices.
	ErrNotReady = errors.New("vertices not set")
)
