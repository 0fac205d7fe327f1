package geom

import "math"

// Epsilon is the tolerance below which floating-point quantities are
// treated as zero. Two vertices closer than this are duplicates.
const Epsilon = 1e-9

// IsZero reports whether v is zero within Epsilon.
func IsZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Cross returns the z-component of (b-a) x (c-a). The sign gives the
// turn direction at b heading toward c (positive = counter-clockwise);
// the magnitude is twice the area of triangle abc.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Centroid returns the arithmetic mean of the points. Returns the zero
// point for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}
