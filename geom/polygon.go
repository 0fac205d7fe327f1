package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// Polygon owns a fixed-size vertex sequence for one shape kind. The
// kind is fixed at construction; vertices are supplied through
// SetVertices, which normalizes their order and validates the result
// before committing. A Polygon with no committed vertices reports
// ErrNotReady from every metric.
type Polygon struct {
	kind     Kind
	vertices []Point
}

// NewPolygon creates an empty polygon of the given kind.
func NewPolygon(kind Kind) (*Polygon, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown shape kind %d: %w", int(kind), ErrInvalidInput)
	}
	return &Polygon{kind: kind}, nil
}

// Kind returns the shape kind fixed at construction.
func (p *Polygon) Kind() Kind {
	return p.kind
}

// Describe returns the human-readable label of the shape kind.
func (p *Polygon) Describe() string {
	return p.kind.String()
}

// Ready reports whether a SetVertices call has succeeded.
func (p *Polygon) Ready() bool {
	return p.vertices != nil
}

// SetVertices validates points as this polygon's shape and commits
// them in counter-clockwise order. The input order is irrelevant:
// points are sorted by polar angle around their centroid before
// validation. The call is atomic: on any failure the previously
// committed vertices (if any) are untouched.
func (p *Polygon) SetVertices(points []Point) error {
	want := p.kind.VertexCount()
	if len(points) == 0 {
		return fmt.Errorf("no vertices given: %w", ErrInvalidInput)
	}
	if len(points) != want {
		return fmt.Errorf("%s needs %d vertices, got %d: %w", p.kind, want, len(points), ErrInvalidInput)
	}

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if IsZero(Distance(points[i], points[j])) {
				return fmt.Errorf("vertices %d and %d coincide: %w", i, j, ErrInvalidInput)
			}
		}
	}

	ordered := orderCounterClockwise(points)
	if err := kindSpecs[p.kind].validate(ordered); err != nil {
		return err
	}

	p.vertices = ordered
	return nil
}

// orderCounterClockwise sorts points by polar angle around their
// centroid, ascending over (-pi, pi]. The sort is stable so points at
// equal angle keep their input order; a degenerate ordering produced
// by such ties is left for shape validation to reject.
func orderCounterClockwise(points []Point) []Point {
	c := Centroid(points)
	ordered := make([]Point, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		ai := math.Atan2(ordered[i].Y-c.Y, ordered[i].X-c.X)
		aj := math.Atan2(ordered[j].Y-c.Y, ordered[j].X-c.X)
		return ai < aj
	})
	return ordered
}

// validateTriangle rejects collinear triples.
func validateTriangle(v []Point) error {
	if IsZero(Cross(v[0], v[1], v[2])) {
		return fmt.Errorf("vertices are collinear: %w", ErrDegenerate)
	}
	return nil
}

// validateConvexQuadrilateral checks every consecutive vertex triple.
// A zero cross product means three collinear vertices; a sign change
// means the turn direction flips, so the shape is either non-convex or
// the angular sort produced a self-intersecting order.
func validateConvexQuadrilateral(v []Point) error {
	var sign float64
	for i := 0; i < 4; i++ {
		cross := Cross(v[i], v[(i+1)%4], v[(i+2)%4])
		if IsZero(cross) {
			return fmt.Errorf("vertices %d, %d, %d are collinear: %w", i, (i+1)%4, (i+2)%4, ErrDegenerate)
		}
		if sign == 0 {
			sign = cross
		} else if sign*cross < 0 {
			return fmt.Errorf("turn direction flips at vertex %d: %w", (i+1)%4, ErrNonConvex)
		}
	}
	return nil
}

// Area returns the shoelace area of the committed vertices.
func (p *Polygon) Area() (float64, error) {
	if !p.Ready() {
		return 0, ErrNotReady
	}
	var sum float64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2, nil
}

// Perimeter returns the sum of edge lengths, wrapping around.
func (p *Polygon) Perimeter() (float64, error) {
	if !p.Ready() {
		return 0, ErrNotReady
	}
	var sum float64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		sum += Distance(p.vertices[i], p.vertices[(i+1)%n])
	}
	return sum, nil
}

// Vertices returns a copy of the committed vertices in their
// counter-clockwise order.
func (p *Polygon) Vertices() ([]Point, error) {
	if !p.Ready() {
		return nil, ErrNotReady
	}
	out := make([]Point, len(p.vertices))
	copy(out, p.vertices)
	return out, nil
}

// Centroid returns the centroid of the committed vertices.
func (p *Polygon) Centroid() (Point, error) {
	if !p.Ready() {
		return Point{}, ErrNotReady
	}
	return Centroid(p.vertices), nil
}

// Ring exports the committed vertices as a closed orb.Ring (first
// point repeated at the end) for interop with orb's planar helpers and
// the sketch renderer.
func (p *Polygon) Ring() (orb.Ring, error) {
	if !p.Ready() {
		return nil, ErrNotReady
	}
	ring := make(orb.Ring, 0, len(p.vertices)+1)
	for _, v := range p.vertices {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	ring = append(ring, ring[0])
	return ring, nil
}
