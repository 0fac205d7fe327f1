package geom

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind selects which shape variant a Polygon is validated as.
type Kind int

const (
	// Triangle requires 3 non-collinear vertices.
	Triangle Kind = iota
	// ConvexQuadrilateral requires 4 vertices forming a strictly convex shape.
	ConvexQuadrilateral
)

// kindSpec bundles the per-kind vertex count, display label, and
// validation hook. Kinds form a closed set, so dispatch is a fixed
// table rather than an interface.
type kindSpec struct {
	vertexCount int
	label       string
	validate    func([]Point) error
}

var kindSpecs = map[Kind]kindSpec{
	Triangle: {
		vertexCount: 3,
		label:       "triangle",
		validate:    validateTriangle,
	},
	ConvexQuadrilateral: {
		vertexCount: 4,
		label:       "convex quadrilateral",
		validate:    validateConvexQuadrilateral,
	},
}

// Valid reports whether k names a known shape kind.
func (k Kind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

// VertexCount returns the number of vertices the kind requires, or 0
// for an unknown kind.
func (k Kind) VertexCount() int {
	return kindSpecs[k].vertexCount
}

// String returns the human-readable label for the kind.
func (k Kind) String() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.label
	}
	return "unknown shape"
}

// KindFromName resolves a kind from its CLI/menu name. Accepted names
// are "triangle" and "quadrilateral" (also "quad").
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "triangle":
		return Triangle, true
	case "quadrilateral", "quad":
		return ConvexQuadrilateral, true
	}
	return 0, false
}

// SketchConfig holds sketch rendering settings from the config file
type SketchConfig struct {
	Format      string  `yaml:"format,omitempty" json:"format,omitempty"`           // "svg" or "png" (default svg)
	Padding     float64 `yaml:"padding,omitempty" json:"padding,omitempty"`         // World-unit padding around the shape (default 1.0)
	GridSpacing float64 `yaml:"gridSpacing,omitempty" json:"gridSpacing,omitempty"` // Grid line spacing in world units (default 1.0)
	Resolution  float64 `yaml:"resolution,omitempty" json:"resolution,omitempty"`   // PNG DPI (default 300)
	Scale       float64 `yaml:"scale,omitempty" json:"scale,omitempty"`             // Canvas millimeters per world unit (default 20)
}

// Config represents the full configuration file
type Config struct {
	Precision int          `yaml:"precision,omitempty" json:"precision,omitempty"` // Decimal places for printed metrics (default 2)
	Sketch    SketchConfig `yaml:"sketch,omitempty" json:"sketch,omitempty"`
}

// GetPrecision returns the configured precision or the default of 2.
func (c *Config) GetPrecision() int {
	if c.Precision > 0 {
		return c.Precision
	}
	return 2
}

// GetFormat returns the sketch output format or the default "svg".
func (sc *SketchConfig) GetFormat() string {
	if sc.Format != "" {
		return sc.Format
	}
	return "svg"
}

// GetPadding returns the sketch padding or the default of 1 world unit.
func (sc *SketchConfig) GetPadding() float64 {
	if sc.Padding > 0 {
		return sc.Padding
	}
	return 1.0
}

// GetGridSpacing returns the grid spacing or the default of 1 world unit.
func (sc *SketchConfig) GetGridSpacing() float64 {
	if sc.GridSpacing > 0 {
		return sc.GridSpacing
	}
	return 1.0
}

// GetResolution returns the PNG resolution or the default of 300 DPI.
func (sc *SketchConfig) GetResolution() float64 {
	if sc.Resolution > 0 {
		return sc.Resolution
	}
	return 300
}

// GetScale returns the canvas scale or the default of 20mm per world unit.
func (sc *SketchConfig) GetScale() float64 {
	if sc.Scale > 0 {
		return sc.Scale
	}
	return 20
}
