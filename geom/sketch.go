package geom

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ShapeColor defines the fill and outline colors for a rendered shape
type ShapeColor struct {
	Fill   color.NRGBA
	Stroke color.NRGBA
	Vertex color.NRGBA
}

// DefaultShapeColors returns the per-kind sketch colors
func DefaultShapeColors() map[Kind]ShapeColor {
	return map[Kind]ShapeColor{
		Triangle: {
			Fill:   color.NRGBA{100, 149, 237, 180}, // Cornflower blue
			Stroke: color.NRGBA{0, 0, 139, 255},     // Dark blue
			Vertex: color.NRGBA{255, 0, 0, 255},     // Red
		},
		ConvexQuadrilateral: {
			Fill:   color.NRGBA{144, 238, 144, 150}, // Light green
			Stroke: color.NRGBA{0, 100, 0, 255},     // Dark green
			Vertex: color.NRGBA{255, 0, 0, 255},     // Red
		},
	}
}

// nrgbaToRGBA converts color.NRGBA to color.RGBA by premultiplying alpha
// This is needed for the canvas library which expects premultiplied RGBA
func nrgbaToRGBA(c color.NRGBA) color.RGBA {
	if c.A == 0 {
		return color.RGBA{0, 0, 0, 0}
	}
	if c.A == 255 {
		return color.RGBA{c.R, c.G, c.B, 255}
	}
	alpha32 := uint32(c.A)
	return color.RGBA{
		R: uint8((uint32(c.R) * alpha32) / 255),
		G: uint8((uint32(c.G) * alpha32) / 255),
		B: uint8((uint32(c.B) * alpha32) / 255),
		A: c.A,
	}
}

// SketchRenderer renders an accepted polygon as a vector sketch with a
// coordinate grid and vertex markers.
type SketchRenderer struct {
	Colors      map[Kind]ShapeColor
	Padding     float64           // Padding around the shape in world units
	GridSpacing float64           // Grid line spacing in world units; 0 disables
	Scale       float64           // Canvas millimeters per world unit
	Resolution  canvas.Resolution // Resolution for PNG output (default: 300 DPI)
}

// NewSketchRenderer creates a sketch renderer from config, falling back
// to defaults for unset fields.
func NewSketchRenderer(cfg SketchConfig) *SketchRenderer {
	return &SketchRenderer{
		Colors:      DefaultShapeColors(),
		Padding:     cfg.GetPadding(),
		GridSpacing: cfg.GetGridSpacing(),
		Scale:       cfg.GetScale(),
		Resolution:  canvas.DPI(cfg.GetResolution()),
	}
}

// canvasRenderer is the subset of the canvas renderer API shared by the
// svg and rasterizer backends
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// RenderSVG writes the polygon sketch as an SVG to the provided writer.
func (r *SketchRenderer) RenderSVG(p *Polygon, w io.Writer) error {
	ring, err := p.Ring()
	if err != nil {
		return err
	}

	minX, minY, maxX, maxY := r.worldBounds(ring)
	width := (maxX - minX + 2*r.Padding) * r.Scale
	height := (maxY - minY + 2*r.Padding) * r.Scale

	svgRenderer := svg.New(w, width, height, nil)
	r.renderToCanvas(svgRenderer, p, ring, minX, minY, maxX, maxY, width, height)
	return svgRenderer.Close()
}

// RenderPNG writes the polygon sketch as a PNG to the provided writer.
// Unlike the SVG path, the raster output also carries vertex coordinate
// labels drawn with a bitmap font.
func (r *SketchRenderer) RenderPNG(p *Polygon, w io.Writer) error {
	ring, err := p.Ring()
	if err != nil {
		return err
	}

	minX, minY, maxX, maxY := r.worldBounds(ring)
	width := (maxX - minX + 2*r.Padding) * r.Scale
	height := (maxY - minY + 2*r.Padding) * r.Scale

	rast := rasterizer.New(width, height, r.Resolution, canvas.DefaultColorSpace)
	r.renderToCanvas(rast, p, ring, minX, minY, maxX, maxY, width, height)

	// Label vertices on the raster output. The rasterizer implements
	// draw.Image, so the font drawer writes into it directly. Canvas
	// coordinates have y up, the image raster has y down.
	dpmm := r.Resolution.DPMM()
	imgHeight := rast.Bounds().Dy()
	vertices, err := p.Vertices()
	if err != nil {
		return err
	}
	for i, v := range vertices {
		cx, cy := r.toCanvas(v, minX, minY)
		px := int(cx*dpmm) + 4
		py := imgHeight - int(cy*dpmm) - 4
		label := fmt.Sprintf("v%d (%g, %g)", i, v.X, v.Y)
		drawLabel(rast, px, py, label, color.RGBA{0, 0, 0, 255})
	}

	return png.Encode(w, rast)
}

// renderToCanvas renders the sketch to a canvas renderer (shared logic
// for SVG and PNG)
func (r *SketchRenderer) renderToCanvas(renderer canvasRenderer, p *Polygon, ring orb.Ring, minX, minY, maxX, maxY, width, height float64) {
	// Draw white background
	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: canvas.White}
	renderer.RenderPath(canvas.Rectangle(width, height), bgStyle, canvas.Identity)

	// Grid lines under the shape
	if r.GridSpacing > 0 {
		gridStyle := canvas.DefaultStyle
		gridStyle.Fill = canvas.Paint{Color: canvas.Transparent}
		gridStyle.Stroke = canvas.Paint{Color: canvas.Gray}
		gridStyle.StrokeWidth = 0.2
		gridStyle.Dashes = []float64{1.0, 1.0}

		for x := math.Floor((minX-r.Padding)/r.GridSpacing) * r.GridSpacing; x <= maxX+r.Padding; x += r.GridSpacing {
			gridPath := &canvas.Path{}
			x1, y1 := r.toCanvas(Point{X: x, Y: minY - r.Padding}, minX, minY)
			x2, y2 := r.toCanvas(Point{X: x, Y: maxY + r.Padding}, minX, minY)
			gridPath.MoveTo(x1, y1)
			gridPath.LineTo(x2, y2)
			renderer.RenderPath(gridPath, gridStyle, canvas.Identity)
		}
		for y := math.Floor((minY-r.Padding)/r.GridSpacing) * r.GridSpacing; y <= maxY+r.Padding; y += r.GridSpacing {
			gridPath := &canvas.Path{}
			x1, y1 := r.toCanvas(Point{X: minX - r.Padding, Y: y}, minX, minY)
			x2, y2 := r.toCanvas(Point{X: maxX + r.Padding, Y: y}, minX, minY)
			gridPath.MoveTo(x1, y1)
			gridPath.LineTo(x2, y2)
			renderer.RenderPath(gridPath, gridStyle, canvas.Identity)
		}
	}

	sc := r.colorFor(p.Kind())

	// Filled shape outline
	shapeStyle := canvas.DefaultStyle
	shapeStyle.Fill = canvas.Paint{Color: nrgbaToRGBA(sc.Fill)}
	shapeStyle.Stroke = canvas.Paint{Color: nrgbaToRGBA(sc.Stroke)}
	shapeStyle.StrokeWidth = 0.5

	shapePath := &canvas.Path{}
	for i, pt := range ring[:len(ring)-1] {
		cx, cy := r.toCanvas(Point{X: pt[0], Y: pt[1]}, minX, minY)
		if i == 0 {
			shapePath.MoveTo(cx, cy)
		} else {
			shapePath.LineTo(cx, cy)
		}
	}
	shapePath.Close()
	renderer.RenderPath(shapePath, shapeStyle, canvas.Identity)

	// Vertex markers
	vertexStyle := canvas.DefaultStyle
	vertexStyle.Fill = canvas.Paint{Color: nrgbaToRGBA(sc.Vertex)}
	vertexStyle.Stroke = canvas.Paint{Color: canvas.Black}
	vertexStyle.StrokeWidth = 0.2

	for _, pt := range ring[:len(ring)-1] {
		cx, cy := r.toCanvas(Point{X: pt[0], Y: pt[1]}, minX, minY)
		marker := canvas.Circle(1.0)
		marker = marker.Translate(cx, cy)
		renderer.RenderPath(marker, vertexStyle, canvas.Identity)
	}
}

// toCanvas transforms a world point to canvas millimeters.
func (r *SketchRenderer) toCanvas(p Point, minX, minY float64) (float64, float64) {
	return (p.X - minX + r.Padding) * r.Scale, (p.Y - minY + r.Padding) * r.Scale
}

func (r *SketchRenderer) colorFor(kind Kind) ShapeColor {
	if sc, ok := r.Colors[kind]; ok {
		return sc
	}
	return ShapeColor{
		Fill:   color.NRGBA{200, 200, 200, 180},
		Stroke: color.NRGBA{0, 0, 0, 255},
		Vertex: color.NRGBA{255, 0, 0, 255},
	}
}

func (r *SketchRenderer) worldBounds(ring orb.Ring) (minX, minY, maxX, maxY float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, pt := range ring {
		if pt[0] < minX {
			minX = pt[0]
		}
		if pt[1] < minY {
			minY = pt[1]
		}
		if pt[0] > maxX {
			maxX = pt[0]
		}
		if pt[1] > maxY {
			maxY = pt[1]
		}
	}
	return
}

// drawLabel renders text onto an image at the specified position
func drawLabel(img draw.Image, x, y int, text string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
