package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kwv/shapecheck/geom"
)

// App encapsulates the console shell state and dependencies
type App struct {
	Config *geom.Config

	in  *bufio.Scanner
	out io.Writer
}

// NewApp creates a new App reading from in and writing to out
func NewApp(cfg *geom.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = &geom.Config{}
	}
	return &App{
		Config: cfg,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the interactive menu loop until the user quits or input
// is exhausted.
func (a *App) Run() error {
	fmt.Fprintln(a.out, "shapecheck: build a triangle or convex quadrilateral from vertices")

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1) triangle")
		fmt.Fprintln(a.out, "2) quadrilateral")
		fmt.Fprintln(a.out, "q) quit")
		fmt.Fprint(a.out, "> ")

		line, ok := a.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			a.buildShape(geom.Triangle)
		case "2":
			a.buildShape(geom.ConvexQuadrilateral)
		case "q", "quit", "exit":
			fmt.Fprintln(a.out, "bye")
			return nil
		case "":
			// Ignore blank lines
		default:
			fmt.Fprintf(a.out, "unknown choice %q\n", strings.TrimSpace(line))
		}
	}
}

// buildShape prompts for vertices until the polygon accepts them, then
// prints metrics and offers the shape menu. The retry loop is unbounded:
// the core rejects, the shell re-prompts.
func (a *App) buildShape(kind geom.Kind) {
	polygon, err := geom.NewPolygon(kind)
	if err != nil {
		// Kinds come from the menu, so this is unreachable short of a
		// programming error.
		log.Printf("creating %s: %v", kind, err)
		return
	}

	if !a.fillVertices(polygon) {
		return
	}

	a.printShape(polygon)
	a.shapeMenu(polygon)
}

// fillVertices reads vertex sets until one is accepted. Returns false
// when input is exhausted before acceptance.
func (a *App) fillVertices(p *geom.Polygon) bool {
	for {
		points, ok := a.readVertices(p.Kind())
		if !ok {
			return false
		}
		if err := p.SetVertices(points); err != nil {
			fmt.Fprintf(a.out, "rejected: %v\n", err)
			fmt.Fprintln(a.out, "try again")
			continue
		}
		return true
	}
}

// readVertices prompts for the kind's vertex count, one point per line.
// Parse failures re-prompt for the same vertex. Returns false when
// input is exhausted.
func (a *App) readVertices(kind geom.Kind) ([]geom.Point, bool) {
	n := kind.VertexCount()
	fmt.Fprintf(a.out, "enter %d vertices for the %s, one \"x,y\" pair per line\n", n, kind)

	points := make([]geom.Point, 0, n)
	for len(points) < n {
		fmt.Fprintf(a.out, "vertex %d: ", len(points))
		line, ok := a.readLine()
		if !ok {
			return nil, false
		}
		p, err := geom.ParsePoint(line)
		if err != nil {
			fmt.Fprintf(a.out, "  %v\n", err)
			continue
		}
		points = append(points, p)
	}
	return points, true
}

// printShape prints the label, normalized vertex order, and metrics.
func (a *App) printShape(p *geom.Polygon) {
	prec := a.Config.GetPrecision()

	vertices, err := p.Vertices()
	if err != nil {
		log.Printf("reading vertices: %v", err)
		return
	}
	area, err := p.Area()
	if err != nil {
		log.Printf("computing area: %v", err)
		return
	}
	perimeter, err := p.Perimeter()
	if err != nil {
		log.Printf("computing perimeter: %v", err)
		return
	}

	fmt.Fprintf(a.out, "valid %s\n", p.Describe())
	fmt.Fprint(a.out, "vertices (counter-clockwise):")
	for _, v := range vertices {
		fmt.Fprintf(a.out, " (%.*f, %.*f)", prec, v.X, prec, v.Y)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "area:      %.*f\n", prec, area)
	fmt.Fprintf(a.out, "perimeter: %.*f\n", prec, perimeter)
}

// shapeMenu offers follow-up actions on an accepted shape.
func (a *App) shapeMenu(p *geom.Polygon) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "r) re-enter vertices")
		fmt.Fprintln(a.out, "s) save sketch")
		fmt.Fprintln(a.out, "m) main menu")
		fmt.Fprint(a.out, "> ")

		line, ok := a.readLine()
		if !ok {
			return
		}

		switch strings.TrimSpace(line) {
		case "r":
			if !a.fillVertices(p) {
				return
			}
			a.printShape(p)
		case "s":
			fmt.Fprint(a.out, "output file: ")
			path, ok := a.readLine()
			if !ok {
				return
			}
			path = strings.TrimSpace(path)
			if path == "" {
				fmt.Fprintln(a.out, "no file given")
				continue
			}
			if err := a.saveSketch(p, path); err != nil {
				fmt.Fprintf(a.out, "sketch failed: %v\n", err)
				continue
			}
			fmt.Fprintf(a.out, "sketch written to %s\n", path)
		case "m", "":
			return
		default:
			fmt.Fprintf(a.out, "unknown choice %q\n", strings.TrimSpace(line))
		}
	}
}

// saveSketch renders the polygon to path. The format follows the file
// extension when recognized, otherwise the configured default.
func (a *App) saveSketch(p *geom.Polygon, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sketch file: %w", err)
	}
	defer f.Close()

	renderer := geom.NewSketchRenderer(a.Config.Sketch)

	format := a.Config.Sketch.GetFormat()
	switch {
	case strings.HasSuffix(path, ".svg"):
		format = "svg"
	case strings.HasSuffix(path, ".png"):
		format = "png"
	}

	if format == "png" {
		return renderer.RenderPNG(p, f)
	}
	return renderer.RenderSVG(p, f)
}

// RunCheck is the one-shot --check mode: validate the points as the
// named kind, print metrics, and optionally write a sketch. Returns an
// error on rejection so main can exit nonzero.
func (a *App) RunCheck(kindName, pointsSpec, sketchFile string) error {
	kind, ok := geom.KindFromName(strings.TrimSpace(kindName))
	if !ok {
		return fmt.Errorf("unknown shape kind %q (want triangle or quadrilateral)", kindName)
	}

	points, err := geom.ParsePoints(pointsSpec)
	if err != nil {
		return err
	}

	polygon, err := geom.NewPolygon(kind)
	if err != nil {
		return err
	}
	if err := polygon.SetVertices(points); err != nil {
		return err
	}

	a.printShape(polygon)

	if sketchFile != "" {
		if err := a.saveSketch(polygon, sketchFile); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "sketch written to %s\n", sketchFile)
	}
	return nil
}

// readLine reads one line of input, returning false at EOF.
func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}
