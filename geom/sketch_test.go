package geom

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/tdewolff/canvas"
)

func sketchTriangle(t *testing.T) *Polygon {
	t.Helper()
	p, err := NewPolygon(Triangle)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	if err := p.SetVertices([]Point{{0, 0}, {4, 0}, {2, 3}}); err != nil {
		t.Fatalf("SetVertices: %v", err)
	}
	return p
}

func TestSketchRenderer_RenderSVG(t *testing.T) {
	p := sketchTriangle(t)
	r := NewSketchRenderer(SketchConfig{})

	var buf bytes.Buffer
	if err := r.RenderSVG(p, &buf); err != nil {
		t.Fatalf("Failed to render to SVG: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("SVG output is empty")
	}
	if !bytes.Contains(buf.Bytes(), []byte("<svg")) {
		t.Errorf("Output does not contain <svg tag")
	}
	if !bytes.Contains(buf.Bytes(), []byte("path")) {
		t.Errorf("Output does not contain path elements")
	}

	t.Logf("Generated SVG length: %d", buf.Len())
}

func TestSketchRenderer_RenderPNG(t *testing.T) {
	p := sketchTriangle(t)
	r := NewSketchRenderer(SketchConfig{Resolution: 96})

	var buf bytes.Buffer
	if err := r.RenderPNG(p, &buf); err != nil {
		t.Fatalf("Failed to render to PNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		t.Errorf("PNG has zero dimensions: %v", bounds)
	}

	t.Logf("Generated PNG size: %d bytes, dimensions: %dx%d", buf.Len(), bounds.Dx(), bounds.Dy())
}

func TestSketchRenderer_PNGResolutionScalesOutput(t *testing.T) {
	p := sketchTriangle(t)

	decode := func(res float64) int {
		r := NewSketchRenderer(SketchConfig{Resolution: res})
		var buf bytes.Buffer
		if err := r.RenderPNG(p, &buf); err != nil {
			t.Fatalf("Failed to render at %g DPI: %v", res, err)
		}
		img, err := png.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("Failed to decode PNG at %g DPI: %v", res, err)
		}
		return img.Bounds().Dx()
	}

	low := decode(72)
	high := decode(144)
	if high <= low {
		t.Errorf("144 DPI width %d not larger than 72 DPI width %d", high, low)
	}
}

func TestSketchRenderer_QuadrilateralSVG(t *testing.T) {
	p, err := NewPolygon(ConvexQuadrilateral)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	if err := p.SetVertices([]Point{{0, 0}, {3, 0}, {3, 3}, {0, 3}}); err != nil {
		t.Fatalf("SetVertices: %v", err)
	}

	r := NewSketchRenderer(SketchConfig{})
	var buf bytes.Buffer
	if err := r.RenderSVG(p, &buf); err != nil {
		t.Fatalf("Failed to render to SVG: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("<svg")) {
		t.Errorf("Output does not contain <svg tag")
	}
}

func TestSketchRenderer_GridDisabled(t *testing.T) {
	p := sketchTriangle(t)
	r := NewSketchRenderer(SketchConfig{})
	r.GridSpacing = 0

	var buf bytes.Buffer
	if err := r.RenderSVG(p, &buf); err != nil {
		t.Fatalf("Failed to render without grid: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("SVG output is empty")
	}
}

func TestSketchRenderer_NotReady(t *testing.T) {
	p, err := NewPolygon(Triangle)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}

	r := NewSketchRenderer(SketchConfig{})
	var buf bytes.Buffer

	if err := r.RenderSVG(p, &buf); !errors.Is(err, ErrNotReady) {
		t.Errorf("RenderSVG on empty polygon error = %v, want ErrNotReady", err)
	}
	if err := r.RenderPNG(p, &buf); !errors.Is(err, ErrNotReady) {
		t.Errorf("RenderPNG on empty polygon error = %v, want ErrNotReady", err)
	}
}

func TestNewSketchRendererDefaults(t *testing.T) {
	r := NewSketchRenderer(SketchConfig{})

	if r.Padding != 1.0 {
		t.Errorf("Padding = %g, want 1.0", r.Padding)
	}
	if r.GridSpacing != 1.0 {
		t.Errorf("GridSpacing = %g, want 1.0", r.GridSpacing)
	}
	if r.Scale != 20.0 {
		t.Errorf("Scale = %g, want 20.0", r.Scale)
	}
	if r.Resolution != canvas.DPI(300) {
		t.Errorf("Resolution = %v, want %v", r.Resolution, canvas.DPI(300))
	}
}
