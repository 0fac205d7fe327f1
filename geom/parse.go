package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePoint parses a single coordinate pair. Both "x,y" and "x y"
// separators are accepted, with surrounding whitespace ignored.
func ParsePoint(line string) (Point, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Point{}, fmt.Errorf("empty coordinate line: %w", ErrInvalidInput)
	}

	var parts []string
	if strings.Contains(line, ",") {
		parts = strings.SplitN(line, ",", 2)
	} else {
		parts = strings.Fields(line)
	}
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("expected two coordinates in %q: %w", line, ErrInvalidInput)
	}

	x, err := parseCoord(parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoord(parts[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// ParsePoints parses a whitespace-separated list of "x,y" pairs, the
// format used by the --points CLI flag.
func ParsePoints(s string) ([]Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no coordinate pairs in %q: %w", s, ErrInvalidInput)
	}
	points := make([]Point, 0, len(fields))
	for _, f := range fields {
		p, err := ParsePoint(f)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q: %w", strings.TrimSpace(s), ErrInvalidInput)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite: %w", strings.TrimSpace(s), ErrInvalidInput)
	}
	return v, nil
}
