package chart

import (
	"errors"
	"fmt"
	"math"
)

// DefaultHeight is the vertical resolution used when none is configured.
const DefaultHeight = 8

// ErrEmptyHistory is returned when rendering is requested with no observations.
var ErrEmptyHistory = errors.New("chart: no observations to render")

// Renderer turns one ordered series of values into height rows of glyphs,
// top row first. Renderers hold no state and are safe for concurrent use.
type Renderer interface {
	Render(values []float64) ([]string, error)
	Height() int
	Name() string
}

// New selects a renderer strategy by style name.
func New(style string, height int) (Renderer, error) {
	switch style {
	case "bars":
		return &BarRenderer{height: height}, nil
	case "line":
		return &LineRenderer{height: height}, nil
	default:
		return nil, fmt.Errorf("unknown chart style %q", style)
	}
}

// Levels normalizes values into integer rows in [0, height-1] using
// round-to-nearest. A constant series maps every value to height/2,
// a flat mid-line rather than a division by zero. Values must be non-empty.
func Levels(values []float64, height int) []int {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	levels := make([]int, len(values))
	if max == min {
		for i := range levels {
			levels[i] = height / 2
		}
		return levels
	}
	for i, v := range values {
		levels[i] = int(math.Round((v - min) / (max - min) * float64(height-1)))
	}
	return levels
}
