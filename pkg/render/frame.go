package render

import (
	"context"
	"fmt"
	"math"

	"github.com/willbeason/escape-fractal/pkg/coloring"
	"github.com/willbeason/escape-fractal/pkg/geometry"
)

const (
	// LiveIterations is the iteration cap for frames of a running zoom.
	LiveIterations = 50

	// DetailIterations is the iteration cap for one-off renders.
	DetailIterations = 100
)

// Frame describes a grid by zoom scale and focal point instead of by window.
type Frame struct {
	Width, Height int

	// Scale is the half-width of the view in the complex plane.
	Scale            float64
	CenterX, CenterY float64

	Strategy            coloring.Strategy
	EscapeRadiusSquared float64
	Workers             int
}

func (f Frame) AspectRatio() float64 {
	return float64(f.Width) / float64(f.Height)
}

// Request derives the window for f and returns the matching Request.
//
// Deep in a zoom the window edges round onto the center and the window has
// no area. That is the float64 precision floor, not an error: the Request is
// still returned and renders as flat blocks.
func (f Frame) Request() (Request, error) {
	if !(f.Scale > 0) || math.IsInf(f.Scale, 0) {
		return Request{}, fmt.Errorf("%w: got %v", ErrInvalidScale, f.Scale)
	}
	if math.IsNaN(f.CenterX) || math.IsInf(f.CenterX, 0) ||
		math.IsNaN(f.CenterY) || math.IsInf(f.CenterY, 0) {
		return Request{}, fmt.Errorf("%w: center (%v, %v) must be finite", ErrInvalidWindow, f.CenterX, f.CenterY)
	}

	r := Request{
		Width:               f.Width,
		Height:              f.Height,
		Strategy:            f.Strategy,
		EscapeRadiusSquared: f.EscapeRadiusSquared,
		Workers:             f.Workers,
	}
	if err := r.validateParams(); err != nil {
		return Request{}, err
	}
	r.Window = geometry.WindowAround(f.Scale, f.CenterX, f.CenterY, f.AspectRatio())
	return r, nil
}

// Render renders f and returns it flattened row-major.
func (f Frame) Render(ctx context.Context) ([]float64, error) {
	r, err := f.Request()
	if err != nil {
		return nil, err
	}

	grid, err := r.render(ctx)
	if err != nil {
		return nil, err
	}
	return grid.Flatten(), nil
}

// GenerateFrame renders a width×height frame of half-width scale around
// (centerX, centerY) with banded coloring at LiveIterations. The result has
// width*height color indices in [0, 1], row-major.
func GenerateFrame(width, height int, scale, centerX, centerY float64) ([]float64, error) {
	f := Frame{
		Width:    width,
		Height:   height,
		Scale:    scale,
		CenterX:  centerX,
		CenterY:  centerY,
		Strategy: coloring.NewDiscrete(LiveIterations),
	}
	return f.Render(context.Background())
}
