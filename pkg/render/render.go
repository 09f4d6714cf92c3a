// Package render computes escape-time color grids for a view window.
package render

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/escape-fractal/pkg/coloring"
	"github.com/willbeason/escape-fractal/pkg/geometry"
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

// Request describes one grid to render. The iteration cap comes from
// Strategy.MaxIterations.
type Request struct {
	Width, Height int
	Window        geometry.Window
	Strategy      coloring.Strategy

	// EscapeRadiusSquared is the bailout on |z|². Zero selects
	// transforms.DefaultEscapeRadiusSquared, so a bailout of exactly 0 cannot
	// be asked for; use a small positive value instead.
	EscapeRadiusSquared float64

	// Workers is the number of goroutines sharing the rows. Values below 2
	// render on the calling goroutine. The output does not depend on it.
	Workers int
}

// Validate rejects requests the renderer cannot honour.
func (r Request) Validate() error {
	if err := r.validateParams(); err != nil {
		return err
	}
	if err := r.Window.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}
	return nil
}

// validateParams checks everything but the window.
func (r Request) validateParams() error {
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, r.Width, r.Height)
	}
	if err := coloring.Validate(r.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStrategy, err)
	}
	if r.EscapeRadiusSquared < 0 || math.IsNaN(r.EscapeRadiusSquared) {
		return fmt.Errorf("%w: got %v", ErrInvalidEscapeRadius, r.EscapeRadiusSquared)
	}
	return nil
}

// Render computes the color grid for r.
//
// Every pixel is independent, so rows may be rendered in any order and by
// any number of workers. If ctx is cancelled the partial grid is dropped and
// ctx.Err() is returned.
func Render(ctx context.Context, r Request) (Grid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.render(ctx)
}

func (r Request) render(ctx context.Context) (Grid, error) {
	grid := NewGrid(r.Width, r.Height)

	workers := min(r.Workers, r.Height)
	if workers < 2 {
		for y, row := range grid {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r.renderRow(row, y)
		}
		return grid, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	rows := make(chan int)
	g.Go(func() error {
		defer close(rows)
		for y := 0; y < r.Height; y++ {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case rows <- y:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			// Each row is written by exactly one worker.
			for y := range rows {
				r.renderRow(grid[y], y)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return grid, nil
}

func (r Request) renderRow(row []float64, y int) {
	m := transforms.Mandelbrot{EscapeRadiusSquared: r.EscapeRadiusSquared}
	maxIterations := r.Strategy.MaxIterations()

	for x := range row {
		c := r.Window.PixelToComplex(x, y, r.Width, r.Height)
		row[x] = r.Strategy.ColorIndex(m.EscapeCount(c, maxIterations))
	}
}
