package zoom

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/willbeason/escape-fractal/pkg/coloring"
	"github.com/willbeason/escape-fractal/pkg/render"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("zoom: invalid config")

const (
	// DefaultDecay is the per-frame scale multiplier.
	DefaultDecay = 0.9

	// DefaultDelay is the pause between a frame's transition and the next render.
	DefaultDelay = 50 * time.Millisecond

	DefaultScale   = 2.0
	DefaultCenterX = -0.68
	DefaultCenterY = 0.45
)

// Config holds the parameters of a zoom session. Only the scale changes
// while a session runs.
type Config struct {
	// Scale is the initial half-width of the view.
	Scale float64

	// CenterX and CenterY are the focal point of the zoom.
	CenterX, CenterY float64

	// Iterations is the escape iteration cap for every frame.
	Iterations int

	// Decay multiplies Scale after each frame is shown. Must be in (0, 1).
	Decay float64

	// Delay is the pause before the next frame is rendered.
	Delay time.Duration

	Coloring            coloring.Config
	EscapeRadiusSquared float64

	// Workers is passed to render.Request.
	Workers int

	// Square renders the largest square that fits the surface.
	Square bool

	// MaxFrames stops the session after that many frames. Zero runs until
	// the context is cancelled.
	MaxFrames int
}

// DefaultConfig zooms from scale 2 toward (-0.68, 0.45) at render.LiveIterations.
func DefaultConfig() Config {
	return Config{
		Scale:      DefaultScale,
		CenterX:    DefaultCenterX,
		CenterY:    DefaultCenterY,
		Iterations: render.LiveIterations,
		Decay:      DefaultDecay,
		Delay:      DefaultDelay,
		Coloring:   coloring.DefaultConfig(),
	}
}

// Validate checks c and returns the coloring strategy it describes.
func (c Config) Validate() (coloring.Strategy, error) {
	switch {
	case !(c.Scale > 0) || math.IsInf(c.Scale, 0):
		return nil, fmt.Errorf("%w: scale %v must be positive and finite", ErrInvalidConfig, c.Scale)
	case math.IsNaN(c.CenterX) || math.IsInf(c.CenterX, 0) ||
		math.IsNaN(c.CenterY) || math.IsInf(c.CenterY, 0):
		return nil, fmt.Errorf("%w: center (%v, %v) must be finite", ErrInvalidConfig, c.CenterX, c.CenterY)
	case !(c.Decay > 0 && c.Decay < 1):
		return nil, fmt.Errorf("%w: decay %v must be in (0, 1)", ErrInvalidConfig, c.Decay)
	case c.Delay < 0:
		return nil, fmt.Errorf("%w: delay %v is negative", ErrInvalidConfig, c.Delay)
	case c.Workers < 0:
		return nil, fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	case c.MaxFrames < 0:
		return nil, fmt.Errorf("%w: max frames %d is negative", ErrInvalidConfig, c.MaxFrames)
	case c.EscapeRadiusSquared < 0 || math.IsNaN(c.EscapeRadiusSquared):
		return nil, fmt.Errorf("%w: escape radius squared %v is negative", ErrInvalidConfig, c.EscapeRadiusSquared)
	}

	strategy, err := c.Coloring.New(c.Iterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return strategy, nil
}
