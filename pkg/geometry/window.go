package geometry

import (
	"errors"
	"fmt"
)

// ErrEmptyWindow is returned for windows with no area.
var ErrEmptyWindow = errors.New("geometry: window must have XMax > XMin and YMax > YMin")

// Window is the rectangle of the complex plane mapped onto a pixel grid.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// WindowAround returns the window centered on (centerX, centerY) whose
// half-width is scale and whose half-height is scale/aspectRatio.
// A smaller scale is a deeper zoom.
//
// Below roughly 1e-13*|center| for scale, neighbouring pixels map onto the
// same float64 and the image degrades into flat blocks.
func WindowAround(scale, centerX, centerY, aspectRatio float64) Window {
	halfWidth := scale
	halfHeight := scale / aspectRatio

	return Window{
		XMin: centerX - halfWidth,
		XMax: centerX + halfWidth,
		YMin: centerY - halfHeight,
		YMax: centerY + halfHeight,
	}
}

// Validate reports whether w spans a non-empty rectangle.
func (w Window) Validate() error {
	// Negated comparisons so NaN bounds are rejected too.
	if !(w.XMax > w.XMin) || !(w.YMax > w.YMin) {
		return fmt.Errorf("%w: %+v", ErrEmptyWindow, w)
	}
	return nil
}

func (w Window) Width() float64 {
	return w.XMax - w.XMin
}

func (w Window) Height() float64 {
	return w.YMax - w.YMin
}

// PixelToComplex maps pixel (x, y) of a width×height grid to its point in w.
// Pixel rows grow downward while the imaginary axis grows upward, so the
// vertical coordinate is flipped: row 0 is YMax.
//
// width and height must be positive.
func (w Window) PixelToComplex(x, y, width, height int) Complex {
	normX := float64(x) / float64(width)
	normY := float64(y) / float64(height)

	return Complex{
		Real: w.XMin + normX*w.Width(),
		Imag: w.YMin + (1.0-normY)*w.Height(),
	}
}
