package transforms

import "github.com/willbeason/escape-fractal/pkg/geometry"

// DefaultEscapeRadiusSquared is |z|² past which z_n² + c is known to diverge:
// an escape radius of 2.
const DefaultEscapeRadiusSquared = 4.0

// Mandelbrot iterates z_{n+1} = z_n² + c from z_0 = 0.
type Mandelbrot struct {
	// EscapeRadiusSquared is the bailout bound on |z|². Zero means
	// DefaultEscapeRadiusSquared.
	EscapeRadiusSquared float64
}

// Next is one step of the recurrence.
func (m Mandelbrot) Next(z, c geometry.Complex) geometry.Complex {
	return z.Squared().Add(c)
}

func (m Mandelbrot) bailout() float64 {
	if m.EscapeRadiusSquared > 0 {
		return m.EscapeRadiusSquared
	}
	return DefaultEscapeRadiusSquared
}

// EscapeCount returns the 1-based iteration on which |z|² first exceeds the
// bailout, or maxIterations if it never does. maxIterations doubles as the
// "presumed inside the set" sentinel, so callers must treat
// count >= maxIterations as inside.
func (m Mandelbrot) EscapeCount(c geometry.Complex, maxIterations int) int {
	bailout := m.bailout()
	z := geometry.Complex{}

	for iteration := 1; iteration <= maxIterations; iteration++ {
		z = m.Next(z, c)
		if z.MagnitudeSquared() > bailout {
			return iteration
		}
	}

	return maxIterations
}

// EscapeCount evaluates c with the default escape radius.
func EscapeCount(c geometry.Complex, maxIterations int) int {
	return Mandelbrot{}.EscapeCount(c, maxIterations)
}
