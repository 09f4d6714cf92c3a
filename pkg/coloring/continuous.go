package coloring

import (
	"fmt"
	"math"
)

// Continuous wraps the scaled count into [0, 1) for a smooth gradient.
//
// Integer scale factors map every escaped count to 0.0, the same index as
// the inside color. Use a fractional factor to see a gradient.
type Continuous struct {
	Iterations  int
	ScaleFactor float64
}

func NewContinuous(maxIterations int, scaleFactor float64) Continuous {
	return Continuous{Iterations: maxIterations, ScaleFactor: scaleFactor}
}

func (c Continuous) MaxIterations() int {
	return c.Iterations
}

// ColorIndex is 0.0 inside the set, otherwise fmod(count*ScaleFactor, 1).
func (c Continuous) ColorIndex(count int) float64 {
	if count >= c.Iterations {
		return 0.0
	}
	return math.Mod(float64(count)*c.ScaleFactor, 1.0)
}

func (c Continuous) Validate() error {
	if err := validateIterations(c.Iterations); err != nil {
		return err
	}
	if !(c.ScaleFactor > 0) || math.IsInf(c.ScaleFactor, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScaleFactor, c.ScaleFactor)
	}
	return nil
}

var _ Strategy = Continuous{}
