package coloring

import "fmt"

// DefaultBands is the number of hues Discrete cycles through by default.
const DefaultBands = 16

// Discrete colors by iteration band, giving hard edges between counts.
type Discrete struct {
	Iterations int
	Bands      int
}

// NewDiscrete returns a Discrete strategy with DefaultBands.
func NewDiscrete(maxIterations int) Discrete {
	return Discrete{Iterations: maxIterations, Bands: DefaultBands}
}

func (d Discrete) MaxIterations() int {
	return d.Iterations
}

// ColorIndex is 0.0 inside the set, otherwise (count mod Bands) / Bands.
func (d Discrete) ColorIndex(count int) float64 {
	if count >= d.Iterations {
		return 0.0
	}
	return float64(count%d.Bands) / float64(d.Bands)
}

func (d Discrete) Validate() error {
	if err := validateIterations(d.Iterations); err != nil {
		return err
	}
	if d.Bands < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBands, d.Bands)
	}
	return nil
}

var _ Strategy = Discrete{}
