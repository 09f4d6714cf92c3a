package coloring

import (
	"fmt"
	"strings"
)

// Kind names a Strategy implementation.
type Kind string

const (
	KindDiscrete   Kind = "discrete"
	KindContinuous Kind = "continuous"
	KindInside     Kind = "inside"
)

// Kinds lists every selectable strategy.
var Kinds = []Kind{KindDiscrete, KindContinuous, KindInside}

// DefaultScaleFactor is the Continuous scale factor used when none is given.
const DefaultScaleFactor = 5.0

// Parse returns the Kind named by s, ignoring case.
func Parse(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Config selects and parameterises a Strategy independently of its
// iteration cap, so one Config can serve renders at different caps.
type Config struct {
	Kind        Kind
	Bands       int
	ScaleFactor float64
}

func DefaultConfig() Config {
	return Config{
		Kind:        KindDiscrete,
		Bands:       DefaultBands,
		ScaleFactor: DefaultScaleFactor,
	}
}

// New builds the configured strategy for maxIterations and validates it.
func (c Config) New(maxIterations int) (Strategy, error) {
	var s Strategy
	switch c.Kind {
	case KindDiscrete, "":
		s = Discrete{Iterations: maxIterations, Bands: c.Bands}
	case KindContinuous:
		s = Continuous{Iterations: maxIterations, ScaleFactor: c.ScaleFactor}
	case KindInside:
		s = Inside{Iterations: maxIterations}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}

	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}
