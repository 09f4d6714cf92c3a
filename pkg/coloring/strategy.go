// Package coloring maps escape counts to color indices.
//
// A color index is a hue fraction in [0, 1]. Index 0.0 is reserved for the
// fixed inside-set color; any other value is a hue for the host to expand.
package coloring

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIterations is returned for strategies with MaxIterations < 1.
	ErrInvalidIterations = errors.New("coloring: max iterations must be positive")

	// ErrInvalidBands is returned for banded strategies with fewer than one band.
	ErrInvalidBands = errors.New("coloring: bands must be positive")

	// ErrInvalidScaleFactor is returned for non-finite or non-positive scale factors.
	ErrInvalidScaleFactor = errors.New("coloring: scale factor must be positive and finite")

	// ErrUnknownKind is returned by Parse for unrecognised strategy names.
	ErrUnknownKind = errors.New("coloring: unknown strategy")
)

// Strategy converts an escape count into a color index.
//
// ColorIndex must be pure and defined for every count in [0, MaxIterations].
// A count >= MaxIterations is the "did not escape" sentinel.
type Strategy interface {
	MaxIterations() int
	ColorIndex(count int) float64
}

// Validator is implemented by strategies that can check their parameters.
type Validator interface {
	Validate() error
}

// Validate checks s if it implements Validator, and otherwise only its
// iteration cap.
func Validate(s Strategy) error {
	if s == nil {
		return fmt.Errorf("%w: nil strategy", ErrUnknownKind)
	}
	if v, ok := s.(Validator); ok {
		return v.Validate()
	}
	return validateIterations(s.MaxIterations())
}

func validateIterations(maxIterations int) error {
	if maxIterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIterations)
	}
	return nil
}
