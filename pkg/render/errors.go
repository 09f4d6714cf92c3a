package render

import "errors"

// Sentinel errors for render requests. All are contract violations caught
// before any pixel is computed.
var (
	// ErrInvalidDimensions is returned for grids with a zero or negative side.
	ErrInvalidDimensions = errors.New("render: width and height must be positive")

	// ErrInvalidStrategy wraps the coloring error for a missing or misconfigured strategy.
	ErrInvalidStrategy = errors.New("render: invalid coloring strategy")

	// ErrInvalidWindow wraps the geometry error for an empty view window.
	ErrInvalidWindow = errors.New("render: invalid view window")

	// ErrInvalidScale is returned for frame scales that are not positive and finite.
	ErrInvalidScale = errors.New("render: scale must be positive and finite")

	// ErrInvalidEscapeRadius is returned for negative or NaN escape radii.
	ErrInvalidEscapeRadius = errors.New("render: escape radius squared must not be negative")
)
