// Package cli holds the flag bindings and logging setup shared by the
// commands under cmd/.
package cli

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/willbeason/escape-fractal/pkg/coloring"
	"github.com/willbeason/escape-fractal/pkg/zoom"
)

// kindValue is a pflag.Value for coloring.Kind.
type kindValue struct {
	kind *coloring.Kind
}

func (v kindValue) String() string {
	if v.kind == nil {
		return ""
	}
	return string(*v.kind)
}

func (v kindValue) Set(s string) error {
	k, err := coloring.Parse(s)
	if err != nil {
		return err
	}
	*v.kind = k
	return nil
}

func (kindValue) Type() string {
	return "strategy"
}

var _ pflag.Value = kindValue{}

// AddColoring registers the coloring strategy flags on fs.
func AddColoring(fs *pflag.FlagSet, cfg *coloring.Config) {
	fs.Var(kindValue{kind: &cfg.Kind}, "coloring",
		"coloring strategy: discrete, continuous or inside")
	fs.IntVar(&cfg.Bands, "bands", cfg.Bands,
		"number of hues for discrete coloring")
	fs.Float64Var(&cfg.ScaleFactor, "scale-factor", cfg.ScaleFactor,
		"count multiplier for continuous coloring; integers map every escape to the inside color")
}

// AddView registers the view flags shared by every renderer.
func AddView(fs *pflag.FlagSet, scale, centerX, centerY *float64, iterations, workers *int) {
	fs.Float64Var(scale, "scale", *scale, "half-width of the view in the complex plane")
	fs.Float64Var(centerX, "center-x", *centerX, "real part of the view center")
	fs.Float64Var(centerY, "center-y", *centerY, "imaginary part of the view center")
	fs.IntVar(iterations, "iterations", *iterations, "escape iteration cap")
	fs.IntVar(workers, "workers", *workers, "goroutines per frame; below 2 renders serially")
}

// AddZoom registers the flags of a zoom session on fs.
func AddZoom(fs *pflag.FlagSet, cfg *zoom.Config) {
	AddView(fs, &cfg.Scale, &cfg.CenterX, &cfg.CenterY, &cfg.Iterations, &cfg.Workers)
	AddColoring(fs, &cfg.Coloring)

	fs.Float64Var(&cfg.Decay, "decay", cfg.Decay, "scale multiplier applied after each frame")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause between frames")
	fs.BoolVar(&cfg.Square, "square", cfg.Square, "render the largest square that fits the surface")
	fs.IntVar(&cfg.MaxFrames, "frames", cfg.MaxFrames, "stop after this many frames; 0 runs until interrupted")
	fs.Float64Var(&cfg.EscapeRadiusSquared, "escape-radius-squared", cfg.EscapeRadiusSquared,
		"bailout bound on |z|²; 0 uses 4")
}

// DefaultWorkers is the worker count the commands use unless told otherwise.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Logger returns a text logger on stderr, at Debug level if verbose.
func Logger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
