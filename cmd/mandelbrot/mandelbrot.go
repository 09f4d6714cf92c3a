package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/internal/cli"
	"github.com/willbeason/escape-fractal/pkg/coloring"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/render"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type options struct {
	width, height int

	scale            float64
	centerX, centerY float64
	iterations       int
	workers          int
	coloring         coloring.Config

	out     string
	verbose bool
}

func mainCmd() *cobra.Command {
	opts := &options{
		width:      2560,
		height:     1440,
		scale:      2.0,
		centerX:    -0.5,
		iterations: render.DetailIterations,
		workers:    cli.DefaultWorkers(),
		coloring:   coloring.DefaultConfig(),
	}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render one view of the Mandelbrot set to an image",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&opts.width, "width", opts.width, "image width in pixels")
	fs.IntVar(&opts.height, "height", opts.height, "image height in pixels")
	cli.AddView(fs, &opts.scale, &opts.centerX, &opts.centerY, &opts.iterations, &opts.workers)
	cli.AddColoring(fs, &opts.coloring)
	fs.StringVarP(&opts.out, "out", "o", "",
		"output file; the extension picks png, bmp or tiff (default out/<timestamp>.png)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	log := cli.Logger(opts.verbose)

	out := opts.out
	if out == "" {
		out = filepath.Join("out", time.Now().Format("20060102150405")+palette.PNG.Ext())
	}
	format, err := palette.FormatOf(out)
	if err != nil {
		return err
	}

	strategy, err := opts.coloring.New(opts.iterations)
	if err != nil {
		return err
	}

	frame := render.Frame{
		Width:    opts.width,
		Height:   opts.height,
		Scale:    opts.scale,
		CenterX:  opts.centerX,
		CenterY:  opts.centerY,
		Strategy: strategy,
		Workers:  opts.workers,
	}

	start := time.Now()
	buffer, err := frame.Render(cmd.Context())
	if err != nil {
		return err
	}
	log.Debug("rendered",
		slog.Int("width", opts.width),
		slog.Int("height", opts.height),
		slog.Int("iterations", opts.iterations),
		slog.Duration("elapsed", time.Since(start)))

	img, err := palette.Image(buffer, opts.width, opts.height)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := palette.Encode(f, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info("wrote image", slog.String("path", out))
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
