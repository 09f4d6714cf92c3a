package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/internal/cli"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/zoom"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
)

type options struct {
	cfg zoom.Config

	width, height int
	transitions   int
	dir           string
	format        string
	verbose       bool
}

func mainCmd() *cobra.Command {
	opts := &options{
		cfg:    zoom.DefaultConfig(),
		width:  640,
		height: 640,
		dir:    "out",
		format: string(palette.PNG),
	}
	opts.cfg.MaxFrames = 30
	opts.cfg.Workers = cli.DefaultWorkers()

	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "Run a zoom session and write every frame to a directory",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&opts.width, "width", opts.width, "surface width in pixels")
	fs.IntVar(&opts.height, "height", opts.height, "surface height in pixels")
	cli.AddZoom(fs, &opts.cfg)
	fs.IntVar(&opts.transitions, "transitions", 0,
		"zoom-in images written between frames; 0 writes rendered frames only")
	fs.StringVarP(&opts.dir, "dir", "d", opts.dir, "output directory")
	fs.StringVar(&opts.format, "format", opts.format, "image format: png, bmp or tiff")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log every frame")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	zoom.SetLogger(cli.Logger(opts.verbose))

	format, err := palette.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.transitions < 0 {
		return fmt.Errorf("transitions must not be negative, got %d", opts.transitions)
	}

	if err := os.MkdirAll(opts.dir, os.ModePerm); err != nil {
		return err
	}

	w := &writer{
		dir:         opts.dir,
		format:      format,
		transitions: opts.transitions,
	}

	session, err := zoom.New(opts.cfg, w)
	if err != nil {
		return err
	}
	session.Resize(opts.width, opts.height)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = session.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		// Interrupted; frames written so far are complete.
		return nil
	case errors.Is(err, zoom.ErrScaleExhausted):
		zoom.Logger().Info("zoom reached the end of float64", slog.Int("frames", session.Frames()))
		return nil
	}
	return err
}

// writer is a zoom.Display that saves frames as image files.
type writer struct {
	dir         string
	format      palette.Format
	transitions int
}

func (w *writer) Show(ctx context.Context, f zoom.Frame) error {
	img, err := palette.Image(f.Buffer, f.Width, f.Height)
	if err != nil {
		return err
	}

	if err := w.save(fmt.Sprintf("frame-%04d", f.Index), img); err != nil {
		return err
	}

	for i, t := range palette.Transition(img, f.Decay, w.transitions) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.save(fmt.Sprintf("frame-%04d-%02d", f.Index, i+1), t); err != nil {
			return err
		}
	}

	return nil
}

func (w *writer) save(name string, img image.Image) error {
	path := filepath.Join(w.dir, name+w.format.Ext())

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := palette.Encode(f, img, w.format); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	zoom.Logger().Debug("wrote image", slog.String("path", path))
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
