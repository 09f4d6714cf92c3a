package main

import (
	"context"
	"errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/internal/cli"
	"github.com/willbeason/escape-fractal/pkg/zoom"
	"os"
	"time"
)

type options struct {
	cfg        zoom.Config
	width      int
	height     int
	transition time.Duration
	verbose    bool
}

func mainCmd() *cobra.Command {
	opts := &options{
		cfg:        zoom.DefaultConfig(),
		width:      640,
		height:     640,
		transition: 1500 * time.Millisecond,
	}
	opts.cfg.Square = true
	opts.cfg.Workers = cli.DefaultWorkers()

	cmd := &cobra.Command{
		Use:   "zoomview",
		Short: "Zoom into the Mandelbrot set in a window",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&opts.width, "width", opts.width, "initial window width")
	fs.IntVar(&opts.height, "height", opts.height, "initial window height")
	cli.AddZoom(fs, &opts.cfg)
	fs.DurationVar(&opts.transition, "transition", opts.transition, "length of the zoom-in animation per frame")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log every frame")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	zoom.SetLogger(cli.Logger(opts.verbose))

	v := newViewer(opts.transition)

	session, err := zoom.New(opts.cfg, v)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	v.task = session.Start(ctx)
	v.session = session

	ebiten.SetWindowTitle("zoomview")
	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(v)

	// Closing the window tears the surface down and ends the session.
	stopErr := v.task.Stop()
	if err == nil && stopErr != nil &&
		!errors.Is(stopErr, context.Canceled) && !errors.Is(stopErr, zoom.ErrScaleExhausted) {
		err = stopErr
	}
	return err
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
