// Package zoom drives an endless zoom into the Mandelbrot set, rendering one
// frame per step at a geometrically shrinking scale and handing each frame
// to a host Display.
package zoom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/willbeason/escape-fractal/pkg/coloring"
	"github.com/willbeason/escape-fractal/pkg/render"
)

// ErrNilDisplay is returned by New when no Display is given.
var ErrNilDisplay = errors.New("zoom: display is nil")

// ErrScaleExhausted is returned by Run once the scale has decayed to zero.
//
// Long before that, at a scale near 1e-16*|center|, the window edges round
// onto the center and frames degrade into flat blocks. Those frames are
// still rendered and shown. Only at zero, after roughly 7000 frames at the
// default decay, is there no view left to render.
var ErrScaleExhausted = errors.New("zoom: scale decayed to zero")

// State is where a Session is in its frame cycle.
type State int32

const (
	// Idle means there is no surface with a non-zero area to render to.
	Idle State = iota
	// Rendering means the grid for the current scale is being computed.
	Rendering
	// Transitioning means the Display is showing the latest frame.
	Transitioning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case Transitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Frame is one rendered step of a zoom.
type Frame struct {
	// Index counts frames from 0 within a session.
	Index int

	Width, Height int

	// Scale is the half-width the frame was rendered at.
	Scale            float64
	CenterX, CenterY float64

	// Decay is the scale ratio to the next frame.
	Decay float64

	// Buffer holds Width*Height color indices, row-major. It belongs to the
	// Display once handed over.
	Buffer []float64
}

// Display is the host side of a session.
type Display interface {
	// Show displays f and returns once its transition has finished. The
	// session renders nothing else until Show returns. Show should return
	// promptly once ctx is done.
	Show(ctx context.Context, f Frame) error
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(ctx context.Context, f Frame) error

func (fn DisplayFunc) Show(ctx context.Context, f Frame) error {
	return fn(ctx, f)
}

// Session owns the zoom state. Only Run changes the scale; Resize may be
// called from any goroutine.
type Session struct {
	cfg      Config
	strategy coloring.Strategy
	display  Display

	// resized wakes an idle Run after Resize.
	resized chan struct{}

	mu            sync.Mutex
	state         State
	scale         float64
	frames        int
	width, height int
}

// New validates cfg and returns an Idle session that shows frames on display.
func New(cfg Config, display Display) (*Session, error) {
	if display == nil {
		return nil, ErrNilDisplay
	}

	strategy, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Session{
		cfg:      cfg,
		strategy: strategy,
		display:  display,
		resized:  make(chan struct{}, 1),
		scale:    cfg.Scale,
	}, nil
}

// Resize records the surface size. Scale and center are unaffected. A size
// with no area parks the session in Idle until a usable size arrives.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	changed := s.width != width || s.height != height
	s.width, s.height = width, height
	s.mu.Unlock()

	if !changed {
		return
	}

	Logger().Info("zoom: surface resized", slog.Int("width", width), slog.Int("height", height))

	select {
	case s.resized <- struct{}{}:
	default:
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

func (s *Session) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// surface returns the size to render at, or ok == false if there is none.
func (s *Session) surface() (width, height int, ok bool) {
	s.mu.Lock()
	width, height = s.width, s.height
	s.mu.Unlock()

	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	if s.cfg.Square {
		side := min(width, height)
		return side, side, true
	}
	return width, height, true
}

// advance applies one step of decay after a frame has been shown.
func (s *Session) advance() (frames int, scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale *= s.cfg.Decay
	s.frames++
	return s.frames, s.scale
}

// Run renders and shows frames until ctx is done or Config.MaxFrames frames
// have been shown. It returns ctx.Err() when cancelled, nil when the frame
// limit is reached and ErrScaleExhausted when the scale underflows to zero.
// A frame that is cancelled mid-render is dropped without changing the scale.
//
// Run must not be called concurrently with itself.
func (s *Session) Run(ctx context.Context) error {
	log := Logger()
	log.Info("zoom: session started",
		slog.Float64("scale", s.Scale()),
		slog.Float64("centerX", s.cfg.CenterX),
		slog.Float64("centerY", s.cfg.CenterY))
	defer func() {
		s.setState(Idle)
		log.Info("zoom: session stopped", slog.Int("frames", s.Frames()), slog.Float64("scale", s.Scale()))
	}()

	for {
		width, height, ok := s.surface()
		if !ok {
			s.setState(Idle)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.resized:
				continue
			}
		}

		if err := s.step(ctx, width, height); err != nil {
			return err
		}

		frames, scale := s.advance()
		if s.cfg.MaxFrames > 0 && frames >= s.cfg.MaxFrames {
			return nil
		}
		if scale == 0 {
			return ErrScaleExhausted
		}

		if err := pause(ctx, s.cfg.Delay); err != nil {
			return err
		}
	}
}

// step renders one frame at the current scale and waits for the display.
func (s *Session) step(ctx context.Context, width, height int) error {
	s.setState(Rendering)

	scale := s.Scale()
	index := s.Frames()

	f := render.Frame{
		Width:               width,
		Height:              height,
		Scale:               scale,
		CenterX:             s.cfg.CenterX,
		CenterY:             s.cfg.CenterY,
		Strategy:            s.strategy,
		EscapeRadiusSquared: s.cfg.EscapeRadiusSquared,
		Workers:             s.cfg.Workers,
	}

	start := time.Now()
	buffer, err := f.Render(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("zoom: render frame %d: %w", index, err)
	}

	Logger().Debug("zoom: frame rendered",
		slog.Int("frame", index),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Float64("scale", scale),
		slog.Duration("elapsed", time.Since(start)))

	s.setState(Transitioning)

	err = s.display.Show(ctx, Frame{
		Index:   index,
		Width:   width,
		Height:  height,
		Scale:   scale,
		CenterX: s.cfg.CenterX,
		CenterY: s.cfg.CenterY,
		Decay:   s.cfg.Decay,
		Buffer:  buffer,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("zoom: show frame %d: %w", index, err)
	}

	return nil
}

// pause waits for d or until ctx is done, whichever is first.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	Logger().Debug("zoom: pacing", slog.Duration("delay", d))

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
