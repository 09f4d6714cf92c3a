package main

import (
	"context"
	"errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/zoom"
	"image"
	"image/color"
	"sync"
	"time"
)

// viewer is both the ebiten game that owns the window and the zoom.Display
// the session hands frames to.
type viewer struct {
	session    *zoom.Session
	task       *zoom.Task
	transition time.Duration

	mu      sync.Mutex
	pending *image.RGBA
	decay   float64

	// Owned by the ebiten goroutine.
	frame *ebiten.Image
	start time.Time
}

func newViewer(transition time.Duration) *viewer {
	return &viewer{transition: transition, decay: zoom.DefaultDecay}
}

// Show queues f for drawing and blocks for the length of its zoom-in.
func (v *viewer) Show(ctx context.Context, f zoom.Frame) error {
	img, err := palette.Image(f.Buffer, f.Width, f.Height)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.pending = img
	v.decay = f.Decay
	v.mu.Unlock()

	t := time.NewTimer(v.transition)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (v *viewer) Update() error {
	select {
	case <-v.task.Done():
		err := v.task.Err()
		switch {
		case errors.Is(err, zoom.ErrScaleExhausted):
			// Keep the last frame on screen until the window is closed.
		case err != nil:
			return err
		default:
			return ebiten.Termination
		}
	default:
	}

	v.mu.Lock()
	pending := v.pending
	v.pending = nil
	v.mu.Unlock()

	if pending != nil {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImageFromImage(pending)
		v.start = time.Now()
	}

	return nil
}

// zoomFactor is the magnification of the current frame at time now.
func (v *viewer) zoomFactor(now time.Time) float64 {
	v.mu.Lock()
	decay := v.decay
	v.mu.Unlock()

	return zoomAt(now.Sub(v.start), v.transition, decay)
}

// zoomAt is the magnification elapsed into a transition of length d that
// ends at 1/decay. Without a transition frames are shown unscaled.
func zoomAt(elapsed, d time.Duration, decay float64) float64 {
	if d <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(d)
	return 1 + (1/decay-1)*palette.EaseInOut(t)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if v.frame == nil {
		return
	}

	fb := v.frame.Bounds()
	sb := screen.Bounds()
	factor := v.zoomFactor(time.Now())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(fb.Dx())/2, -float64(fb.Dy())/2)
	op.GeoM.Scale(factor, factor)
	op.GeoM.Translate(float64(sb.Dx())/2, float64(sb.Dy())/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(v.frame, op)
}

// Layout renders at the window's own resolution and reports every size
// change to the session.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.session.Resize(outsideWidth, outsideHeight)

	// A minimised window has no area; the session idles while ebiten still
	// needs a positive screen.
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
