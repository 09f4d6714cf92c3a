package palette

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// EaseInOut maps linear progress t in [0, 1] to a curve that starts and ends
// slowly.
func EaseInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return t * t * (3 - 2*t)
}

// Zoom draws src into dst magnified by factor about the center of src.
// Parts of dst that fall outside src are left untouched.
func Zoom(dst *image.RGBA, src image.Image, factor float64) {
	b := src.Bounds()
	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2

	// dst = factor*(src - c) + c
	s2d := f64.Aff3{
		factor, 0, (1 - factor) * cx,
		0, factor, (1 - factor) * cy,
	}
	draw.BiLinear.Transform(dst, s2d, src, b, draw.Src, nil)
}

// Transition returns steps images that magnify src from 1 to 1/decay along
// EaseInOut. The last image is the view the next frame will render at
// scale*decay.
func Transition(src image.Image, decay float64, steps int) []*image.RGBA {
	if steps < 1 || decay <= 0 {
		return nil
	}

	target := 1 / decay
	frames := make([]*image.RGBA, steps)
	for i := range frames {
		t := EaseInOut(float64(i+1) / float64(steps))
		frames[i] = image.NewRGBA(src.Bounds())
		Zoom(frames[i], src, 1+(target-1)*t)
	}
	return frames
}
