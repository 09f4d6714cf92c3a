// Package palette turns color-index buffers into images, the part of the
// pipeline that belongs to the host rather than the engine.
package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrBufferSize is returned when a buffer does not hold width*height indices.
var ErrBufferSize = errors.New("palette: buffer length does not match dimensions")

// Inside is the color of index 0.0.
var Inside = color.RGBA{A: 0xff}

// Hue expands a color index to a fully saturated color with hue
// index*360°. Index 0.0 is the inside color.
func Hue(index float64) color.RGBA {
	if index == 0.0 {
		return Inside
	}

	h := math.Mod(index, 1.0) * 6.0
	if h < 0 {
		h += 6.0
	}
	sector := int(h)
	f := h - float64(sector)

	up := uint8(math.Round(f * 0xff))
	down := 0xff - up

	switch sector {
	case 0:
		return color.RGBA{R: 0xff, G: up, A: 0xff}
	case 1:
		return color.RGBA{R: down, G: 0xff, A: 0xff}
	case 2:
		return color.RGBA{G: 0xff, B: up, A: 0xff}
	case 3:
		return color.RGBA{G: down, B: 0xff, A: 0xff}
	case 4:
		return color.RGBA{R: up, B: 0xff, A: 0xff}
	default:
		return color.RGBA{R: 0xff, B: down, A: 0xff}
	}
}

// Image paints a row-major buffer of color indices into a new image.
func Image(buffer []float64, width, height int) (*image.RGBA, error) {
	if width < 1 || height < 1 || len(buffer) != width*height {
		return nil, fmt.Errorf("%w: %d indices for %dx%d", ErrBufferSize, len(buffer), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	Paint(img, buffer)
	return img, nil
}

// Paint writes buffer into img's pixels in place. The buffer must hold one
// index per pixel of img.
func Paint(img *image.RGBA, buffer []float64) {
	width := img.Rect.Dx()
	for i, index := range buffer {
		x, y := i%width, i/width
		c := Hue(index)

		p := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
		img.Pix[p+0] = c.R
		img.Pix[p+1] = c.G
		img.Pix[p+2] = c.B
		img.Pix[p+3] = c.A
	}
}
