package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestWindowAround(t *testing.T) {
	w := WindowAround(2.0, -0.5, 0.25, 2.0)
	want := Window{XMin: -2.5, XMax: 1.5, YMin: -0.75, YMax: 1.25}
	if w != want {
		t.Fatalf("WindowAround() = %+v, want %+v", w, want)
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestWindow_Validate(t *testing.T) {
	tcs := []struct {
		name string
		w    Window
	}{
		{"empty", Window{}},
		{"flat", Window{XMin: -1, XMax: 1, YMin: 0, YMax: 0}},
		{"inverted", Window{XMin: 1, XMax: -1, YMin: -1, YMax: 1}},
		{"nan", Window{XMin: math.NaN(), XMax: 1, YMin: -1, YMax: 1}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.w.Validate(); !errors.Is(err, ErrEmptyWindow) {
				t.Errorf("Validate() = %v, want %v", err, ErrEmptyWindow)
			}
		})
	}
}

func TestWindow_PixelToComplex_Corners(t *testing.T) {
	w := Window{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
	const width, height = 300, 200

	// Top-left pixel is the upper-left corner of the window.
	got := w.PixelToComplex(0, 0, width, height)
	if got != (Complex{Real: w.XMin, Imag: w.YMax}) {
		t.Errorf("PixelToComplex(0, 0) = %+v, want (%v, %v)", got, w.XMin, w.YMax)
	}

	// Bottom-right pixel approaches the lower-right corner.
	got = w.PixelToComplex(width-1, height-1, width, height)
	dx := w.Width() / width
	dy := w.Height() / height
	if math.Abs(got.Real-w.XMax) > dx*1.0001 {
		t.Errorf("PixelToComplex(w-1, h-1).Real = %v, want within %v of %v", got.Real, dx, w.XMax)
	}
	if math.Abs(got.Imag-w.YMin) > dy*1.0001 {
		t.Errorf("PixelToComplex(w-1, h-1).Imag = %v, want within %v of %v", got.Imag, dy, w.YMin)
	}

	// At exactly (width, height) the mapping reaches the corner.
	got = w.PixelToComplex(width, height, width, height)
	if got != (Complex{Real: w.XMax, Imag: w.YMin}) {
		t.Errorf("PixelToComplex(w, h) = %+v, want (%v, %v)", got, w.XMax, w.YMin)
	}
}

func TestWindow_PixelToComplex_VerticalFlip(t *testing.T) {
	w := Window{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

	top := w.PixelToComplex(5, 0, 10, 10)
	bottom := w.PixelToComplex(5, 9, 10, 10)
	if !(top.Imag > bottom.Imag) {
		t.Errorf("row 0 Imag = %v, row 9 Imag = %v: want rows to descend the imaginary axis",
			top.Imag, bottom.Imag)
	}
	if top.Imag != 1 {
		t.Errorf("row 0 Imag = %v, want 1", top.Imag)
	}
	if top.Real != 0 {
		t.Errorf("column 5 of 10 Real = %v, want 0", top.Real)
	}
}
