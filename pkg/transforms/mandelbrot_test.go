package transforms

import (
	"github.com/willbeason/escape-fractal/pkg/geometry"
	"testing"
)

func TestEscapeCount_OutsideRadiusEscapesFirstStep(t *testing.T) {
	for _, c := range []geometry.Complex{
		{Real: 3},
		{Real: -3},
		{Imag: 2.5},
		{Real: 2, Imag: 2},
	} {
		if got := EscapeCount(c, 50); got != 1 {
			t.Errorf("EscapeCount(%+v, 50) = %d, want 1", c, got)
		}
	}
}

func TestEscapeCount_OriginNeverEscapes(t *testing.T) {
	for _, n := range []int{1, 2, 50, 100, 1000} {
		if got := EscapeCount(geometry.Complex{}, n); got != n {
			t.Errorf("EscapeCount(0, %d) = %d, want %d", n, got, n)
		}
	}
}

func TestEscapeCount_KnownPoints(t *testing.T) {
	tcs := []struct {
		name string
		c    geometry.Complex
		max  int
		want int
	}{
		// z1 = 1, z2 = 2, z3 = 5: |z3|² = 25 > 4.
		{name: "one", c: geometry.Complex{Real: 1}, max: 50, want: 3},
		// Period-2 cycle 0, -1, 0, -1 stays bounded.
		{name: "minus one", c: geometry.Complex{Real: -1}, max: 50, want: 50},
		// z = -2 is fixed at |z|² = 4, which is not past the bailout.
		{name: "minus two", c: geometry.Complex{Real: -2}, max: 30, want: 30},
		// z1 = i, z2 = -1+i, z3 = -i, z4 = -1+i: bounded.
		{name: "i", c: geometry.Complex{Imag: 1}, max: 40, want: 40},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := EscapeCount(tc.c, tc.max); got != tc.want {
				t.Errorf("EscapeCount(%+v, %d) = %d, want %d", tc.c, tc.max, got, tc.want)
			}
		})
	}
}

func TestMandelbrot_EscapeRadius(t *testing.T) {
	c := geometry.Complex{Real: 1}

	// With a bailout of 100, z = 1, 2, 5, 26: |26|² = 676 is the first past it.
	m := Mandelbrot{EscapeRadiusSquared: 100}
	if got := m.EscapeCount(c, 50); got != 4 {
		t.Errorf("EscapeCount() with radius² 100 = %d, want 4", got)
	}

	// A bailout below |z1|² escapes on the first step.
	m = Mandelbrot{EscapeRadiusSquared: 0.5}
	if got := m.EscapeCount(c, 50); got != 1 {
		t.Errorf("EscapeCount() with radius² 0.5 = %d, want 1", got)
	}
}

func TestMandelbrot_Next(t *testing.T) {
	got := Mandelbrot{}.Next(geometry.Complex{Real: 1, Imag: 1}, geometry.Complex{Real: 0.5, Imag: -1})
	// (1+i)² = 2i; + (0.5 - i) = 0.5 + i.
	want := geometry.Complex{Real: 0.5, Imag: 1}
	if got != want {
		t.Errorf("Next() = %+v, want %+v", got, want)
	}
}

func TestEscapeCount_Range(t *testing.T) {
	const maxIterations = 25
	w := geometry.Window{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := w.PixelToComplex(x, y, 20, 20)
			got := EscapeCount(c, maxIterations)
			if got < 1 || got > maxIterations {
				t.Fatalf("EscapeCount(%+v) = %d, want in [1, %d]", c, got, maxIterations)
			}
		}
	}
}

func BenchmarkEscapeCount(b *testing.B) {
	c := geometry.Complex{Real: -0.743, Imag: 0.131}
	for i := 0; i < b.N; i++ {
		EscapeCount(c, 1000)
	}
}
