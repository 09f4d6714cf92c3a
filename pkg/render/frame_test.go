package render

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/willbeason/escape-fractal/pkg/coloring"
	"github.com/willbeason/escape-fractal/pkg/geometry"
)

func TestGenerateFrame(t *testing.T) {
	buffer, err := GenerateFrame(20, 10, 2.0, -0.68, 0.45)
	if err != nil {
		t.Fatal(err)
	}
	if len(buffer) != 200 {
		t.Fatalf("len(GenerateFrame()) = %d, want 200", len(buffer))
	}
	for i, v := range buffer {
		if v < 0 || v > 1 {
			t.Errorf("buffer[%d] = %v, want in [0, 1]", i, v)
		}
	}
}

func TestGenerateFrame_MatchesRender(t *testing.T) {
	const width, height = 12, 8
	const scale, cx, cy = 1.5, -0.5, 0.1

	buffer, err := GenerateFrame(width, height, scale, cx, cy)
	if err != nil {
		t.Fatal(err)
	}

	grid, err := Render(context.Background(), Request{
		Width:    width,
		Height:   height,
		Window:   geometry.WindowAround(scale, cx, cy, float64(width)/float64(height)),
		Strategy: coloring.NewDiscrete(LiveIterations),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := grid.Flatten()
	for i := range want {
		if math.Float64bits(buffer[i]) != math.Float64bits(want[i]) {
			t.Fatalf("buffer[%d] = %v, want %v", i, buffer[i], want[i])
		}
	}
}

func TestFrame_Request(t *testing.T) {
	f := Frame{Width: 200, Height: 100, Scale: 2, CenterX: -1, CenterY: 0.5, Strategy: coloring.NewDiscrete(10)}

	r, err := f.Request()
	if err != nil {
		t.Fatal(err)
	}
	want := geometry.Window{XMin: -3, XMax: 1, YMin: -0.5, YMax: 1.5}
	if r.Window != want {
		t.Errorf("Request().Window = %+v, want %+v", r.Window, want)
	}
}

func TestGenerateFrame_Rejects(t *testing.T) {
	tcs := []struct {
		name          string
		width, height int
		scale         float64
		want          error
	}{
		{"zero width", 0, 10, 1, ErrInvalidDimensions},
		{"zero height", 10, 0, 1, ErrInvalidDimensions},
		{"negative", -4, 10, 1, ErrInvalidDimensions},
		{"zero scale", 10, 10, 0, ErrInvalidScale},
		{"negative scale", 10, 10, -1, ErrInvalidScale},
		{"infinite scale", 10, 10, math.Inf(1), ErrInvalidScale},
		{"nan scale", 10, 10, math.NaN(), ErrInvalidScale},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			buffer, err := GenerateFrame(tc.width, tc.height, tc.scale, 0, 0)
			if !errors.Is(err, tc.want) {
				t.Errorf("GenerateFrame() error = %v, want %v", err, tc.want)
			}
			if buffer != nil {
				t.Errorf("GenerateFrame() = %v, want nil", buffer)
			}
		})
	}
}

func TestGenerateFrame_PrecisionFloor(t *testing.T) {
	const width, height = 4, 4

	for _, scale := range []float64{1e-17, 1e-300, math.SmallestNonzeroFloat64} {
		buffer, err := GenerateFrame(width, height, scale, -0.68, 0.45)
		if err != nil {
			t.Fatalf("GenerateFrame(scale=%v) error = %v", scale, err)
		}
		if len(buffer) != width*height {
			t.Fatalf("len(GenerateFrame(scale=%v)) = %d, want %d", scale, len(buffer), width*height)
		}
		// Every pixel maps to the center, so the frame is one flat color.
		for i, v := range buffer {
			if v != buffer[0] {
				t.Errorf("scale=%v: buffer[%d] = %v, want %v", scale, i, v, buffer[0])
			}
		}
	}
}

func TestFrame_RejectsNonFiniteCenter(t *testing.T) {
	f := Frame{Width: 2, Height: 2, Scale: 1, CenterX: math.NaN(), Strategy: coloring.NewDiscrete(10)}
	if _, err := f.Render(context.Background()); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Render() = %v, want %v", err, ErrInvalidWindow)
	}
}

func TestRequest_CollapsedWindowStillRejected(t *testing.T) {
	r := Request{
		Width:    4,
		Height:   4,
		Window:   geometry.WindowAround(1e-17, -0.68, 0.45, 1),
		Strategy: coloring.NewDiscrete(LiveIterations),
	}
	if _, err := Render(context.Background(), r); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Render() = %v, want %v", err, ErrInvalidWindow)
	}
}
