package terrain

import (
	"errors"
	"math"
	"testing"

	"github.com/aquilax/go-perlin"
)

// constNoise returns the same sample everywhere.
type constNoise float64

func (c constNoise) Noise2D(x, y float64) float64 { return float64(c) }

// recordingNoise records every sample point and returns zero.
type recordingNoise struct {
	points [][2]float64
}

func (r *recordingNoise) Noise2D(x, y float64) float64 {
	r.points = append(r.points, [2]float64{x, y})
	return 0
}

// funcNoise adapts a function to NoiseSource.
type funcNoise func(x, y float64) float64

func (f funcNoise) Noise2D(x, y float64) float64 { return f(x, y) }

func TestGenerateHeightFieldOctaveSum(t *testing.T) {
	hf, err := GenerateHeightField(4, 3, 25, constNoise(1))
	if err != nil {
		t.Fatalf("GenerateHeightField() error: %v", err)
	}
	want := float32(1.75 * 25)
	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			if got := hf.At(x, z); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestGenerateHeightFieldSamplePoints(t *testing.T) {
	rec := &recordingNoise{}
	if _, err := GenerateHeightField(4, 2, 1, rec); err != nil {
		t.Fatalf("GenerateHeightField() error: %v", err)
	}
	if len(rec.points) != 4*4*3 {
		t.Fatalf("sampled %d points, want %d", len(rec.points), 4*4*3)
	}

	// Cell (0, 0) maps to (-0.5, -0.5), sampled at frequency 2, 4 and 8.
	want := [][2]float64{{-1, -1}, {-2, -2}, {-4, -4}}
	for i, w := range want {
		if rec.points[i] != w {
			t.Errorf("octave %d sampled at %v, want %v", i, rec.points[i], w)
		}
	}

	// Cell (1, 3) is the 8th cell: x -> 1/4-0.5, z -> 3/4-0.5.
	got := rec.points[(1*4+3)*3]
	if got != [2]float64{2 * -0.25, 2 * 0.25} {
		t.Errorf("cell (1,3) first octave sampled at %v, want [-0.5 0.5]", got)
	}
}

func TestGenerateHeightFieldRowColumnOrder(t *testing.T) {
	// Noise depends only on the first coordinate, so rows differ and columns
	// within a row match.
	src := funcNoise(func(x, y float64) float64 { return x })
	hf, err := GenerateHeightField(8, 1, 1, src)
	if err != nil {
		t.Fatalf("GenerateHeightField() error: %v", err)
	}
	if hf.At(0, 0) != hf.At(0, 7) {
		t.Errorf("row 0 not constant: %v vs %v", hf.At(0, 0), hf.At(0, 7))
	}
	if hf.At(0, 0) >= hf.At(7, 0) {
		t.Errorf("expected elevation to grow with x: %v vs %v", hf.At(0, 0), hf.At(7, 0))
	}
}

func TestGenerateHeightFieldValidation(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		frequency float64
		amplitude float64
		src       NoiseSource
		want      error
	}{
		{"size zero", 0, 3, 25, constNoise(0), ErrInvalidSize},
		{"size one", 1, 3, 25, constNoise(0), ErrInvalidSize},
		{"zero frequency", 4, 0, 25, constNoise(0), ErrInvalidFrequency},
		{"negative frequency", 4, -1, 25, constNoise(0), ErrInvalidFrequency},
		{"nan frequency", 4, math.NaN(), 25, constNoise(0), ErrInvalidFrequency},
		{"inf amplitude", 4, 3, math.Inf(1), constNoise(0), ErrInvalidAmplitude},
		{"nil source", 4, 3, 25, nil, ErrNoNoiseSource},
		{"nan noise", 4, 3, 25, constNoise(math.NaN()), ErrNonFiniteHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateHeightField(tt.size, tt.frequency, tt.amplitude, tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("GenerateHeightField() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateHeightFieldPerlinDeterministic(t *testing.T) {
	a, err := GenerateHeightField(32, DefaultFrequency, DefaultAmplitude, perlin.NewPerlin(2, 2, 1, 42))
	if err != nil {
		t.Fatalf("GenerateHeightField() error: %v", err)
	}
	b, err := GenerateHeightField(32, DefaultFrequency, DefaultAmplitude, perlin.NewPerlin(2, 2, 1, 42))
	if err != nil {
		t.Fatalf("GenerateHeightField() error: %v", err)
	}
	for x := 0; x < 32; x++ {
		for z := 0; z < 32; z++ {
			if a.At(x, z) != b.At(x, z) {
				t.Fatalf("same seed differs at (%d, %d): %v vs %v", x, z, a.At(x, z), b.At(x, z))
			}
		}
	}

	lo, hi := a.MinMax()
	if lo == hi {
		t.Error("perlin terrain is flat")
	}
	if limit := float32(1.75 * DefaultAmplitude); lo < -limit || hi > limit {
		t.Errorf("elevations [%v, %v] exceed octave bound %v", lo, hi, limit)
	}
}

func TestNewHeightField(t *testing.T) {
	values := []float32{0, 1, 2, 3}
	hf, err := NewHeightField(2, values)
	if err != nil {
		t.Fatalf("NewHeightField() error: %v", err)
	}
	values[0] = 99
	if hf.At(0, 0) != 0 {
		t.Error("NewHeightField should copy its input")
	}
	if hf.At(1, 0) != 2 || hf.At(0, 1) != 1 {
		t.Errorf("row-major lookup wrong: At(1,0)=%v At(0,1)=%v", hf.At(1, 0), hf.At(0, 1))
	}
	if lo, hi := hf.MinMax(); lo != 0 || hi != 3 {
		t.Errorf("MinMax() = (%v, %v), want (0, 3)", lo, hi)
	}

	if _, err := NewHeightField(2, []float32{0, 1, 2}); err == nil {
		t.Error("expected error for short value slice")
	}
	if _, err := NewHeightField(2, []float32{0, 1, float32(math.Inf(1)), 3}); !errors.Is(err, ErrNonFiniteHeight) {
		t.Errorf("NewHeightField() error = %v, want %v", err, ErrNonFiniteHeight)
	}
	if _, err := Flat(1, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Flat(1) error = %v, want %v", err, ErrInvalidSize)
	}
}
