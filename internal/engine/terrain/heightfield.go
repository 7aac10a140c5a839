package terrain

import (
	"errors"
	"fmt"
	"math"
)

// Reference generation parameters.
const (
	DefaultSize      = 500
	DefaultFrequency = 3.0
	DefaultAmplitude = 25.0
)

// Octave weights and frequency multipliers summed per sample.
var octaves = [...]struct{ weight, scale float64 }{
	{1.0, 1.0},
	{0.5, 2.0},
	{0.25, 4.0},
}

var (
	ErrInvalidSize      = errors.New("grid size must be at least 2")
	ErrInvalidFrequency = errors.New("frequency must be finite and positive")
	ErrInvalidAmplitude = errors.New("amplitude must be finite")
	ErrNoNoiseSource    = errors.New("noise source is nil")
	ErrNonFiniteHeight  = errors.New("non-finite height")
)

// NoiseSource is a continuous 2D coherent noise function bounded to [-1, 1].
// *perlin.Perlin from github.com/aquilax/go-perlin satisfies it.
type NoiseSource interface {
	Noise2D(x, y float64) float64
}

// HeightField is an immutable size x size grid of elevations indexed [x][z].
type HeightField struct {
	size   int
	values []float32 // row-major, values[x*size+z]
}

// NewHeightField builds a field from row-major values (index x*size+z).
// The slice is copied.
func NewHeightField(size int, values []float32) (*HeightField, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if len(values) != size*size {
		return nil, fmt.Errorf("height field needs %d values, got %d", size*size, len(values))
	}
	for i, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil, fmt.Errorf("%w at (%d, %d)", ErrNonFiniteHeight, i/size, i%size)
		}
	}
	return &HeightField{size: size, values: append([]float32(nil), values...)}, nil
}

// Flat returns a field where every elevation equals h.
func Flat(size int, h float32) (*HeightField, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	values := make([]float32, size*size)
	for i := range values {
		values[i] = h
	}
	return NewHeightField(size, values)
}

// GenerateHeightField samples three octaves of noise over a size x size grid.
// Coordinates are normalised to [-0.5, 0.5) before scaling by frequency, and
// the octave sum is multiplied by amplitude.
func GenerateHeightField(size int, frequency, amplitude float64, src NoiseSource) (*HeightField, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if !(frequency > 0) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFrequency, frequency)
	}
	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAmplitude, amplitude)
	}
	if src == nil {
		return nil, ErrNoNoiseSource
	}

	hf := &HeightField{size: size, values: make([]float32, size*size)}
	n := float64(size)
	for x := 0; x < size; x++ {
		nx := float64(x)/n - 0.5
		for z := 0; z < size; z++ {
			nz := float64(z)/n - 0.5

			var h float64
			for _, o := range octaves {
				f := frequency * o.scale
				h += o.weight * src.Noise2D(f*nx, f*nz)
			}

			v := float32(h * amplitude)
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				return nil, fmt.Errorf("%w at (%d, %d)", ErrNonFiniteHeight, x, z)
			}
			hf.values[x*size+z] = v
		}
	}
	return hf, nil
}

// Size returns the number of rows (and columns).
func (hf *HeightField) Size() int {
	return hf.size
}

// At returns the elevation at grid coordinate (x, z).
func (hf *HeightField) At(x, z int) float32 {
	return hf.values[x*hf.size+z]
}

// MinMax returns the lowest and highest elevation.
func (hf *HeightField) MinMax() (lo, hi float32) {
	lo, hi = hf.values[0], hf.values[0]
	for _, v := range hf.values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
