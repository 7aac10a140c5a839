package formats

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Heightmap errors.
var (
	ErrHeightmapSize  = errors.New("heightmap: values do not form a square grid")
	ErrHeightmapShape = errors.New("heightmap: image is not square")
)

// EncodeHeightmap writes a size x size row-major field as a 16-bit grayscale
// PNG. Grid x maps to image columns and z to rows. Heights are scaled so lo is
// black and hi is white; a flat field is written mid-gray.
func EncodeHeightmap(w io.Writer, size int, values []float32) (lo, hi float32, err error) {
	if size < 1 || len(values) != size*size {
		return 0, 0, fmt.Errorf("%w: size %d, %d values", ErrHeightmapSize, size, len(values))
	}

	lo, hi = values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	img := image.NewGray16(image.Rect(0, 0, size, size))
	span := float64(hi) - float64(lo)
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			level := uint16(math.MaxUint16 / 2)
			if span > 0 {
				t := (float64(values[x*size+z]) - float64(lo)) / span
				level = uint16(math.Round(t * math.MaxUint16))
			}
			img.SetGray16(x, z, color.Gray16{Y: level})
		}
	}
	return lo, hi, png.Encode(w, img)
}

// DecodeHeightmap reads a square grayscale image and maps black to lo and
// white to hi. It returns the grid size and row-major values.
func DecodeHeightmap(r io.Reader, lo, hi float32) (int, []float32, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return 0, nil, fmt.Errorf("heightmap: %w", err)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return 0, nil, fmt.Errorf("%w: %dx%d", ErrHeightmapShape, b.Dx(), b.Dy())
	}

	size := b.Dx()
	values := make([]float32, size*size)
	span := float64(hi) - float64(lo)
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+z)).(color.Gray16)
			t := float64(g.Y) / math.MaxUint16
			values[x*size+z] = float32(float64(lo) + t*span)
		}
	}
	return size, values, nil
}
