package terrain

import "github.com/Faultbox/midgard-terrain/pkg/math"

// BuildVertices emits one vertex per grid cell in row-major order. Normals are
// left zero for EstimateNormals.
func BuildVertices(hf *HeightField) ([]Vertex, Bounds) {
	n := hf.Size()
	vertices := make([]Vertex, 0, n*n)

	bounds := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}

	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			pos := math.Vec3{X: float32(x), Y: hf.At(x, z), Z: float32(z)}
			bounds.Min = bounds.Min.Min(pos)
			bounds.Max = bounds.Max.Max(pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				TexCoord: checkerUV(x, z),
			})
		}
	}
	return vertices, bounds
}

// checkerUV tiles one texture over every 2x2 block of cells.
func checkerUV(x, z int) math.Vec2 {
	oddX, oddZ := x%2 == 1, z%2 == 1
	switch {
	case oddX && oddZ:
		return math.Vec2{X: 0, Y: 0}
	case oddX:
		return math.Vec2{X: 0, Y: 1}
	case oddZ:
		return math.Vec2{X: 1, Y: 0}
	default:
		return math.Vec2{X: 1, Y: 1}
	}
}

// IndexCount returns the number of indices BuildIndices emits.
func IndexCount(n int, layout StripLayout) int {
	count := 2 * n * (n - 1)
	if layout == StripBridged {
		count += (n - 1) / 2
	}
	return count
}

// BuildIndices returns a single triangle strip covering the grid, two indices
// per grid column per row. Even rows sweep z upward pairing (x, z) with
// (x+1, z). Odd rows sweep downward pairing (x+1, z) with (x, z-1); at z = 0
// there is no (x, -1), so (x+1, 0) is repeated instead, which closes the last
// cell and collapses the turn into the next row.
func BuildIndices(n int, layout StripLayout) []uint32 {
	indices := make([]uint32, 0, IndexCount(n, layout))
	size := uint32(n)

	for x := uint32(0); x < size-1; x++ {
		if x%2 == 0 {
			for z := uint32(0); z < size; z++ {
				indices = append(indices, z+x*size, z+(x+1)*size)
			}
			continue
		}

		// The turn at z = N-1 would otherwise leave a collinear sliver
		// through (x-1, N-1), (x, N-1) and (x+1, N-1).
		if layout == StripBridged {
			indices = append(indices, indices[len(indices)-1])
		}
		for z := size - 1; z > 0; z-- {
			indices = append(indices, z+(x+1)*size, z-1+x*size)
		}
		indices = append(indices, (x+1)*size, (x+1)*size)
	}
	return indices
}
