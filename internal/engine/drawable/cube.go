package drawable

// Cube is a unit cube centred on the origin with flat per-face normals.
type Cube struct{}

// cubeFaces lists, per face, the outward normal and two in-plane axes whose
// cross product equals the normal.
var cubeFaces = [6]struct {
	normal, u, v [3]float32
}{
	{[3]float32{0, 0, -1}, [3]float32{0, 1, 0}, [3]float32{1, 0, 0}},
	{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
	{[3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
	{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	{[3]float32{0, 1, 0}, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}},
}

// Corner order for two counter-clockwise triangles in (u, v) space.
var quadCorners = [6][2]float32{
	{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5},
	{0.5, 0.5}, {-0.5, 0.5}, {-0.5, -0.5},
}

// Descriptor returns 36 position+normal vertices drawn as triangles.
func (Cube) Descriptor() (*Descriptor, error) {
	data := make([]float32, 0, len(cubeFaces)*len(quadCorners)*6)
	for _, f := range cubeFaces {
		for _, c := range quadCorners {
			for axis := 0; axis < 3; axis++ {
				data = append(data, f.normal[axis]*0.5+f.u[axis]*c[0]+f.v[axis]*c[1])
			}
			data = append(data, f.normal[0], f.normal[1], f.normal[2])
		}
	}

	d := &Descriptor{
		Buffer: ArrayBuffer{
			Data:   data,
			Layout: InterleavedLayout(3, 3),
		},
		Count:     len(cubeFaces) * len(quadCorners),
		Primitive: Triangles,
	}
	return d, d.Validate()
}
