package terrain

import "github.com/Faultbox/midgard-terrain/pkg/math"

// EstimateNormals overwrites every vertex normal with the normalised mean of
// the face normals of its incident triangles. vertices must be the n*n grid
// produced by BuildVertices.
func EstimateNormals(vertices []Vertex, n int) {
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			i := x*n + z
			vertices[i].Normal = vertexNormal(vertices, x, z, n)
		}
	}
}

func vertexNormal(vertices []Vertex, x, z, n int) math.Vec3 {
	fs := faces(x, z, n)
	if len(fs) == 0 {
		return math.Up
	}

	a := vertices[x*n+z].Position
	var sum math.Vec3
	for _, f := range fs {
		b := vertices[(x+f.b.dx)*n+z+f.b.dz].Position
		c := vertices[(x+f.c.dx)*n+z+f.c.dz].Position
		sum = sum.Add(faceNormal(a, b, c))
	}
	t := float32(len(fs))
	mean := math.Vec3{X: sum.X / t, Y: sum.Y / t, Z: sum.Z / t}
	return mean.NormalizeOr(math.Up)
}

// faceNormal is the unnormalised normal of triangle (a, b, c). Degenerate or
// non-finite triangles contribute nothing.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if !n.IsFinite() {
		return math.Vec3{}
	}
	return n
}
