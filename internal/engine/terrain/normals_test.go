package terrain

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

const normalEpsilon = 1e-5

func closeTo(a, b math.Vec3, eps float64) bool {
	return stdmath.Abs(float64(a.X-b.X)) < eps &&
		stdmath.Abs(float64(a.Y-b.Y)) < eps &&
		stdmath.Abs(float64(a.Z-b.Z)) < eps
}

func TestFlatFieldNormalsAreUp(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 10} {
		mesh := BuildMesh(mustFlat(t, n, 3.5), StripReference)
		for i, v := range mesh.Vertices {
			if v.Normal != math.Up {
				t.Errorf("n=%d vertex %d normal = %v, want exactly %v", n, i, v.Normal, math.Up)
			}
		}
	}
}

func TestTiltedPlaneNormals(t *testing.T) {
	const n = 6
	const a, b = 0.5, -0.25
	values := make([]float32, n*n)
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			values[x*n+z] = a*float32(x) + b*float32(z)
		}
	}
	hf, err := NewHeightField(n, values)
	if err != nil {
		t.Fatalf("NewHeightField() error: %v", err)
	}

	want := math.Vec3{X: -a, Y: 1, Z: -b}.Normalize()
	mesh := BuildMesh(hf, StripReference)
	for i, v := range mesh.Vertices {
		if !closeTo(v.Normal, want, normalEpsilon) {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, want)
		}
	}
}

func TestPerlinTerrainNormalsAreUnit(t *testing.T) {
	opts := DefaultOptions()
	opts.Size = 40
	opts.Seed = 7
	tr, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	mesh, err := tr.Mesh()
	if err != nil {
		t.Fatalf("Mesh() error: %v", err)
	}

	for i, v := range mesh.Vertices {
		if !v.Normal.IsFinite() {
			t.Fatalf("vertex %d normal %v is not finite", i, v.Normal)
		}
		if l := v.Normal.Length(); stdmath.Abs(float64(l)-1) > normalEpsilon {
			t.Errorf("vertex %d normal length = %v, want 1", i, l)
		}
		if v.Normal.Y <= 0 {
			t.Errorf("vertex %d normal %v points down", i, v.Normal)
		}
	}
}

func TestSpikeTiltsNeighbourNormals(t *testing.T) {
	const n = 5
	values := make([]float32, n*n)
	values[2*n+2] = 4
	hf, err := NewHeightField(n, values)
	if err != nil {
		t.Fatalf("NewHeightField() error: %v", err)
	}
	mesh := BuildMesh(hf, StripReference)

	// Neighbours on the +x side slope down away from the spike, so their
	// normals lean towards +x.
	if got := mesh.Vertices[3*n+2].Normal; got.X <= 0 {
		t.Errorf("normal at (3,2) = %v, want positive X", got)
	}
	if got := mesh.Vertices[1*n+2].Normal; got.X >= 0 {
		t.Errorf("normal at (1,2) = %v, want negative X", got)
	}
	if got := mesh.Vertices[2*n+2].Normal; got.Y <= 0 {
		t.Errorf("normal at spike = %v, want positive Y", got)
	}
}

func TestFaceNormalIgnoresNonFinite(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	got := faceNormal(math.Vec3{}, math.Vec3{X: inf}, math.Vec3{Z: 1})
	if got != (math.Vec3{}) {
		t.Errorf("faceNormal() with Inf = %v, want zero", got)
	}
}

func TestVertexNormalFallsBackToUp(t *testing.T) {
	const n = 2
	// Collapsing every vertex onto the origin leaves all faces degenerate.
	vertices := make([]Vertex, n*n)
	EstimateNormals(vertices, n)
	for i, v := range vertices {
		if v.Normal != math.Up {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, math.Up)
		}
	}
}
