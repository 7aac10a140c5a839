package terrain

import "testing"

func TestMeshTriangles(t *testing.T) {
	for _, layout := range []StripLayout{StripReference, StripBridged} {
		for n := 2; n <= 9; n++ {
			mesh := BuildMesh(mustFlat(t, n, 0), layout)
			tris := mesh.Triangles()
			if want := 2 * (n - 1) * (n - 1); len(tris) != want {
				t.Errorf("n=%d %v: Triangles() = %d faces, want %d", n, layout, len(tris), want)
			}
			seen := make(map[[3]uint32]bool)
			for _, tri := range tris {
				if gridArea(tri[0], tri[1], tri[2], n) <= 0 {
					t.Errorf("n=%d %v: face %v is not wound upward", n, layout, tri)
				}
				key := sortedTriple(tri)
				if seen[key] {
					t.Errorf("n=%d %v: face %v emitted twice", n, layout, tri)
				}
				seen[key] = true
			}
		}
	}
}

func TestMeshStats(t *testing.T) {
	tests := []struct {
		n          int
		layout     StripLayout
		degenerate int
		slivers    int
	}{
		{2, StripReference, 0, 0},
		{3, StripReference, 1, 1},
		{4, StripReference, 3, 1},
		{4, StripBridged, 5, 0},
		{5, StripReference, 4, 2},
	}
	for _, tt := range tests {
		mesh := BuildMesh(mustFlat(t, tt.n, 2), tt.layout)
		s := mesh.Stats()
		if s.Vertices != tt.n*tt.n || s.Indices != IndexCount(tt.n, tt.layout) {
			t.Errorf("n=%d %v: stats counts = %+v", tt.n, tt.layout, s)
		}
		if want := 2 * (tt.n - 1) * (tt.n - 1); s.Triangles != want {
			t.Errorf("n=%d %v: Triangles = %d, want %d", tt.n, tt.layout, s.Triangles, want)
		}
		if s.Slivers != tt.slivers {
			t.Errorf("n=%d %v: Slivers = %d, want %d", tt.n, tt.layout, s.Slivers, tt.slivers)
		}
		if s.Degenerate != tt.degenerate {
			t.Errorf("n=%d %v: Degenerate = %d, want %d", tt.n, tt.layout, s.Degenerate, tt.degenerate)
		}
		if s.Triangles+s.Slivers+s.Degenerate != s.Indices-2 {
			t.Errorf("n=%d %v: strip triangles do not add up: %+v", tt.n, tt.layout, s)
		}
		if s.MinHeight != 2 || s.MaxHeight != 2 || s.MinNormalY != 1 {
			t.Errorf("n=%d %v: flat field stats = %+v", tt.n, tt.layout, s)
		}
	}
}
