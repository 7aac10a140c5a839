package drawable

import "testing"

func TestCubeDescriptor(t *testing.T) {
	d, err := Cube{}.Descriptor()
	if err != nil {
		t.Fatalf("Cube.Descriptor() error: %v", err)
	}
	if d.Indexed() {
		t.Error("cube should be a plain array buffer")
	}
	if d.Primitive != Triangles {
		t.Errorf("Primitive = %v, want triangles", d.Primitive)
	}
	if d.Count != 36 {
		t.Errorf("Count = %d, want 36", d.Count)
	}
	if got := d.VertexCount(); got != 36 {
		t.Errorf("VertexCount() = %d, want 36", got)
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	d, err := Cube{}.Descriptor()
	if err != nil {
		t.Fatalf("Cube.Descriptor() error: %v", err)
	}
	data := d.Buffer.Attributes()

	for tri := 0; tri < d.Count/3; tri++ {
		var p [3][3]float32
		var n [3]float32
		for k := 0; k < 3; k++ {
			base := (tri*3 + k) * 6
			copy(p[k][:], data[base:base+3])
			if k == 0 {
				copy(n[:], data[base+3:base+6])
			}
		}

		// Every corner lies on the face plane at distance 0.5 along the normal.
		for k := 0; k < 3; k++ {
			dist := p[k][0]*n[0] + p[k][1]*n[1] + p[k][2]*n[2]
			if dist != 0.5 {
				t.Fatalf("triangle %d corner %d off face plane: %v", tri, k, dist)
			}
		}

		// Winding is counter-clockwise when seen from outside.
		e1 := [3]float32{p[1][0] - p[0][0], p[1][1] - p[0][1], p[1][2] - p[0][2]}
		e2 := [3]float32{p[2][0] - p[0][0], p[2][1] - p[0][1], p[2][2] - p[0][2]}
		c := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		if c[0]*n[0]+c[1]*n[1]+c[2]*n[2] <= 0 {
			t.Errorf("triangle %d winds inward", tri)
		}
	}
}
