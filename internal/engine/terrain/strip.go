package terrain

// Triangles decodes the strip into its face list with consistent upward
// winding. Triangles that repeat an index or whose corners are collinear in
// the grid plane are dropped.
func (m *Mesh) Triangles() [][3]uint32 {
	out := make([][3]uint32, 0, 2*(m.Size-1)*(m.Size-1))
	for i := 0; i+2 < len(m.Indices); i++ {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if a == b || b == c || a == c {
			continue
		}
		area := gridArea(a, b, c, m.Size)
		if area == 0 {
			continue
		}
		if area < 0 {
			b, c = c, b
		}
		out = append(out, [3]uint32{a, b, c})
	}
	return out
}

// gridArea is twice the signed area of (a, b, c) projected to the grid,
// positive when cross(b-a, c-a) points up.
func gridArea(a, b, c uint32, n int) int {
	ax, az := int(a)/n, int(a)%n
	bx, bz := int(b)/n-ax, int(b)%n-az
	cx, cz := int(c)/n-ax, int(c)%n-az
	// y component of (bx,0,bz) x (cx,0,cz)
	return bz*cx - bx*cz
}

// Stats summarises a generated mesh.
type Stats struct {
	Vertices   int
	Indices    int
	Triangles  int // faces after dropping degenerate and collinear ones
	Degenerate int // strip triangles that repeat an index
	Slivers    int // strip triangles with collinear corners

	MinHeight float32
	MaxHeight float32

	// MinNormalY is the steepest normal; 1 means the field is flat.
	MinNormalY float32
}

// Stats walks the strip and the vertices once.
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:   len(m.Vertices),
		Indices:    len(m.Indices),
		MinHeight:  m.Bounds.Min.Y,
		MaxHeight:  m.Bounds.Max.Y,
		MinNormalY: 1,
	}
	for i := 0; i+2 < len(m.Indices); i++ {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		switch {
		case a == b || b == c || a == c:
			s.Degenerate++
		case gridArea(a, b, c, m.Size) == 0:
			s.Slivers++
		default:
			s.Triangles++
		}
	}
	for _, v := range m.Vertices {
		if v.Normal.Y < s.MinNormalY {
			s.MinNormalY = v.Normal.Y
		}
	}
	return s
}
