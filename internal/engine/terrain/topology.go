package terrain

import "fmt"

// Class is the topological position of a grid vertex.
type Class uint8

const (
	Interior Class = iota
	EdgeNearX
	EdgeFarX
	EdgeNearZ
	EdgeFarZ
	CornerOrigin // (0, 0)
	CornerFarX   // (N-1, 0)
	CornerFarXZ  // (N-1, N-1)
	CornerFarZ   // (0, N-1)
	classCount
)

var classNames = [classCount]string{
	"interior",
	"edge x=0",
	"edge x=N-1",
	"edge z=0",
	"edge z=N-1",
	"corner (0,0)",
	"corner (N-1,0)",
	"corner (N-1,N-1)",
	"corner (0,N-1)",
}

func (c Class) String() string {
	if c < classCount {
		return classNames[c]
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Classify returns the class of vertex (x, z) in an n x n grid.
func Classify(x, z, n int) Class {
	last := n - 1
	switch {
	case x == 0 && z == 0:
		return CornerOrigin
	case x == last && z == 0:
		return CornerFarX
	case x == last && z == last:
		return CornerFarXZ
	case x == 0 && z == last:
		return CornerFarZ
	case x == 0:
		return EdgeNearX
	case x == last:
		return EdgeFarX
	case z == 0:
		return EdgeNearZ
	case z == last:
		return EdgeFarZ
	default:
		return Interior
	}
}

// offset is a grid displacement (dx, dz) from the vertex being shaded.
type offset struct{ dx, dz int }

// face is an incident triangle (a, b, c) with a at the vertex itself.
// b and c are ordered so that cross(b-a, c-a) points up.
type face struct{ b, c offset }

// Neighbour rings. Even rows of the strip split each cell along
// (x+1,z)-(x,z+1); odd rows along (x,z)-(x+1,z+1). A vertex on row x borders
// strip x above and strip x-1 below, so its six neighbours depend on x parity.
var (
	e0, e1, e2 = offset{-1, -1}, offset{-1, 0}, offset{0, 1}
	e3, e4, e5 = offset{1, 0}, offset{1, -1}, offset{0, -1}

	o0, o1, o2 = offset{0, 1}, offset{1, 1}, offset{1, 0}
	o3, o4, o5 = offset{0, -1}, offset{-1, 0}, offset{-1, 1}
)

// faceTable lists incident faces per class, indexed [class][x&1]. Classes on
// the x=0 edge only ever see even rows.
var faceTable = [classCount][2][]face{
	Interior: {
		{{e0, e1}, {e1, e2}, {e2, e3}, {e3, e4}, {e4, e5}, {e5, e0}},
		{{o0, o1}, {o1, o2}, {o2, o3}, {o3, o4}, {o4, o5}, {o5, o0}},
	},
	EdgeNearX: {
		{{e2, e3}, {e3, e4}, {e4, e5}},
		nil,
	},
	EdgeFarX: {
		{{e0, e1}, {e1, e2}, {e5, e0}},
		{{o3, o4}, {o4, o5}, {o5, o0}},
	},
	EdgeNearZ: {
		{{e1, e2}, {e2, e3}},
		{{o0, o1}, {o1, o2}, {o4, o5}, {o5, o0}},
	},
	EdgeFarZ: {
		{{e0, e1}, {e3, e4}, {e4, e5}, {e5, e0}},
		{{o2, o3}, {o3, o4}},
	},
	CornerOrigin: {
		{{e2, e3}},
		nil,
	},
	CornerFarX: {
		{{e1, e2}},
		{{o4, o5}, {o5, o0}},
	},
	CornerFarXZ: {
		{{e0, e1}, {e5, e0}},
		{{o3, o4}},
	},
	CornerFarZ: {
		{{e3, e4}, {e4, e5}},
		nil,
	},
}

// faces returns the incident face table for vertex (x, z).
func faces(x, z, n int) []face {
	return faceTable[Classify(x, z, n)][x&1]
}

// IncidentTriangles returns the vertex-index triples of every mesh triangle
// touching (x, z). The first index of each triple is the vertex itself.
func IncidentTriangles(x, z, n int) [][3]uint32 {
	fs := faces(x, z, n)
	out := make([][3]uint32, 0, len(fs))
	for _, f := range fs {
		out = append(out, [3]uint32{
			gridIndex(x, z, n),
			gridIndex(x+f.b.dx, z+f.b.dz, n),
			gridIndex(x+f.c.dx, z+f.c.dz, n),
		})
	}
	return out
}

func gridIndex(x, z, n int) uint32 {
	return uint32(x*n + z)
}
