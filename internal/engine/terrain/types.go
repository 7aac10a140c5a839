// Package terrain generates a procedural heightfield terrain mesh: noise
// elevations, a serpentine triangle-strip index list and per-vertex normals
// averaged over the triangles incident to each grid vertex.
package terrain

import "github.com/Faultbox/midgard-terrain/pkg/math"

// Vertex is one grid vertex. The vertex at grid (x, z) is stored at x*size+z.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// FloatsPerVertex is the interleaved layout width: position, normal, uv.
const FloatsPerVertex = 8

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// StripLayout selects how rows of the serpentine strip are joined.
type StripLayout uint8

const (
	// StripReference joins rows directly, producing exactly 2*N*(N-1)
	// indices. Every even-to-odd turn at z = N-1 leaves one triangle whose
	// corners are collinear in the grid plane.
	StripReference StripLayout = iota
	// StripBridged repeats one index at every even-to-odd turn so that
	// triangle collapses to degenerate ones.
	StripBridged
)

func (l StripLayout) String() string {
	switch l {
	case StripReference:
		return "reference"
	case StripBridged:
		return "bridged"
	default:
		return "unknown"
	}
}

// ParseStripLayout converts a config name into a StripLayout.
func ParseStripLayout(name string) (StripLayout, bool) {
	switch name {
	case "", "reference":
		return StripReference, true
	case "bridged":
		return StripBridged, true
	default:
		return StripReference, false
	}
}
