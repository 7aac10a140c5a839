package terrain

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/midgard-terrain/internal/engine/drawable"
)

// Perlin parameters for the default noise source. One internal octave is
// used because GenerateHeightField sums its own octaves.
const (
	DefaultPerlinAlpha = 2.0
	DefaultPerlinBeta  = 2.0
	DefaultSeed        = 0
)

// Options are the construction-time parameters of a Terrain.
type Options struct {
	Size      int
	Frequency float64
	Amplitude float64
	Seed      int64
	Alpha     float64
	Beta      float64
	Layout    StripLayout

	// Noise overrides the Perlin source built from Seed, Alpha and Beta.
	Noise NoiseSource
}

// DefaultOptions returns the reference 500x500 terrain parameters.
func DefaultOptions() Options {
	return Options{
		Size:      DefaultSize,
		Frequency: DefaultFrequency,
		Amplitude: DefaultAmplitude,
		Seed:      DefaultSeed,
		Alpha:     DefaultPerlinAlpha,
		Beta:      DefaultPerlinBeta,
		Layout:    StripReference,
	}
}

// Mesh is the generated grid before flattening.
type Mesh struct {
	Size     int
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Terrain is a drawable heightfield mesh.
type Terrain struct {
	opts  Options
	noise NoiseSource
}

// New validates opts and prepares the noise source. Nothing is generated
// until Mesh or Descriptor is called.
func New(opts Options) (*Terrain, error) {
	if opts.Size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, opts.Size)
	}
	if int64(opts.Size)*int64(opts.Size) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d overflows 32-bit indices", ErrInvalidSize, opts.Size)
	}
	if !(opts.Frequency > 0) || math.IsInf(opts.Frequency, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFrequency, opts.Frequency)
	}
	if math.IsNaN(opts.Amplitude) || math.IsInf(opts.Amplitude, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAmplitude, opts.Amplitude)
	}
	if opts.Layout > StripBridged {
		return nil, fmt.Errorf("unknown strip layout %d", opts.Layout)
	}

	src := opts.Noise
	if src == nil {
		src = perlin.NewPerlin(opts.Alpha, opts.Beta, 1, opts.Seed)
	}
	return &Terrain{opts: opts, noise: src}, nil
}

// Options returns the parameters the terrain was built with.
func (t *Terrain) Options() Options {
	return t.opts
}

// HeightField samples the noise source over the grid.
func (t *Terrain) HeightField() (*HeightField, error) {
	return GenerateHeightField(t.opts.Size, t.opts.Frequency, t.opts.Amplitude, t.noise)
}

// Mesh runs the generation pipeline: heightfield, vertices, strip indices and
// normals.
func (t *Terrain) Mesh() (*Mesh, error) {
	hf, err := t.HeightField()
	if err != nil {
		return nil, fmt.Errorf("height field: %w", err)
	}
	return BuildMesh(hf, t.opts.Layout), nil
}

// BuildMesh triangulates hf and estimates its normals.
func BuildMesh(hf *HeightField, layout StripLayout) *Mesh {
	n := hf.Size()
	vertices, bounds := BuildVertices(hf)
	indices := BuildIndices(n, layout)
	EstimateNormals(vertices, n)

	return &Mesh{
		Size:     n,
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// Descriptor implements drawable.Drawable.
func (t *Terrain) Descriptor() (*drawable.Descriptor, error) {
	mesh, err := t.Mesh()
	if err != nil {
		return nil, err
	}
	return mesh.Descriptor(), nil
}

// VertexLayout is the attribute layout of a flattened terrain vertex:
// position at location 0, normal at 1, uv at 2.
func VertexLayout() []drawable.AttribPointer {
	return drawable.InterleavedLayout(3, 3, 2)
}

// Descriptor flattens the mesh into an indexed triangle-strip descriptor.
func (m *Mesh) Descriptor() *drawable.Descriptor {
	return &drawable.Descriptor{
		Buffer: drawable.IndexedBuffer{
			Data:    Flatten(m.Vertices),
			Layout:  VertexLayout(),
			Indices: m.Indices,
		},
		Count:     len(m.Indices),
		Primitive: drawable.TriangleStrip,
	}
}

// Flatten interleaves vertices as px py pz nx ny nz u v.
func Flatten(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.TexCoord.X, v.TexCoord.Y,
		)
	}
	return data
}
