// Package drawable describes GPU-ready geometry without touching GPU state.
//
// A Descriptor is the only value handed from mesh generation to the rendering
// backend. The backend uploads it and issues the matching draw call.
package drawable

import (
	"errors"
	"fmt"
)

// FloatSize is the size in bytes of one vertex attribute component.
const FloatSize = 4

// Primitive is the topology used to assemble vertices into primitives.
type Primitive uint8

const (
	Points Primitive = iota
	Lines
	Triangles
	TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	default:
		return fmt.Sprintf("primitive(%d)", uint8(p))
	}
}

// AttribPointer describes one float vertex attribute inside an interleaved buffer.
// Stride and Offset are in bytes.
type AttribPointer struct {
	Index  uint32
	Size   int
	Stride int
	Offset int
}

// Buffer is either an ArrayBuffer or an IndexedBuffer.
type Buffer interface {
	Attributes() []float32
	Pointers() []AttribPointer
	isBuffer()
}

// ArrayBuffer holds vertices drawn in submission order.
type ArrayBuffer struct {
	Data   []float32
	Layout []AttribPointer
}

func (b ArrayBuffer) Attributes() []float32     { return b.Data }
func (b ArrayBuffer) Pointers() []AttribPointer { return b.Layout }
func (ArrayBuffer) isBuffer()                   {}

// IndexedBuffer holds vertices drawn through an index list.
type IndexedBuffer struct {
	Data    []float32
	Layout  []AttribPointer
	Indices []uint32
}

func (b IndexedBuffer) Attributes() []float32     { return b.Data }
func (b IndexedBuffer) Pointers() []AttribPointer { return b.Layout }
func (IndexedBuffer) isBuffer()                   {}

// Descriptor packages a buffer with the number of elements to draw and the
// primitive topology.
type Descriptor struct {
	Buffer    Buffer
	Count     int
	Primitive Primitive
}

// Drawable produces a descriptor from its construction-time parameters.
type Drawable interface {
	Descriptor() (*Descriptor, error)
}

var (
	ErrNoBuffer      = errors.New("descriptor has no buffer")
	ErrBadLayout     = errors.New("invalid attribute layout")
	ErrIndexRange    = errors.New("index out of range")
	ErrCountMismatch = errors.New("element count mismatch")
)

// Indices returns the index list, or nil for non-indexed buffers.
func (d *Descriptor) Indices() []uint32 {
	if ib, ok := d.Buffer.(IndexedBuffer); ok {
		return ib.Indices
	}
	return nil
}

// Indexed reports whether the descriptor is drawn through an index list.
func (d *Descriptor) Indexed() bool {
	_, ok := d.Buffer.(IndexedBuffer)
	return ok
}

// VertexCount returns the number of vertices in the attribute data.
// It is zero for an empty or unlaid-out buffer.
func (d *Descriptor) VertexCount() int {
	if d.Buffer == nil {
		return 0
	}
	stride := floatsPerVertex(d.Buffer.Pointers())
	if stride == 0 {
		return 0
	}
	return len(d.Buffer.Attributes()) / stride
}

// Validate checks that the layout, the data and the element count agree.
func (d *Descriptor) Validate() error {
	if d.Buffer == nil {
		return ErrNoBuffer
	}

	layout := d.Buffer.Pointers()
	if len(layout) == 0 {
		return fmt.Errorf("%w: no attributes", ErrBadLayout)
	}
	stride := layout[0].Stride
	if stride <= 0 || stride%FloatSize != 0 {
		return fmt.Errorf("%w: stride %d", ErrBadLayout, stride)
	}
	seen := make(map[uint32]bool, len(layout))
	for _, p := range layout {
		if p.Stride != stride {
			return fmt.Errorf("%w: attribute %d stride %d, want %d", ErrBadLayout, p.Index, p.Stride, stride)
		}
		if p.Size < 1 || p.Size > 4 {
			return fmt.Errorf("%w: attribute %d size %d", ErrBadLayout, p.Index, p.Size)
		}
		if p.Offset < 0 || p.Offset%FloatSize != 0 || p.Offset+p.Size*FloatSize > stride {
			return fmt.Errorf("%w: attribute %d offset %d", ErrBadLayout, p.Index, p.Offset)
		}
		if seen[p.Index] {
			return fmt.Errorf("%w: duplicate attribute %d", ErrBadLayout, p.Index)
		}
		seen[p.Index] = true
	}

	data := d.Buffer.Attributes()
	perVertex := stride / FloatSize
	if len(data)%perVertex != 0 {
		return fmt.Errorf("%w: %d floats is not a multiple of %d", ErrBadLayout, len(data), perVertex)
	}
	vertexCount := len(data) / perVertex

	switch b := d.Buffer.(type) {
	case IndexedBuffer:
		if d.Count != len(b.Indices) {
			return fmt.Errorf("%w: count %d, %d indices", ErrCountMismatch, d.Count, len(b.Indices))
		}
		for i, idx := range b.Indices {
			if int(idx) >= vertexCount {
				return fmt.Errorf("%w: indices[%d] = %d, %d vertices", ErrIndexRange, i, idx, vertexCount)
			}
		}
	case ArrayBuffer:
		if d.Count != vertexCount {
			return fmt.Errorf("%w: count %d, %d vertices", ErrCountMismatch, d.Count, vertexCount)
		}
	}
	return nil
}

// InterleavedLayout builds pointers for tightly packed float attributes of the
// given sizes, numbered from zero in order.
func InterleavedLayout(sizes ...int) []AttribPointer {
	total := 0
	for _, s := range sizes {
		total += s
	}
	layout := make([]AttribPointer, len(sizes))
	offset := 0
	for i, s := range sizes {
		layout[i] = AttribPointer{
			Index:  uint32(i),
			Size:   s,
			Stride: total * FloatSize,
			Offset: offset * FloatSize,
		}
		offset += s
	}
	return layout
}

func floatsPerVertex(layout []AttribPointer) int {
	if len(layout) == 0 {
		return 0
	}
	return layout[0].Stride / FloatSize
}
