package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/engine/drawable"
)

// Object is a descriptor uploaded to the GPU together with its placement.
type Object struct {
	Transform drawable.Transform
	Texture   *Texture

	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	indexed       bool
}

// NewObject validates d and uploads its buffers. tex may be nil.
func NewObject(d *drawable.Descriptor, origin mgl32.Vec3, tex *Texture) (*Object, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor: %w", err)
	}
	mode, err := glPrimitive(d.Primitive)
	if err != nil {
		return nil, err
	}

	o := &Object{
		Transform: drawable.NewTransform(origin),
		Texture:   tex,
		count:     int32(d.Count),
		mode:      mode,
		indexed:   d.Indexed(),
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	data := d.Buffer.Attributes()
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*drawable.FloatSize, gl.Ptr(data), gl.STATIC_DRAW)

	for _, p := range d.Buffer.Pointers() {
		gl.VertexAttribPointerWithOffset(p.Index, int32(p.Size), gl.FLOAT, false, int32(p.Stride), uintptr(p.Offset))
		gl.EnableVertexAttribArray(p.Index)
	}

	if indices := d.Indices(); o.indexed && len(indices) > 0 {
		gl.GenBuffers(1, &o.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, o.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return o, nil
}

// Model returns the object's model matrix.
func (o *Object) Model() mgl32.Mat4 {
	return o.Transform.Matrix()
}

// Draw binds the texture, if any, and issues the draw call.
func (o *Object) Draw() {
	if o.Texture != nil {
		o.Texture.Bind(0)
	}
	gl.BindVertexArray(o.vao)
	if o.indexed {
		gl.DrawElementsWithOffset(o.mode, o.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(o.mode, 0, o.count)
	}
	gl.BindVertexArray(0)
}

// Delete frees the GPU buffers. The texture is not owned by the object.
func (o *Object) Delete() {
	if o.ebo != 0 {
		gl.DeleteBuffers(1, &o.ebo)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	o.vao, o.vbo, o.ebo = 0, 0, 0
}

func glPrimitive(p drawable.Primitive) (uint32, error) {
	switch p {
	case drawable.Points:
		return gl.POINTS, nil
	case drawable.Lines:
		return gl.LINES, nil
	case drawable.Triangles:
		return gl.TRIANGLES, nil
	case drawable.TriangleStrip:
		return gl.TRIANGLE_STRIP, nil
	default:
		return 0, fmt.Errorf("unsupported primitive %v", p)
	}
}
