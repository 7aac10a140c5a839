// Package renderer owns OpenGL state and draws uploaded descriptors.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// Capability is a toggleable GL server capability.
type Capability uint32

const (
	Blend       Capability = gl.BLEND
	CullFace    Capability = gl.CULL_FACE
	DepthTest   Capability = gl.DEPTH_TEST
	ScissorTest Capability = gl.SCISSOR_TEST
	StencilTest Capability = gl.STENCIL_TEST
)

// PolygonMode selects how polygons are rasterised.
type PolygonMode uint32

const (
	Fill PolygonMode = gl.FILL
	Line PolygonMode = gl.LINE
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles frame-level GL state.
type Renderer struct {
	config Config
	mode   PolygonMode
}

// New loads GL function pointers. It must be called after the GL context is
// current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	r := &Renderer{config: cfg, mode: Fill}
	r.Enable(DepthTest)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Enable turns on a capability.
func (r *Renderer) Enable(c Capability) {
	gl.Enable(uint32(c))
}

// Disable turns off a capability.
func (r *Renderer) Disable(c Capability) {
	gl.Disable(uint32(c))
}

// SetPolygonMode switches between filled and wireframe rendering.
func (r *Renderer) SetPolygonMode(mode PolygonMode) {
	if mode == r.mode {
		return
	}
	r.mode = mode
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(mode))
	logger.Debug("polygon mode changed", zap.Bool("wireframe", mode == Line))
}

// PolygonMode returns the current rasterisation mode.
func (r *Renderer) PolygonMode() PolygonMode {
	return r.mode
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport width over height.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Clear fills the color and depth buffers.
func (r *Renderer) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// CheckError returns the oldest pending GL error, if any.
func (r *Renderer) CheckError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}

// ReadPixels returns the current viewport as bottom-up RGBA rows along with
// its size.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
