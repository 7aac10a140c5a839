// Package camera provides a free-fly camera for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a keyboard-driven translation direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Limits of the vertical look angle and zoom, in degrees.
const (
	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// FlyCamera moves freely, steered by Euler angles in degrees. Yaw 0 looks
// along +X and positive pitch looks up.
type FlyCamera struct {
	Position mgl32.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per pixel of mouse motion
	Zoom        float32 // vertical field of view in degrees

	// InvertY makes moving the mouse down raise the view.
	InvertY bool

	front   mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
	worldUp mgl32.Vec3
}

// NewFlyCamera creates a camera at pos with the given orientation.
func NewFlyCamera(pos mgl32.Vec3, yaw, pitch float32, invertY bool) *FlyCamera {
	c := &FlyCamera{
		Position:    pos,
		Yaw:         yaw,
		Pitch:       clamp(pitch, -MaxPitch, MaxPitch),
		Speed:       102.5,
		Sensitivity: 0.1,
		Zoom:        MaxZoom,
		InvertY:     invertY,
		worldUp:     mgl32.Vec3{0, 1, 0},
	}
	c.updateVectors()
	return c
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit direction to the right of the view.
func (c *FlyCamera) Right() mgl32.Vec3 { return c.right }

// Up returns the camera's up vector.
func (c *FlyCamera) Up() mgl32.Vec3 { return c.up }

// ViewMatrix returns the right-handed look-at matrix for the camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using Zoom as the field
// of view.
func (c *FlyCamera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// Move translates the camera for dt seconds in the given direction.
func (c *FlyCamera) Move(m Movement, dt float32) {
	velocity := c.Speed * dt
	switch m {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
}

// Look turns the camera by a relative mouse motion in pixels.
func (c *FlyCamera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	if c.InvertY {
		c.Pitch += dy * c.Sensitivity
	} else {
		c.Pitch -= dy * c.Sensitivity
	}
	c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ZoomBy narrows (positive delta) or widens the field of view.
func (c *FlyCamera) ZoomBy(delta float32) {
	c.Zoom = clamp(c.Zoom-delta, MinZoom, MaxZoom)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
