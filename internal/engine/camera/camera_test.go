package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestNewFlyCameraVectors(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 0, 0, false)

	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Front() = %v, want (1,0,0)", c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Right() = %v, want (0,0,1)", c.Right())
	}
	if !c.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, eps) {
		t.Errorf("Up() = %v, want (0,1,0)", c.Up())
	}
}

func TestYawNinetyLooksAlongZ(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 90, 0, false)
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Front() = %v, want (0,0,1)", c.Front())
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		m    Movement
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{2, 0, 0}},
		{Backward, mgl32.Vec3{-2, 0, 0}},
		{Left, mgl32.Vec3{0, 0, -2}},
		{Right, mgl32.Vec3{0, 0, 2}},
	}
	for _, tt := range tests {
		c := NewFlyCamera(mgl32.Vec3{}, 0, 0, false)
		c.Speed = 4
		c.Move(tt.m, 0.5)
		if !c.Position.ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("Move(%d) position = %v, want %v", tt.m, c.Position, tt.want)
		}
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 0, 0, false)
	c.Look(0, -10000)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	c.Look(0, 20000)
	if c.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -MaxPitch)
	}
	if c.Front().Y() >= 0 {
		t.Errorf("Front() = %v, want looking down", c.Front())
	}
}

func TestLookInvertY(t *testing.T) {
	normal := NewFlyCamera(mgl32.Vec3{}, 0, 0, false)
	inverted := NewFlyCamera(mgl32.Vec3{}, 0, 0, true)

	normal.Look(10, 50)
	inverted.Look(10, 50)

	if normal.Pitch != -5 {
		t.Errorf("normal Pitch = %v, want -5", normal.Pitch)
	}
	if inverted.Pitch != 5 {
		t.Errorf("inverted Pitch = %v, want 5", inverted.Pitch)
	}
	if normal.Yaw != 1 || inverted.Yaw != 1 {
		t.Errorf("Yaw = %v / %v, want 1", normal.Yaw, inverted.Yaw)
	}
}

func TestNewFlyCameraClampsInitialPitch(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 0, -120, false)
	if c.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -MaxPitch)
	}
}

func TestViewMatrix(t *testing.T) {
	pos := mgl32.Vec3{2.5, 8, 2.5}
	c := NewFlyCamera(pos, 0, -89, true)
	view := c.ViewMatrix()

	eye := view.Mul4x1(pos.Vec4(1))
	if !eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4) {
		t.Errorf("camera position in view space = %v, want origin", eye)
	}

	ahead := view.Mul4x1(pos.Add(c.Front().Mul(10)).Vec4(1))
	if !ahead.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -10}, 1e-3) {
		t.Errorf("point ahead in view space = %v, want (0,0,-10)", ahead)
	}
}

func TestZoomBy(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 0, 0, false)
	c.ZoomBy(10)
	if c.Zoom != 35 {
		t.Errorf("Zoom = %v, want 35", c.Zoom)
	}
	c.ZoomBy(100)
	if c.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MinZoom)
	}
	c.ZoomBy(-100)
	if c.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MaxZoom)
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{}, 0, 0, false)
	got := c.ProjectionMatrix(4.0/3.0, 0.1, 1000)
	want := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 1000)
	if !got.ApproxEqual(want) {
		t.Errorf("ProjectionMatrix() = %v, want %v", got, want)
	}
}
