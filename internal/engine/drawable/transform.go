package drawable

import "github.com/go-gl/mathgl/mgl32"

// Transform places a drawable in the world. Rotation is Angle degrees about
// Axis.
type Transform struct {
	Translation mgl32.Vec3
	Angle       float32
	Axis        mgl32.Vec3
	Scale       mgl32.Vec3
}

// NewTransform returns an unrotated, unscaled transform at origin.
func NewTransform(origin mgl32.Vec3) Transform {
	return Transform{
		Translation: origin,
		Axis:        mgl32.Vec3{0, 1, 0},
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns the model matrix: scale, then rotate, then translate.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	if t.Angle != 0 && t.Axis.Len() > 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(t.Angle), t.Axis.Normalize()))
	}
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
