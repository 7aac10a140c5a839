package drawable

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformMatrix(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"identity", NewTransform(mgl32.Vec3{}), mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
		{"translate", NewTransform(mgl32.Vec3{250, 100, 250}), mgl32.Vec3{1, 0, 0}, mgl32.Vec3{251, 100, 250}},
		{
			"scale then translate",
			Transform{Translation: mgl32.Vec3{0, 5, 0}, Axis: mgl32.Vec3{0, 1, 0}, Scale: mgl32.Vec3{2, 2, 2}},
			mgl32.Vec3{1, 1, 1},
			mgl32.Vec3{2, 7, 2},
		},
		{
			"rotate about y",
			Transform{Angle: 90, Axis: mgl32.Vec3{0, 1, 0}, Scale: mgl32.Vec3{1, 1, 1}},
			mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{0, 0, -1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.Matrix().Mul4x1(tt.in.Vec4(1)).Vec3()
			if !got.ApproxEqualThreshold(tt.want, 1e-5) {
				t.Errorf("Matrix() * %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
