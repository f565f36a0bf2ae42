package nkdemo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters.
const (
	FieldOfView = 45.0 // degrees, vertical
	NearPlane   = 0.1
	FarPlane    = 10000.0
)

// ModelMatrix returns the triangle's model transform at t seconds:
// translate along X by sin(t), then rotate about Z by t radians.
func ModelMatrix(t float64) mgl32.Mat4 {
	return mgl32.Ident4().
		Mul4(mgl32.Translate3D(float32(math.Sin(t)), 0, 0)).
		Mul4(mgl32.HomogRotate3DZ(float32(t)))
}

// Aspect returns width/height, or 1 when either dimension is not positive
// (a minimized window reports a 0x0 framebuffer).
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective projection for a framebuffer size.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), Aspect(width, height), NearPlane, FarPlane)
}

// MVP combines projection, view and model in that order.
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
