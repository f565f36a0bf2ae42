package nkdemo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera step sizes applied per frame while a key is held.
const (
	CameraYawStep  = 0.03
	CameraMoveStep = 1.0
)

// Camera is a position plus pitch (RotationX) and yaw (RotationY).
type Camera struct {
	X, Y, Z   float64
	RotationX float64
	RotationY float64
}

// NewCamera returns the camera at its starting position, 10 units back on Z.
func NewCamera() Camera {
	return Camera{Z: 10}
}

// Reset restores the starting position and orientation.
func (c *Camera) Reset() {
	*c = NewCamera()
}

// Update applies one frame of keyboard input. Nothing changes while the GUI
// has an active widget. Yaw is applied before movement so Up/Down use the
// yaw from this frame.
func (c *Camera) Update(keys KeyState, guiActive bool) {
	if guiActive {
		return
	}
	if keys.KeyDown(KeyRight) {
		c.RotationY -= CameraYawStep
	}
	if keys.KeyDown(KeyLeft) {
		c.RotationY += CameraYawStep
	}
	if keys.KeyDown(KeyUp) {
		c.X -= math.Sin(c.RotationY) * CameraMoveStep
		c.Z -= math.Cos(c.RotationY) * CameraMoveStep
	}
	if keys.KeyDown(KeyDown) {
		c.X += math.Sin(c.RotationY) * CameraMoveStep
		c.Z += math.Cos(c.RotationY) * CameraMoveStep
	}
}

// View builds the view matrix: rotate X by pitch, rotate Y by -yaw,
// translate by -position.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(float32(c.RotationX)).
		Mul4(mgl32.HomogRotate3DY(float32(-c.RotationY))).
		Mul4(mgl32.Translate3D(float32(-c.X), float32(-c.Y), float32(-c.Z)))
}
