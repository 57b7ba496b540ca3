package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

var worldForward = mgl32.Vec3{0, 0, 1}
var worldUp = mgl32.Vec3{0, 1, 0}

// FlatForward projects a view rotation's forward vector onto the ground
// plane and normalizes it. ok is false when the view points straight up
// or down and no horizontal forward exists.
func FlatForward(rotation mgl32.Quat) (mgl32.Vec3, bool) {
	f := rotation.Rotate(worldForward)
	f[1] = 0
	if f.Len() < epsilon {
		return mgl32.Vec3{}, false
	}
	return f.Normalize(), true
}

// MovementRotation returns the yaw rotation that carries world-axis
// movement intent onto the given flattened forward. The angle between
// forward and world +Z is unsigned, so the rotation direction comes from
// the vertical component of cross(forward, +Z): positive means rotate by
// the negative angle. Without this the anti-parallel case is ambiguous.
func MovementRotation(forward mgl32.Vec3) mgl32.Quat {
	dot := mgl32.Clamp(forward.Dot(worldForward), -1, 1)
	angle := float32(math.Acos(float64(dot)))
	if forward.Cross(worldForward).Y() > 0 {
		angle = -angle
	}
	return mgl32.QuatRotate(angle, worldUp)
}

// RotateFlattened applies a full rotation to the 2D intent lifted into the
// ground plane, then re-flattens the result and rescales it to the
// intent's original magnitude. A pitched headset therefore changes only
// the direction of travel, never the speed. ok is false when the rotated
// direction is vertical and no ground direction remains.
func RotateFlattened(rotation mgl32.Quat, intent mgl32.Vec2) (mgl32.Vec3, bool) {
	mag := intent.Len()
	if mag < epsilon {
		return mgl32.Vec3{}, true
	}
	v := rotation.Rotate(mgl32.Vec3{intent.X(), 0, intent.Y()})
	v[1] = 0
	if v.Len() < epsilon {
		return mgl32.Vec3{}, false
	}
	return v.Normalize().Mul(mag), true
}
