package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// normalizeEpsilon is the magnitude below which NormalizeOrZero yields the zero vector.
const normalizeEpsilon = 1e-5

// approxZeroEpsilon is the float comparison floor for ApproxZero.
const approxZeroEpsilon = 8 * math.SmallestNonzeroFloat32

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// ApproxZero reports whether x is numerically indistinguishable from zero.
//
// Parameters:
//   - x: the value to test
//
// Returns:
//   - bool: true if |x| is below the float32 comparison floor
func ApproxZero(x float32) bool {
	return x < approxZeroEpsilon && x > -approxZeroEpsilon
}

// NormalizeOrZero returns v scaled to unit length. Vectors shorter than 1e-5 return exactly zero,
// so the result is always either unit-length or the zero vector.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the unit vector or the zero vector
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < normalizeEpsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// LocalEuler builds an incremental rotation from Euler angles in degrees.
// Positive pitch tilts the view down, positive yaw turns right and positive roll banks left,
// for a camera looking down -Z in a right-handed Y-up frame. The angles compose as
// yaw * pitch * roll around local Y, X and Z.
//
// Parameters:
//   - pitch: rotation around local X in degrees
//   - yaw: rotation around local Y in degrees
//   - roll: rotation around local Z in degrees
//
// Returns:
//   - mgl32.Quat: the composed rotation
func LocalEuler(pitch, yaw, roll float32) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(-pitch), axisX)
	qy := mgl32.QuatRotate(mgl32.DegToRad(-yaw), axisY)
	qz := mgl32.QuatRotate(mgl32.DegToRad(roll), axisZ)
	return qy.Mul(qx).Mul(qz)
}
