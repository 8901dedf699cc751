package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

// assertVec compares component-wise with an absolute tolerance. ApproxEqualThreshold is relative
// and rejects float32 residue against an exact zero.
func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func assertQuat(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	assert.InDeltaf(t, want.W, got.W, eps, "w: want %v, got %v", want, got)
	assertVec(t, want.V, got.V)
}

func TestDefaultAxes(t *testing.T) {
	tr := NewTransform()
	assertVec(t, mgl32.Vec3{1, 0, 0}, tr.Right())
	assertVec(t, mgl32.Vec3{0, 1, 0}, tr.Up())
	assertVec(t, mgl32.Vec3{0, 0, -1}, tr.Forward())
	assertVec(t, mgl32.Vec3{}, tr.Position())
}

func TestTranslateLocalFollowsOrientation(t *testing.T) {
	tr := NewTransform(WithPosition(1, 2, 3))

	tr.TranslateLocal(mgl32.Vec3{0, 0, -2})
	assertVec(t, mgl32.Vec3{1, 2, 1}, tr.Position())

	// turn 90 degrees left; local forward is now world -X
	tr.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	tr.TranslateLocal(mgl32.Vec3{0, 0, -1})
	assertVec(t, mgl32.Vec3{0, 2, 1}, tr.Position())
}

func TestRotateLocalAppliesOnTheRight(t *testing.T) {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})

	tr := NewTransform(WithRotation(yaw))
	tr.RotateLocal(pitch)

	// local pitch after yaw: forward ends up pointing world up
	assertVec(t, mgl32.Vec3{0, 1, 0}, tr.Forward())
	assertQuat(t, yaw.Mul(pitch), tr.Rotation())
	assert.InDelta(t, 1.0, tr.Rotation().Len(), eps)
}

func TestTranslateLocalAfterYawKeepsExactAxes(t *testing.T) {
	tr := NewTransform(WithPosition(0, 2, 3), WithRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})))

	// forward is world -X after a left yaw; the rotated Z component is float32 residue, not zero
	tr.TranslateLocal(mgl32.Vec3{0, 0, -2})
	assertVec(t, mgl32.Vec3{-2, 2, 3}, tr.Position())
}

func TestLookAt(t *testing.T) {
	tr := NewTransform(WithPosition(0, 0, 10), WithLookAt(0, 0, 0))
	assertVec(t, mgl32.Vec3{0, 0, -1}, tr.Forward())
	assertVec(t, mgl32.Vec3{0, 1, 0}, tr.Up())

	tr.LookAt(mgl32.Vec3{10, 0, 10})
	assertVec(t, mgl32.Vec3{1, 0, 0}, tr.Forward())
	assertVec(t, mgl32.Vec3{0, 1, 0}, tr.Up())

	// degenerate target is ignored
	before := tr.Rotation()
	tr.LookAt(tr.Position())
	assert.Equal(t, before, tr.Rotation())
}

func TestMatrix(t *testing.T) {
	tr := NewTransform(WithPosition(5, 0, 0))
	m := tr.Matrix()
	p := m.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	require.InDelta(t, 5.0, p.X(), eps)
	require.InDelta(t, -1.0, p.Z(), eps)
}
