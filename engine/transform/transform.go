package transform

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	localRight   = mgl32.Vec3{1, 0, 0}
	localUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
)

// Transform owns an object's pose in a right-handed, Y-up world.
// Local axes are right = +X, up = +Y and forward = -Z (the OpenGL camera convention).
type Transform interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the world-space orientation.
	//
	// Returns:
	//   - mgl32.Quat: the orientation (unit quaternion)
	Rotation() mgl32.Quat

	// SetRotation sets the world-space orientation. The quaternion is normalized.
	//
	// Parameters:
	//   - q: the new orientation
	SetRotation(q mgl32.Quat)

	// RotateLocal applies an incremental rotation in local space: rotation = rotation * q.
	//
	// Parameters:
	//   - q: the incremental rotation
	RotateLocal(q mgl32.Quat)

	// TranslateLocal moves the object along its own axes: position += rotation.Rotate(v).
	//
	// Parameters:
	//   - v: the offset in local coordinates
	TranslateLocal(v mgl32.Vec3)

	// LookAt orients the object so its forward axis points at target, keeping world up as up.
	// Does nothing if target coincides with the position.
	//
	// Parameters:
	//   - target: world-space point to face
	LookAt(target mgl32.Vec3)

	// Right returns the local +X axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the right vector
	Right() mgl32.Vec3

	// Up returns the local +Y axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Forward returns the local -Z axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the forward vector
	Forward() mgl32.Vec3

	// Matrix returns the local-to-world matrix (translation * rotation).
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	Matrix() mgl32.Mat4
}

type transformImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	rotation mgl32.Quat
}

var _ Transform = &transformImpl{}

// NewTransform creates a Transform at the origin facing -Z.
//
// Parameters:
//   - options: functional options to configure the transform
//
// Returns:
//   - Transform: the newly created transform
func NewTransform(options ...TransformBuilderOption) Transform {
	t := &transformImpl{
		mu:       &sync.Mutex{},
		rotation: mgl32.QuatIdent(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *transformImpl) Position() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

func (t *transformImpl) SetPosition(p mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = p
}

func (t *transformImpl) Rotation() mgl32.Quat {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotation
}

func (t *transformImpl) SetRotation(q mgl32.Quat) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rotation = q.Normalize()
}

func (t *transformImpl) RotateLocal(q mgl32.Quat) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// renormalize to keep float drift from accumulating over many frames
	t.rotation = t.rotation.Mul(q).Normalize()
}

func (t *transformImpl) TranslateLocal(v mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.position = t.position.Add(t.rotation.Rotate(v))
}

func (t *transformImpl) LookAt(target mgl32.Vec3) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lookAt(target)
}

func (t *transformImpl) Right() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotation.Rotate(localRight)
}

func (t *transformImpl) Up() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotation.Rotate(localUp)
}

func (t *transformImpl) Forward() mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotation.Rotate(localForward)
}

func (t *transformImpl) Matrix() mgl32.Mat4 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z()).Mul4(t.rotation.Mat4())
}

// lookAt computes the orientation facing target with world +Y as up.
// Falls back to +Z as the reference up when looking straight up or down.
// Caller must hold the mutex.
func (t *transformImpl) lookAt(target mgl32.Vec3) {
	dir := target.Sub(t.position)
	if dir.Len() < 1e-6 {
		return
	}
	forward := dir.Normalize()
	up := localUp
	if mgl32.Abs(forward.Dot(up)) > 0.9999 {
		up = mgl32.Vec3{0, 0, 1}
	}
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	// columns are the world-space images of local X, Y, Z (backward = -forward)
	back := forward.Mul(-1)
	m := mgl32.Mat3{
		right.X(), right.Y(), right.Z(),
		trueUp.X(), trueUp.Y(), trueUp.Z(),
		back.X(), back.Y(), back.Z(),
	}
	t.rotation = mgl32.Mat4ToQuat(m.Mat4()).Normalize()
}
