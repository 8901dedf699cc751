package transform

import "github.com/go-gl/mathgl/mgl32"

// TransformBuilderOption is a functional option for configuring a Transform.
type TransformBuilderOption func(*transformImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - TransformBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial orientation. The quaternion is normalized.
//
// Parameters:
//   - q: the orientation
//
// Returns:
//   - TransformBuilderOption: functional option to set the rotation
func WithRotation(q mgl32.Quat) TransformBuilderOption {
	return func(t *transformImpl) {
		t.rotation = q.Normalize()
	}
}

// WithLookAt orients the transform toward a world-space point.
// Apply after WithPosition, since the result depends on the current position.
//
// Parameters:
//   - x, y, z: world-space point to face
//
// Returns:
//   - TransformBuilderOption: functional option to set the facing
func WithLookAt(x, y, z float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.lookAt(mgl32.Vec3{x, y, z})
	}
}
