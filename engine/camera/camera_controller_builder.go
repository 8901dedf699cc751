package camera

import (
	"github.com/Carmen-Shannon/oxy-freecam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// FreeCameraControllerOption is a functional option for configuring a FreeCameraController.
type FreeCameraControllerOption func(*freeCameraControllerImpl)

// WithSpeed sets the base movement speed.
//
// Parameters:
//   - speed: units per second while not fast
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the base speed
func WithSpeed(speed float32) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.settings.Speed = speed
	}
}

// WithFastSpeed sets the boosted movement speed.
//
// Parameters:
//   - speed: units per second while fast
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the fast speed
func WithFastSpeed(speed float32) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.settings.FastSpeed = speed
	}
}

// WithRollSpeed sets the base roll rate.
//
// Parameters:
//   - speed: degrees per second while not fast
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the roll speed
func WithRollSpeed(speed float32) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.settings.RollSpeed = speed
	}
}

// WithFastRollSpeed sets the boosted roll rate.
//
// Parameters:
//   - speed: degrees per second while fast
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the fast roll speed
func WithFastRollSpeed(speed float32) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.settings.FastRollSpeed = speed
	}
}

// WithMouseSensitivity sets the look sensitivity.
//
// Parameters:
//   - x: multiplier for the look-right axis (yaw)
//   - y: multiplier for the look-up axis (pitch)
//
// Returns:
//   - FreeCameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(x, y float32) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.settings.MouseSensitivity = mgl32.Vec2{x, y}
	}
}

// WithSettings replaces all speed settings at once.
//
// Parameters:
//   - s: the settings to use
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the settings
func WithSettings(s Settings) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.settings = s
	}
}

// WithBindings replaces all control bindings at once.
//
// Parameters:
//   - b: the bindings to use
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the bindings
func WithBindings(b Bindings) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.bindings = b
	}
}

// WithTransform sets the transform the controller moves.
//
// Parameters:
//   - t: the transform to control
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the transform
func WithTransform(t transform.Transform) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.transform = t
	}
}

// WithHaltHandler sets the function run on the halt key's down-edge.
// The frame continues after the handler returns.
//
// Parameters:
//   - handler: the halt action (e.g., pausing the engine)
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the halt handler
func WithHaltHandler(handler func()) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.onHalt = handler
	}
}

// WithLogger sets the logger used for halt and fast-lock events.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - FreeCameraControllerOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) FreeCameraControllerOption {
	return func(fc *freeCameraControllerImpl) {
		fc.logger = logger
	}
}
