package camera

import (
	"github.com/Carmen-Shannon/oxy-freecam/common"
	"github.com/Carmen-Shannon/oxy-freecam/engine/input"
	"github.com/Carmen-Shannon/oxy-freecam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds the controller's tunable speeds.
// Values are used as-is; negative speeds invert motion.
type Settings struct {
	// Speed is the movement speed in units per second while not fast.
	Speed float32
	// FastSpeed is the movement speed in units per second while fast.
	FastSpeed float32
	// RollSpeed is the roll rate in degrees per second while not fast.
	RollSpeed float32
	// FastRollSpeed is the roll rate in degrees per second while fast.
	FastRollSpeed float32
	// MouseSensitivity scales the look axes: X scales yaw, Y scales pitch.
	MouseSensitivity mgl32.Vec2
}

// DefaultSettings returns the built-in controller speeds.
//
// Returns:
//   - Settings: speed 10, fast speed 80, roll speed 80, fast roll speed 150, sensitivity (100, 100)
func DefaultSettings() Settings {
	return Settings{
		Speed:            10,
		FastSpeed:        80,
		RollSpeed:        80,
		FastRollSpeed:    150,
		MouseSensitivity: mgl32.Vec2{100, 100},
	}
}

// Bindings maps controls to axis names and key codes.
// An empty axis name or common.KeyNone leaves the control neutral.
type Bindings struct {
	MoveRightAxis   string
	MoveForwardAxis string
	MoveUpKey       uint32
	MoveDownKey     uint32
	LookRightAxis   string
	LookUpAxis      string
	RollLeftKey     uint32
	RollRightKey    uint32
	FastKey         uint32
	FastLockKey     uint32
	HaltKey         uint32
}

// DefaultBindings returns the built-in control bindings.
//
// Returns:
//   - Bindings: Horizontal/Vertical movement, Space/C up/down, mouse look, Q/E roll,
//     LeftShift fast, CapsLock fast lock, Escape halt
func DefaultBindings() Bindings {
	return Bindings{
		MoveRightAxis:   input.AxisHorizontal,
		MoveForwardAxis: input.AxisVertical,
		MoveUpKey:       common.KeySpace,
		MoveDownKey:     common.KeyC,
		LookRightAxis:   input.AxisMouseX,
		LookUpAxis:      input.AxisMouseY,
		RollLeftKey:     common.KeyQ,
		RollRightKey:    common.KeyE,
		FastKey:         common.KeyLeftShift,
		FastLockKey:     common.KeyCapsLock,
		HaltKey:         common.KeyEsc,
	}
}

// FreeCameraController flies a transform from per-frame keyboard and mouse input:
// axis movement, mouse look, two-key roll, a held boost key, a persistent fast lock
// and a debug halt key.
//
// The controller is driven by a single caller, once per frame, and is not safe for
// concurrent use. Within one Update the halt check, fast-lock toggle, speed recompute,
// orientation update and position update run in that order.
type FreeCameraController interface {
	// Update runs one frame of the controller against the current input snapshot.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the previous frame in seconds
	Update(deltaTime float32)

	// Transform returns the transform the controller moves.
	//
	// Returns:
	//   - transform.Transform: the controlled transform
	Transform() transform.Transform

	// FastLock returns the persistent fast-lock toggle.
	//
	// Returns:
	//   - bool: true if fast lock is engaged
	FastLock() bool

	// Fast returns the effective fast state: held fast key XOR fast lock.
	//
	// Returns:
	//   - bool: true if the fast speeds are in effect
	Fast() bool

	// CurrentMoveSpeed returns the movement speed in effect.
	//
	// Returns:
	//   - float32: units per second
	CurrentMoveSpeed() float32

	// CurrentRollSpeed returns the roll rate in effect.
	//
	// Returns:
	//   - float32: degrees per second
	CurrentRollSpeed() float32

	// Settings returns the controller's speed settings.
	//
	// Returns:
	//   - Settings: the current settings
	Settings() Settings

	// SetSettings replaces the speed settings and recomputes the speeds in effect.
	//
	// Parameters:
	//   - s: the new settings
	SetSettings(s Settings)

	// Bindings returns the controller's control bindings.
	//
	// Returns:
	//   - Bindings: the current bindings
	Bindings() Bindings

	// SetBindings replaces the control bindings. The fast and fast-lock state carry over.
	//
	// Parameters:
	//   - b: the new bindings
	SetBindings(b Bindings)
}
