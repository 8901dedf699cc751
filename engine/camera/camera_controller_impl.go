package camera

import (
	"github.com/Carmen-Shannon/oxy-freecam/common"
	"github.com/Carmen-Shannon/oxy-freecam/engine/input"
	"github.com/Carmen-Shannon/oxy-freecam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// freeCameraControllerImpl is the single implementation of FreeCameraController.
type freeCameraControllerImpl struct {
	input     input.State
	transform transform.Transform
	logger    zerolog.Logger

	settings Settings
	bindings Bindings

	// onHalt runs on the halt key's down-edge.
	onHalt func()

	// Modifier state. fast = heldFast XOR fastLock.
	heldFast bool
	fastLock bool

	currentMoveSpeed float32
	currentRollSpeed float32
}

// Compile-time interface compliance check
var _ FreeCameraController = &freeCameraControllerImpl{}

// NewFreeCameraController creates a controller that reads from in and moves a transform.
// Defaults to DefaultSettings, DefaultBindings, a fresh transform at the origin and a halt
// handler that only logs. The controller starts in the normal (not fast) state.
//
// Parameters:
//   - in: the per-frame input snapshot to read
//   - options: functional options to configure the controller
//
// Returns:
//   - FreeCameraController: the newly created controller
func NewFreeCameraController(in input.State, options ...FreeCameraControllerOption) FreeCameraController {
	fc := &freeCameraControllerImpl{
		input:    in,
		logger:   log.Logger,
		settings: DefaultSettings(),
		bindings: DefaultBindings(),
	}

	for _, option := range options {
		option(fc)
	}

	if fc.transform == nil {
		fc.transform = transform.NewTransform()
	}
	if fc.onHalt == nil {
		fc.onHalt = func() {
			fc.logger.Warn().Msg("halt requested but no halt handler is installed")
		}
	}

	fc.applySpeeds()
	return fc
}

func (fc *freeCameraControllerImpl) Update(deltaTime float32) {
	lockToggled := false
	if fc.input.AnyKeyPressed() {
		if fc.input.KeyPressed(fc.bindings.HaltKey) {
			fc.logger.Warn().Str("key", common.KeyName(fc.bindings.HaltKey)).Msg("debug halt")
			fc.onHalt()
		}
		if fc.input.KeyPressed(fc.bindings.FastLockKey) {
			fc.fastLock = !fc.fastLock
			lockToggled = true
			fc.logger.Debug().Bool("fastLock", fc.fastLock).Msg("fast lock toggled")
		}
	}

	heldFast := fc.input.KeyHeld(fc.bindings.FastKey)
	if heldFast != fc.heldFast || lockToggled {
		fc.heldFast = heldFast
		fc.applySpeeds()
	}

	fc.updateOrientation(deltaTime)

	if fc.input.AnyKeyHeld() {
		fc.updatePosition(deltaTime)
	}
}

func (fc *freeCameraControllerImpl) Transform() transform.Transform {
	return fc.transform
}

func (fc *freeCameraControllerImpl) FastLock() bool {
	return fc.fastLock
}

func (fc *freeCameraControllerImpl) Fast() bool {
	return fc.heldFast != fc.fastLock
}

func (fc *freeCameraControllerImpl) CurrentMoveSpeed() float32 {
	return fc.currentMoveSpeed
}

func (fc *freeCameraControllerImpl) CurrentRollSpeed() float32 {
	return fc.currentRollSpeed
}

func (fc *freeCameraControllerImpl) Settings() Settings {
	return fc.settings
}

func (fc *freeCameraControllerImpl) SetSettings(s Settings) {
	fc.settings = s
	fc.applySpeeds()
}

func (fc *freeCameraControllerImpl) Bindings() Bindings {
	return fc.bindings
}

func (fc *freeCameraControllerImpl) SetBindings(b Bindings) {
	fc.bindings = b
}

// --- internal helpers ---

// applySpeeds selects the base or fast speeds from the effective fast state.
func (fc *freeCameraControllerImpl) applySpeeds() {
	if fc.Fast() {
		fc.currentMoveSpeed = fc.settings.FastSpeed
		fc.currentRollSpeed = fc.settings.FastRollSpeed
		return
	}
	fc.currentMoveSpeed = fc.settings.Speed
	fc.currentRollSpeed = fc.settings.RollSpeed
}

// lookRotation samples this frame's look vector as (pitch, yaw, roll).
func (fc *freeCameraControllerImpl) lookRotation() mgl32.Vec3 {
	yaw := fc.input.Axis(fc.bindings.LookRightAxis)
	pitch := -fc.input.Axis(fc.bindings.LookUpAxis)
	roll := common.KeyPair(
		fc.input.KeyHeld(fc.bindings.RollLeftKey),
		fc.input.KeyHeld(fc.bindings.RollRightKey),
	)
	return mgl32.Vec3{pitch, yaw, roll}
}

// movement samples this frame's movement vector as (right, up, forward), normalized or zero.
func (fc *freeCameraControllerImpl) movement() mgl32.Vec3 {
	up := common.KeyPair(
		fc.input.KeyHeld(fc.bindings.MoveUpKey),
		fc.input.KeyHeld(fc.bindings.MoveDownKey),
	)
	right := fc.input.Axis(fc.bindings.MoveRightAxis)
	forward := fc.input.Axis(fc.bindings.MoveForwardAxis)
	return common.NormalizeOrZero(mgl32.Vec3{right, up, forward})
}

// updateOrientation applies mouse look and roll as a local-space rotation.
func (fc *freeCameraControllerImpl) updateOrientation(deltaTime float32) {
	look := fc.lookRotation()
	if common.ApproxZero(look.LenSqr()) {
		return
	}
	scale := mgl32.Vec3{
		fc.settings.MouseSensitivity.Y(),
		fc.settings.MouseSensitivity.X(),
		fc.currentRollSpeed,
	}.Mul(deltaTime)
	fc.transform.RotateLocal(common.LocalEuler(
		look.X()*scale.X(),
		look.Y()*scale.Y(),
		look.Z()*scale.Z(),
	))
}

// updatePosition translates along the transform's own axes. Forward maps to local -Z.
func (fc *freeCameraControllerImpl) updatePosition(deltaTime float32) {
	move := fc.movement()
	if common.ApproxZero(move.LenSqr()) {
		return
	}
	step := move.Mul(deltaTime * fc.currentMoveSpeed)
	fc.transform.TranslateLocal(mgl32.Vec3{step.X(), step.Y(), -step.Z()})
}
