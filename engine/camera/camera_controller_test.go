package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-freecam/common"
	"github.com/Carmen-Shannon/oxy-freecam/engine/input"
	"github.com/Carmen-Shannon/oxy-freecam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedInput is an input.State whose frame contents are set directly by the test.
type scriptedInput struct {
	held    map[uint32]bool
	pressed map[uint32]bool
	axes    map[string]float32
}

var _ input.State = &scriptedInput{}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		held:    map[uint32]bool{},
		pressed: map[uint32]bool{},
		axes:    map[string]float32{},
	}
}

func (s *scriptedInput) KeyHeld(key uint32) bool    { return s.held[key] }
func (s *scriptedInput) KeyPressed(key uint32) bool { return s.pressed[key] }
func (s *scriptedInput) AnyKeyHeld() bool           { return len(s.held) > 0 }
func (s *scriptedInput) AnyKeyPressed() bool        { return len(s.pressed) > 0 }
func (s *scriptedInput) Axis(name string) float32   { return s.axes[name] }

// press marks key as going down this frame and held.
func (s *scriptedInput) press(key uint32) {
	s.pressed[key] = true
	s.held[key] = true
}

// nextFrame clears down-edges, keeping held keys held.
func (s *scriptedInput) nextFrame() {
	s.pressed = map[uint32]bool{}
}

func (s *scriptedInput) release(key uint32) {
	delete(s.held, key)
}

// recordingTransform counts mutations on top of a real transform.
type recordingTransform struct {
	transform.Transform
	rotations    []mgl32.Quat
	translations []mgl32.Vec3
}

func newRecordingTransform() *recordingTransform {
	return &recordingTransform{Transform: transform.NewTransform()}
}

func (r *recordingTransform) RotateLocal(q mgl32.Quat) {
	r.rotations = append(r.rotations, q)
	r.Transform.RotateLocal(q)
}

func (r *recordingTransform) TranslateLocal(v mgl32.Vec3) {
	r.translations = append(r.translations, v)
	r.Transform.TranslateLocal(v)
}

func newTestController(in input.State, options ...FreeCameraControllerOption) (FreeCameraController, *recordingTransform) {
	tr := newRecordingTransform()
	options = append([]FreeCameraControllerOption{
		WithTransform(tr),
		WithLogger(zerolog.Nop()),
		WithHaltHandler(func() {}),
	}, options...)
	return NewFreeCameraController(in, options...), tr
}

func TestControllerStartsNormal(t *testing.T) {
	fc, _ := newTestController(newScriptedInput())

	assert.False(t, fc.Fast())
	assert.False(t, fc.FastLock())
	assert.Equal(t, float32(10), fc.CurrentMoveSpeed())
	assert.Equal(t, float32(80), fc.CurrentRollSpeed())
	assert.Equal(t, DefaultSettings(), fc.Settings())
	assert.Equal(t, DefaultBindings(), fc.Bindings())
}

func TestFastStateIsHeldXorLock(t *testing.T) {
	cases := []struct {
		name     string
		held     bool
		lock     bool
		fast     bool
		move     float32
		rollRate float32
	}{
		{"neither", false, false, false, 10, 80},
		{"held", true, false, true, 80, 150},
		{"lock", false, true, true, 80, 150},
		{"both", true, true, false, 10, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := newScriptedInput()
			fc, _ := newTestController(in)

			if tc.lock {
				in.press(common.KeyCapsLock)
				fc.Update(0.016)
				in.nextFrame()
				in.release(common.KeyCapsLock)
			}
			if tc.held {
				in.held[common.KeyLeftShift] = true
			}
			fc.Update(0.016)

			assert.Equal(t, tc.lock, fc.FastLock())
			assert.Equal(t, tc.fast, fc.Fast())
			assert.Equal(t, tc.move, fc.CurrentMoveSpeed())
			assert.Equal(t, tc.rollRate, fc.CurrentRollSpeed())
		})
	}
}

func TestFastLockTogglesOncePerPress(t *testing.T) {
	in := newScriptedInput()
	fc, _ := newTestController(in)

	in.press(common.KeyCapsLock)
	fc.Update(0.016)
	require.True(t, fc.FastLock())

	// holding the key for many frames does not flip it again
	for i := 0; i < 30; i++ {
		in.nextFrame()
		fc.Update(0.016)
		require.True(t, fc.FastLock(), "frame %d", i)
		require.Equal(t, float32(80), fc.CurrentMoveSpeed())
	}

	in.release(common.KeyCapsLock)
	fc.Update(0.016)
	assert.True(t, fc.FastLock())

	in.press(common.KeyCapsLock)
	fc.Update(0.016)
	assert.False(t, fc.FastLock())
	assert.Equal(t, float32(10), fc.CurrentMoveSpeed())
}

func TestSpeedsStableWithoutModifierChanges(t *testing.T) {
	in := newScriptedInput()
	fc, _ := newTestController(in)

	in.held[common.KeyLeftShift] = true
	fc.Update(0.016)
	require.Equal(t, float32(80), fc.CurrentMoveSpeed())

	// other keys come and go; speeds stay put while shift is held
	for _, key := range []uint32{common.KeyW, common.KeyQ, common.KeySpace} {
		in.nextFrame()
		in.press(key)
		fc.Update(0.016)
		assert.Equal(t, float32(80), fc.CurrentMoveSpeed())
		assert.Equal(t, float32(150), fc.CurrentRollSpeed())
		in.release(key)
	}

	in.nextFrame()
	in.release(common.KeyLeftShift)
	fc.Update(0.016)
	assert.Equal(t, float32(10), fc.CurrentMoveSpeed())
	assert.Equal(t, float32(80), fc.CurrentRollSpeed())
}

func TestSetSettingsRecomputesSpeeds(t *testing.T) {
	in := newScriptedInput()
	fc, _ := newTestController(in)

	in.held[common.KeyLeftShift] = true
	fc.Update(0.016)

	s := fc.Settings()
	s.FastSpeed = 200
	s.FastRollSpeed = -5
	fc.SetSettings(s)

	assert.Equal(t, float32(200), fc.CurrentMoveSpeed())
	assert.Equal(t, float32(-5), fc.CurrentRollSpeed())
}

func TestForwardTranslation(t *testing.T) {
	for _, tc := range []struct {
		name string
		fast bool
		want float32
	}{
		{"normal", false, 1.0},
		{"fast", true, 8.0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := newScriptedInput()
			fc, tr := newTestController(in, WithSpeed(10), WithFastSpeed(80))

			in.held[common.KeyW] = true
			in.axes[input.AxisVertical] = 1.0
			if tc.fast {
				in.held[common.KeyLeftShift] = true
			}
			fc.Update(0.1)

			require.Len(t, tr.translations, 1)
			pos := tr.Position()
			assert.InDelta(t, 0, pos.X(), 1e-5)
			assert.InDelta(t, 0, pos.Y(), 1e-5)
			// forward is local -Z
			assert.InDelta(t, -tc.want, pos.Z(), 1e-5)
		})
	}
}

func TestMovementIsUnitLength(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in, WithSpeed(1))

	in.held[common.KeyW] = true
	in.held[common.KeyD] = true
	in.held[common.KeySpace] = true
	in.axes[input.AxisVertical] = 1
	in.axes[input.AxisHorizontal] = 1
	fc.Update(1)

	require.Len(t, tr.translations, 1)
	assert.InDelta(t, 1.0, tr.translations[0].Len(), 1e-5)
	v := float32(1 / math.Sqrt(3))
	assert.InDelta(t, v, tr.translations[0].X(), 1e-5)
	assert.InDelta(t, v, tr.translations[0].Y(), 1e-5)
	assert.InDelta(t, -v, tr.translations[0].Z(), 1e-5)
}

func TestMovementTranslatesInLocalSpace(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in, WithSpeed(1))
	tr.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))

	in.held[common.KeyW] = true
	in.axes[input.AxisVertical] = 1
	fc.Update(1)

	// facing world -X after a 90 degree left turn
	pos := tr.Position()
	assert.InDelta(t, -1.0, pos.X(), 1e-5)
	assert.InDelta(t, 0, pos.Z(), 1e-5)
}

func TestIdleFrameMutatesNothing(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in)

	for i := 0; i < 10; i++ {
		fc.Update(0.016)
	}
	assert.Empty(t, tr.rotations)
	assert.Empty(t, tr.translations)
}

func TestMovementRequiresAnyKeyHeld(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in)

	// an axis reading without any held key or button does not move the camera
	in.axes[input.AxisVertical] = 1
	fc.Update(0.1)
	assert.Empty(t, tr.translations)

	in.held[common.KeyMouseLeft] = true
	fc.Update(0.1)
	assert.Len(t, tr.translations, 1)
}

func TestOpposingMovementKeysSkipTranslation(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in)

	// keys are held, so the gate passes, but the vector cancels to zero
	in.held[common.KeySpace] = true
	in.held[common.KeyC] = true
	fc.Update(0.1)

	assert.Empty(t, tr.translations)
	assert.Empty(t, tr.rotations)
}

func TestYawFromMouse(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in, WithMouseSensitivity(100, 100))

	in.axes[input.AxisMouseX] = 0.5
	fc.Update(0.016)

	require.Len(t, tr.rotations, 1)
	assert.Empty(t, tr.translations)

	f := tr.Forward()
	yawDeg := mgl32.RadToDeg(float32(math.Atan2(float64(f.X()), float64(-f.Z()))))
	// 0.5 * 100 * 0.016, turned to the right
	assert.InDelta(t, 0.8, yawDeg, 1e-3)
	assert.InDelta(t, 0, f.Y(), 1e-5)
}

func TestPitchFromMouseIsInverted(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in, WithMouseSensitivity(100, 50))

	// mouse moving up looks up
	in.axes[input.AxisMouseY] = 1
	fc.Update(0.1)

	f := tr.Forward()
	pitchDeg := mgl32.RadToDeg(float32(math.Asin(float64(f.Y()))))
	assert.InDelta(t, 5.0, pitchDeg, 1e-3)
	assert.InDelta(t, 0, f.X(), 1e-5)
}

func TestRoll(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in)

	in.held[common.KeyQ] = true
	fc.Update(0.5)

	// 80 deg/s for half a second, banking left
	up := tr.Up()
	rollDeg := mgl32.RadToDeg(float32(math.Atan2(float64(-up.X()), float64(up.Y()))))
	assert.InDelta(t, 40.0, rollDeg, 1e-3)
}

func TestBothRollKeysCancel(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in)

	in.held[common.KeyQ] = true
	in.held[common.KeyE] = true
	fc.Update(0.5)

	assert.Empty(t, tr.rotations)
}

func TestRotationComposesInLocalSpace(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in, WithMouseSensitivity(100, 100))
	start := mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{0, 0, 1})
	tr.SetRotation(start)

	in.axes[input.AxisMouseX] = 1
	fc.Update(0.1)

	want := start.Mul(common.LocalEuler(0, 10, 0))
	assertQuat(t, want, tr.Rotation(), 1e-5)
}

func TestHaltFiresOnDownEdgeOnly(t *testing.T) {
	in := newScriptedInput()
	halts := 0
	fc, _ := newTestController(in, WithHaltHandler(func() { halts++ }))

	in.press(common.KeyEsc)
	fc.Update(0.016)
	assert.Equal(t, 1, halts)

	for i := 0; i < 5; i++ {
		in.nextFrame()
		fc.Update(0.016)
	}
	assert.Equal(t, 1, halts)

	in.release(common.KeyEsc)
	fc.Update(0.016)
	in.press(common.KeyEsc)
	fc.Update(0.016)
	assert.Equal(t, 2, halts)
}

func TestHaltRunsBeforeTheRestOfTheFrame(t *testing.T) {
	in := newScriptedInput()
	var lockAtHalt bool
	var fc FreeCameraController
	fc, tr := newTestController(in, WithHaltHandler(func() {
		lockAtHalt = fc.FastLock()
	}))

	in.press(common.KeyEsc)
	in.press(common.KeyCapsLock)
	in.held[common.KeyW] = true
	in.axes[input.AxisVertical] = 1
	fc.Update(0.1)

	// halt saw the pre-toggle state, and the frame still completed
	assert.False(t, lockAtHalt)
	assert.True(t, fc.FastLock())
	assert.Len(t, tr.translations, 1)
	assert.InDelta(t, -8.0, tr.Position().Z(), 1e-5)
}

func TestUnboundControlsAreNeutral(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in, WithBindings(Bindings{}))

	in.press(common.KeyEsc)
	in.press(common.KeyCapsLock)
	in.held[common.KeyLeftShift] = true
	in.axes[input.AxisVertical] = 1
	in.axes[input.AxisMouseX] = 1
	fc.Update(0.1)

	assert.False(t, fc.FastLock())
	assert.False(t, fc.Fast())
	assert.Empty(t, tr.rotations)
	assert.Empty(t, tr.translations)
}

func TestSetBindingsKeepsModifierState(t *testing.T) {
	in := newScriptedInput()
	fc, _ := newTestController(in)

	in.press(common.KeyCapsLock)
	fc.Update(0.016)
	require.True(t, fc.FastLock())

	b := fc.Bindings()
	b.FastLockKey = common.KeyF
	fc.SetBindings(b)

	in.nextFrame()
	in.release(common.KeyCapsLock)
	in.press(common.KeyCapsLock)
	fc.Update(0.016)
	assert.True(t, fc.FastLock())

	in.nextFrame()
	in.press(common.KeyF)
	fc.Update(0.016)
	assert.False(t, fc.FastLock())
}

func TestNegativeSpeedInvertsMotion(t *testing.T) {
	in := newScriptedInput()
	fc, tr := newTestController(in, WithSpeed(-10))

	in.held[common.KeyW] = true
	in.axes[input.AxisVertical] = 1
	fc.Update(0.1)

	assert.InDelta(t, 1.0, tr.Position().Z(), 1e-5)
}

func TestControllerWithRealInput(t *testing.T) {
	in := input.NewInput()
	fc, tr := newTestController(in)

	in.HandleKeyDown(common.KeyW)
	in.Poll()
	fc.Update(0.1)
	assert.InDelta(t, -1.0, tr.Position().Z(), 1e-5)

	in.HandleKeyDown(common.KeyCapsLock)
	in.Poll()
	fc.Update(0.1)
	assert.True(t, fc.FastLock())
	assert.InDelta(t, -9.0, tr.Position().Z(), 1e-5)

	in.Poll()
	fc.Update(0.1)
	assert.True(t, fc.FastLock())
	assert.InDelta(t, -17.0, tr.Position().Z(), 1e-4)
}
