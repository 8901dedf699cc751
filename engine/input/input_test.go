package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-freecam/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPressedIsEdgeTriggered(t *testing.T) {
	in := NewInput()

	in.HandleKeyDown(common.KeyCapsLock)
	in.Poll()
	require.True(t, in.KeyPressed(common.KeyCapsLock))
	require.True(t, in.KeyHeld(common.KeyCapsLock))
	require.True(t, in.AnyKeyPressed())

	// held across frames, plus a platform key repeat
	for i := 0; i < 5; i++ {
		in.HandleKeyDown(common.KeyCapsLock)
		in.Poll()
		assert.False(t, in.KeyPressed(common.KeyCapsLock), "frame %d", i)
		assert.True(t, in.KeyHeld(common.KeyCapsLock), "frame %d", i)
		assert.False(t, in.AnyKeyPressed(), "frame %d", i)
		assert.True(t, in.AnyKeyHeld(), "frame %d", i)
	}

	in.HandleKeyUp(common.KeyCapsLock)
	in.Poll()
	assert.False(t, in.KeyHeld(common.KeyCapsLock))
	assert.False(t, in.AnyKeyHeld())

	in.HandleKeyDown(common.KeyCapsLock)
	in.Poll()
	assert.True(t, in.KeyPressed(common.KeyCapsLock))
}

func TestTapWithinOneFrameIsLatched(t *testing.T) {
	in := NewInput()

	in.HandleKeyDown(common.KeyEsc)
	in.HandleKeyUp(common.KeyEsc)
	in.Poll()

	assert.True(t, in.KeyPressed(common.KeyEsc))
	assert.False(t, in.KeyHeld(common.KeyEsc))

	in.Poll()
	assert.False(t, in.KeyPressed(common.KeyEsc))
}

func TestSnapshotIsStableUntilPoll(t *testing.T) {
	in := NewInput()
	in.Poll()

	in.HandleKeyDown(common.KeyW)
	assert.False(t, in.KeyHeld(common.KeyW))
	assert.Zero(t, in.Axis(AxisVertical))

	in.Poll()
	assert.True(t, in.KeyHeld(common.KeyW))
	assert.Equal(t, float32(1), in.Axis(AxisVertical))
}

func TestUnboundKeyNeverReads(t *testing.T) {
	in := NewInput()
	in.HandleKeyDown(common.KeyNone)
	in.Poll()

	assert.False(t, in.KeyHeld(common.KeyNone))
	assert.False(t, in.KeyPressed(common.KeyNone))
	assert.False(t, in.AnyKeyHeld())
}

func TestMouseButtonsCountAsKeys(t *testing.T) {
	in := NewInput()
	in.HandleKeyDown(common.KeyMouseRight)
	in.Poll()

	assert.True(t, in.AnyKeyPressed())
	assert.True(t, in.AnyKeyHeld())
	assert.True(t, in.KeyHeld(common.KeyMouseRight))
}

func TestKeyAxes(t *testing.T) {
	in := NewInput()

	in.HandleKeyDown(common.KeyD)
	in.Poll()
	assert.Equal(t, float32(1), in.Axis(AxisHorizontal))

	// opposing keys cancel
	in.HandleKeyDown(common.KeyA)
	in.Poll()
	assert.Zero(t, in.Axis(AxisHorizontal))

	// two positive keys do not exceed 1
	in.HandleKeyUp(common.KeyA)
	in.HandleKeyDown(common.KeyRight)
	in.Poll()
	assert.Equal(t, float32(1), in.Axis(AxisHorizontal))

	in.HandleKeyUp(common.KeyD)
	in.HandleKeyUp(common.KeyRight)
	in.HandleKeyDown(common.KeyS)
	in.Poll()
	assert.Zero(t, in.Axis(AxisHorizontal))
	assert.Equal(t, float32(-1), in.Axis(AxisVertical))
}

func TestMouseAxes(t *testing.T) {
	in := NewInput()

	// first position only anchors
	in.HandleMouseMove(100, 100)
	in.Poll()
	assert.Zero(t, in.Axis(AxisMouseX))

	in.HandleMouseMove(103, 100)
	in.HandleMouseMove(105, 90)
	in.Poll()

	dx, dy := in.MouseDelta()
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(-10), dy)
	assert.InDelta(t, 0.5, in.Axis(AxisMouseX), 1e-6)
	// moving up the screen reads positive
	assert.InDelta(t, 1.0, in.Axis(AxisMouseY), 1e-6)

	// no motion next frame
	in.Poll()
	assert.Zero(t, in.Axis(AxisMouseX))
	assert.Zero(t, in.Axis(AxisMouseY))
}

func TestResetDropsEdgesAndMotion(t *testing.T) {
	in := NewInput()
	in.HandleMouseMove(0, 0)
	in.HandleMouseMove(50, 50)
	in.HandleKeyDown(common.KeyQ)
	in.Poll()

	in.HandleKeyDown(common.KeyE)
	in.HandleMouseMove(80, 80)
	in.Reset()

	assert.False(t, in.KeyPressed(common.KeyQ))
	dx, dy := in.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	in.HandleMouseMove(500, 500)
	in.Poll()
	assert.False(t, in.KeyPressed(common.KeyE))
	assert.True(t, in.KeyHeld(common.KeyQ))
	assert.True(t, in.KeyHeld(common.KeyE))
	dx, _ = in.MouseDelta()
	assert.Zero(t, dx)
}

func TestUnknownAxisReadsZero(t *testing.T) {
	in := NewInput(WithAxes(map[string]Axis{}))
	in.HandleKeyDown(common.KeyW)
	in.Poll()
	assert.Zero(t, in.Axis(AxisVertical))
	assert.Zero(t, in.Axis("Nope"))
}

func TestCustomAxis(t *testing.T) {
	in := NewInput(WithAxis("Throttle", Axis{
		Positive: []uint32{common.KeyR},
		Negative: []uint32{common.KeyF},
	}))
	in.HandleKeyDown(common.KeyF)
	in.Poll()
	assert.Equal(t, float32(-1), in.Axis("Throttle"))
	// defaults survive WithAxis
	assert.Zero(t, in.Axis(AxisHorizontal))

	in.SetAxis("Throttle", Axis{Positive: []uint32{common.KeyF}})
	assert.Equal(t, float32(1), in.Axis("Throttle"))
}
