package input

import (
	"github.com/Carmen-Shannon/oxy-freecam/common"
)

// Default axis names, matching the conventional host engine input manager names.
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
	AxisMouseX     = "Mouse X"
	AxisMouseY     = "Mouse Y"
)

// MouseSource selects which mouse motion component feeds an Axis.
type MouseSource int

const (
	// MouseNone means the axis is driven by keys only.
	MouseNone MouseSource = iota
	// MouseX feeds horizontal mouse motion (positive = right).
	MouseX
	// MouseY feeds vertical mouse motion (positive = up).
	MouseY
)

// Axis describes how a named raw axis value is produced each frame.
// Key-driven axes read +1, -1 or 0 (opposing keys cancel); mouse-driven axes read the frame's
// mouse delta in pixels multiplied by Scale. An axis may combine both sources.
type Axis struct {
	// Positive lists keys that push the axis toward +1.
	Positive []uint32
	// Negative lists keys that push the axis toward -1.
	Negative []uint32
	// Mouse selects a mouse motion source, or MouseNone.
	Mouse MouseSource
	// Scale multiplies mouse motion. Ignored for key input.
	Scale float32
}

// DefaultAxes returns the built-in axis table: WASD/arrow movement and mouse look.
//
// Returns:
//   - map[string]Axis: axis definitions keyed by name
func DefaultAxes() map[string]Axis {
	return map[string]Axis{
		AxisHorizontal: {
			Positive: []uint32{common.KeyD, common.KeyRight},
			Negative: []uint32{common.KeyA, common.KeyLeft},
		},
		AxisVertical: {
			Positive: []uint32{common.KeyW, common.KeyUp},
			Negative: []uint32{common.KeyS, common.KeyDown},
		},
		AxisMouseX: {Mouse: MouseX, Scale: 0.1},
		AxisMouseY: {Mouse: MouseY, Scale: 0.1},
	}
}

// value evaluates the axis against a frame snapshot.
func (a Axis) value(f *frame) float32 {
	var v float32
	if len(a.Positive) > 0 || len(a.Negative) > 0 {
		v = common.KeyPair(f.anyHeld(a.Positive), f.anyHeld(a.Negative))
	}
	switch a.Mouse {
	case MouseX:
		v += f.mouseDX * a.Scale
	case MouseY:
		// screen Y grows downward
		v -= f.mouseDY * a.Scale
	}
	return v
}
