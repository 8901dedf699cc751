package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-freecam/common"
)

// State is the per-frame polling surface consumed by input-driven components.
// All queries read the snapshot latched by the most recent Poll, so every reader
// within one frame observes the same values.
type State interface {
	// KeyHeld reports whether the key is currently held down.
	//
	// Parameters:
	//   - key: the key code (see common.Key*)
	//
	// Returns:
	//   - bool: true if held this frame
	KeyHeld(key uint32) bool

	// KeyPressed reports whether the key went down this frame (down-edge).
	// Holding a key reports true only on the first frame.
	//
	// Parameters:
	//   - key: the key code (see common.Key*)
	//
	// Returns:
	//   - bool: true on the frame the key was pressed
	KeyPressed(key uint32) bool

	// AnyKeyHeld reports whether any key or mouse button is held this frame.
	//
	// Returns:
	//   - bool: true if at least one key or button is held
	AnyKeyHeld() bool

	// AnyKeyPressed reports whether any key or mouse button went down this frame.
	//
	// Returns:
	//   - bool: true if at least one key or button was pressed this frame
	AnyKeyPressed() bool

	// Axis returns the raw value of a named axis for this frame.
	// Unknown axis names read as 0.
	//
	// Parameters:
	//   - name: the configured axis name (e.g. "Horizontal", "Mouse X")
	//
	// Returns:
	//   - float32: the raw axis value
	Axis(name string) float32
}

// Input is the full input system: the State polling surface plus the feed side driven
// by window callbacks. Feed methods may be called from the window thread while another
// goroutine polls.
type Input interface {
	State

	// HandleKeyDown records a key or mouse button press.
	// Presses of a key that is already held do not produce a new down-edge.
	//
	// Parameters:
	//   - key: the key code
	HandleKeyDown(key uint32)

	// HandleKeyUp records a key or mouse button release.
	//
	// Parameters:
	//   - key: the key code
	HandleKeyUp(key uint32)

	// HandleMouseMove records an absolute cursor position. Motion between successive
	// positions accumulates until the next Poll. The first position after creation or
	// Reset only anchors the cursor.
	//
	// Parameters:
	//   - x, y: cursor position in window coordinates
	HandleMouseMove(x, y float64)

	// Poll latches everything received since the previous Poll into the frame snapshot.
	// Call once at the start of each frame.
	Poll()

	// Reset discards pending and latched down-edges and mouse motion, and re-anchors the cursor.
	// Held keys stay held.
	Reset()

	// MouseDelta returns the mouse motion latched for this frame in pixels.
	//
	// Returns:
	//   - dx, dy: motion since the previous frame (y grows downward)
	MouseDelta() (dx, dy float32)

	// SetAxis defines or replaces a named axis.
	//
	// Parameters:
	//   - name: the axis name
	//   - axis: the axis definition
	SetAxis(name string, axis Axis)

	// SetAxes replaces the whole axis table.
	//
	// Parameters:
	//   - axes: axis definitions keyed by name
	SetAxes(axes map[string]Axis)
}

// frame is one latched input snapshot.
type frame struct {
	held    map[uint32]bool
	pressed map[uint32]bool
	mouseDX float32
	mouseDY float32
}

func (f *frame) anyHeld(keys []uint32) bool {
	for _, k := range keys {
		if f.held[k] {
			return true
		}
	}
	return false
}

type inputImpl struct {
	mu *sync.Mutex

	// live state written by the feed side
	held           map[uint32]bool
	pendingPressed map[uint32]bool
	pendingDX      float64
	pendingDY      float64
	lastX, lastY   float64
	anchored       bool

	axes map[string]Axis

	current frame
}

var _ Input = &inputImpl{}

// NewInput creates a new Input with the default axis table unless options replace it.
//
// Parameters:
//   - options: functional options to configure the input system
//
// Returns:
//   - Input: the newly created input system
func NewInput(options ...InputBuilderOption) Input {
	in := &inputImpl{
		mu:             &sync.Mutex{},
		held:           make(map[uint32]bool),
		pendingPressed: make(map[uint32]bool),
		axes:           DefaultAxes(),
		current: frame{
			held:    make(map[uint32]bool),
			pressed: make(map[uint32]bool),
		},
	}
	for _, option := range options {
		option(in)
	}
	return in
}

func (in *inputImpl) KeyHeld(key uint32) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.current.held[key]
}

func (in *inputImpl) KeyPressed(key uint32) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.current.pressed[key]
}

func (in *inputImpl) AnyKeyHeld() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.current.held) > 0
}

func (in *inputImpl) AnyKeyPressed() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.current.pressed) > 0
}

func (in *inputImpl) Axis(name string) float32 {
	in.mu.Lock()
	defer in.mu.Unlock()
	axis, ok := in.axes[name]
	if !ok {
		return 0
	}
	return axis.value(&in.current)
}

func (in *inputImpl) HandleKeyDown(key uint32) {
	if key == common.KeyNone {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.held[key] {
		return
	}
	in.held[key] = true
	in.pendingPressed[key] = true
}

func (in *inputImpl) HandleKeyUp(key uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	delete(in.held, key)
}

func (in *inputImpl) HandleMouseMove(x, y float64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.anchored {
		in.pendingDX += x - in.lastX
		in.pendingDY += y - in.lastY
	}
	in.lastX, in.lastY = x, y
	in.anchored = true
}

func (in *inputImpl) Poll() {
	in.mu.Lock()
	defer in.mu.Unlock()

	held := make(map[uint32]bool, len(in.held))
	for k := range in.held {
		held[k] = true
	}
	in.current = frame{
		held:    held,
		pressed: in.pendingPressed,
		mouseDX: float32(in.pendingDX),
		mouseDY: float32(in.pendingDY),
	}
	in.pendingPressed = make(map[uint32]bool)
	in.pendingDX, in.pendingDY = 0, 0
}

func (in *inputImpl) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pendingPressed = make(map[uint32]bool)
	in.pendingDX, in.pendingDY = 0, 0
	in.anchored = false
	in.current.pressed = make(map[uint32]bool)
	in.current.mouseDX, in.current.mouseDY = 0, 0
}

func (in *inputImpl) MouseDelta() (dx, dy float32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.current.mouseDX, in.current.mouseDY
}

func (in *inputImpl) SetAxis(name string, axis Axis) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.axes[name] = axis
}

func (in *inputImpl) SetAxes(axes map[string]Axis) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.axes = make(map[string]Axis, len(axes))
	for name, axis := range axes {
		in.axes[name] = axis
	}
}
