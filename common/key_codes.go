package common

import (
	"fmt"
	"strings"
)

// KeyNone is the unbound key code. It never reads as held or pressed.
const KeyNone = 0

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW         = 87  // W key (ASCII)
	KeyA         = 65  // A key (ASCII)
	KeyS         = 83  // S key (ASCII)
	KeyD         = 68  // D key (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyE         = 69  // E key (ASCII)
	KeyC         = 67  // C key (ASCII)
	KeyF         = 70  // F key (ASCII)
	KeyR         = 82  // R key (ASCII)
	KeyX         = 88  // X key (ASCII)
	KeyZ         = 90  // Z key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyEnter     = 257 // Enter key (GLFW)
	KeyTab       = 258 // Tab key (GLFW)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyRight     = 262 // Right arrow (GLFW)
	KeyLeft      = 263 // Left arrow (GLFW)
	KeyDown      = 264 // Down arrow (GLFW)
	KeyUp        = 265 // Up arrow (GLFW)
	KeyCapsLock  = 280 // Caps Lock (GLFW)
	KeyPause     = 284 // Pause (GLFW)
	KeyF5        = 294 // F5 (GLFW)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyLeftAlt      = 342 // Left Alt (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
	KeyRightAlt     = 346 // Right Alt (GLFW)
)

// Mouse buttons share the key code space so bindings and "any key" checks treat them like keys.
// They sit above GLFW's KeyLast (348) at MouseButtonBase + the GLFW button index.
const (
	MouseButtonBase = 1000

	KeyMouseLeft   = MouseButtonBase + 0 // GLFW MouseButtonLeft
	KeyMouseRight  = MouseButtonBase + 1 // GLFW MouseButtonRight
	KeyMouseMiddle = MouseButtonBase + 2 // GLFW MouseButtonMiddle
)

var keyNames = map[uint32]string{
	KeyW: "W", KeyA: "A", KeyS: "S", KeyD: "D", KeyQ: "Q", KeyE: "E",
	KeyC: "C", KeyF: "F", KeyR: "R", KeyX: "X", KeyZ: "Z",
	KeySpace:     "Space",
	KeyEsc:       "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyDown:      "Down",
	KeyUp:        "Up",
	KeyCapsLock:  "CapsLock",
	KeyPause:     "Pause",
	KeyF5:        "F5",
	Key0:         "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
	KeyRightAlt:     "RightAlt",
	KeyMouseLeft:    "MouseLeft",
	KeyMouseRight:   "MouseRight",
	KeyMouseMiddle:  "MouseMiddle",
}

// keyCodes is the case-folded reverse of keyNames plus a few common aliases.
var keyCodes = func() map[string]uint32 {
	m := make(map[string]uint32, len(keyNames)+4)
	for code, name := range keyNames {
		m[strings.ToLower(name)] = code
	}
	m["esc"] = KeyEsc
	m["return"] = KeyEnter
	m["shift"] = KeyLeftShift
	m["mouse0"] = KeyMouseLeft
	m["mouse1"] = KeyMouseRight
	m["mouse2"] = KeyMouseMiddle
	return m
}()

// ParseKey resolves a human-readable key name (e.g. "LeftShift", "capslock", "Space") to its key code.
// Names are case-insensitive. The empty string resolves to KeyNone.
//
// Parameters:
//   - name: the key name to resolve
//
// Returns:
//   - uint32: the key code
//   - error: error if the name is not a known key
func ParseKey(name string) (uint32, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return KeyNone, nil
	}
	code, ok := keyCodes[strings.ToLower(name)]
	if !ok {
		return KeyNone, fmt.Errorf("unknown key name %q", name)
	}
	return code, nil
}

// KeyName returns the canonical name for a key code, or an empty string for KeyNone.
// Codes without a registered name are rendered as "Key(<code>)".
//
// Parameters:
//   - code: the key code
//
// Returns:
//   - string: the key name
func KeyName(code uint32) string {
	if code == KeyNone {
		return ""
	}
	if name, ok := keyNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", code)
}
