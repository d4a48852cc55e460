package common

import "strings"

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
	KeyG         = 71  // G key (ASCII)
	KeyL         = 76  // L key (ASCII)
	KeyN         = 78  // N key (ASCII)
	KeyO         = 79  // O key (ASCII)
	KeyP         = 80  // P key (ASCII)
	KeyR         = 82  // R key (ASCII)
	KeyT         = 84  // T key (ASCII)
	KeyX         = 88  // X key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyPeriod    = 46  // Period key (ASCII)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyEsc       = 256 // Escape key (GLFW)

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

// Mouse button codes. These values match GLFW mouse button numbering.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// keyNames maps the lower-case config names of keys to their codes.
var keyNames = map[string]uint32{
	"w": KeyW, "a": KeyA, "s": KeyS, "d": KeyD, "q": KeyQ, "e": KeyE,
	"g": KeyG, "l": KeyL, "n": KeyN, "o": KeyO, "p": KeyP, "r": KeyR,
	"t": KeyT, "x": KeyX,
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"space":         KeySpace,
	"period":        KeyPeriod,
	".":             KeyPeriod,
	"backspace":     KeyBackspace,
	"escape":        KeyEsc,
	"left_shift":    KeyLeftShift,
	"right_shift":   KeyRightShift,
	"left_control":  KeyLeftControl,
	"right_control": KeyRightControl,
	"left_alt":      KeyLeftAlt,
	"right_alt":     KeyRightAlt,
}

// mouseButtonNames maps the lower-case config names of mouse buttons to their codes.
var mouseButtonNames = map[string]uint32{
	"left":   MouseButtonLeft,
	"right":  MouseButtonRight,
	"middle": MouseButtonMiddle,
}

// KeyCode resolves a key name such as "period" or "left_shift" to its key code.
// Matching is case-insensitive.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyCode(name string) (uint32, bool) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// MouseButtonCode resolves a mouse button name ("left", "right", "middle") to its code.
// Matching is case-insensitive.
//
// Parameters:
//   - name: the button name
//
// Returns:
//   - uint32: the button code
//   - bool: false if the name is unknown
func MouseButtonCode(name string) (uint32, bool) {
	code, ok := mouseButtonNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}
