package input

import "github.com/go-gl/mathgl/mgl32"

// State is the raw input gathered for one frame by a Collector.
// It holds the summed cursor motion and scroll for the frame along with the
// hold state and edge transitions of every mouse button and key seen so far.
// A State is a value snapshot; it is never mutated after Frame returns it.
type State struct {
	// Motion is the sum of all cursor motion deltas this frame, in pixels.
	Motion mgl32.Vec2

	// Scroll is the sum of all vertical scroll deltas this frame.
	Scroll float32

	buttons switchSet
	keys    switchSet
}

// ButtonPressed reports whether the mouse button is held at the end of the frame.
func (s State) ButtonPressed(button uint32) bool { return s.buttons.pressed(button) }

// ButtonJustPressed reports whether the mouse button went down during the frame.
func (s State) ButtonJustPressed(button uint32) bool { return s.buttons.justPressed(button) }

// ButtonJustReleased reports whether the mouse button went up during the frame.
func (s State) ButtonJustReleased(button uint32) bool { return s.buttons.justReleased(button) }

// KeyPressed reports whether the key is held at the end of the frame.
func (s State) KeyPressed(key uint32) bool { return s.keys.pressed(key) }

// KeyJustPressed reports whether the key went down during the frame.
func (s State) KeyJustPressed(key uint32) bool { return s.keys.justPressed(key) }

// KeyJustReleased reports whether the key went up during the frame.
func (s State) KeyJustReleased(key uint32) bool { return s.keys.justReleased(key) }

// switchSet tracks held state and per-frame edges for a family of inputs (buttons or keys).
type switchSet struct {
	held     map[uint32]bool
	down     map[uint32]bool
	released map[uint32]bool
}

func newSwitchSet() switchSet {
	return switchSet{
		held:     make(map[uint32]bool),
		down:     make(map[uint32]bool),
		released: make(map[uint32]bool),
	}
}

func (s switchSet) pressed(code uint32) bool      { return s.held[code] }
func (s switchSet) justPressed(code uint32) bool  { return s.down[code] }
func (s switchSet) justReleased(code uint32) bool { return s.released[code] }

// press records a down event. Key repeats of an already held input are not new edges.
func (s switchSet) press(code uint32) {
	if !s.held[code] {
		s.down[code] = true
	}
	s.held[code] = true
}

// release records an up event. Releasing an input that is not held is ignored.
func (s switchSet) release(code uint32) {
	if !s.held[code] {
		return
	}
	s.released[code] = true
	delete(s.held, code)
}

// snapshot copies the current state and clears the per-frame edges of s.
func (s switchSet) snapshot() switchSet {
	out := switchSet{
		held:     make(map[uint32]bool, len(s.held)),
		down:     make(map[uint32]bool, len(s.down)),
		released: make(map[uint32]bool, len(s.released)),
	}
	for k := range s.held {
		out.held[k] = true
	}
	for k := range s.down {
		out.down[k] = true
		delete(s.down, k)
	}
	for k := range s.released {
		out.released[k] = true
		delete(s.released, k)
	}
	return out
}
