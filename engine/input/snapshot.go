package input

import (
	"github.com/Carmen-Shannon/oxy-editor/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Bindings maps the viewport camera actions onto physical buttons and keys.
// OrbitButton and PanButton may be the same button; panning is then selected
// by holding either of the PanModifiers.
type Bindings struct {
	OrbitButton  uint32
	PanButton    uint32
	PanModifiers [2]uint32
	RecenterKey  uint32
}

// DefaultBindings returns the stock editor mapping: middle mouse orbits,
// shift + middle mouse pans, releasing period recenters on the selection.
//
// Returns:
//   - Bindings: the default bindings
func DefaultBindings() Bindings {
	return Bindings{
		OrbitButton:  common.MouseButtonMiddle,
		PanButton:    common.MouseButtonMiddle,
		PanModifiers: [2]uint32{common.KeyLeftShift, common.KeyRightShift},
		RecenterKey:  common.KeyPeriod,
	}
}

// Snapshot is the per-frame camera input after bindings are applied.
// Motion is routed to exactly one of OrbitMotion or PanMotion: orbit wins when
// the orbit button is held without a pan modifier, pan requires the pan button
// together with a modifier. Any other motion is discarded.
type Snapshot struct {
	OrbitMotion mgl32.Vec2
	PanMotion   mgl32.Vec2
	Scroll      float32

	OrbitHeld       bool
	PanHeld         bool
	PanModifierHeld bool

	// OrbitChanged is true iff the orbit button was pressed or released this frame.
	OrbitChanged bool

	// RecenterReleased is true iff the recenter key was released this frame.
	RecenterReleased bool
}

// Resolve applies bindings to a frame of raw input.
//
// Parameters:
//   - s: the raw frame input
//   - b: the bindings to apply
//
// Returns:
//   - Snapshot: the resolved camera input
func Resolve(s State, b Bindings) Snapshot {
	snap := Snapshot{
		Scroll:           s.Scroll,
		OrbitHeld:        s.ButtonPressed(b.OrbitButton),
		PanHeld:          s.ButtonPressed(b.PanButton),
		PanModifierHeld:  s.KeyPressed(b.PanModifiers[0]) || s.KeyPressed(b.PanModifiers[1]),
		OrbitChanged:     s.ButtonJustPressed(b.OrbitButton) || s.ButtonJustReleased(b.OrbitButton),
		RecenterReleased: s.KeyJustReleased(b.RecenterKey),
	}

	switch {
	case snap.OrbitHeld && !snap.PanModifierHeld:
		snap.OrbitMotion = s.Motion
	case snap.PanHeld && snap.PanModifierHeld:
		snap.PanMotion = s.Motion
	}
	return snap
}

// Orbiting reports whether this frame carries non-zero orbit motion.
func (s Snapshot) Orbiting() bool { return s.OrbitMotion.Dot(s.OrbitMotion) > 0 }

// Panning reports whether this frame carries non-zero pan motion.
func (s Snapshot) Panning() bool { return s.PanMotion.Dot(s.PanMotion) > 0 }

// Zooming reports whether this frame carries non-zero scroll.
func (s Snapshot) Zooming() bool { return s.Scroll != 0 }
