package gizmo

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Space selects the basis the gizmo's handles are aligned to.
type Space int

const (
	// SpaceGlobal aligns the gizmo with the world axes.
	SpaceGlobal Space = iota
	// SpaceLocal aligns the gizmo with the selected object's own orientation.
	SpaceLocal
	// SpaceScreen keeps the gizmo facing the picking camera.
	SpaceScreen
)

// Spaces lists every Space in panel order.
var Spaces = []Space{SpaceGlobal, SpaceLocal, SpaceScreen}

func (s Space) String() string {
	switch s {
	case SpaceLocal:
		return "Local"
	case SpaceScreen:
		return "Screen"
	default:
		return "Global"
	}
}

// ParseSpace resolves a Space from its String form, ignoring case.
//
// Parameters:
//   - name: "global", "local" or "screen"
//
// Returns:
//   - Space: the parsed space
//   - error: non-nil if name is not a known space
func ParseSpace(name string) (Space, error) {
	for _, s := range Spaces {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return SpaceGlobal, fmt.Errorf("gizmo: unknown space %q", name)
}

// HandleMode is the mutually exclusive handle set shown on the gizmo.
type HandleMode int

const (
	// HandleTransform shows the translate arrows.
	HandleTransform HandleMode = iota
	// HandleScale shows the scale handles.
	HandleScale
	// HandleNeither hides both.
	HandleNeither
)

// HandleModes lists every HandleMode in panel order.
var HandleModes = []HandleMode{HandleScale, HandleTransform, HandleNeither}

func (m HandleMode) String() string {
	switch m {
	case HandleScale:
		return "Scale"
	case HandleNeither:
		return "Neither"
	default:
		return "Transform"
	}
}

// ParseHandleMode resolves a HandleMode from its String form, ignoring case.
//
// Parameters:
//   - name: "transform", "scale" or "neither"
//
// Returns:
//   - HandleMode: the parsed mode
//   - error: non-nil if name is not a known mode
func ParseHandleMode(name string) (HandleMode, error) {
	for _, m := range HandleModes {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return HandleTransform, fmt.Errorf("gizmo: unknown handle mode %q", name)
}

// ModeState is the editor-wide gizmo mode. The panel writes it, the
// coordinator reads it, both within the same frame.
type ModeState struct {
	Orientation Space
	HandleMode  HandleMode
}

// DefaultModeState returns Global orientation with the translate handles.
//
// Returns:
//   - ModeState: the default mode
func DefaultModeState() ModeState {
	return ModeState{Orientation: SpaceGlobal, HandleMode: HandleTransform}
}

// Settings is the state handed to the gizmo renderer. TranslateArrows and
// Scale are derived from the handle mode every panel pass; Rotate and
// TranslatePlanes are independent user toggles.
type Settings struct {
	TranslateArrows bool
	Scale           bool
	Rotate          bool
	TranslatePlanes bool

	// AlignmentRotation orients the gizmo's handles in world space.
	AlignmentRotation mgl32.Quat
}

// DefaultSettings returns settings for the default ModeState with an
// identity alignment.
//
// Returns:
//   - Settings: the default gizmo settings
func DefaultSettings() Settings {
	s := Settings{AlignmentRotation: mgl32.QuatIdent()}
	s.ApplyHandleMode(HandleTransform)
	return s
}

// ApplyHandleMode sets TranslateArrows and Scale for m.
//
// Parameters:
//   - m: the active handle mode
func (s *Settings) ApplyHandleMode(m HandleMode) {
	s.TranslateArrows = m == HandleTransform
	s.Scale = m == HandleScale
}
