package editor

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-editor/engine/input"
)

// Step is one stage of an editor frame.
type Step int

const (
	StepResolve Step = iota
	StepAspect
	StepCamera
	StepRecenter
	StepPanel
	StepGizmo
)

func (s Step) String() string {
	switch s {
	case StepResolve:
		return "resolve"
	case StepAspect:
		return "aspect"
	case StepCamera:
		return "camera"
	case StepRecenter:
		return "recenter"
	case StepPanel:
		return "panel"
	case StepGizmo:
		return "gizmo"
	default:
		return "unknown"
	}
}

// FrameReport describes what one call to Editor.Frame did.
type FrameReport struct {
	// Number counts frames from 1.
	Number uint64

	// Snapshot is the resolved camera input the frame ran with.
	Snapshot input.Snapshot

	// Steps lists the stages that ran, in order.
	Steps []Step

	CameraErr   error
	RecenterErr error
	GizmoErr    error
}

// Err joins every error the frame recorded.
//
// Returns:
//   - error: nil if every step succeeded
func (r FrameReport) Err() error {
	return errors.Join(r.CameraErr, r.RecenterErr, r.GizmoErr)
}

// Ran reports whether a step ran this frame.
//
// Parameters:
//   - s: the step
//
// Returns:
//   - bool: true if s is in Steps
func (r FrameReport) Ran(s Step) bool {
	for _, st := range r.Steps {
		if st == s {
			return true
		}
	}
	return false
}
