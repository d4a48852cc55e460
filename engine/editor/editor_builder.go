package editor

import (
	"github.com/Carmen-Shannon/oxy-editor/engine/camera"
	"github.com/Carmen-Shannon/oxy-editor/engine/gizmo"
	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"github.com/Carmen-Shannon/oxy-editor/engine/selection"
	"github.com/Carmen-Shannon/oxy-editor/engine/ui"
)

// EditorBuilderOption is a functional option for configuring an Editor.
type EditorBuilderOption func(*editorImpl)

// WithBindings sets the camera input bindings.
//
// Parameters:
//   - b: the bindings
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithBindings(b input.Bindings) EditorBuilderOption {
	return func(e *editorImpl) {
		e.bindings = b
	}
}

// WithController sets the camera controller.
//
// Parameters:
//   - c: the controller
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithController(c camera.Controller) EditorBuilderOption {
	return func(e *editorImpl) {
		e.controller = c
	}
}

// WithCoordinator sets the gizmo coordinator.
//
// Parameters:
//   - c: the coordinator
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithCoordinator(c gizmo.Coordinator) EditorBuilderOption {
	return func(e *editorImpl) {
		e.coordinator = c
	}
}

// WithPanel sets the gizmo panel and the host it is shown on. A nil host
// hides the panel.
//
// Parameters:
//   - p: the panel
//   - host: the UI host
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithPanel(p *gizmo.Panel, host ui.Host) EditorBuilderOption {
	return func(e *editorImpl) {
		if p != nil {
			e.panel = p
		}
		e.host = host
	}
}

// WithViewport sets the viewport the cameras render into.
//
// Parameters:
//   - vp: the viewport
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithViewport(vp camera.Viewport) EditorBuilderOption {
	return func(e *editorImpl) {
		e.viewport = vp
	}
}

// WithCameras sets the camera arena.
//
// Parameters:
//   - cams: the camera arena
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithCameras(cams *camera.Set) EditorBuilderOption {
	return func(e *editorImpl) {
		e.cams = cams
	}
}

// WithSelection sets the selection provider.
//
// Parameters:
//   - sel: the selection provider
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithSelection(sel selection.Provider) EditorBuilderOption {
	return func(e *editorImpl) {
		e.sel = sel
	}
}

// WithGizmoState sets the starting gizmo mode and settings.
//
// Parameters:
//   - mode: the starting mode
//   - settings: the starting settings
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithGizmoState(mode gizmo.ModeState, settings gizmo.Settings) EditorBuilderOption {
	return func(e *editorImpl) {
		e.mode = mode
		e.settings = settings
	}
}

// WithSkipRecorder reports skipped stages, typically to the profiler.
//
// Parameters:
//   - r: the recorder
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithSkipRecorder(r SkipRecorder) EditorBuilderOption {
	return func(e *editorImpl) {
		e.skips = r
	}
}
