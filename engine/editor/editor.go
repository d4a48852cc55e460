package editor

import (
	"errors"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-editor/engine/camera"
	"github.com/Carmen-Shannon/oxy-editor/engine/gizmo"
	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"github.com/Carmen-Shannon/oxy-editor/engine/selection"
	"github.com/Carmen-Shannon/oxy-editor/engine/ui"
)

// SkipRecorder counts frames in which a step had to be skipped.
type SkipRecorder interface {
	RecordSkip(reason string)
}

// Editor drives the viewport tools once per frame. The stages always run in
// this order:
//
//  1. resolve the input snapshot from the raw input state
//  2. copy the viewport aspect ratio onto every camera
//  3. orbit, pan or zoom every RolePanOrbit camera
//  4. recenter the primary camera on the selection
//  5. show the gizmo panel, committing mode changes
//  6. align the gizmo for the (possibly just changed) mode
//
// A failing stage is logged and recorded in the FrameReport; later stages
// still run.
type Editor interface {
	// Frame runs one editor frame.
	//
	// Parameters:
	//   - state: the input collected since the previous frame
	//
	// Returns:
	//   - FrameReport: what the frame did
	Frame(state input.State) FrameReport

	// ModeState returns the current gizmo mode.
	//
	// Returns:
	//   - gizmo.ModeState: a copy of the mode
	ModeState() gizmo.ModeState

	// Settings returns the current gizmo settings.
	//
	// Returns:
	//   - gizmo.Settings: a copy of the settings
	Settings() gizmo.Settings

	// Cameras returns the camera arena. Cameras must only be changed between frames.
	//
	// Returns:
	//   - *camera.Set: the camera arena
	Cameras() *camera.Set

	// Selection returns the selection provider.
	//
	// Returns:
	//   - selection.Provider: the selection provider
	Selection() selection.Provider
}

type editorImpl struct {
	mu *sync.Mutex

	bindings    input.Bindings
	controller  camera.Controller
	coordinator gizmo.Coordinator
	panel       *gizmo.Panel
	host        ui.Host
	viewport    camera.Viewport
	cams        *camera.Set
	sel         selection.Provider
	skips       SkipRecorder

	mode     gizmo.ModeState
	settings gizmo.Settings

	frame   uint64
	lastErr map[Step]string
}

var _ Editor = &editorImpl{}

// NewEditor creates an Editor. Without options it has no viewport (every frame
// skips the camera stage), an empty camera arena, an empty selection and no
// panel host.
//
// Parameters:
//   - options: functional options to configure the editor
//
// Returns:
//   - Editor: the new editor
func NewEditor(options ...EditorBuilderOption) Editor {
	e := &editorImpl{
		mu:          &sync.Mutex{},
		bindings:    input.DefaultBindings(),
		coordinator: gizmo.NewCoordinator(),
		panel:       gizmo.NewPanel(),
		cams:        camera.NewSet(),
		sel:         selection.NewSet(),
		mode:        gizmo.DefaultModeState(),
		settings:    gizmo.DefaultSettings(),
		lastErr:     make(map[Step]string),
	}
	for _, option := range options {
		option(e)
	}
	if e.controller == nil {
		e.controller = camera.NewController()
	}
	return e
}

func (e *editorImpl) Frame(state input.State) FrameReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.frame++
	report := FrameReport{Number: e.frame}

	report.Snapshot = input.Resolve(state, e.bindings)
	report.Steps = append(report.Steps, StepResolve)

	e.syncAspect()
	report.Steps = append(report.Steps, StepAspect)

	report.CameraErr = e.controller.Update(report.Snapshot, e.viewport, e.cams)
	report.Steps = append(report.Steps, StepCamera)
	e.observe(StepCamera, report.CameraErr)

	report.RecenterErr = camera.Recenter(report.Snapshot, e.sel, e.cams)
	report.Steps = append(report.Steps, StepRecenter)
	e.observe(StepRecenter, report.RecenterErr)

	if e.host != nil {
		if hk, ok := e.host.(ui.HotkeyHost); ok {
			hk.Begin(state)
		}
		e.panel.Show(e.host, &e.mode, &e.settings)
		report.Steps = append(report.Steps, StepPanel)
	}

	report.GizmoErr = e.coordinator.Update(e.mode, e.sel, e.cams, &e.settings)
	report.Steps = append(report.Steps, StepGizmo)
	e.observe(StepGizmo, report.GizmoErr)

	return report
}

// syncAspect copies the viewport aspect ratio onto every camera.
func (e *editorImpl) syncAspect() {
	if e.viewport == nil {
		return
	}
	w, h, err := e.viewport.ViewportSize()
	if err != nil || w <= 0 || h <= 0 {
		return
	}
	aspect := float32(w) / float32(h)
	e.cams.Each(func(_ camera.Handle, c camera.Camera) bool {
		c.SetAspect(aspect)
		return true
	})
}

// observe counts a failed step and logs only when the step's error changes.
func (e *editorImpl) observe(step Step, err error) {
	if err != nil && e.skips != nil {
		e.skips.RecordSkip(skipReason(step, err))
	}

	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if e.lastErr[step] == msg {
		return
	}
	e.lastErr[step] = msg
	if err != nil {
		log.Printf("[Editor] frame %d: %s skipped: %v", e.frame, step, err)
	} else {
		log.Printf("[Editor] frame %d: %s recovered", e.frame, step)
	}
}

func skipReason(step Step, err error) string {
	switch {
	case errors.Is(err, camera.ErrNoViewport):
		return "viewport"
	case errors.Is(err, camera.ErrNoPrimaryCamera):
		return "primary camera"
	case errors.Is(err, gizmo.ErrNoGizmoCamera):
		return "gizmo camera"
	default:
		return step.String()
	}
}

func (e *editorImpl) ModeState() gizmo.ModeState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

func (e *editorImpl) Settings() gizmo.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

func (e *editorImpl) Cameras() *camera.Set {
	return e.cams
}

func (e *editorImpl) Selection() selection.Provider {
	return e.sel
}
