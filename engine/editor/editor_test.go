package editor

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-editor/common"
	"github.com/Carmen-Shannon/oxy-editor/engine/camera"
	"github.com/Carmen-Shannon/oxy-editor/engine/gizmo"
	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"github.com/Carmen-Shannon/oxy-editor/engine/selection"
	"github.com/Carmen-Shannon/oxy-editor/engine/ui"
	"github.com/go-gl/mathgl/mgl32"
)

type skipCounter map[string]int

func (s skipCounter) RecordSkip(reason string) { s[reason]++ }

func newRig() (camera.Camera, *camera.Set) {
	cam := camera.NewCamera(
		camera.WithFocus(1, 0, 0),
		camera.WithRadius(5),
		camera.WithRoles(camera.RolePanOrbit|camera.RolePrimary|camera.RoleGizmoPickSource),
	)
	return cam, camera.NewSet(cam)
}

func hotkeys() ui.HotkeyHost {
	return ui.NewHotkeyHost(ui.WithQuiet(), ui.WithBindings(map[string]uint32{
		gizmo.LabelOrientation:     common.KeyO,
		gizmo.HandleScale.String(): common.KeyS,
	}))
}

func TestFrameRunsStagesInOrder(t *testing.T) {
	_, cams := newRig()
	ed := NewEditor(
		WithController(camera.NewController(camera.WithWorkers(0))),
		WithViewport(camera.FixedViewport(800, 600)),
		WithCameras(cams),
		WithPanel(nil, hotkeys()),
	)

	report := ed.Frame(input.NewCollector().Frame())
	want := []Step{StepResolve, StepAspect, StepCamera, StepRecenter, StepPanel, StepGizmo}
	if len(report.Steps) != len(want) {
		t.Fatalf("Steps = %v, want %v", report.Steps, want)
	}
	for i := range want {
		if report.Steps[i] != want[i] {
			t.Fatalf("Steps = %v, want %v", report.Steps, want)
		}
	}
	if report.Number != 1 || report.Err() != nil {
		t.Errorf("report = %+v", report)
	}
}

func TestPanelHiddenWithoutHost(t *testing.T) {
	ed := NewEditor(WithController(camera.NewController(camera.WithWorkers(0))))
	report := ed.Frame(input.State{})
	if report.Ran(StepPanel) {
		t.Error("panel ran without a host")
	}
	if !report.Ran(StepGizmo) {
		t.Error("gizmo stage must run even when the panel is hidden")
	}
}

func TestPanelCommitsBeforeGizmoInSameFrame(t *testing.T) {
	_, cams := newRig()
	rot := mgl32.QuatRotate(0.8, mgl32.Vec3{0, 1, 0})
	sel := selection.NewSet()
	sel.Add(selection.Transform{Rotation: rot, Scale: mgl32.Vec3{1, 1, 1}}, selection.WithSelected(true))

	ed := NewEditor(
		WithController(camera.NewController(camera.WithWorkers(0))),
		WithViewport(camera.FixedViewport(800, 600)),
		WithCameras(cams),
		WithSelection(sel),
		WithPanel(nil, hotkeys()),
	)

	c := input.NewCollector()
	c.KeyDown(common.KeyO)
	c.KeyUp(common.KeyO)
	c.KeyDown(common.KeyS)
	c.KeyUp(common.KeyS)
	ed.Frame(c.Frame())

	if got := ed.ModeState(); got.Orientation != gizmo.SpaceLocal || got.HandleMode != gizmo.HandleScale {
		t.Fatalf("ModeState() = %+v, want Local/Scale", got)
	}
	s := ed.Settings()
	if !s.AlignmentRotation.OrientationEqualThreshold(rot, 1e-4) {
		t.Errorf("AlignmentRotation = %v, want the object's rotation in the same frame", s.AlignmentRotation)
	}
	if s.TranslateArrows || !s.Scale {
		t.Errorf("flags = {arrows:%v scale:%v}, want {false true}", s.TranslateArrows, s.Scale)
	}
}

func TestFrameZoomsAndSyncsAspect(t *testing.T) {
	cam, cams := newRig()
	ed := NewEditor(
		WithController(camera.NewController(camera.WithWorkers(0))),
		WithViewport(camera.FixedViewport(800, 400)),
		WithCameras(cams),
	)

	c := input.NewCollector()
	c.Scrolled(10)
	report := ed.Frame(c.Frame())
	if report.CameraErr != nil {
		t.Fatalf("CameraErr = %v", report.CameraErr)
	}
	if r := cam.Rig().Radius; math.Abs(float64(r-4.9)) > 1e-4 {
		t.Errorf("Radius = %v, want 4.9", r)
	}
	if a := cam.Projection().Aspect; a != 2 {
		t.Errorf("Aspect = %v, want 2", a)
	}
}

func TestMissingViewportSkipsOnlyCameraStage(t *testing.T) {
	cam, cams := newRig()
	sel := selection.NewSet()
	tr := selection.IdentityTransform()
	tr.Translation = mgl32.Vec3{0, 3, 0}
	sel.Add(tr, selection.WithSelected(true))
	skips := skipCounter{}

	ed := NewEditor(
		WithController(camera.NewController(camera.WithWorkers(0))),
		WithCameras(cams),
		WithSelection(sel),
		WithSkipRecorder(skips),
	)
	before := cam.Pose()

	c := input.NewCollector()
	c.Scrolled(50)
	c.KeyDown(common.KeyPeriod)
	c.KeyUp(common.KeyPeriod)
	report := ed.Frame(c.Frame())

	if !errors.Is(report.CameraErr, camera.ErrNoViewport) {
		t.Fatalf("CameraErr = %v, want ErrNoViewport", report.CameraErr)
	}
	if cam.Pose() != before {
		t.Error("camera moved without a viewport")
	}
	if !report.Snapshot.RecenterReleased || !cam.Rig().Focus.ApproxEqualThreshold(mgl32.Vec3{0, 3, 0}, 1e-5) {
		t.Errorf("recenter did not run after the skipped camera stage, focus = %v", cam.Rig().Focus)
	}
	if skips["viewport"] != 1 {
		t.Errorf("skips = %v, want one viewport skip", skips)
	}

	ed.Frame(input.State{})
	if skips["viewport"] != 2 {
		t.Errorf("skips = %v, want two viewport skips", skips)
	}
}

func TestGizmoCameraErrorIsReported(t *testing.T) {
	cams := camera.NewSet(camera.NewCamera())
	sel := selection.NewSet()
	sel.Add(selection.IdentityTransform(), selection.WithSelected(true))
	mode := gizmo.ModeState{Orientation: gizmo.SpaceScreen}

	ed := NewEditor(
		WithController(camera.NewController(camera.WithWorkers(0))),
		WithViewport(camera.FixedViewport(800, 600)),
		WithCameras(cams),
		WithSelection(sel),
		WithGizmoState(mode, gizmo.DefaultSettings()),
	)
	report := ed.Frame(input.State{})
	if !errors.Is(report.GizmoErr, gizmo.ErrNoGizmoCamera) {
		t.Errorf("GizmoErr = %v, want ErrNoGizmoCamera", report.GizmoErr)
	}
	if !errors.Is(report.Err(), gizmo.ErrNoGizmoCamera) {
		t.Error("Err() should include the gizmo error")
	}
}
