package gizmo

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-editor/common"
	"github.com/Carmen-Shannon/oxy-editor/engine/camera"
	"github.com/Carmen-Shannon/oxy-editor/engine/selection"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoGizmoCamera is returned in Screen mode when there is not exactly one
// camera carrying camera.RoleGizmoPickSource.
var ErrNoGizmoCamera = errors.New("gizmo: no gizmo pick source camera")

// Coordinator keeps the gizmo's alignment rotation in step with the
// orientation mode and the current selection.
type Coordinator interface {
	// Update writes settings.AlignmentRotation for the first selected object.
	// With nothing selected, or when Screen mode has no usable camera, the
	// previous alignment is kept.
	//
	// Parameters:
	//   - mode: the frame's mode state
	//   - sel: the selection provider
	//   - cams: the camera arena
	//   - settings: the gizmo settings to update
	//
	// Returns:
	//   - error: nil, or ErrNoGizmoCamera
	Update(mode ModeState, sel selection.Provider, cams *camera.Set, settings *Settings) error
}

type coordinatorImpl struct{}

var _ Coordinator = &coordinatorImpl{}

// NewCoordinator creates a Coordinator.
//
// Returns:
//   - Coordinator: the new coordinator
func NewCoordinator() Coordinator {
	return &coordinatorImpl{}
}

func (c *coordinatorImpl) Update(mode ModeState, sel selection.Provider, cams *camera.Set, settings *Settings) error {
	obj, ok := selection.FirstSelected(sel)
	if !ok {
		return nil
	}

	switch mode.Orientation {
	case SpaceGlobal:
		settings.AlignmentRotation = mgl32.QuatIdent()
	case SpaceLocal:
		settings.AlignmentRotation = common.RotationFromMat4(obj.World)
	case SpaceScreen:
		rot, err := screenRotation(cams)
		if err != nil {
			return err
		}
		settings.AlignmentRotation = rot
	}
	return nil
}

// screenRotation builds the camera-facing basis from the single pick source
// camera's local axes, columns (back x up, back, up).
func screenRotation(cams *camera.Set) (mgl32.Quat, error) {
	handles := cams.WithRole(camera.RoleGizmoPickSource)
	if len(handles) != 1 {
		return mgl32.Quat{}, ErrNoGizmoCamera
	}
	pose := cams.Get(handles[0]).Pose()
	back, up := pose.Back(), pose.Up()
	return common.RotationFromBasis(back.Cross(up), back, up), nil
}
