package camera

import (
	"github.com/Carmen-Shannon/oxy-editor/common"
	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"github.com/Carmen-Shannon/oxy-editor/engine/selection"
	"github.com/go-gl/mathgl/mgl32"
)

// Recenter moves the primary camera's orbit focus to the centroid of the
// selected objects when the recenter key was released this frame. The radius
// becomes the distance from the camera's current position to that centroid,
// so the camera itself does not move until the next orbit, pan or zoom.
//
// With nothing selected (or no trigger) it does nothing. Without any
// RolePrimary camera it returns ErrNoPrimaryCamera; with several, the one
// with the lowest handle is used.
//
// Parameters:
//   - snap: the frame's resolved input
//   - sel: the selection provider
//   - cams: the camera arena
//
// Returns:
//   - error: nil, or ErrNoPrimaryCamera
func Recenter(snap input.Snapshot, sel selection.Provider, cams *Set) error {
	if !snap.RecenterReleased {
		return nil
	}

	var points []mgl32.Vec3
	for _, o := range selection.Selected(sel) {
		points = append(points, o.WorldTranslation())
	}
	center, ok := common.Centroid(points)
	if !ok {
		return nil
	}

	_, cam := cams.First(RolePrimary)
	if cam == nil {
		return ErrNoPrimaryCamera
	}

	rig := cam.Rig()
	rig.Focus = center
	rig.Radius = cam.Pose().Position.Sub(center).Len()
	cam.SetRig(rig)
	return nil
}
