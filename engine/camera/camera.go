package camera

import (
	"math"
	"strconv"
	"sync/atomic"
)

// cameraCount is an atomic counter used to generate default camera names.
var cameraCount atomic.Uint64

// Role tags what a camera is used for. A camera may carry several roles.
type Role uint8

const (
	// RolePanOrbit marks a camera driven by the pan/orbit Controller.
	RolePanOrbit Role = 1 << iota

	// RolePrimary marks the camera that recentering targets.
	RolePrimary

	// RoleGizmoPickSource marks the camera the gizmo faces in screen space.
	RoleGizmoPickSource
)

type cameraImpl struct {
	name  string
	roles Role

	rig        Rig
	pose       Pose
	projection Projection
}

// Camera is one controllable viewport camera: its pan/orbit rig, world pose and lens.
// Cameras are owned by a Set and mutated only by the frame's camera steps, so
// they carry no locking of their own.
type Camera interface {
	// Name returns the camera's identifier.
	//
	// Returns:
	//   - string: the camera name
	Name() string

	// Roles returns the camera's role bits.
	//
	// Returns:
	//   - Role: the roles
	Roles() Role

	// HasRole reports whether all bits of r are set on the camera.
	//
	// Parameters:
	//   - r: the role bits to test
	//
	// Returns:
	//   - bool: true if every bit in r is present
	HasRole(r Role) bool

	// SetRoles replaces the camera's role bits.
	//
	// Parameters:
	//   - r: the new roles
	SetRoles(r Role)

	// Rig returns a copy of the pan/orbit rig.
	//
	// Returns:
	//   - Rig: the rig state
	Rig() Rig

	// SetRig replaces the rig. The radius is clamped to MinRadius.
	//
	// Parameters:
	//   - rig: the new rig state
	SetRig(rig Rig)

	// Pose returns the camera's world placement.
	//
	// Returns:
	//   - Pose: position and orientation
	Pose() Pose

	// SetPose replaces the camera's world placement without touching the rig.
	//
	// Parameters:
	//   - pose: the new placement
	SetPose(pose Pose)

	// Projection returns the lens settings.
	//
	// Returns:
	//   - Projection: the projection
	Projection() Projection

	// SetProjection replaces the lens settings.
	//
	// Parameters:
	//   - p: the new projection
	SetProjection(p Projection)

	// SetAspect updates only the projection's aspect ratio.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)

	// Reposition rederives the position from the rig's focus and radius and
	// the current orientation.
	Reposition()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a pan/orbit camera with a default rig, a 45° perspective
// lens and the identity orientation. The position is derived from the rig
// after all options are applied.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		name:       "camera_" + strconv.FormatUint(cameraCount.Load(), 10),
		roles:      RolePanOrbit,
		rig:        DefaultRig(),
		pose:       IdentityPose(),
		projection: Perspective(45.0*(math.Pi/180.0), 1.0, 0.1, 100.0),
	}
	for _, option := range options {
		option(c)
	}
	c.rig.ClampRadius(MinRadius)
	c.Reposition()
	cameraCount.Add(1)
	return c
}

func (c *cameraImpl) Name() string {
	return c.name
}

func (c *cameraImpl) Roles() Role {
	return c.roles
}

func (c *cameraImpl) HasRole(r Role) bool {
	return c.roles&r == r
}

func (c *cameraImpl) SetRoles(r Role) {
	c.roles = r
}

func (c *cameraImpl) Rig() Rig {
	return c.rig
}

func (c *cameraImpl) SetRig(rig Rig) {
	rig.ClampRadius(MinRadius)
	c.rig = rig
}

func (c *cameraImpl) Pose() Pose {
	return c.pose
}

func (c *cameraImpl) SetPose(pose Pose) {
	c.pose = pose
}

func (c *cameraImpl) Projection() Projection {
	return c.projection
}

func (c *cameraImpl) SetProjection(p Projection) {
	c.projection = p
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.projection.Aspect = aspect
}

func (c *cameraImpl) Reposition() {
	c.pose.Position = c.rig.EyePosition(c.pose.Rotation)
}
