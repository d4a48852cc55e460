package camera

import (
	"github.com/Carmen-Shannon/oxy-editor/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinRadius is the smallest distance a rig may keep from its focus.
	// Zooming to zero would leave the camera stuck on the focus point.
	MinRadius float32 = 0.05

	// DefaultRadius is the orbit distance of a freshly created rig.
	DefaultRadius float32 = 5.0
)

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	localRight = mgl32.Vec3{1, 0, 0}
	localUp    = mgl32.Vec3{0, 1, 0}
	localBack  = mgl32.Vec3{0, 0, 1}
)

// Rig is the pan/orbit state attached to a controllable camera.
type Rig struct {
	// Focus is the world-space point the camera orbits around. Panning moves it.
	Focus mgl32.Vec3

	// Radius is the distance from Focus to the camera along its local +Z axis.
	Radius float32

	// UpsideDown caches whether the camera's up axis pointed at or below the
	// horizon when the orbit button last changed state. Horizontal orbit input
	// is inverted while it is set so dragging keeps its on-screen direction.
	UpsideDown bool
}

// DefaultRig returns a rig focused on the origin at DefaultRadius.
//
// Returns:
//   - Rig: the default rig
func DefaultRig() Rig {
	return Rig{Radius: DefaultRadius}
}

// ClampRadius raises Radius to at least floor, and never below MinRadius.
//
// Parameters:
//   - floor: an optional stricter lower bound (values below MinRadius are ignored)
func (r *Rig) ClampRadius(floor float32) {
	r.Radius = common.ClampMin(r.Radius, max(floor, MinRadius))
}

// EyePosition derives the camera position for the given orientation.
// The camera sits Radius units along its own +Z axis from Focus.
//
// Parameters:
//   - rotation: the camera orientation
//
// Returns:
//   - mgl32.Vec3: the world-space camera position
func (r Rig) EyePosition(rotation mgl32.Quat) mgl32.Vec3 {
	return r.Focus.Add(rotation.Rotate(mgl32.Vec3{0, 0, r.Radius}))
}

// Pose is a camera's world placement.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// IdentityPose returns a pose at the origin looking down -Z.
//
// Returns:
//   - Pose: the identity pose
func IdentityPose() Pose {
	return Pose{Rotation: mgl32.QuatIdent()}
}

// Right returns the camera's local +X axis in world space.
func (p Pose) Right() mgl32.Vec3 { return p.Rotation.Rotate(localRight) }

// Up returns the camera's local +Y axis in world space.
func (p Pose) Up() mgl32.Vec3 { return p.Rotation.Rotate(localUp) }

// Back returns the camera's local +Z axis in world space, pointing from the view toward the eye.
func (p Pose) Back() mgl32.Vec3 { return p.Rotation.Rotate(localBack) }

// Forward returns the viewing direction (local -Z) in world space.
func (p Pose) Forward() mgl32.Vec3 { return p.Back().Mul(-1) }

// IsUpsideDown reports whether the camera's up axis points at or below the horizon.
func (p Pose) IsUpsideDown() bool { return p.Up().Y() <= 0 }

// ProjectionKind selects how a camera projects the scene.
type ProjectionKind int

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

// Projection holds the lens settings the controller needs to scale pan input.
type Projection struct {
	Kind ProjectionKind

	// Fov is the vertical field of view in radians (perspective only).
	Fov float32

	// Aspect is the viewport aspect ratio (width / height).
	Aspect float32

	Near float32
	Far  float32
}

// Perspective returns a perspective projection.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - aspect: width / height
//   - near, far: clipping plane distances
//
// Returns:
//   - Projection: the projection
func Perspective(fov, aspect, near, far float32) Projection {
	return Projection{Kind: ProjectionPerspective, Fov: fov, Aspect: aspect, Near: near, Far: far}
}

// Orthographic returns an orthographic projection.
//
// Parameters:
//   - aspect: width / height
//   - near, far: clipping plane distances
//
// Returns:
//   - Projection: the projection
func Orthographic(aspect, near, far float32) Projection {
	return Projection{Kind: ProjectionOrthographic, Aspect: aspect, Near: near, Far: far}
}
