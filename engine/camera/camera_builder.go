package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithName sets the camera's identifier.
//
// Parameters:
//   - name: the camera name
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's name
func WithName(name string) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.name = name
	}
}

// WithRoles replaces the camera's role bits (default RolePanOrbit).
//
// Parameters:
//   - roles: the role bits
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's roles
func WithRoles(roles Role) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.roles = roles
	}
}

// WithFocus sets the point the camera orbits around.
//
// Parameters:
//   - x, y, z: world-space focus coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the rig focus
func WithFocus(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rig.Focus = mgl32.Vec3{x, y, z}
	}
}

// WithRadius sets the initial distance from the focus. Values below MinRadius are raised.
//
// Parameters:
//   - radius: distance from the focus
//
// Returns:
//   - CameraBuilderOption: a function that sets the rig radius
func WithRadius(radius float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rig.Radius = radius
	}
}

// WithRotation sets the initial orientation.
//
// Parameters:
//   - rotation: the camera orientation
//
// Returns:
//   - CameraBuilderOption: a function that sets the orientation
func WithRotation(rotation mgl32.Quat) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pose.Rotation = rotation.Normalize()
	}
}

// WithYawPitch sets the initial orientation from a turntable yaw about the world
// up axis followed by a pitch about the camera's own right axis. Positive pitch
// tilts the view downward, lifting the camera above the focus.
//
// Parameters:
//   - yaw: rotation about world +Y in radians
//   - pitch: downward tilt in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the orientation
func WithYawPitch(yaw, pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pose.Rotation = mgl32.QuatRotate(yaw, worldUp).Mul(mgl32.QuatRotate(-pitch, localRight)).Normalize()
	}
}

// WithProjection sets the camera's lens settings.
//
// Parameters:
//   - p: the projection
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithProjection(p Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = p
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection.Fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection.Aspect = aspect
	}
}
