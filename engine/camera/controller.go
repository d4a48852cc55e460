package camera

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Action is the single camera operation a rig performed in a frame.
type Action int

const (
	ActionNone Action = iota
	ActionOrbit
	ActionPan
	ActionZoom
)

func (a Action) String() string {
	switch a {
	case ActionOrbit:
		return "orbit"
	case ActionPan:
		return "pan"
	case ActionZoom:
		return "zoom"
	default:
		return "none"
	}
}

// Controller turns a frame's resolved input into camera motion for every
// RolePanOrbit camera. Per rig and frame exactly one of orbit, pan or zoom
// applies, in that priority. The camera position is always rederived from
// focus, orientation and radius rather than integrated.
type Controller interface {
	// Update applies the snapshot to every RolePanOrbit camera in cams.
	// If the viewport size is unavailable no camera is touched and the error
	// wraps ErrNoViewport.
	//
	// Parameters:
	//   - snap: the frame's resolved input
	//   - vp: the viewport the cameras render into
	//   - cams: the camera arena
	//
	// Returns:
	//   - error: nil, or an error wrapping ErrNoViewport
	Update(snap input.Snapshot, vp Viewport, cams *Set) error

	// Apply runs one frame of pan/orbit/zoom on a single camera.
	//
	// Parameters:
	//   - snap: the frame's resolved input
	//   - width, height: viewport size in pixels (must be positive)
	//   - cam: the camera to move
	//
	// Returns:
	//   - Action: the operation that was applied
	Apply(snap input.Snapshot, width, height float32, cam Camera) Action
}

type controllerImpl struct {
	zoomRate         float32
	orbitSensitivity float32
	minRadius        float32

	workers int
	pool    worker.DynamicWorkerPool
}

var _ Controller = &controllerImpl{}

// NewController creates a pan/orbit Controller with the stock editor tuning.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controllerImpl{
		zoomRate:         0.002,
		orbitSensitivity: 1.0,
		minRadius:        MinRadius,
		workers:          max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(c)
	}
	if c.workers > 0 {
		c.pool = worker.NewDynamicWorkerPool(c.workers, 64, 1*time.Second)
	}
	return c
}

func (c *controllerImpl) Update(snap input.Snapshot, vp Viewport, cams *Set) error {
	if vp == nil {
		return ErrNoViewport
	}
	w, h, err := vp.ViewportSize()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoViewport, err)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: empty viewport %dx%d", ErrNoViewport, w, h)
	}
	width, height := float32(w), float32(h)

	handles := cams.WithRole(RolePanOrbit)
	if len(handles) < 2 || c.pool == nil {
		for _, hd := range handles {
			c.Apply(snap, width, height, cams.Get(hd))
		}
		return nil
	}

	// Rigs never share state, so each one is an independent task. The
	// WaitGroup is the frame barrier: Update returns only after every rig moved.
	var wg sync.WaitGroup
	for i, hd := range handles {
		wg.Add(1)
		cam := cams.Get(hd)
		c.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				return c.Apply(snap, width, height, cam), nil
			},
		})
	}
	wg.Wait()
	return nil
}

func (c *controllerImpl) Apply(snap input.Snapshot, width, height float32, cam Camera) Action {
	rig := cam.Rig()
	pose := cam.Pose()

	if snap.OrbitChanged {
		// Only sampled when orbiting starts or stops so the inversion cannot
		// flip halfway through a drag.
		rig.UpsideDown = pose.IsUpsideDown()
	}

	action := ActionNone
	switch {
	case snap.Orbiting():
		action = ActionOrbit
		pose.Rotation = c.orbit(snap.OrbitMotion, width, height, rig.UpsideDown, pose.Rotation)
	case snap.Panning():
		action = ActionPan
		rig.Focus = rig.Focus.Add(c.panOffset(snap.PanMotion, width, height, cam.Projection(), pose, rig.Radius))
	case snap.Zooming():
		action = ActionZoom
		rig.Radius -= snap.Scroll * rig.Radius * c.zoomRate
		rig.ClampRadius(c.minRadius)
	}

	if action != ActionNone {
		pose.Position = rig.EyePosition(pose.Rotation)
		cam.SetPose(pose)
	}
	cam.SetRig(rig)
	return action
}

// orbit composes yaw about world up on the outside and pitch about the
// camera's local right axis on the inside, which keeps yaw turntable-like.
func (c *controllerImpl) orbit(motion mgl32.Vec2, width, height float32, upsideDown bool, rotation mgl32.Quat) mgl32.Quat {
	dx := motion.X() / width * 2 * math32.Pi * c.orbitSensitivity
	if upsideDown {
		dx = -dx
	}
	dy := motion.Y() / height * math32.Pi * c.orbitSensitivity

	yaw := mgl32.QuatRotate(-dx, worldUp)
	pitch := mgl32.QuatRotate(-dy, localRight)
	return yaw.Mul(rotation).Mul(pitch).Normalize()
}

// panOffset converts pan motion into a focus translation along the camera's
// right and up axes, proportional to the distance from the focus.
func (c *controllerImpl) panOffset(motion mgl32.Vec2, width, height float32, proj Projection, pose Pose, radius float32) mgl32.Vec3 {
	if proj.Kind == ProjectionPerspective {
		motion = mgl32.Vec2{
			motion.X() * proj.Fov * proj.Aspect / width,
			motion.Y() * proj.Fov / height,
		}
	}
	right := pose.Right().Mul(-motion.X())
	up := pose.Up().Mul(motion.Y())
	return right.Add(up).Mul(radius)
}
