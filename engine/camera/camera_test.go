package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-editor/engine/input"
	"github.com/Carmen-Shannon/oxy-editor/engine/selection"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func vecNear(a, b mgl32.Vec3) bool { return a.ApproxEqualThreshold(b, eps) }

func TestNewCameraDerivesPosition(t *testing.T) {
	cam := NewCamera(WithFocus(1, 2, 3), WithRadius(4))
	if got := cam.Pose().Position; !vecNear(got, mgl32.Vec3{1, 2, 7}) {
		t.Errorf("Position = %v, want [1 2 7]", got)
	}
	if !cam.HasRole(RolePanOrbit) {
		t.Error("new cameras should be pan/orbit controlled by default")
	}
}

func TestNewCameraClampsRadius(t *testing.T) {
	cam := NewCamera(WithRadius(0))
	if r := cam.Rig().Radius; r != MinRadius {
		t.Errorf("Radius = %v, want %v", r, MinRadius)
	}
}

func TestWithYawPitchLiftsCamera(t *testing.T) {
	cam := NewCamera(WithYawPitch(0, float32(math.Pi/4)), WithRadius(2))
	pos := cam.Pose().Position
	if pos.Y() <= 0 {
		t.Errorf("positive pitch should place the camera above the focus, got %v", pos)
	}
	if !vecNear(pos, mgl32.Vec3{0, float32(math.Sqrt2), float32(math.Sqrt2)}) {
		t.Errorf("Position = %v, want [0 1.414 1.414]", pos)
	}
}

func TestSetHandlesStayStable(t *testing.T) {
	a := NewCamera(WithName("a"))
	b := NewCamera(WithName("b"), WithRoles(RolePanOrbit|RolePrimary))
	c := NewCamera(WithName("c"), WithRoles(RolePrimary))
	s := NewSet(a, b)
	hc := s.Add(c)

	s.Remove(0)
	if s.Get(0) != nil {
		t.Error("removed handle should resolve to nil")
	}
	if s.Get(hc).Name() != "c" {
		t.Error("handles must not shift after a removal")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.WithRole(RolePrimary); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("WithRole(RolePrimary) = %v, want [1 2]", got)
	}
	if h, cam := s.First(RolePrimary); h != 1 || cam.Name() != "b" {
		t.Errorf("First(RolePrimary) = (%d, %v), want (1, b)", h, cam)
	}
	if h, cam := s.First(RoleGizmoPickSource); h != InvalidHandle || cam != nil {
		t.Error("First with no match should return InvalidHandle and nil")
	}
}

func TestZoomMultiplicative(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(5))

	act := ctrl.Apply(input.Snapshot{Scroll: 10}, 800, 600, cam)
	if act != ActionZoom {
		t.Fatalf("Apply() = %v, want zoom", act)
	}
	if r := cam.Rig().Radius; math.Abs(float64(r-4.9)) > eps {
		t.Errorf("Radius = %v, want 4.9", r)
	}
	if got := cam.Pose().Position; !vecNear(got, mgl32.Vec3{0, 0, cam.Rig().Radius}) {
		t.Errorf("zoom should rederive position, got %v", got)
	}
}

func TestZoomNeverBreaksFloor(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(3))
	spikes := []float32{1e6, -50, 3, 1e9, -1e3, 499, 500, 501, 1e4, -1, 0.25}

	for _, s := range spikes {
		ctrl.Apply(input.Snapshot{Scroll: s}, 800, 600, cam)
		if r := cam.Rig().Radius; r < MinRadius || math.IsNaN(float64(r)) {
			t.Fatalf("after scroll %v radius = %v, below floor %v", s, r, MinRadius)
		}
	}
}

func TestZoomHonorsConfiguredFloor(t *testing.T) {
	ctrl := NewController(WithWorkers(0), WithMinRadius(1))
	cam := NewCamera(WithRadius(2))
	ctrl.Apply(input.Snapshot{Scroll: 1e6}, 800, 600, cam)
	if r := cam.Rig().Radius; r != 1 {
		t.Errorf("Radius = %v, want 1", r)
	}
}

func TestOrbitWithoutMotionIsNoOp(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithYawPitch(0.3, 0.2))
	before := cam.Pose()

	act := ctrl.Apply(input.Snapshot{OrbitHeld: true}, 800, 600, cam)
	if act != ActionNone {
		t.Errorf("Apply() = %v, want none", act)
	}
	if cam.Pose() != before {
		t.Errorf("pose changed without motion: %v -> %v", before, cam.Pose())
	}
}

func TestOrbitYawIsTurntable(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(2))

	// A quarter of the viewport width is a quarter turn.
	ctrl.Apply(input.Snapshot{OrbitHeld: true, OrbitMotion: mgl32.Vec2{200, 0}}, 800, 600, cam)
	if got := cam.Pose().Position; !vecNear(got, mgl32.Vec3{-2, 0, 0}) {
		t.Errorf("Position = %v, want [-2 0 0]", got)
	}
	if up := cam.Pose().Up(); !vecNear(up, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("yaw must not tilt the camera, up = %v", up)
	}
}

func TestOrbitYawInvertedWhenUpsideDown(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(2))
	rig := cam.Rig()
	rig.UpsideDown = true
	cam.SetRig(rig)

	ctrl.Apply(input.Snapshot{OrbitHeld: true, OrbitMotion: mgl32.Vec2{200, 0}}, 800, 600, cam)
	if got := cam.Pose().Position; !vecNear(got, mgl32.Vec3{2, 0, 0}) {
		t.Errorf("Position = %v, want [2 0 0]", got)
	}
}

func TestOrbitPitchIsLocal(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(2), WithYawPitch(float32(-math.Pi/2), 0))
	if got := cam.Pose().Position; !vecNear(got, mgl32.Vec3{-2, 0, 0}) {
		t.Fatalf("setup Position = %v, want [-2 0 0]", got)
	}

	// Dragging up by half the height pitches a quarter turn about the
	// camera's own right axis (world +Z here), dropping it below the focus.
	ctrl.Apply(input.Snapshot{OrbitHeld: true, OrbitMotion: mgl32.Vec2{0, -300}}, 800, 600, cam)
	if got := cam.Pose().Position; !vecNear(got, mgl32.Vec3{0, -2, 0}) {
		t.Errorf("Position = %v, want [0 -2 0]", got)
	}
	if right := cam.Pose().Right(); !vecNear(right, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("pitch must keep the local right axis, got %v", right)
	}
}

func TestUpsideDownRecomputedOnlyOnOrbitEdges(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera()
	flipped := mgl32.QuatRotate(float32(math.Pi), mgl32.Vec3{1, 0, 0})

	// Press: sampled while upright.
	ctrl.Apply(input.Snapshot{OrbitHeld: true, OrbitChanged: true}, 800, 600, cam)
	if cam.Rig().UpsideDown {
		t.Fatal("upright camera flagged upside down")
	}

	// Orientation altered mid-drag: the flag must not follow.
	pose := cam.Pose()
	pose.Rotation = flipped
	cam.SetPose(pose)
	ctrl.Apply(input.Snapshot{OrbitHeld: true, OrbitMotion: mgl32.Vec2{1, 0}}, 800, 600, cam)
	if cam.Rig().UpsideDown {
		t.Fatal("flag changed without an orbit button transition")
	}

	// Release: flips exactly once.
	pose = cam.Pose()
	pose.Rotation = flipped
	cam.SetPose(pose)
	ctrl.Apply(input.Snapshot{OrbitChanged: true}, 800, 600, cam)
	if !cam.Rig().UpsideDown {
		t.Fatal("release should resample the flag")
	}
	ctrl.Apply(input.Snapshot{}, 800, 600, cam)
	if !cam.Rig().UpsideDown {
		t.Error("flag should stay set until the next transition")
	}
}

func TestPanPerspective(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(2), WithProjection(Perspective(1, 2, 0.1, 100)))

	// Full-width drag right with fov*aspect = 2 moves the focus 2*radius to the left.
	act := ctrl.Apply(input.Snapshot{PanHeld: true, PanModifierHeld: true, PanMotion: mgl32.Vec2{800, 0}}, 800, 600, cam)
	if act != ActionPan {
		t.Fatalf("Apply() = %v, want pan", act)
	}
	if got := cam.Rig().Focus; !vecNear(got, mgl32.Vec3{-4, 0, 0}) {
		t.Errorf("Focus = %v, want [-4 0 0]", got)
	}
	if got := cam.Pose().Position; !vecNear(got, mgl32.Vec3{-4, 0, 2}) {
		t.Errorf("Position = %v, want [-4 0 2]", got)
	}

	// Vertical drag follows the camera's up axis.
	ctrl.Apply(input.Snapshot{PanMotion: mgl32.Vec2{0, 300}}, 800, 600, cam)
	if got := cam.Rig().Focus; !vecNear(got, mgl32.Vec3{-4, 1, 0}) {
		t.Errorf("Focus = %v, want [-4 1 0]", got)
	}
}

func TestPanOrthographicSkipsLensScaling(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(0.5), WithProjection(Orthographic(1, 0.1, 100)))

	ctrl.Apply(input.Snapshot{PanMotion: mgl32.Vec2{4, 0}}, 800, 600, cam)
	if got := cam.Rig().Focus; !vecNear(got, mgl32.Vec3{-2, 0, 0}) {
		t.Errorf("Focus = %v, want [-2 0 0]", got)
	}
}

func TestActionsAreExclusive(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(3))
	snap := input.Snapshot{
		OrbitMotion: mgl32.Vec2{10, 0},
		PanMotion:   mgl32.Vec2{10, 0},
		Scroll:      5,
	}

	if act := ctrl.Apply(snap, 800, 600, cam); act != ActionOrbit {
		t.Fatalf("Apply() = %v, want orbit", act)
	}
	if cam.Rig().Focus != (mgl32.Vec3{}) {
		t.Error("pan must not apply in an orbit frame")
	}
	if cam.Rig().Radius != 3 {
		t.Error("zoom must not apply in an orbit frame")
	}

	snap.OrbitMotion = mgl32.Vec2{}
	if act := ctrl.Apply(snap, 800, 600, cam); act != ActionPan {
		t.Fatalf("Apply() = %v, want pan", act)
	}
	if cam.Rig().Radius != 3 {
		t.Error("zoom must not apply in a pan frame")
	}
}

func TestUpdateSkipsFrameWithoutViewport(t *testing.T) {
	ctrl := NewController(WithWorkers(0))
	cam := NewCamera(WithRadius(3))
	cams := NewSet(cam)
	before := cam.Rig()

	missing := ViewportFunc(func() (int, int, error) { return 0, 0, errors.New("window closed") })
	err := ctrl.Update(input.Snapshot{Scroll: 10}, missing, cams)
	if !errors.Is(err, ErrNoViewport) {
		t.Fatalf("Update() error = %v, want ErrNoViewport", err)
	}
	if cam.Rig() != before {
		t.Error("camera changed in a skipped frame")
	}

	if err := ctrl.Update(input.Snapshot{Scroll: 10}, FixedViewport(0, 600), cams); !errors.Is(err, ErrNoViewport) {
		t.Errorf("zero-width viewport error = %v, want ErrNoViewport", err)
	}
	if err := ctrl.Update(input.Snapshot{Scroll: 10}, nil, cams); !errors.Is(err, ErrNoViewport) {
		t.Errorf("nil viewport error = %v, want ErrNoViewport", err)
	}
}

func TestUpdateMovesEveryRigIndependently(t *testing.T) {
	ctrl := NewController(WithWorkers(3))
	radii := []float32{1, 2, 4, 8, 16}
	cams := NewSet()
	for _, r := range radii {
		cams.Add(NewCamera(WithRadius(r)))
	}
	still := cams.Add(NewCamera(WithRadius(7), WithRoles(RolePrimary)))

	if err := ctrl.Update(input.Snapshot{Scroll: 100}, FixedViewport(800, 600), cams); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	for i, r := range radii {
		want := r * 0.8
		if got := cams.Get(Handle(i)).Rig().Radius; math.Abs(float64(got-want)) > eps {
			t.Errorf("rig %d radius = %v, want %v", i, got, want)
		}
	}
	if got := cams.Get(still).Rig().Radius; got != 7 {
		t.Errorf("camera without RolePanOrbit radius = %v, want 7", got)
	}
}

func newSelection(points ...mgl32.Vec3) *selection.Set {
	s := selection.NewSet()
	for _, p := range points {
		tr := selection.IdentityTransform()
		tr.Translation = p
		s.Add(tr, selection.WithSelected(true))
	}
	return s
}

func TestRecenterOnSelectionCentroid(t *testing.T) {
	cam := NewCamera(WithFocus(1, 0, 0), WithRadius(5), WithRoles(RolePanOrbit|RolePrimary))
	cam.SetRig(Rig{Focus: mgl32.Vec3{7, 7, 7}, Radius: 2})
	cams := NewSet(cam)
	sel := newSelection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 0, 0})
	sel.Add(selection.IdentityTransform()) // unselected object is ignored

	if err := Recenter(input.Snapshot{RecenterReleased: true}, sel, cams); err != nil {
		t.Fatalf("Recenter() error = %v", err)
	}
	rig := cam.Rig()
	if !vecNear(rig.Focus, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Focus = %v, want [1 0 0]", rig.Focus)
	}
	if math.Abs(float64(rig.Radius-5)) > eps {
		t.Errorf("Radius = %v, want 5", rig.Radius)
	}
	if !vecNear(cam.Pose().Position, mgl32.Vec3{1, 0, 5}) {
		t.Errorf("recenter must not move the camera, got %v", cam.Pose().Position)
	}
}

func TestRecenterPreconditions(t *testing.T) {
	primary := NewCamera(WithRoles(RolePanOrbit | RolePrimary))
	before := primary.Rig()
	cams := NewSet(primary)

	if err := Recenter(input.Snapshot{RecenterReleased: true}, selection.NewSet(), cams); err != nil {
		t.Errorf("empty selection error = %v, want nil", err)
	}
	if err := Recenter(input.Snapshot{}, newSelection(mgl32.Vec3{3, 3, 3}), cams); err != nil {
		t.Errorf("no trigger error = %v, want nil", err)
	}
	if primary.Rig() != before {
		t.Error("rig changed without trigger and selection")
	}

	noPrimary := NewSet(NewCamera())
	err := Recenter(input.Snapshot{RecenterReleased: true}, newSelection(mgl32.Vec3{1, 1, 1}), noPrimary)
	if !errors.Is(err, ErrNoPrimaryCamera) {
		t.Errorf("missing primary error = %v, want ErrNoPrimaryCamera", err)
	}
}

func TestRecenterUsesFirstPrimary(t *testing.T) {
	first := NewCamera(WithRoles(RolePrimary))
	second := NewCamera(WithRoles(RolePrimary))
	cams := NewSet(first, second)

	if err := Recenter(input.Snapshot{RecenterReleased: true}, newSelection(mgl32.Vec3{0, 1, 0}), cams); err != nil {
		t.Fatalf("Recenter() error = %v", err)
	}
	if !vecNear(first.Rig().Focus, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("first primary focus = %v, want [0 1 0]", first.Rig().Focus)
	}
	if second.Rig().Focus != (mgl32.Vec3{}) {
		t.Error("only the first primary camera should be recentered")
	}
}
