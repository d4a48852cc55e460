package selection

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func translated(x, y, z float32) Transform {
	t := IdentityTransform()
	t.Translation = mgl32.Vec3{x, y, z}
	return t
}

func TestSetKeepsInsertionOrder(t *testing.T) {
	s := NewSet()
	a := s.Add(translated(1, 0, 0))
	b := s.Add(translated(2, 0, 0), WithSelected(true))
	c := s.Add(translated(3, 0, 0), WithSelected(true))

	var ids []uint64
	s.Each(func(o Object) bool {
		ids = append(ids, o.ID)
		return true
	})
	if len(ids) != 3 || ids[0] != a || ids[1] != b || ids[2] != c {
		t.Fatalf("Each order = %v, want [%d %d %d]", ids, a, b, c)
	}

	first, ok := FirstSelected(s)
	if !ok || first.ID != b {
		t.Errorf("FirstSelected() = (%d, %v), want (%d, true)", first.ID, ok, b)
	}
	if got := Selected(s); len(got) != 2 {
		t.Errorf("len(Selected()) = %d, want 2", len(got))
	}
}

func TestSetSelectionFlags(t *testing.T) {
	s := NewSet()
	id := s.Add(IdentityTransform())

	if _, ok := FirstSelected(s); ok {
		t.Fatal("new objects should start unselected")
	}
	s.Select(id)
	if o, _ := s.Get(id); !o.Selected {
		t.Error("Select did not mark the object")
	}
	s.Toggle(id)
	if o, _ := s.Get(id); o.Selected {
		t.Error("Toggle did not clear the flag")
	}
	s.Toggle(id)
	s.Clear()
	if len(Selected(s)) != 0 {
		t.Error("Clear left objects selected")
	}
	if s.Select(999) {
		t.Error("Select on a missing ID should report false")
	}
}

func TestWorldFollowsParent(t *testing.T) {
	s := NewSet()
	parent := IdentityTransform()
	parent.Translation = mgl32.Vec3{10, 0, 0}
	parent.Rotation = mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})
	p := s.Add(parent)
	c := s.Add(translated(1, 0, 0), WithParent(p))

	o, ok := s.Get(c)
	if !ok {
		t.Fatal("child missing")
	}
	if got := o.WorldTranslation(); !got.ApproxEqualThreshold(mgl32.Vec3{10, 0, -1}, 1e-5) {
		t.Errorf("WorldTranslation() = %v, want [10 0 -1]", got)
	}
	if got := o.Transform.Translation; got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("local translation = %v, want [1 0 0]", got)
	}

	s.Remove(p)
	o, _ = s.Get(c)
	if got := o.WorldTranslation(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("orphan WorldTranslation() = %v, want [1 0 0]", got)
	}
}

func TestWorldIgnoresParentCycles(t *testing.T) {
	s := NewSet()
	a := s.Add(translated(1, 0, 0))
	b := s.Add(translated(0, 1, 0), WithParent(a))
	s.SetParent(a, b)

	o, _ := s.Get(a)
	if got := o.WorldTranslation(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 1, 0}, 1e-5) {
		t.Errorf("WorldTranslation() = %v, want [1 1 0]", got)
	}
}

func TestEachStopsEarlyAndAllowsReentry(t *testing.T) {
	s := NewSet()
	for i := 0; i < 4; i++ {
		s.Add(IdentityTransform())
	}
	visited := 0
	s.Each(func(o Object) bool {
		visited++
		s.Select(o.ID)
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited %d objects, want 2", visited)
	}
	if got := len(Selected(s)); got != 2 {
		t.Errorf("len(Selected()) = %d, want 2", got)
	}
}
