package selection

import "github.com/go-gl/mathgl/mgl32"

// Transform is an object's placement relative to its parent (or the world when it has none).
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// IdentityTransform returns a transform with no translation, no rotation and unit scale.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix composes translation * rotation * scale into a column-major matrix.
//
// Returns:
//   - mgl32.Mat4: the transform matrix
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Object is the read-only view of one selectable entity.
type Object struct {
	ID       uint64
	Selected bool

	// Transform is the object's local transform.
	Transform Transform

	// World is the object's global transform (parent chain applied).
	World mgl32.Mat4
}

// WorldTranslation returns the object's world-space position.
//
// Returns:
//   - mgl32.Vec3: the translation column of World
func (o Object) WorldTranslation() mgl32.Vec3 {
	return o.World.Col(3).Vec3()
}

// Provider exposes the editor's selectable objects. The camera and gizmo steps
// only read from it.
type Provider interface {
	// Each calls fn for every object in a stable order until fn returns false.
	//
	// Parameters:
	//   - fn: visitor; return false to stop
	Each(fn func(Object) bool)
}

// FirstSelected returns the first selected object in p's iteration order.
//
// Parameters:
//   - p: the selection provider
//
// Returns:
//   - Object: the first selected object
//   - bool: false if nothing is selected
func FirstSelected(p Provider) (Object, bool) {
	var found Object
	ok := false
	p.Each(func(o Object) bool {
		if o.Selected {
			found, ok = o, true
			return false
		}
		return true
	})
	return found, ok
}

// Selected returns every selected object in p's iteration order.
//
// Parameters:
//   - p: the selection provider
//
// Returns:
//   - []Object: the selected objects
func Selected(p Provider) []Object {
	var out []Object
	p.Each(func(o Object) bool {
		if o.Selected {
			out = append(out, o)
		}
		return true
	})
	return out
}
