package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance below which a float32 length is treated as zero.
const Epsilon float32 = 1e-8

// ClampMin returns v, or min when v is smaller (or NaN).
//
// Parameters:
//   - v: the value to clamp
//   - min: the lower bound
//
// Returns:
//   - float32: the clamped value
func ClampMin(v, min float32) float32 {
	if math32.IsNaN(v) {
		return min
	}
	return math32.Max(v, min)
}

// RotationFromMat4 extracts the rotation of an affine transform matrix.
// Each basis column is normalized first so non-uniform scale does not leak into
// the quaternion. Degenerate (zero-length) columns yield the identity rotation.
//
// Parameters:
//   - m: a column-major affine transform
//
// Returns:
//   - mgl32.Quat: the normalized rotation part of m
func RotationFromMat4(m mgl32.Mat4) mgl32.Quat {
	x := m.Col(0).Vec3()
	y := m.Col(1).Vec3()
	z := m.Col(2).Vec3()
	if x.Len() < Epsilon || y.Len() < Epsilon || z.Len() < Epsilon {
		return mgl32.QuatIdent()
	}
	return RotationFromBasis(x.Normalize(), y.Normalize(), z.Normalize())
}

// RotationFromBasis builds the rotation whose matrix has the given columns.
// The columns are expected to be orthonormal and right-handed.
//
// Parameters:
//   - x, y, z: the basis columns
//
// Returns:
//   - mgl32.Quat: the normalized rotation
func RotationFromBasis(x, y, z mgl32.Vec3) mgl32.Quat {
	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

// Centroid returns the arithmetic mean of the given points.
//
// Parameters:
//   - points: the points to average
//
// Returns:
//   - mgl32.Vec3: the mean position
//   - bool: false if points is empty
func Centroid(points []mgl32.Vec3) (mgl32.Vec3, bool) {
	if len(points) == 0 {
		return mgl32.Vec3{}, false
	}
	var total mgl32.Vec3
	for _, p := range points {
		total = total.Add(p)
	}
	return total.Mul(1 / float32(len(points))), true
}
