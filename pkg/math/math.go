// Package math provides math types and functions for game development.
//
// Vectors, matrices and quaternions come from one of two interchangeable
// backends chosen at build time: the scalar backend by default, or the
// register-based backend with -tags simd. Both expose the same API and are
// used through the aliases declared here.
//
// Conventions: matrices are row-major and transforms are built for row
// vectors (v * M), so world = scale * rotation * translation. Angles are in
// degrees. Projections are left-handed with depth in [0, 1].
package math

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// FloatEpsilon is the default relative tolerance used by Equal.
const FloatEpsilon = ops.FloatEpsilon

var (
	ErrDegenerateVector  = ops.ErrDegenerateVector
	ErrSingularMatrix    = ops.ErrSingularMatrix
	ErrNonUnitQuaternion = ops.ErrNonUnitQuaternion
)

// CompareFloats reports whether a and b differ by at most
// max(|a|,|b|) * maxRelDiff.
func CompareFloats(a, b, maxRelDiff float32) bool {
	return ops.CompareFloats(a, b, maxRelDiff)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return ops.DegToRad(deg) }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return ops.RadToDeg(rad) }

// Abs returns |x|.
func Abs(x float32) float32 { return ops.Abs(x) }

// Clamp returns f clamped to [low, high].
func Clamp(f, low, high float32) float32 { return ops.Clamp(f, low, high) }

// World composes a world matrix from scale, rotation and translation in that
// order.
func World(scale Vec3, rotation Quat, translation Vec3) Mat4 {
	return Mat4Scale(scale.X(), scale.Y(), scale.Z()).
		Mul(rotation.ToMat4().Transpose()).
		Mul(Mat4Translate(translation.X(), translation.Y(), translation.Z()))
}
