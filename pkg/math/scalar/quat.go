package scalar

import (
	"math"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"
)

// unitTolerance bounds |len-1| for quaternions passed to checked rotations.
const unitTolerance = 1e-3

// Quat is a quaternion with vector part (x, y, z) and scalar part w.
type Quat struct {
	x, y, z, w float32
}

var _ ops.QuatOps[Quat, Vec3, Vec4, Mat4] = Quat{}

// NewQuat creates a quaternion from its vector and scalar parts.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{x, y, z, w}
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatRotation returns the rotation of deg degrees about axis. The axis is
// normalized first.
func QuatRotation(deg float32, axis Vec3) Quat {
	a := axis.Normalize()
	s, c := ops.SinCos(ops.DegToRad(deg) / 2)
	return Quat{a.x * s, a.y * s, a.z * s, c}
}

// QuatRotationXYZ is QuatRotation with the axis given as components.
func QuatRotationXYZ(deg, x, y, z float32) Quat {
	return QuatRotation(deg, Vec3{x, y, z})
}

// QuatRotationChecked is QuatRotation returning ErrDegenerateVector for a
// zero axis.
func QuatRotationChecked(deg float32, axis Vec3) (Quat, error) {
	a, err := axis.NormalizeChecked()
	if err != nil {
		return Quat{}, err
	}
	s, c := ops.SinCos(ops.DegToRad(deg) / 2)
	return Quat{a.x * s, a.y * s, a.z * s, c}, nil
}

// X returns the x component.
func (q Quat) X() float32 { return q.x }

// Y returns the y component.
func (q Quat) Y() float32 { return q.y }

// Z returns the z component.
func (q Quat) Z() float32 { return q.z }

// W returns the w component.
func (q Quat) W() float32 { return q.w }

// Vector returns the vector part.
func (q Quat) Vector() Vec3 {
	return Vec3{q.x, q.y, q.z}
}

// Mul returns the Hamilton product q * o. Applying the result rotates by o
// first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		q.w*o.x + q.x*o.w + q.y*o.z - q.z*o.y,
		q.w*o.y - q.x*o.z + q.y*o.w + q.z*o.x,
		q.w*o.z + q.x*o.y - q.y*o.x + q.z*o.w,
		q.w*o.w - q.x*o.x - q.y*o.y - q.z*o.z,
	}
}

// MulAssign sets q = q * o.
func (q *Quat) MulAssign(o Quat) {
	*q = q.Mul(o)
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{-q.x, -q.y, -q.z, q.w}
}

func (q Quat) scale(k float32) Quat {
	return Quat{q.x * k, q.y * k, q.z * k, q.w * k}
}

// Dot returns the four-component dot product.
func (q Quat) Dot(o Quat) float32 {
	return q.x*o.x + q.y*o.y + q.z*o.z + q.w*o.w
}

// Length returns the norm.
func (q Quat) Length() float32 {
	return ops.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	l := q.Length()
	ops.Assert(l != 0, "scalar: normalize zero quaternion")
	return q.scale(1 / l)
}

// Inverse returns conjugate / |q|^2. For unit quaternions this is the
// conjugate.
func (q Quat) Inverse() Quat {
	return q.Conjugate().scale(1 / q.Dot(q))
}

// RotateVec3 rotates v by q as q * (v, 0) * q^-1. q must be unit length.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	r := q.Mul(Quat{v.x, v.y, v.z, 0}).Mul(q.Conjugate())
	return Vec3{r.x, r.y, r.z}
}

// RotateVec3Checked is RotateVec3 returning ErrNonUnitQuaternion when q is
// not unit length.
func (q Quat) RotateVec3Checked(v Vec3) (Vec3, error) {
	if ops.Abs(q.Length()-1) > unitTolerance {
		return Vec3{}, ops.ErrNonUnitQuaternion
	}
	return q.RotateVec3(v), nil
}

// RotateVec4 rotates the xyz part of v and keeps w.
func (q Quat) RotateVec4(v Vec4) Vec4 {
	return Vec4FromVec3(q.RotateVec3(v.XYZ()), v.w)
}

// ToMat4 returns the rotation matrix for column vectors, so that
// q.ToMat4().MulVec(v) matches q.RotateVec4(v). Transpose it to use with
// row vectors.
func (q Quat) ToMat4() Mat4 {
	xx, yy, zz := q.x*q.x, q.y*q.y, q.z*q.z
	xy, xz, yz := q.x*q.y, q.x*q.z, q.y*q.z
	wx, wy, wz := q.w*q.x, q.w*q.y, q.w*q.z
	return Mat4{[4][4]float32{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}}
}

// Slerp spherically interpolates between q and o along the shortest arc.
func (q Quat) Slerp(o Quat, t float32) Quat {
	dot := q.Dot(o)
	if dot < 0 {
		o = o.scale(-1)
		dot = -dot
	}
	if dot > 0.9995 {
		return Quat{
			q.x + t*(o.x-q.x),
			q.y + t*(o.y-q.y),
			q.z + t*(o.z-q.z),
			q.w + t*(o.w-q.w),
		}.Normalize()
	}
	theta0 := math.Acos(float64(dot))
	theta := theta0 * float64(t)
	sinTheta0 := math.Sin(theta0)
	s0 := float32(math.Cos(theta) - float64(dot)*math.Sin(theta)/sinTheta0)
	s1 := float32(math.Sin(theta) / sinTheta0)
	return Quat{
		s0*q.x + s1*o.x,
		s0*q.y + s1*o.y,
		s0*q.z + s1*o.z,
		s0*q.w + s1*o.w,
	}
}

// IsIdentity reports whether q is within FloatEpsilon of (0, 0, 0, 1).
func (q Quat) IsIdentity() bool {
	return ops.Abs(q.x) <= ops.FloatEpsilon && ops.Abs(q.y) <= ops.FloatEpsilon &&
		ops.Abs(q.z) <= ops.FloatEpsilon && ops.Abs(q.w-1) <= ops.FloatEpsilon
}

// Equal compares components with a relative FloatEpsilon tolerance.
func (q Quat) Equal(o Quat) bool {
	return ops.Equal32(q.x, o.x) && ops.Equal32(q.y, o.y) &&
		ops.Equal32(q.z, o.z) && ops.Equal32(q.w, o.w)
}

// Compare reports whether every component differs by at most tol.
func (q Quat) Compare(o Quat, tol float32) bool {
	return ops.Abs(q.x-o.x) <= tol && ops.Abs(q.y-o.y) <= tol &&
		ops.Abs(q.z-o.z) <= tol && ops.Abs(q.w-o.w) <= tol
}
