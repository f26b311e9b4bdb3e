package simd

import (
	"math"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"
)

const unitTolerance = 1e-3

// Quat is a quaternion in one register: lanes (x, y, z) hold the vector
// part and lane 3 the scalar part.
type Quat struct {
	r lanes
}

var _ ops.QuatOps[Quat, Vec3, Vec4, Mat4] = Quat{}

// Sign patterns and shuffles for the Hamilton product. Output component i
// is dot(q, flip(swizzle(o))) with the i-th entry below.
var hamilton = [4]struct {
	idx  [4]int
	sign lanes
}{
	{[4]int{3, 2, 1, 0}, signs(false, false, true, false)},
	{[4]int{2, 3, 0, 1}, signs(true, false, false, false)},
	{[4]int{1, 0, 3, 2}, signs(false, true, false, false)},
	{[4]int{0, 1, 2, 3}, signs(true, true, true, false)},
}

// NewQuat creates a quaternion from its vector and scalar parts.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{lanes{x, y, z, w}}
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{lanes{0, 0, 0, 1}}
}

// QuatRotation returns the rotation of deg degrees about axis. The axis is
// normalized first.
func QuatRotation(deg float32, axis Vec3) Quat {
	return axisAngle(deg, axis.Normalize())
}

// QuatRotationXYZ is QuatRotation with the axis given as components.
func QuatRotationXYZ(deg, x, y, z float32) Quat {
	return QuatRotation(deg, NewVec3(x, y, z))
}

// QuatRotationChecked is QuatRotation returning ErrDegenerateVector for a
// zero axis.
func QuatRotationChecked(deg float32, axis Vec3) (Quat, error) {
	a, err := axis.NormalizeChecked()
	if err != nil {
		return Quat{}, err
	}
	return axisAngle(deg, a), nil
}

func axisAngle(deg float32, unit Vec3) Quat {
	s, c := ops.SinCos(ops.DegToRad(deg) / 2)
	r := unit.r.mul(splat(s))
	r[3] = c
	return Quat{r}
}

// X returns the x component.
func (q Quat) X() float32 { return q.r[0] }

// Y returns the y component.
func (q Quat) Y() float32 { return q.r[1] }

// Z returns the z component.
func (q Quat) Z() float32 { return q.r[2] }

// W returns the w component.
func (q Quat) W() float32 { return q.r[3] }

// Vector returns the vector part.
func (q Quat) Vector() Vec3 {
	return Vec3{q.r.keep(maskXYZ)}
}

// Mul returns the Hamilton product q * o. Applying the result rotates by o
// first, then q.
func (q Quat) Mul(o Quat) Quat {
	var out lanes
	for i, h := range hamilton {
		p := q.r.mul(flipSign(o.r.swizzle(h.idx[0], h.idx[1], h.idx[2], h.idx[3]), h.sign))
		s := hadd(p, p)
		s = hadd(s, s)
		out[i] = s.first()
	}
	return Quat{out}
}

// MulAssign sets q = q * o.
func (q *Quat) MulAssign(o Quat) {
	*q = q.Mul(o)
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{flipSign(q.r, signs(true, true, true, false))}
}

// Dot returns the four-component dot product.
func (q Quat) Dot(o Quat) float32 {
	return dp(q.r, o.r, maskXYZW<<4|maskX).first()
}

// Length returns the norm.
func (q Quat) Length() float32 {
	return sqrtLanes(dp(q.r, q.r, maskXYZW<<4|maskX)).first()
}

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	n := sqrtLanes(dp(q.r, q.r, maskXYZW<<4|maskXYZW))
	ops.Assert(n[0] != 0, "simd: normalize zero quaternion")
	return Quat{q.r.div(n)}
}

// Inverse returns conjugate / |q|^2.
func (q Quat) Inverse() Quat {
	n := dp(q.r, q.r, maskXYZW<<4|maskXYZW)
	return Quat{q.Conjugate().r.div(n)}
}

// RotateVec3 rotates v by q as q * (v, 0) * q^-1. q must be unit length.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	p := Quat{v.r.keep(maskXYZ)}
	return Vec3{q.Mul(p).Mul(q.Conjugate()).r.keep(maskXYZ)}
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
	return Vec4FromVec3(q.RotateVec3(v.XYZ()), v.r[3])
}

// ToMat4 returns the rotation matrix for column vectors, so that
// q.ToMat4().MulVec(v) matches q.RotateVec4(v).
func (q Quat) ToMat4() Mat4 {
	two := q.r.add(q.r)
	sq := q.r.mul(two)                                          // 2xx 2yy 2zz 2ww
	xyz := q.r.swizzle(0, 0, 1, 3).mul(two.swizzle(1, 2, 2, 3)) // 2xy 2xz 2yz
	wv := splat(q.r[3]).mul(two)                                // 2wx 2wy 2wz
	return Mat4{[4]lanes{
		{1 - sq[1] - sq[2], xyz[0] - wv[2], xyz[1] + wv[1], 0},
		{xyz[0] + wv[2], 1 - sq[0] - sq[2], xyz[2] - wv[0], 0},
		{xyz[1] - wv[1], xyz[2] + wv[0], 1 - sq[0] - sq[1], 0},
		{0, 0, 0, 1},
	}}
}

// Slerp spherically interpolates between q and o along the shortest arc.
func (q Quat) Slerp(o Quat, t float32) Quat {
	dot := q.Dot(o)
	if dot < 0 {
		o.r = flipSign(o.r, signs(true, true, true, true))
		dot = -dot
	}
	if dot > 0.9995 {
		return Quat{q.r.add(o.r.sub(q.r).mul(splat(t)))}.Normalize()
	}
	theta0 := math.Acos(float64(dot))
	theta := theta0 * float64(t)
	sinTheta0 := math.Sin(theta0)
	s0 := float32(math.Cos(theta) - float64(dot)*math.Sin(theta)/sinTheta0)
	s1 := float32(math.Sin(theta) / sinTheta0)
	return Quat{q.r.mul(splat(s0)).add(o.r.mul(splat(s1)))}
}

// IsIdentity reports whether q is within FloatEpsilon of (0, 0, 0, 1).
func (q Quat) IsIdentity() bool {
	return equalLanes(q.r, QuatIdentity().r, maskXYZW, within(ops.FloatEpsilon))
}

// Equal compares components with a relative FloatEpsilon tolerance.
func (q Quat) Equal(o Quat) bool {
	return equalLanes(q.r, o.r, maskXYZW, ops.Equal32)
}

// Compare reports whether every component differs by at most tol.
func (q Quat) Compare(o Quat, tol float32) bool {
	return equalLanes(q.r, o.r, maskXYZW, within(tol))
}
