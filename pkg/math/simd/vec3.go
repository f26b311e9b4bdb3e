package simd

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Vec3 is a 3D vector held in the low three lanes of a register. Lane 3 is
// always zero.
type Vec3 struct {
	r lanes
}

var _ ops.Vec3Ops[Vec3] = Vec3{}

// NewVec3 creates a Vec3.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{lanes{x, y, z, 0}}
}

// Vec3Up returns (0, 1, 0).
func Vec3Up() Vec3 { return NewVec3(0, 1, 0) }

// X returns the x component.
func (v Vec3) X() float32 { return v.r[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v.r[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v.r[2] }

// SetX sets the x component.
func (v *Vec3) SetX(x float32) { v.r[0] = x }

// SetY sets the y component.
func (v *Vec3) SetY(y float32) { v.r[1] = y }

// SetZ sets the z component.
func (v *Vec3) SetZ(z float32) { v.r[2] = z }

// Set overwrites all components.
func (v *Vec3) Set(x, y, z float32) {
	v.r = lanes{x, y, z, 0}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.r.add(o.r)} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.r.sub(o.r)} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{flipSign(v.r, signs(true, true, true, false))} }

// Mul returns the component-wise product.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.r.mul(o.r).keep(maskXYZ)} }

// Scale returns v * k.
func (v Vec3) Scale(k float32) Vec3 {
	return Vec3{v.r.mul(splat(k)).keep(maskXYZ)}
}

// Div returns v / k.
func (v Vec3) Div(k float32) Vec3 {
	return Vec3{v.r.div(splat(k)).keep(maskXYZ)}
}

// ScaleVec3 returns k * v.
func ScaleVec3(k float32, v Vec3) Vec3 {
	return v.Scale(k)
}

// AddAssign sets v to v + o.
func (v *Vec3) AddAssign(o Vec3) { *v = v.Add(o) }

// SubAssign sets v to v - o.
func (v *Vec3) SubAssign(o Vec3) { *v = v.Sub(o) }

// MulAssign sets v to the component-wise product v * o.
func (v *Vec3) MulAssign(o Vec3) { *v = v.Mul(o) }

// ScaleAssign sets v to v * k.
func (v *Vec3) ScaleAssign(k float32) { *v = v.Scale(k) }

// DivAssign sets v to v / k.
func (v *Vec3) DivAssign(k float32) { *v = v.Div(k) }

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float32 {
	return dp(v.r, o.r, maskXYZ<<4|maskX).first()
}

// Cross returns v x o from two cross-shuffled products.
func (v Vec3) Cross(o Vec3) Vec3 {
	a := v.r.swizzle(1, 2, 0, 3).mul(o.r.swizzle(2, 0, 1, 3))
	b := v.r.swizzle(2, 0, 1, 3).mul(o.r.swizzle(1, 2, 0, 3))
	return Vec3{a.sub(b)}
}

// LengthSquared returns the squared length.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length.
func (v Vec3) Length() float32 {
	return sqrtLanes(dp(v.r, v.r, maskXYZ<<4|maskX)).first()
}

// Normalize returns v scaled to unit length.
func (v Vec3) Normalize() Vec3 {
	n := sqrtLanes(dp(v.r, v.r, maskXYZ<<4|maskXYZW))
	ops.Assert(n[0] != 0, "simd: normalize zero-length Vec3")
	return Vec3{v.r.div(n).keep(maskXYZ)}
}

// NormalizeChecked is Normalize returning ErrDegenerateVector instead of
// producing Inf or NaN.
func (v Vec3) NormalizeChecked() (Vec3, error) {
	if ops.Degenerate(v.Length()) {
		return Vec3{}, ops.ErrDegenerateVector
	}
	return v.Normalize(), nil
}

// Distance returns the distance between two points.
func (v Vec3) Distance(o Vec3) float32 {
	return v.Sub(o).Length()
}

// Lerp linearly interpolates between v and o.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Equal compares components with a relative FloatEpsilon tolerance.
func (v Vec3) Equal(o Vec3) bool {
	return equalLanes(v.r, o.r, maskXYZ, ops.Equal32)
}

// Compare reports whether every component differs by at most tol.
func (v Vec3) Compare(o Vec3, tol float32) bool {
	return equalLanes(v.r, o.r, maskXYZ, within(tol))
}

// MulMat3 returns the row vector product v * m.
func (v Vec3) MulMat3(m Mat3) Vec3 {
	return Vec3{rowTimes(v.r, m.r[:], maskXYZ)}
}

// Array returns the components as an array.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.r[0], v.r[1], v.r[2]}
}
