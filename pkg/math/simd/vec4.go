package simd

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Vec4 is a 4D vector occupying a full register.
type Vec4 struct {
	r lanes
}

var _ ops.Vector[Vec4] = Vec4{}

// NewVec4 creates a Vec4.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{lanes{x, y, z, w}}
}

// Vec4FromVec3 extends v with the given w.
func Vec4FromVec3(v Vec3, w float32) Vec4 {
	r := v.r
	r[3] = w
	return Vec4{r}
}

// X returns the x component.
func (v Vec4) X() float32 { return v.r[0] }

// Y returns the y component.
func (v Vec4) Y() float32 { return v.r[1] }

// Z returns the z component.
func (v Vec4) Z() float32 { return v.r[2] }

// W returns the w component.
func (v Vec4) W() float32 { return v.r[3] }

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.r.keep(maskXYZ)}
}

// SetX sets the x component.
func (v *Vec4) SetX(x float32) { v.r[0] = x }

// SetY sets the y component.
func (v *Vec4) SetY(y float32) { v.r[1] = y }

// SetZ sets the z component.
func (v *Vec4) SetZ(z float32) { v.r[2] = z }

// SetW sets the w component.
func (v *Vec4) SetW(w float32) { v.r[3] = w }

// Set overwrites all components.
func (v *Vec4) Set(x, y, z, w float32) {
	v.r = lanes{x, y, z, w}
}

// Add returns v + o.
func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v.r.add(o.r)} }

// Sub returns v - o.
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v.r.sub(o.r)} }

// Neg returns -v.
func (v Vec4) Neg() Vec4 { return Vec4{flipSign(v.r, signs(true, true, true, true))} }

// Mul returns the component-wise product.
func (v Vec4) Mul(o Vec4) Vec4 { return Vec4{v.r.mul(o.r)} }

// Scale returns v * k.
func (v Vec4) Scale(k float32) Vec4 {
	return Vec4{v.r.mul(splat(k))}
}

// Div returns v / k.
func (v Vec4) Div(k float32) Vec4 {
	return Vec4{v.r.div(splat(k))}
}

// ScaleVec4 returns k * v.
func ScaleVec4(k float32, v Vec4) Vec4 {
	return v.Scale(k)
}

// AddAssign sets v to v + o.
func (v *Vec4) AddAssign(o Vec4) { *v = v.Add(o) }

// SubAssign sets v to v - o.
func (v *Vec4) SubAssign(o Vec4) { *v = v.Sub(o) }

// MulAssign sets v to the component-wise product v * o.
func (v *Vec4) MulAssign(o Vec4) { *v = v.Mul(o) }

// ScaleAssign sets v to v * k.
func (v *Vec4) ScaleAssign(k float32) { *v = v.Scale(k) }

// DivAssign sets v to v / k.
func (v *Vec4) DivAssign(k float32) { *v = v.Div(k) }

// Dot returns the dot product.
func (v Vec4) Dot(o Vec4) float32 {
	return dp(v.r, o.r, maskXYZW<<4|maskX).first()
}

// LengthSquared returns the squared length.
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length.
func (v Vec4) Length() float32 {
	return sqrtLanes(dp(v.r, v.r, maskXYZW<<4|maskX)).first()
}

// Normalize returns v scaled to unit length.
func (v Vec4) Normalize() Vec4 {
	n := sqrtLanes(dp(v.r, v.r, maskXYZW<<4|maskXYZW))
	ops.Assert(n[0] != 0, "simd: normalize zero-length Vec4")
	return Vec4{v.r.div(n)}
}

// NormalizeChecked is Normalize returning ErrDegenerateVector instead of
// producing Inf or NaN.
func (v Vec4) NormalizeChecked() (Vec4, error) {
	if ops.Degenerate(v.Length()) {
		return Vec4{}, ops.ErrDegenerateVector
	}
	return v.Normalize(), nil
}

// Distance returns the distance between two points.
func (v Vec4) Distance(o Vec4) float32 {
	return v.Sub(o).Length()
}

// Equal compares components with a relative FloatEpsilon tolerance.
func (v Vec4) Equal(o Vec4) bool {
	return equalLanes(v.r, o.r, maskXYZW, ops.Equal32)
}

// Compare reports whether every component differs by at most tol.
func (v Vec4) Compare(o Vec4, tol float32) bool {
	return equalLanes(v.r, o.r, maskXYZW, within(tol))
}

// MulMat4 returns the row vector product v * m.
func (v Vec4) MulMat4(m Mat4) Vec4 {
	return Vec4{rowTimes(v.r, m.r[:], maskXYZW)}
}

// Array returns the components as an array.
func (v Vec4) Array() [4]float32 {
	return v.r
}
