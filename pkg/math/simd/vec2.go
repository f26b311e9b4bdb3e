package simd

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Vec2 is a 2D vector held in the low two lanes of a register. The upper
// lanes are always zero.
type Vec2 struct {
	r lanes
}

var _ ops.Vector[Vec2] = Vec2{}

// NewVec2 creates a Vec2.
func NewVec2(x, y float32) Vec2 {
	return Vec2{lanes{x, y, 0, 0}}
}

// X returns the x component.
func (v Vec2) X() float32 { return v.r[0] }

// Y returns the y component.
func (v Vec2) Y() float32 { return v.r[1] }

// SetX sets the x component.
func (v *Vec2) SetX(x float32) { v.r[0] = x }

// SetY sets the y component.
func (v *Vec2) SetY(y float32) { v.r[1] = y }

// Set overwrites all components.
func (v *Vec2) Set(x, y float32) {
	v.r = lanes{x, y, 0, 0}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.r.add(o.r)} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.r.sub(o.r)} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{flipSign(v.r, signs(true, true, false, false))} }

// Mul returns the component-wise product.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.r.mul(o.r).keep(maskXY)} }

// Scale returns v * k.
func (v Vec2) Scale(k float32) Vec2 {
	return Vec2{v.r.mul(splat(k)).keep(maskXY)}
}

// Div returns v / k.
func (v Vec2) Div(k float32) Vec2 {
	return Vec2{v.r.div(splat(k)).keep(maskXY)}
}

// ScaleVec2 returns k * v.
func ScaleVec2(k float32, v Vec2) Vec2 {
	return v.Scale(k)
}

// AddAssign sets v to v + o.
func (v *Vec2) AddAssign(o Vec2) { *v = v.Add(o) }

// SubAssign sets v to v - o.
func (v *Vec2) SubAssign(o Vec2) { *v = v.Sub(o) }

// MulAssign sets v to the component-wise product v * o.
func (v *Vec2) MulAssign(o Vec2) { *v = v.Mul(o) }

// ScaleAssign sets v to v * k.
func (v *Vec2) ScaleAssign(k float32) { *v = v.Scale(k) }

// DivAssign sets v to v / k.
func (v *Vec2) DivAssign(k float32) { *v = v.Div(k) }

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float32 {
	return dp(v.r, o.r, maskXY<<4|maskX).first()
}

// LengthSquared returns the squared length.
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length.
func (v Vec2) Length() float32 {
	return sqrtLanes(dp(v.r, v.r, maskXY<<4|maskX)).first()
}

// Normalize returns v scaled to unit length.
func (v Vec2) Normalize() Vec2 {
	n := sqrtLanes(dp(v.r, v.r, maskXY<<4|maskXYZW))
	ops.Assert(n[0] != 0, "simd: normalize zero-length Vec2")
	return Vec2{v.r.div(n).keep(maskXY)}
}

// NormalizeChecked is Normalize returning ErrDegenerateVector instead of
// producing Inf or NaN.
func (v Vec2) NormalizeChecked() (Vec2, error) {
	if ops.Degenerate(v.Length()) {
		return Vec2{}, ops.ErrDegenerateVector
	}
	return v.Normalize(), nil
}

// Distance returns the distance between two points.
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Length()
}

// Equal compares components with a relative FloatEpsilon tolerance.
func (v Vec2) Equal(o Vec2) bool {
	return equalLanes(v.r, o.r, maskXY, ops.Equal32)
}

// Compare reports whether every component differs by at most tol.
func (v Vec2) Compare(o Vec2, tol float32) bool {
	return equalLanes(v.r, o.r, maskXY, within(tol))
}

// MulMat2 returns the row vector product v * m.
func (v Vec2) MulMat2(m Mat2) Vec2 {
	return Vec2{rowTimes(v.r, m.r[:], maskXY)}
}

// Array returns the components as an array.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.r[0], v.r[1]}
}

func within(tol float32) func(a, b float32) bool {
	return func(a, b float32) bool {
		return ops.Abs(a-b) <= tol
	}
}
