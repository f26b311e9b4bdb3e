// Package scalar implements the math types with plain float32 fields and
// component-at-a-time arithmetic.
package scalar

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Vec2 is a 2D vector.
type Vec2 struct {
	x, y float32
}

var _ ops.Vector[Vec2] = Vec2{}

// NewVec2 creates a Vec2.
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// X returns the x component.
func (v Vec2) X() float32 { return v.x }

// Y returns the y component.
func (v Vec2) Y() float32 { return v.y }

// SetX sets the x component.
func (v *Vec2) SetX(x float32) { v.x = x }

// SetY sets the y component.
func (v *Vec2) SetY(y float32) { v.y = y }

// Set overwrites all components.
func (v *Vec2) Set(x, y float32) {
	v.x, v.y = x, y
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.x + o.x, v.y + o.y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.x - o.x, v.y - o.y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.x, -v.y}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.x * o.x, v.y * o.y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float32) Vec2 {
	return Vec2{v.x * k, v.y * k}
}

// Div returns v / k. Division by zero follows IEEE rules.
func (v Vec2) Div(k float32) Vec2 {
	return Vec2{v.x / k, v.y / k}
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
	return v.x*o.x + v.y*o.y
}

// LengthSquared returns the squared length.
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length.
func (v Vec2) Length() float32 {
	return ops.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	ops.Assert(l != 0, "scalar: normalize zero-length Vec2")
	return v.Scale(1 / l)
}

// NormalizeChecked is Normalize returning ErrDegenerateVector instead of
// producing Inf or NaN.
func (v Vec2) NormalizeChecked() (Vec2, error) {
	l := v.Length()
	if ops.Degenerate(l) {
		return Vec2{}, ops.ErrDegenerateVector
	}
	return v.Scale(1 / l), nil
}

// Distance returns the distance between two points.
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Length()
}

// Equal compares components with a relative FloatEpsilon tolerance.
func (v Vec2) Equal(o Vec2) bool {
	return ops.Equal32(v.x, o.x) && ops.Equal32(v.y, o.y)
}

// Compare reports whether every component differs by at most tol.
func (v Vec2) Compare(o Vec2, tol float32) bool {
	return ops.Abs(v.x-o.x) <= tol && ops.Abs(v.y-o.y) <= tol
}

// MulMat2 returns the row vector product v * m.
func (v Vec2) MulMat2(m Mat2) Vec2 {
	return Vec2{
		v.x*m.m[0][0] + v.y*m.m[1][0],
		v.x*m.m[0][1] + v.y*m.m[1][1],
	}
}

// Array returns the components as an array.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.x, v.y}
}
