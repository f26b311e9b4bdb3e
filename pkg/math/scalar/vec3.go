package scalar

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Vec3 is a 3D vector.
type Vec3 struct {
	x, y, z float32
}

var _ ops.Vec3Ops[Vec3] = Vec3{}

// NewVec3 creates a Vec3.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Vec3Up returns (0, 1, 0).
func Vec3Up() Vec3 { return Vec3{0, 1, 0} }

// X returns the x component.
func (v Vec3) X() float32 { return v.x }

// Y returns the y component.
func (v Vec3) Y() float32 { return v.y }

// Z returns the z component.
func (v Vec3) Z() float32 { return v.z }

// SetX sets the x component.
func (v *Vec3) SetX(x float32) { v.x = x }

// SetY sets the y component.
func (v *Vec3) SetY(y float32) { v.y = y }

// SetZ sets the z component.
func (v *Vec3) SetZ(z float32) { v.z = z }

// Set overwrites all components.
func (v *Vec3) Set(x, y, z float32) {
	v.x, v.y, v.z = x, y, z
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.x + o.x, v.y + o.y, v.z + o.z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.x - o.x, v.y - o.y, v.z - o.z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.x, -v.y, -v.z}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.x * o.x, v.y * o.y, v.z * o.z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float32) Vec3 {
	return Vec3{v.x * k, v.y * k, v.z * k}
}

// Div returns v / k.
func (v Vec3) Div(k float32) Vec3 {
	return Vec3{v.x / k, v.y / k, v.z / k}
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
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.y*o.z - v.z*o.y,
		v.z*o.x - v.x*o.z,
		v.x*o.y - v.y*o.x,
	}
}

// LengthSquared returns the squared length.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length.
func (v Vec3) Length() float32 {
	return ops.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	ops.Assert(l != 0, "scalar: normalize zero-length Vec3")
	return v.Scale(1 / l)
}

// NormalizeChecked is Normalize returning ErrDegenerateVector instead of
// producing Inf or NaN.
func (v Vec3) NormalizeChecked() (Vec3, error) {
	l := v.Length()
	if ops.Degenerate(l) {
		return Vec3{}, ops.ErrDegenerateVector
	}
	return v.Scale(1 / l), nil
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
	return ops.Equal32(v.x, o.x) && ops.Equal32(v.y, o.y) && ops.Equal32(v.z, o.z)
}

// Compare reports whether every component differs by at most tol.
func (v Vec3) Compare(o Vec3, tol float32) bool {
	return ops.Abs(v.x-o.x) <= tol && ops.Abs(v.y-o.y) <= tol && ops.Abs(v.z-o.z) <= tol
}

// MulMat3 returns the row vector product v * m.
func (v Vec3) MulMat3(m Mat3) Vec3 {
	var out [3]float32
	in := [3]float32{v.x, v.y, v.z}
	for c := 0; c < 3; c++ {
		for k := 0; k < 3; k++ {
			out[c] += in[k] * m.m[k][c]
		}
	}
	return Vec3{out[0], out[1], out[2]}
}

// Array returns the components as an array.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.x, v.y, v.z}
}
