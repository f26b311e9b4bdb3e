package scalar

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Vec4 is a 4D vector, also used for homogeneous points (w=1) and
// directions (w=0).
type Vec4 struct {
	x, y, z, w float32
}

var _ ops.Vector[Vec4] = Vec4{}

// NewVec4 creates a Vec4.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec4FromVec3 extends v with the given w.
func Vec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.x, v.y, v.z, w}
}

// X returns the x component.
func (v Vec4) X() float32 { return v.x }

// Y returns the y component.
func (v Vec4) Y() float32 { return v.y }

// Z returns the z component.
func (v Vec4) Z() float32 { return v.z }

// W returns the w component.
func (v Vec4) W() float32 { return v.w }

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.x, v.y, v.z}
}

// SetX sets the x component.
func (v *Vec4) SetX(x float32) { v.x = x }

// SetY sets the y component.
func (v *Vec4) SetY(y float32) { v.y = y }

// SetZ sets the z component.
func (v *Vec4) SetZ(z float32) { v.z = z }

// SetW sets the w component.
func (v *Vec4) SetW(w float32) { v.w = w }

// Set overwrites all components.
func (v *Vec4) Set(x, y, z, w float32) {
	v.x, v.y, v.z, v.w = x, y, z, w
}

// Add returns v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.x + o.x, v.y + o.y, v.z + o.z, v.w + o.w}
}

// Sub returns v - o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.x - o.x, v.y - o.y, v.z - o.z, v.w - o.w}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v.x, -v.y, -v.z, -v.w}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.x * o.x, v.y * o.y, v.z * o.z, v.w * o.w}
}

// Scale returns v * k.
func (v Vec4) Scale(k float32) Vec4 {
	return Vec4{v.x * k, v.y * k, v.z * k, v.w * k}
}

// Div returns v / k.
func (v Vec4) Div(k float32) Vec4 {
	return Vec4{v.x / k, v.y / k, v.z / k, v.w / k}
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
	return v.x*o.x + v.y*o.y + v.z*o.z + v.w*o.w
}

// LengthSquared returns the squared length.
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length.
func (v Vec4) Length() float32 {
	return ops.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	ops.Assert(l != 0, "scalar: normalize zero-length Vec4")
	return v.Scale(1 / l)
}

// NormalizeChecked is Normalize returning ErrDegenerateVector instead of
// producing Inf or NaN.
func (v Vec4) NormalizeChecked() (Vec4, error) {
	l := v.Length()
	if ops.Degenerate(l) {
		return Vec4{}, ops.ErrDegenerateVector
	}
	return v.Scale(1 / l), nil
}

// Distance returns the distance between two points.
func (v Vec4) Distance(o Vec4) float32 {
	return v.Sub(o).Length()
}

// Equal compares components with a relative FloatEpsilon tolerance.
func (v Vec4) Equal(o Vec4) bool {
	return ops.Equal32(v.x, o.x) && ops.Equal32(v.y, o.y) &&
		ops.Equal32(v.z, o.z) && ops.Equal32(v.w, o.w)
}

// Compare reports whether every component differs by at most tol.
func (v Vec4) Compare(o Vec4, tol float32) bool {
	return ops.Abs(v.x-o.x) <= tol && ops.Abs(v.y-o.y) <= tol &&
		ops.Abs(v.z-o.z) <= tol && ops.Abs(v.w-o.w) <= tol
}

// MulMat4 returns the row vector product v * m.
func (v Vec4) MulMat4(m Mat4) Vec4 {
	var out [4]float32
	in := v.Array()
	for c := 0; c < 4; c++ {
		for k := 0; k < 4; k++ {
			out[c] += in[k] * m.m[k][c]
		}
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

// Array returns the components as an array.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.x, v.y, v.z, v.w}
}
