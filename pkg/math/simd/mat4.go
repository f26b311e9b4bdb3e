package simd

import (
	"golang.org/x/image/math/f32"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"
)

// Mat4 is a 4x4 row-major matrix, one register per row. Transforms are built
// for row vectors. The zero value is the zero matrix.
type Mat4 struct {
	r [4]lanes
}

var _ ops.Matrix[Mat4, Vec4] = Mat4{}

// NewMat4 builds a matrix from its rows.
func NewMat4(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{[4]lanes{r0.r, r1.r, r2.r, r3.r}}
}

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4Scale(1, 1, 1)
}

// Mat4Scale returns a scale matrix.
func Mat4Scale(x, y, z float32) Mat4 {
	return Mat4{[4]lanes{{x, 0, 0, 0}, {0, y, 0, 0}, {0, 0, z, 0}, {0, 0, 0, 1}}}
}

// Mat4Translate returns a translation matrix. The offset lives in row 3.
func Mat4Translate(x, y, z float32) Mat4 {
	return Mat4{[4]lanes{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {x, y, z, 1}}}
}

// Mat4RotX returns a rotation of deg degrees about the X axis.
func Mat4RotX(deg float32) Mat4 { return mat4FromMat3(Mat3RotX(deg)) }

// Mat4RotY returns a rotation of deg degrees about the Y axis.
func Mat4RotY(deg float32) Mat4 { return mat4FromMat3(Mat3RotY(deg)) }

// Mat4RotZ returns a rotation of deg degrees about the Z axis.
func Mat4RotZ(deg float32) Mat4 { return mat4FromMat3(Mat3RotZ(deg)) }

func mat4FromMat3(a Mat3) Mat4 {
	return Mat4{[4]lanes{a.r[0], a.r[1], a.r[2], {0, 0, 0, 1}}}
}

// Mat4PerspectiveLH returns a left-handed perspective projection mapping
// view depth [near, far] to [0, 1]. fovY is in degrees.
func Mat4PerspectiveLH(fovY, aspect, near, far float32) Mat4 {
	yScale := 1 / ops.Tan(ops.DegToRad(fovY)/2)
	xScale := yScale / aspect
	fRange := far / (far - near)
	return Mat4{[4]lanes{
		{xScale, 0, 0, 0},
		{0, yScale, 0, 0},
		{0, 0, fRange, 1},
		{0, 0, -near * fRange, 0},
	}}
}

// Mat4OrthographicLH returns a left-handed orthographic projection of a
// width x height volume centred on the view axis.
func Mat4OrthographicLH(width, height, near, far float32) Mat4 {
	fRange := 1 / (far - near)
	return Mat4{[4]lanes{
		{2 / width, 0, 0, 0},
		{0, 2 / height, 0, 0},
		{0, 0, fRange, 0},
		{0, 0, -near * fRange, 1},
	}}
}

// Mat4OrthographicOffCenterLH returns a left-handed orthographic projection
// of an arbitrary box.
func Mat4OrthographicOffCenterLH(left, right, bottom, top, near, far float32) Mat4 {
	fRange := 1 / (far - near)
	return Mat4{[4]lanes{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, fRange, 0},
		{(left + right) / (left - right), (top + bottom) / (bottom - top), -near * fRange, 1},
	}}
}

// Element returns the element at row r, column c.
func (a Mat4) Element(r, c int) float32 { return a.r[r][c] }

// SetElement sets the element at row r, column c.
func (a *Mat4) SetElement(r, c int, v float32) { a.r[r][c] = v }

// Row returns row r.
func (a Mat4) Row(r int) Vec4 { return Vec4{a.r[r]} }

// SetRow replaces row r.
func (a *Mat4) SetRow(r int, v Vec4) { a.r[r] = v.r }

// Col returns column c.
func (a Mat4) Col(c int) Vec4 { return a.Transpose().Row(c) }

// SetCol replaces column c.
func (a *Mat4) SetCol(c int, v Vec4) {
	for r := 0; r < 4; r++ {
		a.r[r][c] = v.r[r]
	}
}

// Add returns a + b.
func (a Mat4) Add(b Mat4) Mat4 {
	for i := range a.r {
		a.r[i] = a.r[i].add(b.r[i])
	}
	return a
}

// Sub returns a - b.
func (a Mat4) Sub(b Mat4) Mat4 {
	for i := range a.r {
		a.r[i] = a.r[i].sub(b.r[i])
	}
	return a
}

// Mul returns the matrix product a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	mulRows(out.r[:], a.r[:], b.r[:])
	return out
}

// Scale multiplies every element by k.
func (a Mat4) Scale(k float32) Mat4 {
	s := splat(k)
	for i := range a.r {
		a.r[i] = a.r[i].mul(s)
	}
	return a
}

// Div divides every element by k.
func (a Mat4) Div(k float32) Mat4 {
	s := splat(k)
	for i := range a.r {
		a.r[i] = a.r[i].div(s)
	}
	return a
}

// MulVec returns the column vector product a * v.
func (a Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{colTimes(a.r[:], v.r, maskXYZW)}
}

// TransformPoint transforms p (w=1) with the row vector convention.
func (a Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec4FromVec3(p, 1).MulMat4(a).XYZ()
}

// Transpose returns the transpose.
func (a Mat4) Transpose() Mat4 {
	t := a
	transpose4(&t.r[0], &t.r[1], &t.r[2], &t.r[3])
	return t
}

// Determinant returns the determinant.
func (a Mat4) Determinant() float32 {
	return det4(a.r[:])
}

// Inverse returns the inverse, or the zero matrix when a is singular.
func (a Mat4) Inverse() Mat4 {
	inv, err := a.InverseChecked()
	if err != nil {
		return Mat4{}
	}
	return inv
}

// InverseChecked returns the inverse or ErrSingularMatrix.
func (a Mat4) InverseChecked() (Mat4, error) {
	var inv Mat4
	if err := inverseRows(inv.r[:], a.r[:]); err != nil {
		return Mat4{}, err
	}
	return inv, nil
}

// IsIdentity reports whether every element is within FloatEpsilon of the identity.
func (a Mat4) IsIdentity() bool { return rowsIdentity(a.r[:]) }

// Equal compares elements with a relative FloatEpsilon tolerance.
func (a Mat4) Equal(b Mat4) bool { return rowsEqual(a.r[:], b.r[:], ops.Equal32) }

// Compare reports whether every element differs by at most tol.
func (a Mat4) Compare(b Mat4, tol float32) bool {
	return rowsEqual(a.r[:], b.r[:], within(tol))
}

// Array returns the elements in row-major order.
func (a Mat4) Array() [16]float32 {
	var out [16]float32
	for i := range a.r {
		copy(out[i*4:], a.r[i][:])
	}
	return out
}

// F32 returns the matrix as an x/image f32.Mat4.
func (a Mat4) F32() f32.Mat4 {
	return f32.Mat4(a.Array())
}
