package scalar

import (
	"golang.org/x/image/math/f32"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"
)

// Mat4 is a 4x4 row-major matrix. Transforms are built for row vectors,
// so a point is transformed with p.MulMat4(m) and transforms compose left to
// right. The zero value is the zero matrix.
type Mat4 struct {
	m [4][4]float32
}

var _ ops.Matrix[Mat4, Vec4] = Mat4{}

// NewMat4 builds a matrix from its rows.
func NewMat4(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{[4][4]float32{r0.Array(), r1.Array(), r2.Array(), r3.Array()}}
}

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4Scale(1, 1, 1)
}

// Mat4Scale returns a scale matrix.
func Mat4Scale(x, y, z float32) Mat4 {
	return Mat4{[4][4]float32{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}}
}

// Mat4Translate returns a translation matrix. The offset lives in row 3.
func Mat4Translate(x, y, z float32) Mat4 {
	return Mat4{[4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}}
}

// Mat4RotX returns a rotation of deg degrees about the X axis.
func Mat4RotX(deg float32) Mat4 {
	return mat4FromMat3(Mat3RotX(deg))
}

// Mat4RotY returns a rotation of deg degrees about the Y axis.
func Mat4RotY(deg float32) Mat4 {
	return mat4FromMat3(Mat3RotY(deg))
}

// Mat4RotZ returns a rotation of deg degrees about the Z axis.
func Mat4RotZ(deg float32) Mat4 {
	return mat4FromMat3(Mat3RotZ(deg))
}

func mat4FromMat3(a Mat3) Mat4 {
	out := Mat4Identity()
	for r := 0; r < 3; r++ {
		copy(out.m[r][:3], a.m[r][:])
	}
	return out
}

// Mat4PerspectiveLH returns a left-handed perspective projection mapping
// view depth [near, far] to [0, 1]. fovY is in degrees.
func Mat4PerspectiveLH(fovY, aspect, near, far float32) Mat4 {
	yScale := 1 / ops.Tan(ops.DegToRad(fovY)/2)
	xScale := yScale / aspect
	fRange := far / (far - near)
	return Mat4{[4][4]float32{
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
	return Mat4{[4][4]float32{
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
	return Mat4{[4][4]float32{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, fRange, 0},
		{(left + right) / (left - right), (top + bottom) / (bottom - top), -near * fRange, 1},
	}}
}

// Element returns the element at row r, column c.
func (a Mat4) Element(r, c int) float32 { return a.m[r][c] }

// SetElement sets the element at row r, column c.
func (a *Mat4) SetElement(r, c int, v float32) { a.m[r][c] = v }

// Row returns row r.
func (a Mat4) Row(r int) Vec4 {
	return Vec4{a.m[r][0], a.m[r][1], a.m[r][2], a.m[r][3]}
}

// SetRow replaces row r.
func (a *Mat4) SetRow(r int, v Vec4) {
	a.m[r] = v.Array()
}

// Col returns column c.
func (a Mat4) Col(c int) Vec4 {
	return Vec4{a.m[0][c], a.m[1][c], a.m[2][c], a.m[3][c]}
}

// SetCol replaces column c.
func (a *Mat4) SetCol(c int, v Vec4) {
	a.m[0][c], a.m[1][c], a.m[2][c], a.m[3][c] = v.x, v.y, v.z, v.w
}

// Add returns a + b.
func (a Mat4) Add(b Mat4) Mat4 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] += b.m[r][c]
		}
	}
	return a
}

// Sub returns a - b.
func (a Mat4) Sub(b Mat4) Mat4 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] -= b.m[r][c]
		}
	}
	return a
}

// Mul returns the matrix product a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for k := 0; k < 4; k++ {
				out.m[r][c] += a.m[r][k] * b.m[k][c]
			}
		}
	}
	return out
}

// Scale multiplies every element by k.
func (a Mat4) Scale(k float32) Mat4 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] *= k
		}
	}
	return a
}

// Div divides every element by k.
func (a Mat4) Div(k float32) Mat4 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] /= k
		}
	}
	return a
}

// MulVec returns the column vector product a * v.
func (a Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{a.Row(0).Dot(v), a.Row(1).Dot(v), a.Row(2).Dot(v), a.Row(3).Dot(v)}
}

// TransformPoint transforms p (w=1) with the row vector convention.
func (a Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec4FromVec3(p, 1).MulMat4(a).XYZ()
}

// Transpose returns the transpose.
func (a Mat4) Transpose() Mat4 {
	var t Mat4
	for r := range a.m {
		for c := range a.m[r] {
			t.m[c][r] = a.m[r][c]
		}
	}
	return t
}

func (a Mat4) minor(r, c int) Mat3 {
	var out Mat3
	i := 0
	for rr := 0; rr < 4; rr++ {
		if rr == r {
			continue
		}
		j := 0
		for cc := 0; cc < 4; cc++ {
			if cc == c {
				continue
			}
			out.m[i][j] = a.m[rr][cc]
			j++
		}
		i++
	}
	return out
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (a Mat4) Determinant() float32 {
	var det float32
	for c := 0; c < 4; c++ {
		det += cofactorSign(0, c) * a.m[0][c] * a.minor(0, c).Determinant()
	}
	return det
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
	det := a.Determinant()
	if ops.NearZero(det) {
		return Mat4{}, ops.ErrSingularMatrix
	}
	var adj Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			adj.m[c][r] = cofactorSign(r, c) * a.minor(r, c).Determinant()
		}
	}
	return adj.Scale(1 / det), nil
}

// IsIdentity reports whether every element is within FloatEpsilon of the
// identity.
func (a Mat4) IsIdentity() bool {
	return isIdentity(4, a.Element)
}

// Equal compares elements with a relative FloatEpsilon tolerance.
func (a Mat4) Equal(b Mat4) bool {
	for r := range a.m {
		for c := range a.m[r] {
			if !ops.Equal32(a.m[r][c], b.m[r][c]) {
				return false
			}
		}
	}
	return true
}

// Compare reports whether every element differs by at most tol.
func (a Mat4) Compare(b Mat4, tol float32) bool {
	for r := range a.m {
		for c := range a.m[r] {
			if ops.Abs(a.m[r][c]-b.m[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

// Array returns the elements in row-major order.
func (a Mat4) Array() [16]float32 {
	var out [16]float32
	for r := range a.m {
		copy(out[r*4:], a.m[r][:])
	}
	return out
}

// F32 returns the matrix as an x/image f32.Mat4, which shares the row-major
// layout.
func (a Mat4) F32() f32.Mat4 {
	return f32.Mat4(a.Array())
}
