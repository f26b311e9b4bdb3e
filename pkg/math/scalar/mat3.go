package scalar

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Mat3 is a 3x3 row-major matrix. The zero value is the zero matrix.
type Mat3 struct {
	m [3][3]float32
}

var _ ops.Matrix[Mat3, Vec3] = Mat3{}

// NewMat3 builds a matrix from its rows.
func NewMat3(r0, r1, r2 Vec3) Mat3 {
	return Mat3{[3][3]float32{r0.Array(), r1.Array(), r2.Array()}}
}

// Mat3Identity returns the identity matrix.
func Mat3Identity() Mat3 {
	return Mat3Scale(1, 1, 1)
}

// Mat3Scale returns a scale matrix.
func Mat3Scale(x, y, z float32) Mat3 {
	return Mat3{[3][3]float32{{x, 0, 0}, {0, y, 0}, {0, 0, z}}}
}

// Mat3Translate returns a 2D homogeneous translation for row vectors.
func Mat3Translate(x, y float32) Mat3 {
	return Mat3{[3][3]float32{{1, 0, 0}, {0, 1, 0}, {x, y, 1}}}
}

// Mat3RotX returns a rotation of deg degrees about the X axis.
func Mat3RotX(deg float32) Mat3 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat3{[3][3]float32{{1, 0, 0}, {0, c, s}, {0, -s, c}}}
}

// Mat3RotY returns a rotation of deg degrees about the Y axis.
func Mat3RotY(deg float32) Mat3 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat3{[3][3]float32{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}}
}

// Mat3RotZ returns a rotation of deg degrees about the Z axis.
func Mat3RotZ(deg float32) Mat3 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat3{[3][3]float32{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}}
}

// Element returns the element at row r, column c.
func (a Mat3) Element(r, c int) float32 { return a.m[r][c] }

// SetElement sets the element at row r, column c.
func (a *Mat3) SetElement(r, c int, v float32) { a.m[r][c] = v }

// Row returns row r.
func (a Mat3) Row(r int) Vec3 {
	return Vec3{a.m[r][0], a.m[r][1], a.m[r][2]}
}

// SetRow replaces row r.
func (a *Mat3) SetRow(r int, v Vec3) {
	a.m[r] = v.Array()
}

// Col returns column c.
func (a Mat3) Col(c int) Vec3 {
	return Vec3{a.m[0][c], a.m[1][c], a.m[2][c]}
}

// SetCol replaces column c.
func (a *Mat3) SetCol(c int, v Vec3) {
	a.m[0][c], a.m[1][c], a.m[2][c] = v.x, v.y, v.z
}

// Add returns a + b.
func (a Mat3) Add(b Mat3) Mat3 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] += b.m[r][c]
		}
	}
	return a
}

// Sub returns a - b.
func (a Mat3) Sub(b Mat3) Mat3 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] -= b.m[r][c]
		}
	}
	return a
}

// Mul returns the matrix product a * b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			for k := 0; k < 3; k++ {
				out.m[r][c] += a.m[r][k] * b.m[k][c]
			}
		}
	}
	return out
}

// Scale multiplies every element by k.
func (a Mat3) Scale(k float32) Mat3 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] *= k
		}
	}
	return a
}

// Div divides every element by k.
func (a Mat3) Div(k float32) Mat3 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] /= k
		}
	}
	return a
}

// MulVec returns the column vector product a * v.
func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{a.Row(0).Dot(v), a.Row(1).Dot(v), a.Row(2).Dot(v)}
}

// Transpose returns the transpose.
func (a Mat3) Transpose() Mat3 {
	var t Mat3
	for r := range a.m {
		for c := range a.m[r] {
			t.m[c][r] = a.m[r][c]
		}
	}
	return t
}

// minor returns a with row r and column c removed.
func (a Mat3) minor(r, c int) Mat2 {
	var out Mat2
	i := 0
	for rr := 0; rr < 3; rr++ {
		if rr == r {
			continue
		}
		j := 0
		for cc := 0; cc < 3; cc++ {
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

func cofactorSign(r, c int) float32 {
	if (r+c)%2 == 0 {
		return 1
	}
	return -1
}

// Determinant returns the determinant by cofactor expansion along row 0.
func (a Mat3) Determinant() float32 {
	var det float32
	for c := 0; c < 3; c++ {
		det += cofactorSign(0, c) * a.m[0][c] * a.minor(0, c).Determinant()
	}
	return det
}

// Inverse returns the inverse, or the zero matrix when a is singular.
func (a Mat3) Inverse() Mat3 {
	inv, err := a.InverseChecked()
	if err != nil {
		return Mat3{}
	}
	return inv
}

// InverseChecked returns the inverse or ErrSingularMatrix.
func (a Mat3) InverseChecked() (Mat3, error) {
	det := a.Determinant()
	if ops.NearZero(det) {
		return Mat3{}, ops.ErrSingularMatrix
	}
	var adj Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			adj.m[c][r] = cofactorSign(r, c) * a.minor(r, c).Determinant()
		}
	}
	return adj.Scale(1 / det), nil
}

// IsIdentity reports whether every element is within FloatEpsilon of the
// identity.
func (a Mat3) IsIdentity() bool {
	return isIdentity(3, a.Element)
}

// Equal compares elements with a relative FloatEpsilon tolerance.
func (a Mat3) Equal(b Mat3) bool {
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
func (a Mat3) Compare(b Mat3, tol float32) bool {
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
func (a Mat3) Array() [9]float32 {
	var out [9]float32
	for r := range a.m {
		copy(out[r*3:], a.m[r][:])
	}
	return out
}
