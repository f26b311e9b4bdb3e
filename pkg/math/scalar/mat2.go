package scalar

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Mat2 is a 2x2 row-major matrix. The zero value is the zero matrix.
type Mat2 struct {
	m [2][2]float32
}

var _ ops.Matrix[Mat2, Vec2] = Mat2{}

// NewMat2 builds a matrix from its rows.
func NewMat2(r0, r1 Vec2) Mat2 {
	return Mat2{[2][2]float32{{r0.x, r0.y}, {r1.x, r1.y}}}
}

// Mat2Identity returns the identity matrix.
func Mat2Identity() Mat2 {
	return Mat2{[2][2]float32{{1, 0}, {0, 1}}}
}

// Mat2Scale returns a scale matrix.
func Mat2Scale(x, y float32) Mat2 {
	return Mat2{[2][2]float32{{x, 0}, {0, y}}}
}

// Mat2Rotate returns a counter-clockwise rotation by deg degrees for row
// vectors (v * m).
func Mat2Rotate(deg float32) Mat2 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat2{[2][2]float32{{c, s}, {-s, c}}}
}

// Element returns the value at row r, column c.
func (a Mat2) Element(r, c int) float32 { return a.m[r][c] }

// SetElement sets the value at row r, column c.
func (a *Mat2) SetElement(r, c int, v float32) { a.m[r][c] = v }

// Row returns row r.
func (a Mat2) Row(r int) Vec2 {
	return Vec2{a.m[r][0], a.m[r][1]}
}

// SetRow replaces row r.
func (a *Mat2) SetRow(r int, v Vec2) {
	a.m[r] = [2]float32{v.x, v.y}
}

// Col returns column c.
func (a Mat2) Col(c int) Vec2 {
	return Vec2{a.m[0][c], a.m[1][c]}
}

// SetCol replaces column c.
func (a *Mat2) SetCol(c int, v Vec2) {
	a.m[0][c] = v.x
	a.m[1][c] = v.y
}

// Add returns a + b.
func (a Mat2) Add(b Mat2) Mat2 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] += b.m[r][c]
		}
	}
	return a
}

// Sub returns a - b.
func (a Mat2) Sub(b Mat2) Mat2 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] -= b.m[r][c]
		}
	}
	return a
}

// Mul returns the matrix product a * b.
func (a Mat2) Mul(b Mat2) Mat2 {
	var out Mat2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out.m[r][c] = a.m[r][0]*b.m[0][c] + a.m[r][1]*b.m[1][c]
		}
	}
	return out
}

// Scale multiplies every element by k.
func (a Mat2) Scale(k float32) Mat2 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] *= k
		}
	}
	return a
}

// Div divides every element by k.
func (a Mat2) Div(k float32) Mat2 {
	for r := range a.m {
		for c := range a.m[r] {
			a.m[r][c] /= k
		}
	}
	return a
}

// MulVec returns the column vector product a * v.
func (a Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		a.m[0][0]*v.x + a.m[0][1]*v.y,
		a.m[1][0]*v.x + a.m[1][1]*v.y,
	}
}

// Transpose returns the transpose.
func (a Mat2) Transpose() Mat2 {
	a.m[0][1], a.m[1][0] = a.m[1][0], a.m[0][1]
	return a
}

// Determinant returns the determinant.
func (a Mat2) Determinant() float32 {
	return a.m[0][0]*a.m[1][1] - a.m[0][1]*a.m[1][0]
}

// Inverse returns the inverse, or the zero matrix when a is singular.
func (a Mat2) Inverse() Mat2 {
	inv, err := a.InverseChecked()
	if err != nil {
		return Mat2{}
	}
	return inv
}

// InverseChecked returns the inverse or ErrSingularMatrix.
func (a Mat2) InverseChecked() (Mat2, error) {
	det := a.Determinant()
	if ops.NearZero(det) {
		return Mat2{}, ops.ErrSingularMatrix
	}
	adj := Mat2{[2][2]float32{
		{a.m[1][1], -a.m[0][1]},
		{-a.m[1][0], a.m[0][0]},
	}}
	return adj.Scale(1 / det), nil
}

// IsIdentity reports whether every element is within FloatEpsilon of the
// identity.
func (a Mat2) IsIdentity() bool {
	return isIdentity(2, a.Element)
}

// Equal compares elements with a relative FloatEpsilon tolerance.
func (a Mat2) Equal(b Mat2) bool {
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
func (a Mat2) Compare(b Mat2, tol float32) bool {
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
func (a Mat2) Array() [4]float32 {
	return [4]float32{a.m[0][0], a.m[0][1], a.m[1][0], a.m[1][1]}
}

// isIdentity checks an n x n matrix, read through at, against the identity
// with an absolute FloatEpsilon tolerance.
func isIdentity(n int, at func(r, c int) float32) bool {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			if ops.Abs(at(r, c)-want) > ops.FloatEpsilon {
				return false
			}
		}
	}
	return true
}
