package simd

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Mat2 is a 2x2 row-major matrix, one register per row. The zero value is
// the zero matrix.
type Mat2 struct {
	r [2]lanes
}

var _ ops.Matrix[Mat2, Vec2] = Mat2{}

// NewMat2 builds a matrix from its rows.
func NewMat2(r0, r1 Vec2) Mat2 {
	return Mat2{[2]lanes{r0.r, r1.r}}
}

// Mat2Identity returns the identity matrix.
func Mat2Identity() Mat2 {
	return Mat2Scale(1, 1)
}

// Mat2Scale returns a scale matrix.
func Mat2Scale(x, y float32) Mat2 {
	return Mat2{[2]lanes{{x, 0, 0, 0}, {0, y, 0, 0}}}
}

// Mat2Rotate returns a counter-clockwise rotation by deg degrees for row
// vectors.
func Mat2Rotate(deg float32) Mat2 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat2{[2]lanes{{c, s, 0, 0}, {-s, c, 0, 0}}}
}

// Element returns the element at row r, column c.
func (a Mat2) Element(r, c int) float32 {
	ops.Assert(c < 2, "simd: Mat2 column out of range")
	return a.r[r][c]
}

// SetElement sets the element at row r, column c.
func (a *Mat2) SetElement(r, c int, v float32) {
	ops.Assert(c < 2, "simd: Mat2 column out of range")
	a.r[r][c] = v
}

// Row returns row r.
func (a Mat2) Row(r int) Vec2 { return Vec2{a.r[r]} }

// SetRow replaces row r.
func (a *Mat2) SetRow(r int, v Vec2) { a.r[r] = v.r }

// Col returns column c.
func (a Mat2) Col(c int) Vec2 { return a.Transpose().Row(c) }

// SetCol replaces column c.
func (a *Mat2) SetCol(c int, v Vec2) { a.r[0][c], a.r[1][c] = v.r[0], v.r[1] }

// Add returns a + b.
func (a Mat2) Add(b Mat2) Mat2 { return Mat2{[2]lanes{a.r[0].add(b.r[0]), a.r[1].add(b.r[1])}} }

// Sub returns a - b.
func (a Mat2) Sub(b Mat2) Mat2 { return Mat2{[2]lanes{a.r[0].sub(b.r[0]), a.r[1].sub(b.r[1])}} }

// MulVec returns the column vector product a * v.
func (a Mat2) MulVec(v Vec2) Vec2 { return Vec2{colTimes(a.r[:], v.r, maskXY)} }

// Determinant returns the determinant.
func (a Mat2) Determinant() float32 { return det2(a.r[0], a.r[1]) }

// IsIdentity reports whether every element is within FloatEpsilon of the identity.
func (a Mat2) IsIdentity() bool { return rowsIdentity(a.r[:]) }

// Equal compares elements with a relative FloatEpsilon tolerance.
func (a Mat2) Equal(b Mat2) bool { return rowsEqual(a.r[:], b.r[:], ops.Equal32) }

// Compare reports whether every element differs by at most tol.
func (a Mat2) Compare(b Mat2, tol float32) bool {
	return rowsEqual(a.r[:], b.r[:], within(tol))
}

// Mul returns the matrix product a * b.
func (a Mat2) Mul(b Mat2) Mat2 {
	var out Mat2
	mulRows(out.r[:], a.r[:], b.r[:])
	return out
}

// Scale multiplies every element by k.
func (a Mat2) Scale(k float32) Mat2 {
	s := splat(k)
	return Mat2{[2]lanes{a.r[0].mul(s).keep(maskXY), a.r[1].mul(s).keep(maskXY)}}
}

// Div divides every element by k.
func (a Mat2) Div(k float32) Mat2 {
	s := splat(k)
	return Mat2{[2]lanes{a.r[0].div(s).keep(maskXY), a.r[1].div(s).keep(maskXY)}}
}

// Transpose returns the transpose.
func (a Mat2) Transpose() Mat2 {
	var t Mat2
	transposeRows(t.r[:], a.r[:])
	return t
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
	var inv Mat2
	if err := inverseRows(inv.r[:], a.r[:]); err != nil {
		return Mat2{}, err
	}
	return inv, nil
}

// Array returns the elements in row-major order.
func (a Mat2) Array() [4]float32 {
	return [4]float32{a.r[0][0], a.r[0][1], a.r[1][0], a.r[1][1]}
}
