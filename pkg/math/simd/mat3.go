package simd

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Mat3 is a 3x3 row-major matrix, one register per row with lane 3 zero.
// The zero value is the zero matrix.
type Mat3 struct {
	r [3]lanes
}

var _ ops.Matrix[Mat3, Vec3] = Mat3{}

// NewMat3 builds a matrix from its rows.
func NewMat3(r0, r1, r2 Vec3) Mat3 {
	return Mat3{[3]lanes{r0.r, r1.r, r2.r}}
}

// Mat3Identity returns the identity matrix.
func Mat3Identity() Mat3 {
	return Mat3Scale(1, 1, 1)
}

// Mat3Scale returns a scale matrix.
func Mat3Scale(x, y, z float32) Mat3 {
	return Mat3{[3]lanes{{x, 0, 0, 0}, {0, y, 0, 0}, {0, 0, z, 0}}}
}

// Mat3Translate returns a 2D homogeneous translation for row vectors.
func Mat3Translate(x, y float32) Mat3 {
	return Mat3{[3]lanes{{1, 0, 0, 0}, {0, 1, 0, 0}, {x, y, 1, 0}}}
}

// Mat3RotX returns a rotation of deg degrees about the X axis.
func Mat3RotX(deg float32) Mat3 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat3{[3]lanes{{1, 0, 0, 0}, {0, c, s, 0}, {0, -s, c, 0}}}
}

// Mat3RotY returns a rotation of deg degrees about the Y axis.
func Mat3RotY(deg float32) Mat3 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat3{[3]lanes{{c, 0, -s, 0}, {0, 1, 0, 0}, {s, 0, c, 0}}}
}

// Mat3RotZ returns a rotation of deg degrees about the Z axis.
func Mat3RotZ(deg float32) Mat3 {
	s, c := ops.SinCos(ops.DegToRad(deg))
	return Mat3{[3]lanes{{c, s, 0, 0}, {-s, c, 0, 0}, {0, 0, 1, 0}}}
}

// Element returns the element at row r, column c.
func (a Mat3) Element(r, c int) float32 {
	ops.Assert(c < 3, "simd: Mat3 column out of range")
	return a.r[r][c]
}

// SetElement sets the element at row r, column c.
func (a *Mat3) SetElement(r, c int, v float32) {
	ops.Assert(c < 3, "simd: Mat3 column out of range")
	a.r[r][c] = v
}

// Row returns row r.
func (a Mat3) Row(r int) Vec3 { return Vec3{a.r[r]} }

// SetRow replaces row r.
func (a *Mat3) SetRow(r int, v Vec3) { a.r[r] = v.r }

// Col returns column c.
func (a Mat3) Col(c int) Vec3 { return a.Transpose().Row(c) }

// SetCol replaces column c.
func (a *Mat3) SetCol(c int, v Vec3) {
	for r := 0; r < 3; r++ {
		a.r[r][c] = v.r[r]
	}
}

// Add returns a + b.
func (a Mat3) Add(b Mat3) Mat3 {
	for i := range a.r {
		a.r[i] = a.r[i].add(b.r[i])
	}
	return a
}

// Sub returns a - b.
func (a Mat3) Sub(b Mat3) Mat3 {
	for i := range a.r {
		a.r[i] = a.r[i].sub(b.r[i])
	}
	return a
}

// Mul returns the matrix product a * b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	mulRows(out.r[:], a.r[:], b.r[:])
	return out
}

// Scale multiplies every element by k.
func (a Mat3) Scale(k float32) Mat3 {
	s := splat(k)
	for i := range a.r {
		a.r[i] = a.r[i].mul(s).keep(maskXYZ)
	}
	return a
}

// Div divides every element by k.
func (a Mat3) Div(k float32) Mat3 {
	s := splat(k)
	for i := range a.r {
		a.r[i] = a.r[i].div(s).keep(maskXYZ)
	}
	return a
}

// MulVec returns the column vector product a * v.
func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{colTimes(a.r[:], v.r, maskXYZ)}
}

// Transpose returns the transpose.
func (a Mat3) Transpose() Mat3 {
	var t Mat3
	transposeRows(t.r[:], a.r[:])
	return t
}

// Determinant returns the determinant.
func (a Mat3) Determinant() float32 {
	return det3(a.r[:])
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
	var inv Mat3
	if err := inverseRows(inv.r[:], a.r[:]); err != nil {
		return Mat3{}, err
	}
	return inv, nil
}

// IsIdentity reports whether every element is within FloatEpsilon of the identity.
func (a Mat3) IsIdentity() bool { return rowsIdentity(a.r[:]) }

// Equal compares elements with a relative FloatEpsilon tolerance.
func (a Mat3) Equal(b Mat3) bool { return rowsEqual(a.r[:], b.r[:], ops.Equal32) }

// Compare reports whether every element differs by at most tol.
func (a Mat3) Compare(b Mat3, tol float32) bool {
	return rowsEqual(a.r[:], b.r[:], within(tol))
}

// Array returns the elements in row-major order.
func (a Mat3) Array() [9]float32 {
	var out [9]float32
	for i := range a.r {
		copy(out[i*3:], a.r[i][:3])
	}
	return out
}
