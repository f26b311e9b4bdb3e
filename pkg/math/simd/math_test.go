package simd

import (
	"errors"
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"
)

const tol = 1e-5

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestVec3Cross(t *testing.T) {
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); !got.Equal(NewVec3(0, 0, 1)) {
		t.Errorf("X cross Y: got %v", got)
	}
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 0.5, 2)
	c := a.Cross(b)
	if abs(c.Dot(a)) > tol || abs(c.Dot(b)) > tol {
		t.Errorf("cross product not perpendicular: %v", c)
	}
}

func TestVecBasics(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if got := v.Length(); got != 5 {
		t.Errorf("Length: got %v", got)
	}
	if got := v.Normalize(); !got.Compare(NewVec3(0.6, 0.8, 0), tol) {
		t.Errorf("Normalize: got %v", got)
	}
	if _, err := (Vec3{}).NormalizeChecked(); !errors.Is(err, ops.ErrDegenerateVector) {
		t.Errorf("zero NormalizeChecked: %v", err)
	}
	if got := NewVec2(1, 2).Dot(NewVec2(3, 4)); got != 11 {
		t.Errorf("Vec2 Dot: got %v", got)
	}
	if got := NewVec4(1, 2, 3, 4).Neg(); !got.Equal(NewVec4(-1, -2, -3, -4)) {
		t.Errorf("Vec4 Neg: got %v", got)
	}
	if !ScaleVec3(2, v).Equal(v.Scale(2)) {
		t.Error("scalar multiplication should commute")
	}
}

func TestMatrices(t *testing.T) {
	m := NewMat4(
		NewVec4(2, 0, 1, 3),
		NewVec4(1, 3, 0, 1),
		NewVec4(0, 1, 4, 2),
		NewVec4(1, 2, 1, 5),
	)
	if got := m.Determinant(); abs(got-85) > 1e-4 {
		t.Errorf("Mat4 det: got %v, want 85", got)
	}
	if !m.Mul(m.Inverse()).Compare(Mat4Identity(), 1e-4) {
		t.Errorf("M * M^-1 = %v", m.Mul(m.Inverse()))
	}
	m3 := NewMat3(NewVec3(6, 1, 1), NewVec3(4, -2, 5), NewVec3(2, 8, 7))
	if got := m3.Determinant(); abs(got+306) > tol {
		t.Errorf("Mat3 det: got %v, want -306", got)
	}
	m2 := NewMat2(NewVec2(4, 7), NewVec2(2, 6))
	want := NewMat2(NewVec2(0.6, -0.7), NewVec2(-0.2, 0.4))
	if !m2.Inverse().Compare(want, tol) {
		t.Errorf("Mat2 inverse: got %v", m2.Inverse())
	}
	if got := (Mat4{}).Inverse(); got != (Mat4{}) {
		t.Errorf("singular inverse: got %v, want zero", got)
	}
	if got := Mat4RotY(90).TransformPoint(NewVec3(1, 0, 0)); !got.Compare(NewVec3(0, 0, -1), tol) {
		t.Errorf("RotY 90: got %v", got)
	}
	if got := Mat3Translate(2, 3).Transpose().Row(0); got != NewVec3(1, 0, 2) {
		t.Errorf("Mat3 transpose row 0: got %v", got)
	}
}

func TestQuatHamiltonProduct(t *testing.T) {
	a := NewQuat(1, 2, 3, 4)
	b := NewQuat(5, 6, 7, 8)
	// (i + 2j + 3k + 4)(5i + 6j + 7k + 8)
	want := NewQuat(24, 48, 48, -6)
	if got := a.Mul(b); !got.Equal(want) {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatRotation(90, NewVec3(0, 1, 0))
	if got := q.RotateVec3(NewVec3(1, 0, 0)); !got.Compare(NewVec3(0, 0, -1), tol) {
		t.Errorf("90 about Y: got %v", got)
	}
	v := NewVec4(1, 2, 3, 1)
	q = QuatRotation(120, NewVec3(1, 1, 1))
	if got := q.ToMat4().MulVec(v); !got.Compare(q.RotateVec4(v), tol) {
		t.Errorf("ToMat4 * v = %v, RotateVec4 = %v", got, q.RotateVec4(v))
	}
	if !q.Mul(q.Inverse()).Compare(QuatIdentity(), tol) {
		t.Error("q * q^-1 should be identity")
	}
}
