package scalar

import (
	"errors"
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"
)

const tol = 1e-5

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !got.Equal(NewVec3(5, 7, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); !got.Equal(NewVec3(3, 3, 3)) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Neg(); !got.Equal(NewVec3(-1, -2, -3)) {
		t.Errorf("Neg: got %v", got)
	}
	if got := a.Mul(b); !got.Equal(NewVec3(4, 10, 18)) {
		t.Errorf("Mul: got %v", got)
	}
	if got := b.Div(2); !got.Equal(NewVec3(2, 2.5, 3)) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v, want 32", got)
	}
}

func TestScaleCommutes(t *testing.T) {
	v := NewVec3(1, -2, 3)
	if !ScaleVec3(2.5, v).Equal(v.Scale(2.5)) {
		t.Error("k*v and v*k differ for Vec3")
	}
	w := NewVec4(1, -2, 3, 4)
	if !ScaleVec4(-3, w).Equal(w.Scale(-3)) {
		t.Error("k*v and v*k differ for Vec4")
	}
	u := NewVec2(1, -2)
	if !ScaleVec2(0.5, u).Equal(u.Scale(0.5)) {
		t.Error("k*v and v*k differ for Vec2")
	}
}

func TestVec3AssignForms(t *testing.T) {
	v := NewVec3(1, 1, 1)
	v.AddAssign(NewVec3(1, 2, 3))
	v.SubAssign(NewVec3(1, 1, 1))
	v.MulAssign(NewVec3(2, 2, 2))
	v.ScaleAssign(3)
	v.DivAssign(6)
	if !v.Equal(NewVec3(1, 2, 3)) {
		t.Errorf("assign chain: got %v, want (1, 2, 3)", v)
	}

	v.SetX(7)
	v.SetZ(9)
	if v.X() != 7 || v.Y() != 2 || v.Z() != 9 {
		t.Errorf("setters: got %v", v)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if got := x.Cross(y); !got.Equal(NewVec3(0, 0, 1)) {
		t.Errorf("X cross Y: got %v, want (0, 0, 1)", got)
	}
	if got := y.Cross(x); !got.Equal(NewVec3(0, 0, -1)) {
		t.Errorf("Y cross X: got %v, want (0, 0, -1)", got)
	}

	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 0.5, 2)
	c := a.Cross(b)
	if abs(c.Dot(a)) > tol || abs(c.Dot(b)) > tol {
		t.Errorf("cross product not perpendicular: %v", c)
	}
}

func TestNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if !v.Compare(NewVec3(0.6, 0.8, 0), tol) {
		t.Errorf("Normalize: got %v, want (0.6, 0.8, 0)", v)
	}
	if abs(v.Length()-1) > tol {
		t.Errorf("Normalize length: got %v", v.Length())
	}

	w := NewVec4(1, 1, 1, 1).Normalize()
	if !w.Compare(NewVec4(0.5, 0.5, 0.5, 0.5), tol) {
		t.Errorf("Vec4 Normalize: got %v", w)
	}
}

func TestNormalizeCheckedZero(t *testing.T) {
	if _, err := (Vec3{}).NormalizeChecked(); !errors.Is(err, ops.ErrDegenerateVector) {
		t.Errorf("Vec3 zero: got err %v, want ErrDegenerateVector", err)
	}
	if _, err := (Vec2{}).NormalizeChecked(); !errors.Is(err, ops.ErrDegenerateVector) {
		t.Errorf("Vec2 zero: got err %v", err)
	}
	if _, err := (Vec4{}).NormalizeChecked(); !errors.Is(err, ops.ErrDegenerateVector) {
		t.Errorf("Vec4 zero: got err %v", err)
	}
	if v, err := NewVec2(0, 2).NormalizeChecked(); err != nil || !v.Equal(NewVec2(0, 1)) {
		t.Errorf("Vec2 (0,2): got %v, %v", v, err)
	}
}

func TestDistance(t *testing.T) {
	a := NewVec3(1, 1, 1)
	b := NewVec3(4, 5, 1)
	if got := a.Distance(b); abs(got-5) > tol {
		t.Errorf("Distance: got %v, want 5", got)
	}
}

func TestVec4FromVec3(t *testing.T) {
	v := Vec4FromVec3(NewVec3(1, 2, 3), 1)
	if v.W() != 1 || !v.XYZ().Equal(NewVec3(1, 2, 3)) {
		t.Errorf("Vec4FromVec3: got %v", v)
	}
}

func TestEqualIsRelative(t *testing.T) {
	big := NewVec3(1e6, 0, 0)
	if !big.Equal(NewVec3(1e6+0.05, 0, 0)) {
		t.Error("large magnitudes should compare relatively")
	}
	if NewVec3(0, 0, 0).Equal(NewVec3(1e-9, 0, 0)) {
		t.Error("relative comparison near zero should be strict")
	}
	if !NewVec3(0, 0, 0).Compare(NewVec3(1e-9, 0, 0), 1e-6) {
		t.Error("Compare with tolerance should accept tiny differences")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestCrossAntiCommutes(t *testing.T) {
	a := NewVec3(0.5, -3, 2)
	b := NewVec3(7, 1, -1)
	if !a.Cross(b).Equal(b.Cross(a).Neg()) {
		t.Errorf("a x b = %v, -(b x a) = %v", a.Cross(b), b.Cross(a).Neg())
	}
}
