package scalar

import (
	"errors"
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"
)

func TestQuatIdentityRotation(t *testing.T) {
	q := QuatIdentity()
	v := NewVec3(1, 2, 3)
	if got := q.RotateVec3(v); !got.Equal(v) {
		t.Errorf("identity rotate: got %v", got)
	}
	if !q.IsIdentity() {
		t.Error("QuatIdentity().IsIdentity() = false")
	}
	if !QuatRotation(0, NewVec3(0, 1, 0)).IsIdentity() {
		t.Error("zero-angle rotation should be identity")
	}
}

func TestQuatRotateVec3(t *testing.T) {
	q := QuatRotation(90, NewVec3(0, 1, 0))
	got := q.RotateVec3(NewVec3(1, 0, 0))
	if !got.Compare(NewVec3(0, 0, -1), tol) {
		t.Errorf("90 about Y: got %v, want (0, 0, -1)", got)
	}

	// the axis does not need to be normalized
	q = QuatRotation(90, NewVec3(0, 0, 5))
	got = q.RotateVec3(NewVec3(1, 0, 0))
	if !got.Compare(NewVec3(0, 1, 0), tol) {
		t.Errorf("90 about Z: got %v, want (0, 1, 0)", got)
	}
}

func TestQuatMatchesMatrixRotation(t *testing.T) {
	v := NewVec3(0.3, -1, 2)
	q := QuatRotation(37, NewVec3(1, 0, 0))
	fromQuat := q.RotateVec3(v)
	fromMat := v.MulMat3(Mat3RotX(37))
	if !fromQuat.Compare(fromMat, tol) {
		t.Errorf("quat %v, matrix %v", fromQuat, fromMat)
	}
}

func TestQuatToMat4(t *testing.T) {
	q := QuatRotation(120, NewVec3(1, 1, 1))
	v := NewVec4(1, 2, 3, 1)
	byMat := q.ToMat4().MulVec(v)
	byQuat := q.RotateVec4(v)
	if !byMat.Compare(byQuat, tol) {
		t.Errorf("ToMat4 * v = %v, RotateVec4 = %v", byMat, byQuat)
	}
	// 120 degrees about (1,1,1) cycles the axes
	if !byQuat.Compare(NewVec4(3, 1, 2, 1), 1e-4) {
		t.Errorf("cycle: got %v, want (3, 1, 2, 1)", byQuat)
	}
}

func TestQuatRotateVec4KeepsW(t *testing.T) {
	q := QuatRotation(45, NewVec3(0, 1, 0))
	if got := q.RotateVec4(NewVec4(1, 0, 0, 0)).W(); got != 0 {
		t.Errorf("direction w: got %v", got)
	}
	if got := q.RotateVec4(NewVec4(1, 0, 0, 1)).W(); got != 1 {
		t.Errorf("point w: got %v", got)
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatRotation(90, NewVec3(0, 0, 1))
	b := QuatRotation(90, NewVec3(0, 1, 0))
	v := NewVec3(1, 0, 0)

	// a*b applies b first
	got := a.Mul(b).RotateVec3(v)
	want := a.RotateVec3(b.RotateVec3(v))
	if !got.Compare(want, tol) {
		t.Errorf("a*b: got %v, want %v", got, want)
	}

	c := a
	c.MulAssign(b)
	if !c.Equal(a.Mul(b)) {
		t.Error("MulAssign differs from Mul")
	}
}

func TestQuatInverse(t *testing.T) {
	q := QuatRotation(33, NewVec3(1, 2, 3))
	if !q.Mul(q.Inverse()).Compare(QuatIdentity(), tol) {
		t.Errorf("q * q^-1 = %v", q.Mul(q.Inverse()))
	}
	if !q.Inverse().Compare(q.Conjugate(), tol) {
		t.Error("unit quaternion inverse should equal the conjugate")
	}

	s := NewQuat(0, 0, 0, 2)
	if !s.Inverse().Equal(NewQuat(0, 0, 0, 0.5)) {
		t.Errorf("non-unit inverse: got %v", s.Inverse())
	}
}

func TestQuatDot(t *testing.T) {
	a := NewQuat(1, 2, 3, 4)
	b := NewQuat(5, 6, 7, 8)
	if got := a.Dot(b); got != 70 {
		t.Errorf("Dot: got %v, want 70", got)
	}
	// x*x + y*y + z*z*w*w binds the scalar terms into the z product.
	if misparsed := a.x*b.x + a.y*b.y + a.z*b.z*a.w*b.w; misparsed == a.Dot(b) {
		t.Errorf("Dot matches the precedence-bug form %v", misparsed)
	}
	if got := a.Length(); abs(got*got-30) > 1e-4 {
		t.Errorf("Length^2: got %v, want 30", got*got)
	}
}

func TestQuatCheckedErrors(t *testing.T) {
	if _, err := QuatRotationChecked(90, Vec3{}); !errors.Is(err, ops.ErrDegenerateVector) {
		t.Errorf("zero axis: got %v", err)
	}
	if _, err := NewQuat(0, 0, 0, 2).RotateVec3Checked(NewVec3(1, 0, 0)); !errors.Is(err, ops.ErrNonUnitQuaternion) {
		t.Errorf("non-unit rotate: got %v", err)
	}
	if _, err := QuatRotation(10, NewVec3(1, 0, 0)).RotateVec3Checked(NewVec3(1, 0, 0)); err != nil {
		t.Errorf("unit rotate: %v", err)
	}
}

func TestQuatSlerp(t *testing.T) {
	a := QuatIdentity()
	b := QuatRotation(90, NewVec3(0, 1, 0))
	mid := a.Slerp(b, 0.5)
	want := QuatRotation(45, NewVec3(0, 1, 0))
	if !mid.Compare(want, tol) {
		t.Errorf("Slerp 0.5: got %v, want %v", mid, want)
	}
	if !a.Slerp(b, 1).Compare(b, tol) {
		t.Error("Slerp 1 should reach the target")
	}
}

func TestQuatRotationPreservesLength(t *testing.T) {
	v := NewVec3(3, -4, 12)
	for _, deg := range []float32{0, 15, 90, 181, -270} {
		q := QuatRotationXYZ(deg, 1, -2, 0.5)
		if got := q.RotateVec3(v).Length(); abs(got-13) > 1e-4 {
			t.Errorf("deg %v: length %v, want 13", deg, got)
		}
	}
}
