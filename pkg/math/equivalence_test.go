package math_test

import (
	"math/rand"
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/scalar"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math/simd"
)

// Both backends must produce the same results for the same inputs.

func closeTo(a, b []float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		m := a[i]
		if m < 0 {
			m = -m
		}
		if d > 1e-4*(1+m) {
			return false
		}
	}
	return true
}

func randVals(r *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = r.Float32()*20 - 10
	}
	return out
}

func mats(r *rand.Rand) (scalar.Mat4, simd.Mat4) {
	v := randVals(r, 16)
	for i := range v {
		v[i] /= 10
	}
	row := func(i int) (scalar.Vec4, simd.Vec4) {
		return scalar.NewVec4(v[i], v[i+1], v[i+2], v[i+3]), simd.NewVec4(v[i], v[i+1], v[i+2], v[i+3])
	}
	s0, d0 := row(0)
	s1, d1 := row(4)
	s2, d2 := row(8)
	s3, d3 := row(12)
	return scalar.NewMat4(s0, s1, s2, s3), simd.NewMat4(d0, d1, d2, d3)
}

func TestBackendsAgreeOnVectors(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := randVals(r, 6)
		sa, sb := scalar.NewVec3(v[0], v[1], v[2]), scalar.NewVec3(v[3], v[4], v[5])
		da, db := simd.NewVec3(v[0], v[1], v[2]), simd.NewVec3(v[3], v[4], v[5])

		sc, dc := sa.Cross(sb).Array(), da.Cross(db).Array()
		if !closeTo(sc[:], dc[:]) {
			t.Fatalf("Cross: scalar %v, simd %v", sc, dc)
		}
		sn, dn := sa.Normalize().Array(), da.Normalize().Array()
		if !closeTo(sn[:], dn[:]) {
			t.Fatalf("Normalize: scalar %v, simd %v", sn, dn)
		}
		if !closeTo([]float32{sa.Dot(sb)}, []float32{da.Dot(db)}) {
			t.Fatalf("Dot: scalar %v, simd %v", sa.Dot(sb), da.Dot(db))
		}
	}
}

func TestBackendsAgreeOnMatrices(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		sa, da := mats(r)
		sb, db := mats(r)

		sp, dp := sa.Mul(sb).Array(), da.Mul(db).Array()
		if !closeTo(sp[:], dp[:]) {
			t.Fatalf("Mul: scalar %v, simd %v", sp, dp)
		}
		st, dt := sa.Transpose().Array(), da.Transpose().Array()
		if !closeTo(st[:], dt[:]) {
			t.Fatalf("Transpose: scalar %v, simd %v", st, dt)
		}
		if !closeTo([]float32{sa.Determinant()}, []float32{da.Determinant()}) {
			t.Fatalf("Determinant: scalar %v, simd %v", sa.Determinant(), da.Determinant())
		}
		if det := sa.Determinant(); det > 0.05 || det < -0.05 {
			si, di := sa.Inverse().Array(), da.Inverse().Array()
			if !closeTo(si[:], di[:]) {
				t.Fatalf("Inverse: scalar %v, simd %v", si, di)
			}
		}
		v := randVals(r, 4)
		sv := sa.MulVec(scalar.NewVec4(v[0], v[1], v[2], v[3])).Array()
		dv := da.MulVec(simd.NewVec4(v[0], v[1], v[2], v[3])).Array()
		if !closeTo(sv[:], dv[:]) {
			t.Fatalf("MulVec: scalar %v, simd %v", sv, dv)
		}
	}
}

func TestBackendsAgreeOnBuilders(t *testing.T) {
	pairs := []struct {
		name string
		s    scalar.Mat4
		d    simd.Mat4
	}{
		{"perspective", scalar.Mat4PerspectiveLH(60, 16.0/9, 0.1, 100), simd.Mat4PerspectiveLH(60, 16.0/9, 0.1, 100)},
		{"orthographic", scalar.Mat4OrthographicLH(40, 20, 1, 50), simd.Mat4OrthographicLH(40, 20, 1, 50)},
		{"off-center", scalar.Mat4OrthographicOffCenterLH(-3, 5, -2, 7, 1, 9), simd.Mat4OrthographicOffCenterLH(-3, 5, -2, 7, 1, 9)},
		{"rotx", scalar.Mat4RotX(33), simd.Mat4RotX(33)},
		{"roty", scalar.Mat4RotY(-71), simd.Mat4RotY(-71)},
		{"rotz", scalar.Mat4RotZ(140), simd.Mat4RotZ(140)},
		{"translate", scalar.Mat4Translate(1, -2, 3), simd.Mat4Translate(1, -2, 3)},
		{"quat", scalar.QuatRotationXYZ(50, 1, 2, 3).ToMat4(), simd.QuatRotationXYZ(50, 1, 2, 3).ToMat4()},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			s, d := p.s.Array(), p.d.Array()
			if !closeTo(s[:], d[:]) {
				t.Errorf("scalar %v, simd %v", s, d)
			}
		})
	}
}

func TestBackendsAgreeOnQuaternions(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		v := randVals(r, 8)
		sa := scalar.QuatRotationXYZ(v[0]*18, v[1], v[2], v[3])
		da := simd.QuatRotationXYZ(v[0]*18, v[1], v[2], v[3])
		sb := scalar.NewQuat(v[4], v[5], v[6], v[7])
		db := simd.NewQuat(v[4], v[5], v[6], v[7])

		sm, dm := sa.Mul(sb), da.Mul(db)
		if !closeTo([]float32{sm.X(), sm.Y(), sm.Z(), sm.W()}, []float32{dm.X(), dm.Y(), dm.Z(), dm.W()}) {
			t.Fatalf("Mul: scalar %v, simd %v", sm, dm)
		}
		sr := sa.RotateVec3(scalar.NewVec3(v[4], v[5], v[6])).Array()
		dr := da.RotateVec3(simd.NewVec3(v[4], v[5], v[6])).Array()
		if !closeTo(sr[:], dr[:]) {
			t.Fatalf("RotateVec3: scalar %v, simd %v", sr, dr)
		}
	}
}

func small(r *rand.Rand, n int) []float32 {
	v := randVals(r, n)
	for i := range v {
		v[i] /= 10
	}
	return v
}

func mat2s(r *rand.Rand) (scalar.Mat2, simd.Mat2) {
	v := small(r, 4)
	return scalar.NewMat2(scalar.NewVec2(v[0], v[1]), scalar.NewVec2(v[2], v[3])),
		simd.NewMat2(simd.NewVec2(v[0], v[1]), simd.NewVec2(v[2], v[3]))
}

func mat3s(r *rand.Rand) (scalar.Mat3, simd.Mat3) {
	v := small(r, 9)
	return scalar.NewMat3(
			scalar.NewVec3(v[0], v[1], v[2]),
			scalar.NewVec3(v[3], v[4], v[5]),
			scalar.NewVec3(v[6], v[7], v[8]),
		), simd.NewMat3(
			simd.NewVec3(v[0], v[1], v[2]),
			simd.NewVec3(v[3], v[4], v[5]),
			simd.NewVec3(v[6], v[7], v[8]),
		)
}

func TestBackendsAgreeOnMat2(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		sa, da := mat2s(r)
		sb, db := mat2s(r)

		sp, dp := sa.Mul(sb).Array(), da.Mul(db).Array()
		if !closeTo(sp[:], dp[:]) {
			t.Fatalf("Mul: scalar %v, simd %v", sp, dp)
		}
		st, dt := sa.Transpose().Array(), da.Transpose().Array()
		if !closeTo(st[:], dt[:]) {
			t.Fatalf("Transpose: scalar %v, simd %v", st, dt)
		}
		if !closeTo([]float32{sa.Determinant()}, []float32{da.Determinant()}) {
			t.Fatalf("Determinant: scalar %v, simd %v", sa.Determinant(), da.Determinant())
		}
		if det := sa.Determinant(); det > 0.05 || det < -0.05 {
			si, di := sa.Inverse().Array(), da.Inverse().Array()
			if !closeTo(si[:], di[:]) {
				t.Fatalf("Inverse: scalar %v, simd %v", si, di)
			}
		}

		v := randVals(r, 2)
		sv := sa.MulVec(scalar.NewVec2(v[0], v[1])).Array()
		dv := da.MulVec(simd.NewVec2(v[0], v[1])).Array()
		if !closeTo(sv[:], dv[:]) {
			t.Fatalf("MulVec: scalar %v, simd %v", sv, dv)
		}
		sr := scalar.NewVec2(v[0], v[1]).MulMat2(sa).Array()
		dr := simd.NewVec2(v[0], v[1]).MulMat2(da).Array()
		if !closeTo(sr[:], dr[:]) {
			t.Fatalf("MulMat2: scalar %v, simd %v", sr, dr)
		}
	}
}

func TestBackendsAgreeOnMat3(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		sa, da := mat3s(r)
		sb, db := mat3s(r)

		sp, dp := sa.Mul(sb).Array(), da.Mul(db).Array()
		if !closeTo(sp[:], dp[:]) {
			t.Fatalf("Mul: scalar %v, simd %v", sp, dp)
		}
		st, dt := sa.Transpose().Array(), da.Transpose().Array()
		if !closeTo(st[:], dt[:]) {
			t.Fatalf("Transpose: scalar %v, simd %v", st, dt)
		}
		// The padding lane must not leak into a row after two transposes.
		if tt := da.Transpose().Transpose(); !tt.Equal(da) {
			t.Fatalf("simd Transpose twice: got %v, want %v", tt, da)
		}
		if !closeTo([]float32{sa.Determinant()}, []float32{da.Determinant()}) {
			t.Fatalf("Determinant: scalar %v, simd %v", sa.Determinant(), da.Determinant())
		}
		if det := sa.Determinant(); det > 0.05 || det < -0.05 {
			si, di := sa.Inverse().Array(), da.Inverse().Array()
			if !closeTo(si[:], di[:]) {
				t.Fatalf("Inverse: scalar %v, simd %v", si, di)
			}
		}

		v := randVals(r, 3)
		sv := sa.MulVec(scalar.NewVec3(v[0], v[1], v[2])).Array()
		dv := da.MulVec(simd.NewVec3(v[0], v[1], v[2])).Array()
		if !closeTo(sv[:], dv[:]) {
			t.Fatalf("MulVec: scalar %v, simd %v", sv, dv)
		}
		sr := scalar.NewVec3(v[0], v[1], v[2]).MulMat3(sa).Array()
		dr := simd.NewVec3(v[0], v[1], v[2]).MulMat3(da).Array()
		if !closeTo(sr[:], dr[:]) {
			t.Fatalf("MulMat3: scalar %v, simd %v", sr, dr)
		}
	}
}

func TestBackendsAgreeOnRowVectorProducts(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		sm, dm := mats(r)
		v := randVals(r, 4)

		sr := scalar.NewVec4(v[0], v[1], v[2], v[3]).MulMat4(sm).Array()
		dr := simd.NewVec4(v[0], v[1], v[2], v[3]).MulMat4(dm).Array()
		if !closeTo(sr[:], dr[:]) {
			t.Fatalf("MulMat4: scalar %v, simd %v", sr, dr)
		}
		sp := sm.TransformPoint(scalar.NewVec3(v[0], v[1], v[2])).Array()
		dp := dm.TransformPoint(simd.NewVec3(v[0], v[1], v[2])).Array()
		if !closeTo(sp[:], dp[:]) {
			t.Fatalf("TransformPoint: scalar %v, simd %v", sp, dp)
		}
	}
}

func TestBackendsAgreeOnVec2AndVec4(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := randVals(r, 8)

		s2, d2 := scalar.NewVec2(v[0], v[1]), simd.NewVec2(v[0], v[1])
		o2, e2 := scalar.NewVec2(v[2], v[3]), simd.NewVec2(v[2], v[3])
		if !closeTo([]float32{s2.Length(), s2.Dot(o2)}, []float32{d2.Length(), d2.Dot(e2)}) {
			t.Fatalf("Vec2 Length/Dot: scalar %v %v, simd %v %v", s2.Length(), s2.Dot(o2), d2.Length(), d2.Dot(e2))
		}
		sn2, dn2 := s2.Normalize().Array(), d2.Normalize().Array()
		if !closeTo(sn2[:], dn2[:]) {
			t.Fatalf("Vec2 Normalize: scalar %v, simd %v", sn2, dn2)
		}

		s4, d4 := scalar.NewVec4(v[0], v[1], v[2], v[3]), simd.NewVec4(v[0], v[1], v[2], v[3])
		o4, e4 := scalar.NewVec4(v[4], v[5], v[6], v[7]), simd.NewVec4(v[4], v[5], v[6], v[7])
		if !closeTo([]float32{s4.Length(), s4.Dot(o4)}, []float32{d4.Length(), d4.Dot(e4)}) {
			t.Fatalf("Vec4 Length/Dot: scalar %v %v, simd %v %v", s4.Length(), s4.Dot(o4), d4.Length(), d4.Dot(e4))
		}
		sn4, dn4 := s4.Normalize().Array(), d4.Normalize().Array()
		if !closeTo(sn4[:], dn4[:]) {
			t.Fatalf("Vec4 Normalize: scalar %v, simd %v", sn4, dn4)
		}
	}
}

func TestBackendsAgreeOnQuatOps(t *testing.T) {
	quatArray := func(x, y, z, w float32) []float32 { return []float32{x, y, z, w} }

	r := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		v := randVals(r, 8)
		sa := scalar.QuatRotationXYZ(v[0]*18, v[1], v[2], v[3])
		da := simd.QuatRotationXYZ(v[0]*18, v[1], v[2], v[3])
		sb := scalar.NewQuat(v[4], v[5], v[6], v[7])
		db := simd.NewQuat(v[4], v[5], v[6], v[7])

		si, di := sb.Inverse(), db.Inverse()
		if !closeTo(quatArray(si.X(), si.Y(), si.Z(), si.W()), quatArray(di.X(), di.Y(), di.Z(), di.W())) {
			t.Fatalf("Inverse: scalar %v, simd %v", si, di)
		}
		if !closeTo([]float32{sa.Dot(sb), sb.Length()}, []float32{da.Dot(db), db.Length()}) {
			t.Fatalf("Dot/Length: scalar %v %v, simd %v %v", sa.Dot(sb), sb.Length(), da.Dot(db), db.Length())
		}
		sm, dm := sa.ToMat4().Array(), da.ToMat4().Array()
		if !closeTo(sm[:], dm[:]) {
			t.Fatalf("ToMat4: scalar %v, simd %v", sm, dm)
		}
		sr := sa.RotateVec4(scalar.NewVec4(v[4], v[5], v[6], 1)).Array()
		dr := da.RotateVec4(simd.NewVec4(v[4], v[5], v[6], 1)).Array()
		if !closeTo(sr[:], dr[:]) {
			t.Fatalf("RotateVec4: scalar %v, simd %v", sr, dr)
		}
		ss, ds := sa.Slerp(sb.Normalize(), 0.3), da.Slerp(db.Normalize(), 0.3)
		if !closeTo(quatArray(ss.X(), ss.Y(), ss.Z(), ss.W()), quatArray(ds.X(), ds.Y(), ds.Z(), ds.W())) {
			t.Fatalf("Slerp: scalar %v, simd %v", ss, ds)
		}
	}
}
