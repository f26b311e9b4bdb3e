package math

import "testing"

var (
	sinkMat4 Mat4
	sinkVec4 Vec4
	sinkQuat Quat
)

func BenchmarkMat4Mul(b *testing.B) {
	a := World(NewVec3(2, 2, 2), QuatRotation(30, Vec3Up()), NewVec3(1, 2, 3))
	m := Mat4PerspectiveLH(60, 16.0/9.0, 0.1, 100)
	for i := 0; i < b.N; i++ {
		sinkMat4 = a.Mul(m)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	a := World(NewVec3(2, 2, 2), QuatRotation(30, Vec3Up()), NewVec3(1, 2, 3))
	for i := 0; i < b.N; i++ {
		sinkMat4 = a.Inverse()
	}
}

func BenchmarkVec4MulMat4(b *testing.B) {
	v := NewVec4(1, 2, 3, 1)
	m := Mat4RotY(45).Mul(Mat4Translate(1, 2, 3))
	for i := 0; i < b.N; i++ {
		sinkVec4 = v.MulMat4(m)
	}
}

func BenchmarkQuatMul(b *testing.B) {
	p := QuatRotation(30, Vec3Up())
	q := QuatRotation(45, NewVec3(1, 0, 0))
	for i := 0; i < b.N; i++ {
		sinkQuat = p.Mul(q)
	}
}
