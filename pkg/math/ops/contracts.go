package ops

// Vector is the surface shared by every vector type of both backends.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Neg() V
	Mul(V) V
	Scale(float32) V
	Div(float32) V
	Dot(V) float32
	Length() float32
	LengthSquared() float32
	Normalize() V
	NormalizeChecked() (V, error)
	Distance(V) float32
	Equal(V) bool
	Compare(V, float32) bool
}

// Vec3Ops adds the 3D-only operations.
type Vec3Ops[V any] interface {
	Vector[V]
	Cross(V) V
	X() float32
	Y() float32
	Z() float32
}

// Matrix is the surface shared by every square matrix type. V is the vector
// type matching the matrix dimension.
type Matrix[M, V any] interface {
	Add(M) M
	Sub(M) M
	Mul(M) M
	Scale(float32) M
	Div(float32) M
	MulVec(V) V
	Transpose() M
	Determinant() float32
	Inverse() M
	InverseChecked() (M, error)
	IsIdentity() bool
	Equal(M) bool
	Element(r, c int) float32
}

// QuatOps is the quaternion surface.
type QuatOps[Q, V3, V4, M4 any] interface {
	Mul(Q) Q
	Conjugate() Q
	Inverse() Q
	Length() float32
	Normalize() Q
	Dot(Q) float32
	RotateVec3(V3) V3
	RotateVec4(V4) V4
	RotateVec3Checked(V3) (V3, error)
	ToMat4() M4
	IsIdentity() bool
	Equal(Q) bool
}
