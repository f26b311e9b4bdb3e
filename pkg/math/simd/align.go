package simd

import "unsafe"

// Vec4Size is the size in bytes of one register-backed value.
const Vec4Size = 16

// registerAlign is the alignment packed loads and stores require.
const registerAlign = 16

// IsAligned reports whether p sits on a register boundary.
func IsAligned(p unsafe.Pointer) bool {
	return uintptr(p)%registerAlign == 0
}

// makeAligned returns a slice of n values of T starting on a register
// boundary. T must be a whole number of registers wide and contain no
// pointers.
func makeAligned[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	regs := int(size/Vec4Size)*n + 1
	buf := make([]lanes, regs)
	base := unsafe.Pointer(&buf[0])
	off := (registerAlign - uintptr(base)%registerAlign) % registerAlign
	return unsafe.Slice((*T)(unsafe.Add(base, off)), n)
}

// MakeVec4Slice allocates n zeroed Vec4 values on a 16-byte boundary.
func MakeVec4Slice(n int) []Vec4 {
	return makeAligned[Vec4](n)
}

// MakeVec3Slice allocates n zeroed Vec3 values on a 16-byte boundary.
func MakeVec3Slice(n int) []Vec3 {
	return makeAligned[Vec3](n)
}

// MakeMat4Slice allocates n zeroed Mat4 values on a 16-byte boundary.
func MakeMat4Slice(n int) []Mat4 {
	return makeAligned[Mat4](n)
}

// MakeQuatSlice allocates n zeroed quaternions on a 16-byte boundary.
func MakeQuatSlice(n int) []Quat {
	return makeAligned[Quat](n)
}
