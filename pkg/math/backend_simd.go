//go:build simd

package math

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/simd"

// Backend names the implementation selected at build time.
const Backend = "simd"

type (
	Vec2 = simd.Vec2
	Vec3 = simd.Vec3
	Vec4 = simd.Vec4
	Mat2 = simd.Mat2
	Mat3 = simd.Mat3
	Mat4 = simd.Mat4
	Quat = simd.Quat
)

// The constructors and builders below forward to package simd, which
// documents them.
func NewVec2(x, y float32) Vec2           { return simd.NewVec2(x, y) }
func NewVec3(x, y, z float32) Vec3        { return simd.NewVec3(x, y, z) }
func NewVec4(x, y, z, w float32) Vec4     { return simd.NewVec4(x, y, z, w) }
func Vec4FromVec3(v Vec3, w float32) Vec4 { return simd.Vec4FromVec3(v, w) }
func Vec3Up() Vec3                        { return simd.Vec3Up() }
func ScaleVec2(k float32, v Vec2) Vec2    { return simd.ScaleVec2(k, v) }
func ScaleVec3(k float32, v Vec3) Vec3    { return simd.ScaleVec3(k, v) }
func ScaleVec4(k float32, v Vec4) Vec4    { return simd.ScaleVec4(k, v) }
func NewMat2(r0, r1 Vec2) Mat2            { return simd.NewMat2(r0, r1) }
func NewMat3(r0, r1, r2 Vec3) Mat3        { return simd.NewMat3(r0, r1, r2) }
func NewMat4(r0, r1, r2, r3 Vec4) Mat4    { return simd.NewMat4(r0, r1, r2, r3) }
func Mat2Identity() Mat2                  { return simd.Mat2Identity() }
func Mat2Scale(x, y float32) Mat2         { return simd.Mat2Scale(x, y) }
func Mat2Rotate(deg float32) Mat2         { return simd.Mat2Rotate(deg) }
func Mat3Identity() Mat3                  { return simd.Mat3Identity() }
func Mat3Scale(x, y, z float32) Mat3      { return simd.Mat3Scale(x, y, z) }
func Mat3Translate(x, y float32) Mat3     { return simd.Mat3Translate(x, y) }
func Mat3RotX(deg float32) Mat3           { return simd.Mat3RotX(deg) }
func Mat3RotY(deg float32) Mat3           { return simd.Mat3RotY(deg) }
func Mat3RotZ(deg float32) Mat3           { return simd.Mat3RotZ(deg) }
func Mat4Identity() Mat4                  { return simd.Mat4Identity() }
func Mat4Scale(x, y, z float32) Mat4      { return simd.Mat4Scale(x, y, z) }
func Mat4Translate(x, y, z float32) Mat4  { return simd.Mat4Translate(x, y, z) }
func Mat4RotX(deg float32) Mat4           { return simd.Mat4RotX(deg) }
func Mat4RotY(deg float32) Mat4           { return simd.Mat4RotY(deg) }
func Mat4RotZ(deg float32) Mat4           { return simd.Mat4RotZ(deg) }
func Mat4PerspectiveLH(fovY, aspect, near, far float32) Mat4 {
	return simd.Mat4PerspectiveLH(fovY, aspect, near, far)
}
func Mat4OrthographicLH(width, height, near, far float32) Mat4 {
	return simd.Mat4OrthographicLH(width, height, near, far)
}
func Mat4OrthographicOffCenterLH(left, right, bottom, top, near, far float32) Mat4 {
	return simd.Mat4OrthographicOffCenterLH(left, right, bottom, top, near, far)
}
func NewQuat(x, y, z, w float32) Quat           { return simd.NewQuat(x, y, z, w) }
func QuatIdentity() Quat                        { return simd.QuatIdentity() }
func QuatRotation(deg float32, axis Vec3) Quat  { return simd.QuatRotation(deg, axis) }
func QuatRotationXYZ(deg, x, y, z float32) Quat { return simd.QuatRotationXYZ(deg, x, y, z) }
func QuatRotationChecked(deg float32, axis Vec3) (Quat, error) {
	return simd.QuatRotationChecked(deg, axis)
}
