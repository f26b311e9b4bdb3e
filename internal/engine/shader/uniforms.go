package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// SetMat4 uploads a row-major matrix. GL stores matrices column-major, so
// the upload transposes; shaders multiply row vectors on the left
// (vec4(p, 1) * model * view * proj).
func SetMat4(loc int32, m math.Mat4) {
	a := m.F32()
	gl.UniformMatrix4fv(loc, 1, true, &a[0])
}

// SetMat4Array uploads ms to a mat4[] uniform.
func SetMat4Array(loc int32, ms []math.Mat4) {
	if len(ms) == 0 {
		return
	}
	flat := make([]float32, 0, 16*len(ms))
	for _, m := range ms {
		a := m.F32()
		flat = append(flat, a[:]...)
	}
	gl.UniformMatrix4fv(loc, int32(len(ms)), true, &flat[0])
}

// SetVec3 uploads a vec3 uniform.
func SetVec3(loc int32, v math.Vec3) {
	gl.Uniform3f(loc, v.X(), v.Y(), v.Z())
}

// SetVec4Array uploads packed vec4 data, four floats per element.
func SetVec4Array(loc int32, data []float32) {
	if len(data) < 4 {
		return
	}
	gl.Uniform4fv(loc, int32(len(data)/4), &data[0])
}

// SetFloat uploads a float uniform.
func SetFloat(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

// SetInt uploads an int or sampler uniform.
func SetInt(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}
