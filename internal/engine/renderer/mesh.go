package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Vertex attribute locations shared by every shader.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTangent  = 2
	AttribTexCoord = 3
)

// Mesh is a shape uploaded to the GPU with its world transform.
type Mesh struct {
	Name  string
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	world math.Mat4
}

// NewMesh uploads s as interleaved vertices and 32-bit indices.
func NewMesh(s *shapes.Shape) (*Mesh, error) {
	if len(s.Vertices) == 0 || len(s.Indices) == 0 {
		return nil, fmt.Errorf("renderer: shape %q is empty", s.Name)
	}
	vertices := s.Interleave()

	m := &Mesh{
		Name:  s.Name,
		count: int32(len(s.Indices)),
		world: math.Mat4Identity(),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(s.Indices)*4, unsafe.Pointer(&s.Indices[0]), gl.STATIC_DRAW)

	attrib := func(loc uint32, size int32, offset int) {
		gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, shapes.Stride, uintptr(offset*4))
		gl.EnableVertexAttribArray(loc)
	}
	attrib(AttribPosition, 3, shapes.PositionOffset)
	attrib(AttribNormal, 3, shapes.NormalOffset)
	attrib(AttribTangent, 4, shapes.TangentOffset)
	attrib(AttribTexCoord, 2, shapes.TexCoordOffset)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

// World returns the model matrix.
func (m *Mesh) World() math.Mat4 { return m.world }

// SetWorld sets the model matrix.
func (m *Mesh) SetWorld(w math.Mat4) { m.world = w }

// Draw issues the indexed draw call. The caller binds the program and sets
// its uniforms.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
