// Package shapes generates indexed triangle meshes for primitive shapes.
package shapes

import (
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Vertex is one mesh vertex. Position has w=1, Normal w=0, and Tangent.w
// holds the bitangent handedness (+1 or -1).
type Vertex struct {
	Position math.Vec4
	Normal   math.Vec4
	Tangent  math.Vec4
	TexCoord math.Vec2
}

// Triangle holds three indices into Shape.Vertices.
type Triangle struct {
	A, B, C uint32
}

// Shape is an indexed triangle list. Triangles are wound clockwise when seen
// from outside, the front-face convention of the left-handed pipeline.
type Shape struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Interleaved layout produced by Interleave, in float32 units.
const (
	PositionOffset = 0
	NormalOffset   = 3
	TangentOffset  = 6
	TexCoordOffset = 10
	FloatsPerVert  = 12

	// Stride is the byte size of one interleaved vertex.
	Stride = FloatsPerVert * 4
)

// addVertex appends a vertex and returns its index.
func (s *Shape) addVertex(pos, normal math.Vec3, tangent math.Vec3, uv math.Vec2) uint32 {
	s.Vertices = append(s.Vertices, Vertex{
		Position: math.Vec4FromVec3(pos, 1),
		Normal:   math.Vec4FromVec3(normal, 0),
		Tangent:  math.Vec4FromVec3(tangent, 1),
		TexCoord: uv,
	})
	return uint32(len(s.Vertices) - 1)
}

// addTriangle appends a triangle, flipping it if needed so its face normal
// agrees with the vertex normals.
func (s *Shape) addTriangle(a, b, c uint32) {
	pa := s.Vertices[a].Position.XYZ()
	pb := s.Vertices[b].Position.XYZ()
	pc := s.Vertices[c].Position.XYZ()
	n := s.Vertices[a].Normal.Add(s.Vertices[b].Normal).Add(s.Vertices[c].Normal).XYZ()
	if pb.Sub(pa).Cross(pc.Sub(pa)).Dot(n) < 0 {
		b, c = c, b
	}
	s.Indices = append(s.Indices, a, b, c)
}

// Triangles returns the index list grouped by triangle.
func (s *Shape) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(s.Indices)/3)
	for i := 0; i+2 < len(s.Indices); i += 3 {
		tris = append(tris, Triangle{s.Indices[i], s.Indices[i+1], s.Indices[i+2]})
	}
	return tris
}

// Bounds returns the axis-aligned box enclosing every vertex.
func (s *Shape) Bounds() AABB {
	var b AABB
	for i, v := range s.Vertices {
		p := v.Position.XYZ()
		if i == 0 {
			b = AABB{Min: p, Max: p}
			continue
		}
		b = b.Extend(p)
	}
	return b
}

// Interleave flattens the vertices into position(3) normal(3) tangent(4)
// texcoord(2) records for GPU upload.
func (s *Shape) Interleave() []float32 {
	out := make([]float32, 0, len(s.Vertices)*FloatsPerVert)
	for _, v := range s.Vertices {
		p, n, t := v.Position, v.Normal, v.Tangent
		out = append(out,
			p.X(), p.Y(), p.Z(),
			n.X(), n.Y(), n.Z(),
			t.X(), t.Y(), t.Z(), t.W(),
			v.TexCoord.X(), v.TexCoord.Y(),
		)
	}
	return out
}
