package shapes

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math"

// ComputeTangents recomputes every vertex tangent from texture coordinate
// deltas, orthogonalized against the vertex normal. Tangent.w receives the
// bitangent handedness. Vertices whose triangles have degenerate UVs keep
// their existing tangent.
func ComputeTangents(s *Shape) {
	tan := make([]math.Vec3, len(s.Vertices))
	bitan := make([]math.Vec3, len(s.Vertices))

	for _, tri := range s.Triangles() {
		a, b, c := s.Vertices[tri.A], s.Vertices[tri.B], s.Vertices[tri.C]
		e1 := b.Position.XYZ().Sub(a.Position.XYZ())
		e2 := c.Position.XYZ().Sub(a.Position.XYZ())
		d1 := b.TexCoord.Sub(a.TexCoord)
		d2 := c.TexCoord.Sub(a.TexCoord)

		det := d1.X()*d2.Y() - d2.X()*d1.Y()
		if det == 0 {
			continue
		}
		r := 1 / det
		t := e1.Scale(d2.Y()).Sub(e2.Scale(d1.Y())).Scale(r)
		bt := e2.Scale(d1.X()).Sub(e1.Scale(d2.X())).Scale(r)
		for _, i := range [3]uint32{tri.A, tri.B, tri.C} {
			tan[i].AddAssign(t)
			bitan[i].AddAssign(bt)
		}
	}

	for i := range s.Vertices {
		n := s.Vertices[i].Normal.XYZ()
		// Gram-Schmidt
		t, err := tan[i].Sub(n.Scale(n.Dot(tan[i]))).NormalizeChecked()
		if err != nil {
			continue
		}
		w := float32(1)
		if n.Cross(t).Dot(bitan[i]) < 0 {
			w = -1
		}
		s.Vertices[i].Tangent = math.Vec4FromVec3(t, w)
	}
}
