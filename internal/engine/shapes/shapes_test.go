package shapes

import (
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func checkMesh(t *testing.T, s *Shape) {
	t.Helper()
	if len(s.Indices)%3 != 0 {
		t.Fatalf("%s: %d indices is not a triangle list", s.Name, len(s.Indices))
	}
	for _, idx := range s.Indices {
		if int(idx) >= len(s.Vertices) {
			t.Fatalf("%s: index %d out of range (%d vertices)", s.Name, idx, len(s.Vertices))
		}
	}
	for i, v := range s.Vertices {
		if abs(v.Normal.Length()-1) > 1e-4 {
			t.Errorf("%s: vertex %d normal not unit: %v", s.Name, i, v.Normal)
		}
		if v.Position.W() != 1 || v.Normal.W() != 0 {
			t.Errorf("%s: vertex %d has wrong w components", s.Name, i)
		}
	}
}

// checkOutward verifies that every non-degenerate triangle of a convex shape
// centred on the origin faces away from the origin.
func checkOutward(t *testing.T, s *Shape) {
	t.Helper()
	for i, tri := range s.Triangles() {
		a := s.Vertices[tri.A].Position.XYZ()
		b := s.Vertices[tri.B].Position.XYZ()
		c := s.Vertices[tri.C].Position.XYZ()
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Length() < 1e-6 {
			continue
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Errorf("%s: triangle %d faces inward", s.Name, i)
		}
	}
}

func TestPlane(t *testing.T) {
	s := Plane(4, 2, 3)
	checkMesh(t, s)
	if len(s.Vertices) != 16 || len(s.Indices) != 54 {
		t.Errorf("plane counts: %d vertices, %d indices", len(s.Vertices), len(s.Indices))
	}
	up := math.NewVec3(0, 1, 0)
	for i, tri := range s.Triangles() {
		a := s.Vertices[tri.A].Position.XYZ()
		n := s.Vertices[tri.B].Position.XYZ().Sub(a).Cross(s.Vertices[tri.C].Position.XYZ().Sub(a))
		if n.Dot(up) <= 0 {
			t.Errorf("triangle %d faces down", i)
		}
	}
	b := s.Bounds()
	if !b.Min.Equal(math.NewVec3(-2, 0, -1)) || !b.Max.Equal(math.NewVec3(2, 0, 1)) {
		t.Errorf("plane bounds: %v", b)
	}
}

func TestBox(t *testing.T) {
	s := Box(2, 4, 6)
	checkMesh(t, s)
	checkOutward(t, s)
	if len(s.Vertices) != 24 || len(s.Indices) != 36 {
		t.Errorf("box counts: %d vertices, %d indices", len(s.Vertices), len(s.Indices))
	}
	b := s.Bounds()
	if !b.Min.Equal(math.NewVec3(-1, -2, -3)) || !b.Max.Equal(math.NewVec3(1, 2, 3)) {
		t.Errorf("box bounds: %v", b)
	}
}

func TestSphere(t *testing.T) {
	s := Sphere(2, 16, 8)
	checkMesh(t, s)
	checkOutward(t, s)
	for i, v := range s.Vertices {
		if abs(v.Position.XYZ().Length()-2) > 1e-4 {
			t.Fatalf("vertex %d not on the sphere: %v", i, v.Position)
		}
		if abs(v.Tangent.XYZ().Dot(v.Normal.XYZ())) > 1e-4 {
			t.Fatalf("vertex %d tangent not perpendicular to normal", i)
		}
	}
	// two pole rows contribute one triangle per slice, the rest two
	if want := (8-2)*16*2*3 + 2*16*3; len(s.Indices) != want {
		t.Errorf("sphere indices: got %d, want %d", len(s.Indices), want)
	}
}

func TestCylinderAndCone(t *testing.T) {
	for _, s := range []*Shape{Cylinder(1, 3, 12), Cone(1, 2, 12)} {
		t.Run(s.Name, func(t *testing.T) {
			checkMesh(t, s)
			checkOutward(t, s)
			b := s.Bounds()
			if abs(b.Max.X()-1) > 1e-5 || abs(b.Min.X()+1) > 1e-5 {
				t.Errorf("radius bounds: %v", b)
			}
		})
	}
}

func TestComputeTangents(t *testing.T) {
	s := Plane(1, 1, 2)
	for i := range s.Vertices {
		s.Vertices[i].Tangent = math.NewVec4(0, 0, 0, 0)
	}
	ComputeTangents(s)
	for i, v := range s.Vertices {
		if !v.Tangent.XYZ().Compare(math.NewVec3(1, 0, 0), 1e-5) {
			t.Errorf("vertex %d tangent: got %v, want (1, 0, 0)", i, v.Tangent)
		}
		if abs(v.Tangent.W()) != 1 {
			t.Errorf("vertex %d handedness: got %v", i, v.Tangent.W())
		}
	}
}

func TestInterleave(t *testing.T) {
	s := Box(1, 1, 1)
	data := s.Interleave()
	if len(data) != len(s.Vertices)*FloatsPerVert {
		t.Fatalf("interleaved length: got %d", len(data))
	}
	v := s.Vertices[5]
	rec := data[5*FloatsPerVert:]
	if rec[PositionOffset] != v.Position.X() || rec[NormalOffset+1] != v.Normal.Y() ||
		rec[TangentOffset+3] != v.Tangent.W() || rec[TexCoordOffset+1] != v.TexCoord.Y() {
		t.Errorf("record 5 does not match vertex %v: %v", v, rec[:FloatsPerVert])
	}
}

func TestAABB(t *testing.T) {
	b := AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}
	if !b.Center().Equal(math.NewVec3(0, 0, 0)) {
		t.Errorf("center: %v", b.Center())
	}
	if abs(b.Radius()-1.7320508) > 1e-5 {
		t.Errorf("radius: %v", b.Radius())
	}
	moved := b.Transform(math.Mat4Translate(10, 0, 0))
	if !moved.Min.Equal(math.NewVec3(9, -1, -1)) || !moved.Max.Equal(math.NewVec3(11, 1, 1)) {
		t.Errorf("transform: %v", moved)
	}
	u := b.Union(moved)
	if !u.Min.Equal(math.NewVec3(-1, -1, -1)) || !u.Max.Equal(math.NewVec3(11, 1, 1)) {
		t.Errorf("union: %v", u)
	}
}
