package shapes

import (
	gomath "math"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

func sincos(rad float64) (float32, float32) {
	s, c := gomath.Sincos(rad)
	return float32(s), float32(c)
}

// Plane generates a width x depth grid in the XZ plane facing +Y, split into
// divisions x divisions quads.
func Plane(width, depth float32, divisions int) *Shape {
	if divisions < 1 {
		divisions = 1
	}
	s := &Shape{Name: "plane"}
	up := math.NewVec3(0, 1, 0)
	tangent := math.NewVec3(1, 0, 0)
	n := float32(divisions)

	for i := 0; i <= divisions; i++ {
		for j := 0; j <= divisions; j++ {
			u, v := float32(j)/n, float32(i)/n
			pos := math.NewVec3(-width/2+u*width, 0, -depth/2+v*depth)
			s.addVertex(pos, up, tangent, math.NewVec2(u, 1-v))
		}
	}

	row := uint32(divisions + 1)
	for i := uint32(0); i < uint32(divisions); i++ {
		for j := uint32(0); j < uint32(divisions); j++ {
			v0 := i*row + j
			s.addTriangle(v0, v0+row, v0+1)
			s.addTriangle(v0+1, v0+row, v0+row+1)
		}
	}
	return s
}

// Box generates a width x height x depth box centred on the origin with four
// unshared vertices per face so each face has flat normals.
func Box(width, height, depth float32) *Shape {
	s := &Shape{Name: "box"}
	half := math.NewVec3(width/2, height/2, depth/2)
	faces := []struct{ normal, up math.Vec3 }{
		{math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0)},
		{math.NewVec3(-1, 0, 0), math.NewVec3(0, 1, 0)},
		{math.NewVec3(0, 1, 0), math.NewVec3(0, 0, 1)},
		{math.NewVec3(0, -1, 0), math.NewVec3(0, 0, -1)},
		{math.NewVec3(0, 0, 1), math.NewVec3(0, 1, 0)},
		{math.NewVec3(0, 0, -1), math.NewVec3(0, 1, 0)},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	for _, f := range faces {
		right := f.normal.Cross(f.up)
		var idx [4]uint32
		for k, c := range corners {
			pos := f.normal.Add(right.Scale(c[0])).Add(f.up.Scale(c[1])).Mul(half)
			uv := math.NewVec2((c[0]+1)/2, (1-c[1])/2)
			idx[k] = s.addVertex(pos, f.normal, right, uv)
		}
		s.addTriangle(idx[0], idx[1], idx[2])
		s.addTriangle(idx[0], idx[2], idx[3])
	}
	return s
}

// Sphere generates a UV sphere. slices divide the longitude and stacks the
// latitude.
func Sphere(radius float32, slices, stacks int) *Shape {
	slices = max(slices, 3)
	stacks = max(stacks, 2)
	s := &Shape{Name: "sphere"}

	for i := 0; i <= stacks; i++ {
		v := float32(i) / float32(stacks)
		sinPhi, cosPhi := sincos(gomath.Pi * float64(v))
		for j := 0; j <= slices; j++ {
			u := float32(j) / float32(slices)
			sinTheta, cosTheta := sincos(2 * gomath.Pi * float64(u))
			n := math.NewVec3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			t := math.NewVec3(-sinTheta, 0, cosTheta)
			s.addVertex(n.Scale(radius), n, t, math.NewVec2(u, v))
		}
	}

	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			v0 := i*row + j
			if i != 0 {
				s.addTriangle(v0, v0+1, v0+row)
			}
			if i != uint32(stacks)-1 {
				s.addTriangle(v0+1, v0+row+1, v0+row)
			}
		}
	}
	return s
}

// Cylinder generates a capped cylinder of the given height centred on the
// origin along Y.
func Cylinder(radius, height float32, slices int) *Shape {
	slices = max(slices, 3)
	s := &Shape{Name: "cylinder"}
	h := height / 2

	row := uint32(slices + 1)
	base := uint32(len(s.Vertices))
	for _, y := range [2]float32{-h, h} {
		for j := 0; j <= slices; j++ {
			u := float32(j) / float32(slices)
			sin, cos := sincos(2 * gomath.Pi * float64(u))
			n := math.NewVec3(cos, 0, sin)
			t := math.NewVec3(-sin, 0, cos)
			v := float32(0)
			if y < 0 {
				v = 1
			}
			s.addVertex(math.NewVec3(radius*cos, y, radius*sin), n, t, math.NewVec2(u, v))
		}
	}
	for j := uint32(0); j < uint32(slices); j++ {
		b := base + j
		s.addTriangle(b, b+row, b+1)
		s.addTriangle(b+1, b+row, b+row+1)
	}

	s.addCap(radius, h, slices, 1)
	s.addCap(radius, -h, slices, -1)
	return s
}

// Cone generates a capped cone with its base at -height/2 and apex at
// +height/2.
func Cone(radius, height float32, slices int) *Shape {
	slices = max(slices, 3)
	s := &Shape{Name: "cone"}
	h := height / 2
	slant := math.NewVec2(height, radius).Length()

	for j := 0; j < slices; j++ {
		u0 := float32(j) / float32(slices)
		u1 := float32(j+1) / float32(slices)
		mid := (u0 + u1) / 2

		sin0, cos0 := sincos(2 * gomath.Pi * float64(u0))
		sin1, cos1 := sincos(2 * gomath.Pi * float64(u1))
		sinM, cosM := sincos(2 * gomath.Pi * float64(mid))

		normal := func(sin, cos float32) math.Vec3 {
			return math.NewVec3(cos*height/slant, radius/slant, sin*height/slant)
		}
		b0 := s.addVertex(math.NewVec3(radius*cos0, -h, radius*sin0), normal(sin0, cos0), math.NewVec3(-sin0, 0, cos0), math.NewVec2(u0, 1))
		b1 := s.addVertex(math.NewVec3(radius*cos1, -h, radius*sin1), normal(sin1, cos1), math.NewVec3(-sin1, 0, cos1), math.NewVec2(u1, 1))
		apex := s.addVertex(math.NewVec3(0, h, 0), normal(sinM, cosM), math.NewVec3(-sinM, 0, cosM), math.NewVec2(mid, 0))
		s.addTriangle(b0, apex, b1)
	}

	s.addCap(radius, -h, slices, -1)
	return s
}

// addCap adds a flat disc at height y facing +Y (dir=1) or -Y (dir=-1).
func (s *Shape) addCap(radius, y float32, slices int, dir float32) {
	n := math.NewVec3(0, dir, 0)
	t := math.NewVec3(1, 0, 0)
	center := s.addVertex(math.NewVec3(0, y, 0), n, t, math.NewVec2(0.5, 0.5))
	first := uint32(len(s.Vertices))
	for j := 0; j <= slices; j++ {
		sin, cos := sincos(2 * gomath.Pi * float64(j) / float64(slices))
		s.addVertex(math.NewVec3(radius*cos, y, radius*sin), n, t, math.NewVec2(cos*0.5+0.5, sin*0.5+0.5))
	}
	for j := uint32(0); j < uint32(slices); j++ {
		s.addTriangle(center, first+j, first+j+1)
	}
}
