package shapes

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math"

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// Center returns the center of the AABB.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the edge lengths.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns the radius of the bounding sphere.
func (b AABB) Radius() float32 {
	return b.Size().Length() * 0.5
}

// Extend grows the box to include p.
func (b AABB) Extend(p math.Vec3) AABB {
	return AABB{
		Min: math.NewVec3(min(b.Min.X(), p.X()), min(b.Min.Y(), p.Y()), min(b.Min.Z(), p.Z())),
		Max: math.NewVec3(max(b.Max.X(), p.X()), max(b.Max.Y(), p.Y()), max(b.Max.Z(), p.Z())),
	}
}

// Union returns the box enclosing both b and o.
func (b AABB) Union(o AABB) AABB {
	return b.Extend(o.Min).Extend(o.Max)
}

// Transform returns the box enclosing the eight transformed corners of b.
func (b AABB) Transform(world math.Mat4) AABB {
	var out AABB
	for i := 0; i < 8; i++ {
		corner := math.NewVec3(
			pick(i&1 != 0, b.Max.X(), b.Min.X()),
			pick(i&2 != 0, b.Max.Y(), b.Min.Y()),
			pick(i&4 != 0, b.Max.Z(), b.Min.Z()),
		)
		p := world.TransformPoint(corner)
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		out = out.Extend(p)
	}
	return out
}

func pick(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
