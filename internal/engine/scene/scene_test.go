package scene

import (
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/renderer"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

func TestShadowModeFor(t *testing.T) {
	tests := []struct {
		light lighting.Type
		want  ShadowMode
	}{
		{lighting.Directional, ShadowDirectional},
		{lighting.Point, ShadowPoint},
		{lighting.Spotlight, ShadowNone},
	}
	for _, tt := range tests {
		if got := ShadowModeFor(tt.light); got != tt.want {
			t.Errorf("ShadowModeFor(%v): got %v, want %v", tt.light, got, tt.want)
		}
	}
}

func object(local shapes.AABB, world math.Mat4) *Object {
	o := &Object{Mesh: &renderer.Mesh{}, local: local}
	o.SetWorld(world)
	return o
}

func TestBounds(t *testing.T) {
	unit := shapes.AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}

	s := &Scene{}
	if got := s.Bounds(); got != (shapes.AABB{}) {
		t.Errorf("empty scene bounds: got %v, want zero", got)
	}

	s.objects = []*Object{
		object(unit, math.Mat4Translate(5, 0, 0)),
		object(unit, math.Mat4Scale(2, 2, 2).Mul(math.Mat4Translate(0, 0, -4))),
	}
	got := s.Bounds()
	wantMin := math.NewVec3(-2, -2, -6)
	wantMax := math.NewVec3(6, 2, 1)
	if !got.Min.Equal(wantMin) || !got.Max.Equal(wantMax) {
		t.Errorf("Bounds: got %v..%v, want %v..%v", got.Min, got.Max, wantMin, wantMax)
	}

	if n := len(s.Drawables()); n != 2 {
		t.Errorf("Drawables: got %d, want 2", n)
	}
}
