package camera

import (
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

func TestControllerMoves(t *testing.T) {
	ct := NewController(New())
	ct.MoveSpeed = 2
	ct.Update(Intent{Forward: 1, Right: -1}, 0.5)
	if !ct.Camera.Position().Compare(math.NewVec3(-1, 0, 1), tol) {
		t.Errorf("position: got %v, want (-1, 0, 1)", ct.Camera.Position())
	}
	if got := ct.Camera.View().Row(3); !got.Compare(math.NewVec4(1, 0, -1, 1), tol) {
		t.Errorf("view not refreshed, row 3 = %v", got)
	}
}

func TestControllerClampsPitch(t *testing.T) {
	ct := NewController(New())
	for i := 0; i < 100; i++ {
		ct.HandleDrag(0, 50)
	}
	if ct.pitch != ct.MaxPitch {
		t.Errorf("pitch: got %v, want %v", ct.pitch, ct.MaxPitch)
	}
	if ct.Camera.Forward().Y() > -0.99 {
		t.Errorf("camera should look almost straight down, forward = %v", ct.Camera.Forward())
	}
	assertOrthonormal(t, ct.Camera)
}
