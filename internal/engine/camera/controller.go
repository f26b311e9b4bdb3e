package camera

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math"

// Intent is the movement requested for one frame. Each axis is in [-1, 1].
type Intent struct {
	Forward float32
	Right   float32
	Up      float32
	Yaw     float32
	Pitch   float32
}

// Controller drives a Camera from per-frame intents and mouse drags.
type Controller struct {
	Camera *Camera

	MoveSpeed       float32 // World units per second
	TurnSpeed       float32 // Degrees per second
	DragSensitivity float32 // Degrees per pixel

	// Constraints
	MinPitch float32
	MaxPitch float32

	pitch float32
}

// NewController creates a controller with default speeds.
func NewController(c *Camera) *Controller {
	return &Controller{
		Camera:          c,
		MoveSpeed:       5,
		TurnSpeed:       90,
		DragSensitivity: 0.2,
		MinPitch:        -89,
		MaxPitch:        89,
	}
}

// Update applies in over dt seconds and refreshes the view matrix.
func (ct *Controller) Update(in Intent, dt float32) {
	step := ct.MoveSpeed * dt
	ct.Camera.MoveForward(in.Forward * step)
	ct.Camera.MoveRight(in.Right * step)
	ct.Camera.MoveUp(in.Up * step)

	turn := ct.TurnSpeed * dt
	ct.turn(in.Yaw*turn, in.Pitch*turn)
	ct.Camera.UpdateViewMatrix()
}

// HandleDrag turns the camera by a mouse drag delta in pixels.
func (ct *Controller) HandleDrag(deltaX, deltaY float32) {
	ct.turn(deltaX*ct.DragSensitivity, deltaY*ct.DragSensitivity)
	ct.Camera.UpdateViewMatrix()
}

func (ct *Controller) turn(yaw, pitch float32) {
	if yaw != 0 {
		ct.Camera.Yaw(yaw)
	}
	// Clamp pitch
	next := math.Clamp(ct.pitch+pitch, ct.MinPitch, ct.MaxPitch)
	if d := next - ct.pitch; d != 0 {
		ct.Camera.Pitch(d)
		ct.pitch = next
	}
}
