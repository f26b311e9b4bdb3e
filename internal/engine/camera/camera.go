// Package camera provides the view/projection camera used by every example.
package camera

import (
	"fmt"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Camera holds a position and an orthonormal forward/right/up basis and
// derives view and projection matrices from them. The basis is left-handed:
// right = up x forward.
type Camera struct {
	position math.Vec3
	forward  math.Vec3
	right    math.Vec3
	up       math.Vec3

	view       math.Mat4
	projection math.Mat4

	// Perspective parameters
	VFov        float32 // Vertical field of view in degrees
	AspectRatio float32
	Near        float32
	Far         float32

	// Orthographic volume, centred on the view axis
	OrthoWidth  float32
	OrthoHeight float32

	// Off-center orthographic bounds, used when offCenter is set
	left, rightEdge, bottom, top float32
	offCenter                    bool
}

// New creates a camera at the origin looking down +Z with identity view and
// projection matrices.
func New() *Camera {
	return &Camera{
		forward:     math.NewVec3(0, 0, 1),
		right:       math.NewVec3(1, 0, 0),
		up:          math.NewVec3(0, 1, 0),
		view:        math.Mat4Identity(),
		projection:  math.Mat4Identity(),
		VFov:        45,
		AspectRatio: 1,
		Near:        0.1,
		Far:         100,
		OrthoWidth:  10,
		OrthoHeight: 10,
	}
}

// Position returns the eye position.
func (c *Camera) Position() math.Vec3 { return c.position }

// Forward returns the unit view direction.
func (c *Camera) Forward() math.Vec3 { return c.forward }

// Right returns the unit right axis.
func (c *Camera) Right() math.Vec3 { return c.right }

// Up returns the unit up axis.
func (c *Camera) Up() math.Vec3 { return c.up }

// View returns the view matrix from the last UpdateViewMatrix.
func (c *Camera) View() math.Mat4 { return c.view }

// Projection returns the projection matrix from the last projection update.
func (c *Camera) Projection() math.Mat4 { return c.projection }

// ViewProjection returns view * projection for row vectors.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.view.Mul(c.projection)
}

// SetPosition moves the camera without changing its orientation.
func (c *Camera) SetPosition(p math.Vec3) {
	c.position = p
}

// LookAt places the camera at position facing target. up only needs to be
// roughly perpendicular to the view direction; the returned basis is
// re-derived from cross products. The camera is left untouched on error.
func (c *Camera) LookAt(position, target, up math.Vec3) error {
	forward, err := target.Sub(position).NormalizeChecked()
	if err != nil {
		return fmt.Errorf("camera: target equals position: %w", err)
	}
	right, err := up.Cross(forward).NormalizeChecked()
	if err != nil {
		return fmt.Errorf("camera: up is parallel to the view direction: %w", err)
	}
	c.position = position
	c.forward = forward
	c.right = right
	c.up = forward.Cross(right)
	return nil
}

// UpdateViewMatrix rebuilds the view matrix from the current basis and
// position.
func (c *Camera) UpdateViewMatrix() {
	r, u, f, p := c.right, c.up, c.forward, c.position
	c.view = math.NewMat4(
		math.NewVec4(r.X(), u.X(), f.X(), 0),
		math.NewVec4(r.Y(), u.Y(), f.Y(), 0),
		math.NewVec4(r.Z(), u.Z(), f.Z(), 0),
		math.NewVec4(-p.Dot(r), -p.Dot(u), -p.Dot(f), 1),
	)
}

// UpdatePerspectiveProjectionMatrix rebuilds the projection from VFov,
// AspectRatio, Near and Far.
func (c *Camera) UpdatePerspectiveProjectionMatrix() {
	c.projection = math.Mat4PerspectiveLH(c.VFov, c.AspectRatio, c.Near, c.Far)
}

// UpdateOrthographicProjectionMatrix rebuilds an orthographic projection
// from OrthoWidth and OrthoHeight, or from the bounds given to
// SetOrthographicBounds.
func (c *Camera) UpdateOrthographicProjectionMatrix() {
	if c.offCenter {
		c.projection = math.Mat4OrthographicOffCenterLH(c.left, c.rightEdge, c.bottom, c.top, c.Near, c.Far)
		return
	}
	c.projection = math.Mat4OrthographicLH(c.OrthoWidth, c.OrthoHeight, c.Near, c.Far)
}

// SetOrthographicBounds switches the orthographic projection to an
// off-center volume.
func (c *Camera) SetOrthographicBounds(left, right, bottom, top float32) {
	c.left, c.rightEdge, c.bottom, c.top = left, right, bottom, top
	c.offCenter = true
}

// RotateCamera rotates the basis (not the position) by q and re-derives it
// so it stays orthonormal.
func (c *Camera) RotateCamera(q math.Quat) {
	forward := q.RotateVec3(c.forward).Normalize()
	up := q.RotateVec3(c.up)
	c.right = up.Cross(forward).Normalize()
	c.up = forward.Cross(c.right)
	c.forward = forward
}

// Rotate rotates the basis by deg degrees about axis.
func (c *Camera) Rotate(deg float32, axis math.Vec3) {
	c.RotateCamera(math.QuatRotation(deg, axis))
}

// Yaw turns the camera about the world Y axis.
func (c *Camera) Yaw(deg float32) {
	c.Rotate(deg, math.Vec3Up())
}

// Pitch tilts the camera about its right axis.
func (c *Camera) Pitch(deg float32) {
	c.Rotate(deg, c.right)
}

// RotateCameraP rotates the position (not the basis) about the origin.
func (c *Camera) RotateCameraP(q math.Quat) {
	c.position = q.RotateVec3(c.position)
}

// Orbit rotates the position about target by deg degrees around axis and
// turns the camera to keep facing target.
func (c *Camera) Orbit(deg float32, axis, target math.Vec3) error {
	q, err := math.QuatRotationChecked(deg, axis)
	if err != nil {
		return fmt.Errorf("camera: orbit: %w", err)
	}
	pos := target.Add(q.RotateVec3(c.position.Sub(target)))
	return c.LookAt(pos, target, c.up)
}

// MoveForward moves the eye d units along the view direction.
func (c *Camera) MoveForward(d float32) { c.position.AddAssign(c.forward.Scale(d)) }

// MoveBackward moves the eye d units against the view direction.
func (c *Camera) MoveBackward(d float32) { c.position.SubAssign(c.forward.Scale(d)) }

// MoveRight moves the eye d units along the right axis.
func (c *Camera) MoveRight(d float32) { c.position.AddAssign(c.right.Scale(d)) }

// MoveLeft moves the eye d units against the right axis.
func (c *Camera) MoveLeft(d float32) { c.position.SubAssign(c.right.Scale(d)) }

// MoveUp moves the eye d units along the up axis.
func (c *Camera) MoveUp(d float32) { c.position.AddAssign(c.up.Scale(d)) }

// MoveDown moves the eye d units against the up axis.
func (c *Camera) MoveDown(d float32) { c.position.SubAssign(c.up.Scale(d)) }
