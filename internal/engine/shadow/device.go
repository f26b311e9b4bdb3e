// Package shadow renders depth maps for directional and point lights.
//
// The pass owns a set of depth targets and the light cameras that render
// into them. GPU work goes through the Device interface; the OpenGL
// implementation lives in the renderer package.
package shadow

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math"

// Drawable is a mesh that can be drawn into a depth target.
type Drawable interface {
	World() math.Mat4
	Draw()
}

// Device is the GPU side of the shadow pass.
type Device interface {
	CreateDepthTarget(resolution int32) (Handle, error)
	DestroyDepthTarget(h Handle)

	// BeginDepthPass binds h for depth writes and clears it. viewProj is
	// row-major, for row vectors.
	BeginDepthPass(h Handle, viewProj math.Mat4)
	DrawDepth(d Drawable)
	EndDepthPass()

	TransitionTarget(h Handle, from, to TargetState)

	// BindForSampling makes the targets visible to the main pass, in order.
	BindForSampling(hs []Handle)
}

// DefaultResolution is the default shadow map resolution.
const DefaultResolution = 2048

// Config controls target size and light camera ranges.
type Config struct {
	Resolution int32 // Width and height of each depth target

	// OrthoHalfExtent overrides the fitted half-size of the directional
	// light volume when positive.
	OrthoHalfExtent float32

	Near float32
	Far  float32 // Point lights only; directional far is fitted to the scene
	Bias float32
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		Resolution: DefaultResolution,
		Near:       0.1,
		Far:        50,
		Bias:       0.005,
	}
}
