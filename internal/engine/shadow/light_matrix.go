package shadow

import (
	"fmt"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/camera"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// DirectionalLightCamera builds an orthographic camera that sees the whole
// scene from a directional light. dir is the direction the light travels.
// bounds is the AABB of everything that casts or receives shadows.
func DirectionalLightCamera(dir math.Vec3, bounds shapes.AABB, cfg Config) (*camera.Camera, error) {
	toLight, err := dir.Neg().NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("shadow: directional light: %w", err)
	}

	center := bounds.Center()
	radius := bounds.Radius()
	if radius <= 0 {
		radius = 1
	}

	// Position light far enough to encompass entire scene
	lightDistance := radius * 2
	lightPos := center.Add(toLight.Scale(lightDistance))

	// If light is nearly vertical, use a different up vector
	up := math.NewVec3(0, 1, 0)
	if math.Abs(toLight.Y()) > 0.99 {
		up = math.NewVec3(0, 0, 1)
	}

	cam := camera.New()
	if err := cam.LookAt(lightPos, center, up); err != nil {
		return nil, fmt.Errorf("shadow: directional light: %w", err)
	}

	// Add padding to avoid edge artifacts
	padding := radius * 0.1
	halfSize := radius + padding
	if cfg.OrthoHalfExtent > 0 {
		halfSize = cfg.OrthoHalfExtent
	}

	cam.OrthoWidth = 2 * halfSize
	cam.OrthoHeight = 2 * halfSize
	cam.Near = cfg.Near
	cam.Far = lightDistance + radius + padding
	cam.UpdateViewMatrix()
	cam.UpdateOrthographicProjectionMatrix()
	return cam, nil
}
