package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
)

// MaxInFlight bounds frames.in_flight.
const MaxInFlight = 3

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)

	check(c.Camera.FOVDegrees > 0 && c.Camera.FOVDegrees < 180,
		"camera: fov_degrees must be in (0, 180), got %v", c.Camera.FOVDegrees)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near,
		"camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	check(c.Camera.MoveSpeed >= 0 && c.Camera.TurnSpeedDegrees >= 0,
		"camera: speeds must not be negative")

	switch c.Shadow.LightType {
	case lighting.Directional, lighting.Point, lighting.Spotlight:
	default:
		check(false, "shadow: unknown light_type %d", int(c.Shadow.LightType))
	}
	r := c.Shadow.Resolution
	check(r >= 256 && r <= 8192 && r&(r-1) == 0,
		"shadow: resolution must be a power of two in [256, 8192], got %d", r)
	check(c.Shadow.Near > 0 && c.Shadow.Far > c.Shadow.Near,
		"shadow: need 0 < near < far, got near=%v far=%v", c.Shadow.Near, c.Shadow.Far)
	check(c.Shadow.OrthoHalfExtent >= 0,
		"shadow: ortho_half_extent must not be negative")

	check(c.Lighting.Ambient >= 0 && c.Lighting.Ambient <= 1,
		"lighting: ambient must be in [0, 1], got %v", c.Lighting.Ambient)
	check(c.Lighting.OrbitSeconds >= 0,
		"lighting: orbit_seconds must not be negative")

	check(c.Frames.InFlight >= 1 && c.Frames.InFlight <= MaxInFlight,
		"frames: in_flight must be in [1, %d], got %d", MaxInFlight, c.Frames.InFlight)

	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", lerr))
	}
	return err
}
