package shadows

import (
	"errors"

	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/input"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/scene"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shadow"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// switchKeys is checked in order; the first pressed key wins.
var switchKeys = []struct {
	key   input.Key
	light lighting.Type
}{
	{input.Key1, lighting.Directional},
	{input.Key2, lighting.Point},
	{input.Key3, lighting.Spotlight},
}

// LightSwitch keeps the shadow pass in step with the shadow-casting light.
type LightSwitch struct {
	pass  *shadow.Pass
	orbit *lighting.Orbit
	light lighting.Light
	mode  scene.ShadowMode
	log   *zap.Logger
}

// NewLightSwitch creates a switch driving pass. Point lights follow orbit.
func NewLightSwitch(pass *shadow.Pass, orbit *lighting.Orbit) *LightSwitch {
	return &LightSwitch{
		pass:  pass,
		orbit: orbit,
		log:   logger.Named("shadows"),
	}
}

// LightFor returns the example's light of type t.
func (s *LightSwitch) LightFor(t lighting.Type) lighting.Light {
	l := lighting.Default(t)
	switch t {
	case lighting.Directional:
		l.Direction = lighting.SunDirection(35, 50)
	case lighting.Point:
		l.Position = s.orbit.Position()
		l.Range = 25
		l.Intensity = 1.4
	case lighting.Spotlight:
		l.Position = math.NewVec3(0, 8, 0)
		l.Direction = math.NewVec3(0, -1, 0)
		l.Range = 20
		l.Intensity = 1.5
	}
	return l
}

// Switch makes a light of type t the shadow caster. Spotlights are lit but
// cast no shadows.
func (s *LightSwitch) Switch(t lighting.Type) error {
	l := s.LightFor(t)
	err := s.pass.SetLight(l)
	switch {
	case errors.Is(err, shadow.ErrUnsupportedLight):
		s.log.Warn("light casts no shadows", zap.Stringer("light", t))
	case err != nil:
		return err
	}
	s.light = l
	s.mode = scene.ShadowModeFor(t)
	s.log.Info("shadow light", zap.Stringer("type", t), zap.Int("targets", len(s.pass.Targets())))
	return nil
}

// HandleKeys switches light when 1, 2 or 3 was pressed this frame. When
// several are pressed together the lowest number wins.
func (s *LightSwitch) HandleKeys(in *input.State) error {
	for _, sk := range switchKeys {
		if !in.IsKeyPressed(sk.key) {
			continue
		}
		if sk.light == s.light.Type {
			return nil
		}
		return s.Switch(sk.light)
	}
	return nil
}

// Update moves a point light along the orbit.
func (s *LightSwitch) Update(dt float32) error {
	if s.light.Type != lighting.Point {
		return nil
	}
	s.orbit.Update(dt)
	s.orbit.Apply(&s.light)
	return s.pass.SetLight(s.light)
}

// Light returns the current shadow-casting light.
func (s *LightSwitch) Light() lighting.Light { return s.light }

// Mode returns how the lit shader samples shadows for the current light.
func (s *LightSwitch) Mode() scene.ShadowMode { return s.mode }
