package shadow

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/camera"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Pass records the depth renders for the current light.
//
// A directional light uses one target, a point light six (one per cube
// face). Spotlights cast no shadows. Every frame, Record moves each target
// from DepthWrite to ShaderRead after drawing it and EndFrame moves it back.
type Pass struct {
	device Device
	cfg    Config
	log    *zap.Logger

	light     lighting.Light
	hasLight  bool
	bounds    shapes.AABB
	targets   []*Target
	cameras   []*camera.Camera
	recording bool
	frame     uint64
}

// New creates a pass with no light and no targets.
func New(device Device, cfg Config) *Pass {
	if cfg.Resolution <= 0 {
		cfg.Resolution = DefaultResolution
	}
	return &Pass{
		device: device,
		cfg:    cfg,
		log:    logger.Named("shadow"),
	}
}

// Config returns the active configuration.
func (p *Pass) Config() Config {
	return p.cfg
}

// SetSceneBounds sets the volume the directional light camera is fitted to.
// On error the previous bounds and cameras stay in place.
func (p *Pass) SetSceneBounds(b shapes.AABB) error {
	if !p.hasLight {
		p.bounds = b
		return nil
	}
	cams, err := p.camerasFor(p.light, b)
	if err != nil {
		return err
	}
	p.bounds = b
	p.cameras = cams
	return nil
}

// SetLight switches the pass to light l. Targets are recreated only when
// the light type changes; otherwise only the cameras move. A spotlight
// releases all targets and returns ErrUnsupportedLight.
//
// If the light cameras cannot be built the pass is left unchanged. If the
// device fails to create targets the pass ends up with no light.
func (p *Pass) SetLight(l lighting.Light) error {
	if p.recording {
		return fmt.Errorf("shadow: SetLight during frame %d", p.frame)
	}
	cams, err := p.camerasFor(l, p.bounds)
	if err != nil {
		return err
	}

	if !p.hasLight || l.Type != p.light.Type {
		if err := p.createTargets(l.Type); err != nil {
			p.cameras = nil
			p.hasLight = false
			return err
		}
	}
	p.light = l
	p.hasLight = true
	p.cameras = cams

	if l.Type == lighting.Spotlight {
		return fmt.Errorf("%w: %s", ErrUnsupportedLight, l.Type)
	}
	return nil
}

// Light returns the current light.
func (p *Pass) Light() lighting.Light {
	return p.light
}

// Targets returns the depth targets for the current light.
func (p *Pass) Targets() []*Target {
	return p.targets
}

// Cameras returns the light cameras, one per target.
func (p *Pass) Cameras() []*camera.Camera {
	return p.cameras
}

// LightSpaceMatrices returns view*projection for each target, row-major.
func (p *Pass) LightSpaceMatrices() []math.Mat4 {
	out := make([]math.Mat4, len(p.cameras))
	for i, c := range p.cameras {
		out[i] = c.ViewProjection()
	}
	return out
}

// Record draws every drawable into every target and leaves the targets
// ready for sampling.
func (p *Pass) Record(frame uint64, drawables []Drawable) error {
	if p.recording {
		return fmt.Errorf("shadow: frame %d recorded twice: %w", p.frame, ErrInvalidTransition)
	}
	for _, t := range p.targets {
		if t.State != DepthWrite {
			return fmt.Errorf("shadow: target %s not writable: %w", t.Face, ErrInvalidTransition)
		}
	}

	if len(p.cameras) != len(p.targets) {
		return fmt.Errorf("shadow: %d targets but %d light cameras", len(p.targets), len(p.cameras))
	}

	p.frame = frame
	p.recording = true
	if len(p.targets) == 0 {
		return nil
	}

	handles := make([]Handle, len(p.targets))
	for i, t := range p.targets {
		p.device.BeginDepthPass(t.Handle, p.cameras[i].ViewProjection())
		for _, d := range drawables {
			p.device.DrawDepth(d)
		}
		p.device.EndDepthPass()

		if err := p.transition(t, ShaderRead); err != nil {
			return err
		}
		handles[i] = t.Handle
	}
	p.device.BindForSampling(handles)
	return nil
}

// EndFrame returns every target to DepthWrite for the next frame.
func (p *Pass) EndFrame() error {
	if !p.recording {
		return fmt.Errorf("shadow: EndFrame without Record: %w", ErrInvalidTransition)
	}
	p.recording = false
	var err error
	for _, t := range p.targets {
		err = multierr.Append(err, p.transition(t, DepthWrite))
	}
	return err
}

// Close releases all targets.
func (p *Pass) Close() {
	p.destroyTargets()
	p.cameras = nil
	p.hasLight = false
	p.recording = false
}

func (p *Pass) transition(t *Target, to TargetState) error {
	from, err := t.Transition(to)
	if err != nil {
		return err
	}
	p.device.TransitionTarget(t.Handle, from, to)
	return nil
}

func (p *Pass) createTargets(lt lighting.Type) error {
	p.destroyTargets()

	var faces []CubeFace
	switch lt {
	case lighting.Directional:
		faces = []CubeFace{FaceNone}
	case lighting.Point:
		faces = CubeFaces[:]
	}

	for _, face := range faces {
		h, err := p.device.CreateDepthTarget(p.cfg.Resolution)
		if err != nil {
			p.destroyTargets()
			return fmt.Errorf("shadow: create %s target: %w", face, err)
		}
		t := newTarget(h, face)
		p.targets = append(p.targets, t)
		p.log.Debug("depth target",
			zap.Stringer("id", t.ID),
			zap.Stringer("face", face),
			zap.Uint32("handle", uint32(h)))
	}
	p.log.Debug("targets created",
		zap.Stringer("light", lt),
		zap.Int("count", len(p.targets)),
		zap.Int32("resolution", p.cfg.Resolution))
	return nil
}

func (p *Pass) destroyTargets() {
	for _, t := range p.targets {
		p.device.DestroyDepthTarget(t.Handle)
	}
	p.targets = nil
}

// camerasFor builds the cameras for l without touching the pass.
func (p *Pass) camerasFor(l lighting.Light, bounds shapes.AABB) ([]*camera.Camera, error) {
	switch l.Type {
	case lighting.Directional:
		cam, err := DirectionalLightCamera(l.Direction, bounds, p.cfg)
		if err != nil {
			return nil, err
		}
		return []*camera.Camera{cam}, nil
	case lighting.Point:
		cams := PointLightCameras(l.Position, p.cfg.Near, p.cfg.Far)
		return cams[:], nil
	}
	return nil, nil
}
