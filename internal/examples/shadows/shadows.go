// Package shadows is the example that renders shadow maps for a
// directional or point light. Keys 1, 2 and 3 pick directional, point or
// spot; editing light_type in the config file does the same while running.
package shadows

import (
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/app"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/config"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/renderer"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/scene"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shadow"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// App draws shapes on a floor with shadows from one light.
type App struct {
	scene   *scene.Scene
	pass    *shadow.Pass
	lights  *lighting.Buffer
	lightSw *LightSwitch
	reloads *Reloads
}

// New creates the example.
func New() *App {
	return &App{
		lights:  lighting.NewBuffer(),
		reloads: NewReloads(),
	}
}

func (a *App) Init(c *app.Context) error {
	s, err := examples.NewScene(c)
	if err != nil {
		return err
	}
	a.scene = s

	if err := a.populate(); err != nil {
		return err
	}

	device, err := renderer.NewShadowDevice()
	if err != nil {
		return err
	}
	a.pass = shadow.New(device, c.Config.Shadow.Pass())
	c.OnClose(func() error {
		a.pass.Close()
		device.Close()
		return nil
	})
	if err := a.pass.SetSceneBounds(s.Bounds()); err != nil {
		return err
	}

	orbit := lighting.NewOrbit(math.NewVec3(0, 0, 0), c.Config.Lighting.OrbitRadius, 4, c.Config.Lighting.OrbitSeconds)
	a.lightSw = NewLightSwitch(a.pass, orbit)
	if err := a.lightSw.Switch(c.Config.Shadow.LightType); err != nil {
		return err
	}

	if path := c.Config.Path(); path != "" {
		w, err := config.Watch(path, a.reloads.Offer)
		if err != nil {
			c.Log.Warn("config reload disabled", zap.Error(err))
		} else {
			c.OnClose(w.Close)
		}
	}

	return c.Camera.LookAt(math.NewVec3(-6, 9, -14), math.NewVec3(0, 0, 0), math.Vec3Up())
}

func (a *App) populate() error {
	if _, err := a.scene.Add(shapes.Plane(30, 30, 30), math.Mat4Identity(), examples.Ground); err != nil {
		return err
	}
	casters := []struct {
		shape *shapes.Shape
		world math.Mat4
	}{
		{shapes.Box(2, 2, 2), math.Mat4Translate(-4, 1, 0)},
		{shapes.Sphere(1.2, 32, 16), math.Mat4Translate(0, 1.2, 2)},
		{shapes.Cylinder(0.8, 3, 32), math.Mat4Translate(4, 1.5, 0)},
		{shapes.Cone(1, 2.5, 32), math.Mat4Translate(0, 1.25, -4)},
		{shapes.Box(6, 0.3, 1), math.Mat4RotY(30).Mul(math.Mat4Translate(2, 4, -1))},
	}
	for i, cs := range casters {
		if _, err := a.scene.Add(cs.shape, cs.world, examples.Palette[i%len(examples.Palette)]); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Update(c *app.Context, dt float64) error {
	if cfg, ok := a.reloads.Take(); ok {
		if err := a.apply(c, cfg); err != nil {
			return err
		}
	}
	if err := a.lightSw.HandleKeys(c.Input); err != nil {
		return err
	}
	if err := a.lightSw.Update(float32(dt)); err != nil {
		return err
	}

	fill := lighting.Default(lighting.Directional)
	fill.Direction = lighting.SunDirection(215, 60)
	fill.Intensity = 0.2
	a.lights.Set([]lighting.Light{a.lightSw.Light(), fill})
	return nil
}

func (a *App) apply(c *app.Context, cfg *config.Config) error {
	c.Log.Info("config reloaded",
		zap.Stringer("light", cfg.Shadow.LightType),
		zap.Float32("ambient", cfg.Lighting.Ambient))
	a.scene.SetAmbient(cfg.Lighting.Ambient)
	if cfg.Shadow.LightType != a.lightSw.Light().Type {
		return a.lightSw.Switch(cfg.Shadow.LightType)
	}
	return nil
}

func (a *App) Draw(c *app.Context) error {
	if err := a.pass.Record(c.Frame, a.scene.Drawables()); err != nil {
		return err
	}
	a.scene.Render(c.Camera, a.lights, a.lightSw.Mode(), a.pass.LightSpaceMatrices())
	return a.pass.EndFrame()
}

func (a *App) Shutdown(c *app.Context) error {
	return nil
}
