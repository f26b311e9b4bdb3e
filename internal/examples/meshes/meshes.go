// Package meshes is the example that animates several meshes with composed
// scale, rotation and translation matrices.
package meshes

import (
	gomath "math"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/app"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/scene"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Motion describes how one mesh moves.
type Motion struct {
	Center    math.Vec3
	Orbit     float32 // radius of the circle the mesh travels, 0 to stay put
	Speed     float32 // degrees per second
	Pulse     float32 // scale amplitude
	BaseScale float32
}

// Transform returns Scale * RotY * Translate for time t seconds.
func (m Motion) Transform(t float32) math.Mat4 {
	angle := m.Speed * t
	k := m.BaseScale * (1 + m.Pulse*float32(gomath.Sin(float64(math.DegToRad(angle)))))

	pos := m.Center
	if m.Orbit != 0 {
		s, c := gomath.Sincos(float64(math.DegToRad(angle)))
		pos = pos.Add(math.NewVec3(float32(c)*m.Orbit, 0, float32(s)*m.Orbit))
	}

	return math.Mat4Scale(k, k, k).
		Mul(math.Mat4RotY(angle)).
		Mul(math.Mat4Translate(pos.X(), pos.Y(), pos.Z()))
}

// Tumble returns the world matrix of a mesh spinning about a tilted axis,
// built from a quaternion.
func Tumble(center math.Vec3, speed, t float32) math.Mat4 {
	axis := math.NewVec3(1, 1, 0).Normalize()
	q := math.QuatRotation(speed*t, axis)
	return math.World(math.NewVec3(1, 1, 1), q, center)
}

type animated struct {
	object *scene.Object
	motion Motion
}

// App draws the animated meshes.
type App struct {
	scene   *scene.Scene
	lights  *lighting.Buffer
	items   []animated
	tumbler *scene.Object
	time    float32
}

// New creates the example.
func New() *App {
	return &App{lights: lighting.NewBuffer()}
}

var tumbleCenter = math.NewVec3(0, 3.5, 0)

func (a *App) Init(c *app.Context) error {
	s, err := examples.NewScene(c)
	if err != nil {
		return err
	}
	a.scene = s

	if _, err := s.Add(shapes.Plane(24, 24, 24), math.Mat4Identity(), examples.Ground); err != nil {
		return err
	}

	specs := []struct {
		shape  *shapes.Shape
		motion Motion
	}{
		{shapes.Box(1, 1, 1), Motion{Center: math.NewVec3(0, 0.5, 0), Orbit: 5, Speed: 40, BaseScale: 1}},
		{shapes.Sphere(0.75, 24, 12), Motion{Center: math.NewVec3(0, 1, 0), Orbit: 3, Speed: -60, Pulse: 0.25, BaseScale: 1}},
		{shapes.Cone(0.75, 1.5, 24), Motion{Center: math.NewVec3(-6, 0, 4), Speed: 90, BaseScale: 1.2}},
		{shapes.Cylinder(0.5, 2, 24), Motion{Center: math.NewVec3(6, 1, 4), Speed: 45, Pulse: 0.5, BaseScale: 1}},
	}
	for i, sp := range specs {
		o, err := s.Add(sp.shape, sp.motion.Transform(0), examples.Palette[i%len(examples.Palette)])
		if err != nil {
			return err
		}
		a.items = append(a.items, animated{object: o, motion: sp.motion})
	}

	a.tumbler, err = s.Add(shapes.Box(1.2, 0.4, 0.8), Tumble(tumbleCenter, 0, 0), examples.Palette[4])
	if err != nil {
		return err
	}

	sun := lighting.Default(lighting.Directional)
	sun.Direction = lighting.SunDirection(120, 50)
	a.lights.Add(sun)

	return c.Camera.LookAt(math.NewVec3(0, 8, -14), math.NewVec3(0, 0, 0), math.Vec3Up())
}

func (a *App) Update(c *app.Context, dt float64) error {
	a.time += float32(dt)
	for _, it := range a.items {
		it.object.SetWorld(it.motion.Transform(a.time))
	}
	a.tumbler.SetWorld(Tumble(tumbleCenter, 70, a.time))
	return nil
}

func (a *App) Draw(c *app.Context) error {
	a.scene.Render(c.Camera, a.lights, scene.ShadowNone, nil)
	return nil
}

func (a *App) Shutdown(c *app.Context) error {
	return nil
}
