// Package shapes is the example that draws every shape generator side by
// side under a single sun.
package shapes

import (
	"github.com/farouqadepetu/SecondEngine-sub000/internal/app"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/scene"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Spacing is the distance between neighbouring shapes.
const Spacing float32 = 3

// SpinSpeed is how fast the shapes turn, in degrees per second.
const SpinSpeed float32 = 30

// Catalog returns one of each generated shape.
func Catalog() []*shapes.Shape {
	return []*shapes.Shape{
		shapes.Plane(2, 2, 4),
		shapes.Box(1.5, 1.5, 1.5),
		shapes.Sphere(1, 32, 16),
		shapes.Cylinder(0.75, 2, 32),
		shapes.Cone(1, 2, 32),
	}
}

// Row returns n positions along X, spacing apart and centred on the origin.
func Row(n int, spacing float32) []math.Vec3 {
	out := make([]math.Vec3, n)
	start := -spacing * float32(n-1) / 2
	for i := range out {
		out[i] = math.NewVec3(start+spacing*float32(i), 0, 0)
	}
	return out
}

// App draws the catalog.
type App struct {
	scene   *scene.Scene
	lights  *lighting.Buffer
	objects []*scene.Object
	row     []math.Vec3
	angle   float32
}

// New creates the example.
func New() *App {
	return &App{lights: lighting.NewBuffer()}
}

func (a *App) Init(c *app.Context) error {
	s, err := examples.NewScene(c)
	if err != nil {
		return err
	}
	a.scene = s

	catalog := Catalog()
	a.row = Row(len(catalog), Spacing)
	for i, shape := range catalog {
		color := examples.Palette[i%len(examples.Palette)]
		o, err := s.Add(shape, a.world(i), color)
		if err != nil {
			return err
		}
		a.objects = append(a.objects, o)
	}

	sun := lighting.Default(lighting.Directional)
	sun.Direction = lighting.SunDirection(30, 45)
	a.lights.Add(sun)

	return c.Camera.LookAt(math.NewVec3(0, 4, -12), math.NewVec3(0, 0, 0), math.Vec3Up())
}

func (a *App) world(i int) math.Mat4 {
	p := a.row[i]
	return math.Mat4RotY(a.angle).Mul(math.Mat4Translate(p.X(), p.Y(), p.Z()))
}

func (a *App) Update(c *app.Context, dt float64) error {
	a.angle += SpinSpeed * float32(dt)
	if a.angle >= 360 {
		a.angle -= 360
	}
	for i, o := range a.objects {
		o.SetWorld(a.world(i))
	}
	return nil
}

func (a *App) Draw(c *app.Context) error {
	a.scene.Render(c.Camera, a.lights, scene.ShadowNone, nil)
	return nil
}

func (a *App) Shutdown(c *app.Context) error {
	c.Log.Info("shapes example finished")
	return nil
}
