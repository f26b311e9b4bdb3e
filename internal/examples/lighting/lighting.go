// Package lighting is the example that lights a small scene with a sun, an
// orbiting point light and a spotlight. Keys 1, 2 and 3 toggle them.
package lighting

import (
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/app"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/input"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/scene"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Rig holds the three lights and which of them are on.
type Rig struct {
	Sun   lighting.Light
	Point lighting.Light
	Spot  lighting.Light
	On    [3]bool

	orbit *lighting.Orbit
}

// NewRig creates a rig with every light on. The point light circles the
// origin once every orbitSeconds at radius.
func NewRig(orbitSeconds, radius float32) *Rig {
	sun := lighting.Default(lighting.Directional)
	sun.Direction = lighting.SunDirection(45, 35)
	sun.Intensity = 0.6

	point := lighting.Default(lighting.Point)
	point.Color = math.NewVec3(1, 0.75, 0.45)
	point.Range = 15

	spot := lighting.Default(lighting.Spotlight)
	spot.Position = math.NewVec3(0, 6, 0)
	spot.Direction = math.NewVec3(0, -1, 0)
	spot.Color = math.NewVec3(0.5, 0.7, 1)
	spot.Intensity = 1.5
	spot.Range = 20

	r := &Rig{
		Sun:   sun,
		Point: point,
		Spot:  spot,
		On:    [3]bool{true, true, true},
		orbit: lighting.NewOrbit(math.NewVec3(0, 0, 0), radius, 2, orbitSeconds),
	}
	r.orbit.Apply(&r.Point)
	return r
}

var toggleKeys = [3]input.Key{input.Key1, input.Key2, input.Key3}

// HandleKeys flips the lights whose keys were pressed this frame and
// reports whether anything changed.
func (r *Rig) HandleKeys(in *input.State) bool {
	changed := false
	for i, k := range toggleKeys {
		if in.IsKeyPressed(k) {
			r.On[i] = !r.On[i]
			changed = true
		}
	}
	return changed
}

// Update moves the point light along its orbit.
func (r *Rig) Update(dt float32) {
	r.orbit.Update(dt)
	r.orbit.Apply(&r.Point)
}

// Lights returns the lights that are on, in sun, point, spot order.
func (r *Rig) Lights() []lighting.Light {
	all := [3]lighting.Light{r.Sun, r.Point, r.Spot}
	out := make([]lighting.Light, 0, len(all))
	for i, l := range all {
		if r.On[i] {
			out = append(out, l)
		}
	}
	return out
}

// App draws a floor with a few shapes under the rig.
type App struct {
	scene  *scene.Scene
	lights *lighting.Buffer
	rig    *Rig
	marker *scene.Object
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

	if _, err := s.Add(shapes.Plane(20, 20, 20), math.Mat4Identity(), examples.Ground); err != nil {
		return err
	}
	items := []struct {
		shape *shapes.Shape
		at    math.Vec3
	}{
		{shapes.Sphere(1, 32, 16), math.NewVec3(-3, 1, 0)},
		{shapes.Box(1.5, 1.5, 1.5), math.NewVec3(0, 0.75, 0)},
		{shapes.Cylinder(0.75, 2, 32), math.NewVec3(3, 1, 0)},
	}
	for i, it := range items {
		world := math.Mat4Translate(it.at.X(), it.at.Y(), it.at.Z())
		if _, err := s.Add(it.shape, world, examples.Palette[i]); err != nil {
			return err
		}
	}

	a.rig = NewRig(c.Config.Lighting.OrbitSeconds, c.Config.Lighting.OrbitRadius)
	a.marker, err = s.Add(shapes.Sphere(0.15, 12, 6), markerWorld(a.rig.Point.Position), math.NewVec3(1, 1, 1))
	if err != nil {
		return err
	}
	a.lights.Set(a.rig.Lights())

	return c.Camera.LookAt(math.NewVec3(0, 6, -12), math.NewVec3(0, 0, 0), math.Vec3Up())
}

func markerWorld(p math.Vec3) math.Mat4 {
	return math.Mat4Translate(p.X(), p.Y(), p.Z())
}

func (a *App) Update(c *app.Context, dt float64) error {
	if a.rig.HandleKeys(c.Input) {
		c.Log.Info("lights toggled",
			zap.Bool("sun", a.rig.On[0]),
			zap.Bool("point", a.rig.On[1]),
			zap.Bool("spot", a.rig.On[2]))
	}
	a.rig.Update(float32(dt))
	a.marker.SetWorld(markerWorld(a.rig.Point.Position))
	a.lights.Set(a.rig.Lights())
	return nil
}

func (a *App) Draw(c *app.Context) error {
	a.scene.Render(c.Camera, a.lights, scene.ShadowNone, nil)
	return nil
}

func (a *App) Shutdown(c *app.Context) error {
	return nil
}
