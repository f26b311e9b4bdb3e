package lighting

import (
	gomath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Orbit moves a point light around a vertical axis at a constant angular
// speed, looping forever.
type Orbit struct {
	Center math.Vec3
	Radius float32
	Height float32

	period  float32
	elapsed float32
	angle   float32
	tween   *gween.Tween
	static  bool
}

// NewOrbit creates an orbit that completes one revolution every period
// seconds. A period of zero or less holds the light at angle 0.
func NewOrbit(center math.Vec3, radius, height, period float32) *Orbit {
	static := period <= 0
	if static {
		period = 1
	}
	return &Orbit{
		static: static,
		Center: center,
		Radius: radius,
		Height: height,
		period: period,
		tween:  gween.New(0, 360, period, ease.Linear),
	}
}

// Angle returns the current angle in degrees.
func (o *Orbit) Angle() float32 {
	return o.angle
}

// Update advances the orbit by dt seconds and returns the new position.
func (o *Orbit) Update(dt float32) math.Vec3 {
	if o.static {
		return o.Position()
	}
	o.elapsed = float32(gomath.Mod(float64(o.elapsed+dt), float64(o.period)))
	o.angle, _ = o.tween.Set(o.elapsed)
	return o.Position()
}

// Position returns the position for the current angle.
func (o *Orbit) Position() math.Vec3 {
	s, c := gomath.Sincos(float64(math.DegToRad(o.angle)))
	offset := math.NewVec3(float32(c)*o.Radius, o.Height, float32(s)*o.Radius)
	return o.Center.Add(offset)
}

// Apply moves l to the current orbit position.
func (o *Orbit) Apply(l *Light) {
	l.Position = o.Position()
}
