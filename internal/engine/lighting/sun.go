package lighting

import (
	gomath "math"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// SunDirection converts azimuth/elevation angles in degrees to the direction
// sunlight travels. Azimuth is rotation around the Y axis (0-360, 0 = +Z),
// elevation is the height of the sun above the horizon (0-90).
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := float64(math.DegToRad(azimuth))
	el := float64(math.DegToRad(elevation))

	// Spherical to Cartesian, pointing towards the sun
	x := float32(gomath.Cos(el) * gomath.Sin(az))
	y := float32(gomath.Sin(el))
	z := float32(gomath.Cos(el) * gomath.Cos(az))

	return math.NewVec3(x, y, z).Neg()
}
