// Package lighting describes the light sources shared by the lighting and
// shadow examples.
package lighting

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Type selects the light model.
type Type int

const (
	Directional Type = iota
	Point
	Spotlight
)

func (t Type) String() string {
	switch t {
	case Directional:
		return "directional"
	case Point:
		return "point"
	case Spotlight:
		return "spotlight"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses a light type name as written in the config file.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "directional":
		return Directional, nil
	case "point":
		return Point, nil
	case "spotlight", "spot":
		return Spotlight, nil
	}
	return 0, fmt.Errorf("unknown light type %q", s)
}

// UnmarshalText lets Type be used directly in YAML and flags.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Light is a single light source.
type Light struct {
	Type      Type
	Position  math.Vec3 // Point and spotlight
	Direction math.Vec3 // Directional and spotlight, pointing away from the light
	Color     math.Vec3 // RGB (0-1 range)
	Intensity float32
	Range     float32 // Point and spotlight falloff distance

	// Spotlight cone, in degrees
	InnerCutoff float32
	OuterCutoff float32
}

// Default returns a white light of type t with sensible placement.
func Default(t Type) Light {
	return Light{
		Type:        t,
		Position:    math.NewVec3(0, 5, -5),
		Direction:   math.NewVec3(0, -1, 1).Normalize(),
		Color:       math.NewVec3(1, 1, 1),
		Intensity:   1,
		Range:       50,
		InnerCutoff: 12.5,
		OuterCutoff: 17.5,
	}
}

// UniformSize is the number of floats Uniform writes.
const UniformSize = 16

// Uniform packs the light into four vec4 slots:
//
//	position.xyz, type
//	direction.xyz, range
//	color.rgb, intensity
//	cos(inner), cos(outer), 0, 0
func (l Light) Uniform() [UniformSize]float32 {
	cosInner := cosDeg(l.InnerCutoff)
	cosOuter := cosDeg(l.OuterCutoff)
	return [UniformSize]float32{
		l.Position.X(), l.Position.Y(), l.Position.Z(), float32(l.Type),
		l.Direction.X(), l.Direction.Y(), l.Direction.Z(), l.Range,
		l.Color.X(), l.Color.Y(), l.Color.Z(), l.Intensity,
		cosInner, cosOuter, 0, 0,
	}
}

func cosDeg(deg float32) float32 {
	return float32(gomath.Cos(float64(math.DegToRad(deg))))
}
