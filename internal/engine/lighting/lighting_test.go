package lighting

import (
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"directional", Directional},
		{"Point", Point},
		{" spotlight ", Spotlight},
		{"spot", Spotlight},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseType("area"); err == nil {
		t.Error("ParseType(area) should fail")
	}
	if Point.String() != "point" || Type(9).String() != "Type(9)" {
		t.Error("String wrong")
	}
}

func TestTypeText(t *testing.T) {
	var lt Type
	if err := lt.UnmarshalText([]byte("point")); err != nil || lt != Point {
		t.Errorf("UnmarshalText: %v, %v", lt, err)
	}
	b, _ := Spotlight.MarshalText()
	if string(b) != "spotlight" {
		t.Errorf("MarshalText: %s", b)
	}
}

func TestUniformLayout(t *testing.T) {
	l := Default(Spotlight)
	l.Position = math.NewVec3(1, 2, 3)
	l.InnerCutoff = 60
	l.OuterCutoff = 90
	u := l.Uniform()
	if u[0] != 1 || u[1] != 2 || u[2] != 3 || u[3] != float32(Spotlight) {
		t.Errorf("position slot: %v", u[:4])
	}
	if u[7] != l.Range || u[11] != l.Intensity {
		t.Errorf("range/intensity: %v %v", u[7], u[11])
	}
	if abs(u[12]-0.5) > 1e-6 || abs(u[13]) > 1e-6 {
		t.Errorf("cutoff cosines: got %v %v, want 0.5 0", u[12], u[13])
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < MaxLights; i++ {
		if !b.Add(Default(Point)) {
			t.Fatalf("Add %d failed", i)
		}
	}
	if b.Add(Default(Point)) {
		t.Error("Add should fail when the buffer is full")
	}

	b.Set([]Light{Default(Directional), Default(Point)})
	if b.Count() != 2 {
		t.Errorf("Count: got %d, want 2", b.Count())
	}
	u := b.Uniforms()
	if len(u) != MaxLights*UniformSize {
		t.Fatalf("Uniforms length: got %d", len(u))
	}
	if u[UniformSize+3] != float32(Point) {
		t.Errorf("second light type slot: got %v", u[UniformSize+3])
	}
	if u[2*UniformSize+11] != 0 {
		t.Error("unused slots should be zero")
	}

	lights := make([]Light, MaxLights+3)
	b.Set(lights)
	if b.Count() != MaxLights {
		t.Errorf("Set should truncate to MaxLights, got %d", b.Count())
	}
}

func TestSunDirection(t *testing.T) {
	d := SunDirection(0, 90)
	if !d.Compare(math.NewVec3(0, -1, 0), 1e-6) {
		t.Errorf("overhead sun: got %v, want straight down", d)
	}
	d = SunDirection(90, 0)
	if !d.Compare(math.NewVec3(-1, 0, 0), 1e-6) {
		t.Errorf("east horizon sun: got %v", d)
	}
}

func TestOrbitLoops(t *testing.T) {
	o := NewOrbit(math.NewVec3(0, 1, 0), 2, 3, 4)
	p := o.Update(1)
	if abs(o.Angle()-90) > 1e-3 {
		t.Errorf("angle after a quarter period: got %v, want 90", o.Angle())
	}
	if !p.Compare(math.NewVec3(0, 4, 2), 1e-4) {
		t.Errorf("position: got %v, want (0, 4, 2)", p)
	}

	o.Update(3.5) // wraps past a full turn
	if abs(o.Angle()-45) > 1e-3 {
		t.Errorf("angle after wrap: got %v, want 45", o.Angle())
	}

	l := Default(Point)
	o.Apply(&l)
	if !l.Position.Equal(o.Position()) {
		t.Error("Apply should move the light")
	}
}

func TestOrbitStatic(t *testing.T) {
	o := NewOrbit(math.NewVec3(0, 0, 0), 3, 1, 0)
	start := o.Position()
	o.Update(5)
	if o.Angle() != 0 || !o.Position().Equal(start) {
		t.Errorf("static orbit moved: angle %v position %v", o.Angle(), o.Position())
	}
}
