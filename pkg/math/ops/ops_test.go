package ops

import (
	"math"
	"testing"
)

func TestCompareFloats(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"identical", 1, 1, true},
		{"zeros", 0, 0, true},
		{"one ulp at 1", 1, math.Nextafter32(1, 2), true},
		{"relative large", 1e6, 1e6 + 0.05, true},
		{"absolute tiny is not enough", 0, 1e-9, false},
		{"clearly different", 1, 1.001, false},
		{"sign", -1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareFloats(tt.a, tt.b, FloatEpsilon); got != tt.want {
				t.Errorf("CompareFloats(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDegenerate(t *testing.T) {
	if !Degenerate(0) {
		t.Error("zero length should be degenerate")
	}
	if !Degenerate(float32(math.NaN())) {
		t.Error("NaN length should be degenerate")
	}
	if !Degenerate(1e-45) {
		t.Error("denormal length should be degenerate")
	}
	if Degenerate(1e-3) {
		t.Error("small but usable length should not be degenerate")
	}
}

func TestDegRad(t *testing.T) {
	if got := DegToRad(180); got != Pi {
		t.Errorf("DegToRad(180) = %v, want %v", got, Pi)
	}
	if got := RadToDeg(Pi / 2); Abs(got-90) > 1e-4 {
		t.Errorf("RadToDeg(pi/2) = %v, want 90", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-2.5) != 2.5 || Abs(2.5) != 2.5 {
		t.Error("Abs wrong")
	}
	if math.Signbit(float64(Abs(float32(math.Copysign(0, -1))))) {
		t.Error("Abs(-0) should clear the sign bit")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(float32(5), 0, 1); got != 1 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(-1.0, 0, 1); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(float32(0.5), 0, 1); got != 0.5 {
		t.Errorf("Clamp mid = %v", got)
	}
}
