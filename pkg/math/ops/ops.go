// Package ops holds the pieces shared by both math backends: float tolerance
// policy, angle conversion, error kinds and the method sets every backend
// type must expose.
package ops

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// FloatEpsilon is the smallest float32 e such that 1 + e != 1.
	FloatEpsilon float32 = 1.192092896e-07

	// Pi as float32.
	Pi float32 = math.Pi

	deg2Rad = Pi / 180
	rad2Deg = 180 / Pi
)

// CompareFloats reports whether a and b are equal within a relative
// tolerance: |a-b| <= max(|a|,|b|) * maxRelDiff.
func CompareFloats(a, b, maxRelDiff float32) bool {
	diff := Abs(a - b)
	a = Abs(a)
	b = Abs(b)
	largest := a
	if b > a {
		largest = b
	}
	return diff <= largest*maxRelDiff
}

// Equal32 is CompareFloats with the default FloatEpsilon tolerance.
func Equal32(a, b float32) bool {
	return CompareFloats(a, b, FloatEpsilon)
}

// NearZero reports whether |x| <= FloatEpsilon.
func NearZero(x float32) bool {
	return Abs(x) <= FloatEpsilon
}

// Degenerate reports whether a length cannot be used as a divisor without
// producing Inf or NaN.
func Degenerate(length float32) bool {
	if !(length > 0) {
		return true
	}
	inv := 1 / length
	return math.IsInf(float64(inv), 0)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * deg2Rad
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * rad2Deg
}

// Abs returns |x|.
func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// SinCos returns sin and cos of an angle in radians.
func SinCos(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}

// Tan returns the tangent of an angle in radians.
func Tan(rad float32) float32 {
	return float32(math.Tan(float64(rad)))
}

// Clamp returns f clamped to [low, high].
func Clamp[T constraints.Float](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}
