package ops

import "errors"

var (
	// ErrDegenerateVector is returned when a zero (or denormal) length vector
	// is normalized or used as a rotation axis.
	ErrDegenerateVector = errors.New("math: degenerate vector")

	// ErrSingularMatrix is returned when inverting a matrix whose determinant
	// is within FloatEpsilon of zero.
	ErrSingularMatrix = errors.New("math: singular matrix")

	// ErrNonUnitQuaternion is returned when a rotation requires a unit
	// quaternion and the input is not one.
	ErrNonUnitQuaternion = errors.New("math: quaternion is not unit length")
)
