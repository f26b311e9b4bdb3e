package shadow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTransition is returned when a target is moved to the state
	// it is already in, or to an unknown state.
	ErrInvalidTransition = errors.New("shadow: invalid target transition")

	// ErrUnsupportedLight is returned for light types that cast no shadows.
	ErrUnsupportedLight = errors.New("shadow: light type casts no shadows")
)

// TargetState is the resource state of a depth target.
type TargetState int

const (
	// DepthWrite: the target is bound as a depth attachment.
	DepthWrite TargetState = iota
	// ShaderRead: the target is sampled by the main pass.
	ShaderRead
)

func (s TargetState) String() string {
	switch s {
	case DepthWrite:
		return "depth-write"
	case ShaderRead:
		return "shader-read"
	default:
		return fmt.Sprintf("TargetState(%d)", int(s))
	}
}

func (s TargetState) valid() bool {
	return s == DepthWrite || s == ShaderRead
}

// Handle identifies a depth target on the Device.
type Handle uint32

// Target is one depth map owned by the pass.
type Target struct {
	ID     uuid.UUID
	Handle Handle
	Face   CubeFace // FaceNone for directional lights
	State  TargetState
}

func newTarget(h Handle, face CubeFace) *Target {
	return &Target{
		ID:     uuid.New(),
		Handle: h,
		Face:   face,
		State:  DepthWrite,
	}
}

// Transition moves the target to state to and returns the previous state.
func (t *Target) Transition(to TargetState) (TargetState, error) {
	if !to.valid() || to == t.State {
		return t.State, fmt.Errorf("%w: %s -> %s (target %s)", ErrInvalidTransition, t.State, to, t.ID)
	}
	from := t.State
	t.State = to
	return from, nil
}
