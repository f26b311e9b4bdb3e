// Package frames paces the CPU against the GPU with a fixed number of
// frames in flight.
//
// Each slot in the Ring remembers the fence submitted with the last frame
// that used it. Begin waits on that fence before the slot is reused, so the
// CPU never runs more than Len frames ahead of the GPU. A Ring is used from
// the render thread only.
package frames

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
)

// DefaultInFlight is the number of frames the CPU may record ahead.
const DefaultInFlight = 2

// ErrClosed is returned by every Ring method after Close.
var ErrClosed = errors.New("frames: ring closed")

// Fence is signalled by the GPU when a frame's work has completed.
type Fence interface {
	Wait(ctx context.Context) error
}

// releaser is implemented by fences that hold a driver object.
type releaser interface {
	Release()
}

// Ring is a fixed set of frame slots.
type Ring struct {
	fences  []Fence
	slot    int
	frame   uint64
	inFrame bool
	closed  bool
	log     *zap.Logger
}

// NewRing creates a ring with n slots. n < 1 selects DefaultInFlight.
func NewRing(n int) *Ring {
	if n < 1 {
		n = DefaultInFlight
	}
	return &Ring{
		fences: make([]Fence, n),
		log:    logger.Named("frames"),
	}
}

// Len returns the number of slots.
func (r *Ring) Len() int { return len(r.fences) }

// Slot returns the index of the current slot.
func (r *Ring) Slot() int { return r.slot }

// Frame returns the number of frames ended so far.
func (r *Ring) Frame() uint64 { return r.frame }

// Begin waits until the current slot's previous frame has finished on the
// GPU and returns the slot index. If the wait fails the slot keeps its
// fence, unreleased, and the next Begin waits on it again.
func (r *Ring) Begin(ctx context.Context) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if r.inFrame {
		return 0, fmt.Errorf("frames: Begin called twice for frame %d", r.frame)
	}
	if f := r.fences[r.slot]; f != nil {
		if err := f.Wait(ctx); err != nil {
			return 0, fmt.Errorf("frames: slot %d: %w", r.slot, err)
		}
		release(f)
		r.fences[r.slot] = nil
	}
	r.inFrame = true
	return r.slot, nil
}

// End records the fence for the frame just submitted and advances to the
// next slot. A nil fence marks the slot as immediately reusable.
func (r *Ring) End(f Fence) error {
	if r.closed {
		return ErrClosed
	}
	if !r.inFrame {
		return fmt.Errorf("frames: End without Begin (frame %d)", r.frame)
	}
	r.fences[r.slot] = f
	r.slot = (r.slot + 1) % len(r.fences)
	r.frame++
	r.inFrame = false
	return nil
}

// Close waits for every outstanding frame. Later calls return ErrClosed.
func (r *Ring) Close(ctx context.Context) error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true

	var err error
	for i, f := range r.fences {
		if f == nil {
			continue
		}
		if werr := f.Wait(ctx); werr != nil {
			err = multierr.Append(err, fmt.Errorf("frames: slot %d: %w", i, werr))
		}
		release(f)
		r.fences[i] = nil
	}
	r.log.Debug("ring closed", zap.Uint64("frames", r.frame), zap.Error(err))
	return err
}

func release(f Fence) {
	if rel, ok := f.(releaser); ok {
		rel.Release()
	}
}
