package renderer

import (
	"context"
	"errors"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/frames"
)

// fencePoll is how long one ClientWaitSync call may block before the
// context is checked again.
const fencePoll = time.Millisecond

// Fence wraps a GL sync object.
type Fence struct {
	sync uintptr
}

var _ frames.Fence = (*Fence)(nil)

// NewFence inserts a fence after every command issued so far.
func NewFence() *Fence {
	return &Fence{sync: gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)}
}

// Wait blocks until the GPU reaches the fence or ctx is done.
func (f *Fence) Wait(ctx context.Context) error {
	if f.sync == 0 {
		return nil
	}
	flags := uint32(gl.SYNC_FLUSH_COMMANDS_BIT)
	for {
		switch gl.ClientWaitSync(f.sync, flags, uint64(fencePoll.Nanoseconds())) {
		case gl.ALREADY_SIGNALED, gl.CONDITION_SATISFIED:
			return nil
		case gl.WAIT_FAILED:
			return errors.New("renderer: glClientWaitSync failed")
		}
		flags = 0
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Release deletes the sync object.
func (f *Fence) Release() {
	if f.sync != 0 {
		gl.DeleteSync(f.sync)
		f.sync = 0
	}
}
