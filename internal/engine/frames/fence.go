package frames

import (
	"context"
	"sync"
)

// SignalFence is a Fence signalled from Go code. It stands in for the GPU
// in tests and for work that completes on the CPU.
type SignalFence struct {
	ch   chan struct{}
	once sync.Once
}

// NewSignalFence returns an unsignalled fence.
func NewSignalFence() *SignalFence {
	return &SignalFence{ch: make(chan struct{})}
}

// Signalled returns a fence that is already signalled.
func Signalled() *SignalFence {
	f := NewSignalFence()
	f.Signal()
	return f
}

// Signal releases every waiter. Extra calls are ignored.
func (f *SignalFence) Signal() {
	f.once.Do(func() { close(f.ch) })
}

// Wait blocks until Signal is called or ctx is done.
func (f *SignalFence) Wait(ctx context.Context) error {
	select {
	case <-f.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
