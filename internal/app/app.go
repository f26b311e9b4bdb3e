// Package app runs an example application against the engine.
//
// An App implements four lifecycle hooks. Everything the hooks need is
// reached through the Context, which owns the engine resources and is
// closed exactly once when Run returns.
package app

import (
	"image"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/frames"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/input"
)

// App is an example application.
type App interface {
	// Init is called once, after the context is ready.
	Init(ctx *Context) error

	// Update is called every frame with the time since the last frame.
	Update(ctx *Context, dt float64) error

	// Draw is called every frame between BeginFrame and EndFrame.
	Draw(ctx *Context) error

	// Shutdown is called once before the context is closed, if Init
	// succeeded.
	Shutdown(ctx *Context) error
}

// Platform is the window system seen by the loop.
type Platform interface {
	// PollEvents feeds pending events into in and reports whether the
	// user asked to quit.
	PollEvents(in *input.State) bool
	Size() (width, height int)
	SwapBuffers()
	Close() error
}

// GPU is the renderer seen by the loop.
type GPU interface {
	Resize(width, height int)
	BeginFrame()
	EndFrame() frames.Fence
	Close() error
}

// Capturer is implemented by GPUs that can read back the frame just drawn.
// Run saves a screenshot when F12 is pressed.
type Capturer interface {
	Capture() (image.Image, error)
}
