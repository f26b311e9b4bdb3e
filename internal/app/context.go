package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/config"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/camera"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/frames"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/input"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/screenshot"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
)

// closeTimeout bounds how long Close waits for the GPU.
const closeTimeout = 5 * time.Second

// Context owns the engine resources shared by an App's hooks.
type Context struct {
	Config      *config.Config
	Platform    Platform
	GPU         GPU
	Input       *input.State
	Camera      *camera.Camera
	Controller  *camera.Controller
	Frames      *frames.Ring
	Screenshots *screenshot.Writer
	Log         *zap.Logger

	// Per-frame values, valid inside Update and Draw.
	Slot  int     // frame-in-flight slot
	Frame uint64  // frames completed so far
	Time  float64 // seconds since Run started

	// Now is the clock used by Run. Tests replace it.
	Now func() time.Time

	quit      bool
	closers   []func() error
	closeOnce sync.Once
	closeErr  error
}

// NewContext builds a context around an already created platform and GPU.
// The camera starts at the origin with the configured perspective
// projection; apps place it in Init.
func NewContext(cfg *config.Config, p Platform, gpu GPU) *Context {
	cam := camera.New()
	cam.VFov = cfg.Camera.FOVDegrees
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	width, height := p.Size()
	if height > 0 {
		cam.AspectRatio = float32(width) / float32(height)
	}
	cam.UpdateViewMatrix()
	cam.UpdatePerspectiveProjectionMatrix()

	ctrl := camera.NewController(cam)
	ctrl.MoveSpeed = cfg.Camera.MoveSpeed
	ctrl.TurnSpeed = cfg.Camera.TurnSpeedDegrees

	return &Context{
		Config:      cfg,
		Platform:    p,
		GPU:         gpu,
		Input:       input.New(),
		Camera:      cam,
		Controller:  ctrl,
		Frames:      frames.NewRing(cfg.Frames.InFlight),
		Screenshots: screenshot.New("screenshots", "secondengine"),
		Log:         logger.Named("app"),
		Now:         time.Now,
	}
}

// Quit asks Run to stop after the current frame.
func (c *Context) Quit() {
	c.quit = true
}

// OnClose registers fn to run when the context is closed. Functions run in
// reverse registration order, before the GPU and platform are released.
func (c *Context) OnClose(fn func() error) {
	c.closers = append(c.closers, fn)
}

// Close waits for in-flight frames and releases everything the context
// owns. Only the first call does any work; later calls return its result.
func (c *Context) Close() error {
	c.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		var err error
		if ferr := c.Frames.Close(ctx); ferr != nil && !errors.Is(ferr, frames.ErrClosed) {
			err = multierr.Append(err, fmt.Errorf("frames: %w", ferr))
		}
		for i := len(c.closers) - 1; i >= 0; i-- {
			err = multierr.Append(err, c.closers[i]())
		}
		c.closers = nil
		if c.GPU != nil {
			err = multierr.Append(err, c.GPU.Close())
		}
		if c.Platform != nil {
			err = multierr.Append(err, c.Platform.Close())
		}
		c.closeErr = err
		c.Log.Info("context closed", zap.Uint64("frames", c.Frame), zap.Error(err))
	})
	return c.closeErr
}
