package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/input"
)

// Run drives a until the user quits or a hook fails, then shuts it down and
// closes ctx.
//
// Each frame: poll input, wait for the frame slot, move the camera, Update,
// BeginFrame, Draw, EndFrame, present.
func Run(a App, c *Context) (err error) {
	defer func() {
		err = multierr.Append(err, c.Close())
	}()

	if err := a.Init(c); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer func() {
		if serr := a.Shutdown(c); serr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown: %w", serr))
		}
	}()

	start := c.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	c.Log.Info("starting loop")

	for !c.quit {
		c.Input.BeginFrame()
		if c.Platform.PollEvents(c.Input) || c.Input.IsKeyPressed(input.KeyEscape) {
			break
		}
		if width, height, ok := c.Input.Resized(); ok {
			c.resize(width, height)
		}

		now := c.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		c.Time = now.Sub(start).Seconds()

		slot, err := c.Frames.Begin(context.Background())
		if err != nil {
			return fmt.Errorf("frame %d: %w", c.Frame, err)
		}
		c.Slot = slot

		c.Controller.Update(c.Input.Intent(), float32(dt))
		if c.Input.IsButtonDown(input.MouseRight) {
			dx, dy := c.Input.MouseDelta()
			c.Controller.HandleDrag(float32(dx), float32(dy))
		}

		if err := a.Update(c, dt); err != nil {
			return fmt.Errorf("update: %w", err)
		}

		c.GPU.BeginFrame()
		if err := a.Draw(c); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		if c.Input.IsKeyPressed(input.KeyF12) {
			c.capture()
		}
		fence := c.GPU.EndFrame()
		c.Platform.SwapBuffers()

		if err := c.Frames.End(fence); err != nil {
			return fmt.Errorf("frame %d: %w", c.Frame, err)
		}
		c.Frame = c.Frames.Frame()

		// FPS counter
		frameCount++
		if now.Sub(fpsTimer) >= time.Second {
			c.Log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = now
		}
	}

	c.Log.Info("loop finished", zap.Uint64("frames", c.Frame))
	return nil
}

func (c *Context) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.GPU.Resize(width, height)
	c.Camera.AspectRatio = float32(width) / float32(height)
	c.Camera.UpdatePerspectiveProjectionMatrix()
}

// capture saves the frame just drawn. Failures are logged; a missing
// screenshot never stops the loop.
func (c *Context) capture() {
	gpu, ok := c.GPU.(Capturer)
	if !ok {
		c.Log.Warn("screenshots not supported by renderer")
		return
	}
	img, err := gpu.Capture()
	if err != nil {
		c.Log.Error("screenshot capture failed", zap.Error(err))
		return
	}
	path, err := c.Screenshots.Save(img)
	if err != nil {
		c.Log.Error("screenshot save failed", zap.Error(err))
		return
	}
	c.Log.Info("screenshot saved", zap.String("path", path))
}
