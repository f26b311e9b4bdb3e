// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/frames"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor math.Vec3
}

// Renderer owns global OpenGL state and per-frame bookkeeping.
type Renderer struct {
	config Config
	log    *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("backend", math.Backend),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Meshes wind clockwise when seen from outside.
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CW)
	gl.CullFace(gl.BACK)

	c := cfg.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() error {
	r.log.Info("closing renderer")
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("renderer: pending GL error 0x%x", code)
	}
	return nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// BeginFrame binds the default framebuffer and clears it.
func (r *Renderer) BeginFrame() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EndFrame flushes the frame's commands and returns a fence that is
// signalled when the GPU has finished them.
func (r *Renderer) EndFrame() frames.Fence {
	return NewFence()
}
