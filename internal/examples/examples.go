// Package examples holds what the example programs share: start-up and the
// lit scene they draw through.
package examples

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/app"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/config"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/renderer"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/scene"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/window"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// ClearColor is the background shared by every example.
var ClearColor = math.NewVec3(0.08, 0.09, 0.12)

// Run parses flags, loads the config, opens the window and runs a until it
// quits. name is appended to the window title.
func Run(name string, a app.App) error {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("=== SecondEngine ===", zap.String("example", name), zap.String("backend", math.Backend))
	logger.Sugar.Debugf("Config: %+v", cfg)

	wcfg := window.ConfigFrom(cfg.Window)
	wcfg.Title = fmt.Sprintf("%s - %s", cfg.Window.Title, name)
	win, err := window.New(wcfg)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	width, height := win.Size()
	r, err := renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: ClearColor,
	})
	if err != nil {
		_ = win.Close()
		return fmt.Errorf("renderer: %w", err)
	}

	return app.Run(a, app.NewContext(cfg, win, r))
}

// NewScene creates the lit scene from the config and destroys it when c
// closes.
func NewScene(c *app.Context) (*scene.Scene, error) {
	cfg := scene.DefaultConfig()
	cfg.Ambient = c.Config.Lighting.Ambient
	cfg.ShadowBias = c.Config.Shadow.Bias

	s, err := scene.New(cfg)
	if err != nil {
		return nil, err
	}
	c.OnClose(func() error {
		s.Destroy()
		return nil
	})
	return s, nil
}

// Palette is the set of object colours the examples cycle through.
var Palette = []math.Vec3{
	math.NewVec3(0.85, 0.33, 0.31),
	math.NewVec3(0.36, 0.72, 0.36),
	math.NewVec3(0.26, 0.55, 0.89),
	math.NewVec3(0.95, 0.77, 0.28),
	math.NewVec3(0.68, 0.45, 0.82),
}

// Ground is the colour of floor planes.
var Ground = math.NewVec3(0.6, 0.6, 0.6)
