// Package config handles engine configuration loading and management.
package config

import (
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shadow"
)

// Config holds all engine settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Shadow   ShadowConfig   `yaml:"shadow"`
	Lighting LightingConfig `yaml:"lighting"`
	Frames   FramesConfig   `yaml:"frames"`
	Logging  LoggingConfig  `yaml:"logging"`

	path string // file the config was loaded from, if any
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the projection and the free-fly controller speeds.
type CameraConfig struct {
	FOVDegrees       float32 `yaml:"fov_degrees"`
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
	MoveSpeed        float32 `yaml:"move_speed"`         // units per second
	TurnSpeedDegrees float32 `yaml:"turn_speed_degrees"` // degrees per second
}

// ShadowConfig holds shadow map settings.
type ShadowConfig struct {
	LightType       lighting.Type `yaml:"light_type"`
	Resolution      int32         `yaml:"resolution"`
	OrthoHalfExtent float32       `yaml:"ortho_half_extent"` // 0 fits the scene
	Near            float32       `yaml:"near"`
	Far             float32       `yaml:"far"`
	Bias            float32       `yaml:"bias"`
}

// Pass converts the section to the shadow pass settings.
func (s ShadowConfig) Pass() shadow.Config {
	return shadow.Config{
		Resolution:      s.Resolution,
		OrthoHalfExtent: s.OrthoHalfExtent,
		Near:            s.Near,
		Far:             s.Far,
		Bias:            s.Bias,
	}
}

// LightingConfig holds scene lighting settings.
type LightingConfig struct {
	Ambient      float32 `yaml:"ambient"`
	OrbitSeconds float32 `yaml:"orbit_seconds"` // 0 disables light animation
	OrbitRadius  float32 `yaml:"orbit_radius"`
}

// FramesConfig holds CPU/GPU pacing settings.
type FramesConfig struct {
	InFlight int `yaml:"in_flight"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "SecondEngine",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOVDegrees:       45,
			Near:             0.1,
			Far:              100,
			MoveSpeed:        5,
			TurnSpeedDegrees: 90,
		},
		Shadow: ShadowConfig{
			LightType:  lighting.Directional,
			Resolution: shadow.DefaultResolution,
			Near:       0.1,
			Far:        50,
			Bias:       0.005,
		},
		Lighting: LightingConfig{
			Ambient:      0.1,
			OrbitSeconds: 8,
			OrbitRadius:  5,
		},
		Frames: FramesConfig{
			InFlight: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Path returns the file the config was loaded from, or "" when only
// defaults and flags were used.
func (c *Config) Path() string {
	return c.path
}
