package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	path := ConfigPath()
	if path == "" {
		path = locate()
	}
	return load(path)
}

// LoadFile is Load with an explicit file. Watch uses it to reload.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: empty path")
	}
	return load(path)
}

func load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.path = path
	}

	if err := applyFlags(cfg); err != nil {
		return nil, fmt.Errorf("command line: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// EnvConfig names the environment variable that points at a config file
// when -config is not given.
const EnvConfig = "SECONDENGINE_CONFIG"

// locate returns the first existing file among $SECONDENGINE_CONFIG,
// ./config.yaml and the user config dir, or "" to run on defaults.
func locate() string {
	for _, path := range []string{
		os.Getenv(EnvConfig),
		"config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	} {
		if path == "" {
			continue
		}
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "SecondEngine")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SecondEngine")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "second-engine")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "second-engine")
	}
}

// decodeFile overlays the YAML document at path onto cfg. Keys missing
// from the file keep their current values; unknown keys are errors.
func decodeFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
