// Package config loads game configuration from YAML.
// Search order: custom path -> ./skylift.yaml -> built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Camera auto-centering modes.
const (
	CameraAuto   = "auto"
	CameraManual = "manual"
)

// CameraConfig controls viewport behavior.
type CameraConfig struct {
	// Mode is "auto" (recenter on the player every cycle) or "manual"
	// (leave the viewport where the user put it).
	Mode   string  `yaml:"mode"`
	Smooth float64 `yaml:"smooth"`
}

// PhysicsConfig overrides the per-tick movement constants. Units are
// world units per tick; the vertical axis grows downward.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpVel     float64 `yaml:"jump_vel"`
	JumpTicks   int     `yaml:"jump_ticks"`
	RunSpeed    float64 `yaml:"run_speed"`
	ElevatorVel float64 `yaml:"elevator_vel"`
}

// Config is the full game configuration.
type Config struct {
	// TickMillis is the fixed physics tick interval.
	TickMillis int           `yaml:"tick_millis"`
	Camera     CameraConfig  `yaml:"camera"`
	Physics    PhysicsConfig `yaml:"physics"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TickMillis: 100,
		Camera:     CameraConfig{Mode: CameraAuto, Smooth: 0.15},
		Physics: PhysicsConfig{
			Gravity:     3,
			JumpVel:     -5,
			JumpTicks:   15,
			RunSpeed:    3,
			ElevatorVel: 1,
		},
	}
}

// Load resolves the configuration. A custom path must load cleanly; the
// working-directory fallback is best effort.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	if data, err := os.ReadFile("skylift.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}
	return sanitize(cfg), nil
}

func sanitize(cfg Config) Config {
	if cfg.TickMillis <= 0 {
		cfg.TickMillis = Default().TickMillis
	}
	if cfg.Camera.Mode != CameraAuto && cfg.Camera.Mode != CameraManual {
		cfg.Camera.Mode = CameraAuto
	}
	if cfg.Camera.Smooth < 0 {
		cfg.Camera.Smooth = 0
	}
	return cfg
}
