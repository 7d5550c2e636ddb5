package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TickMillis != 100 {
		t.Fatalf("TickMillis = %d, want 100", cfg.TickMillis)
	}
	if cfg.Camera.Mode != CameraAuto {
		t.Fatalf("Camera.Mode = %q, want auto", cfg.Camera.Mode)
	}
	if cfg.Physics.Gravity != 3 || cfg.Physics.JumpVel != -5 || cfg.Physics.JumpTicks != 15 {
		t.Fatalf("unexpected physics defaults: %+v", cfg.Physics)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skylift.yaml")
	data := []byte("tick_millis: 50\ncamera:\n  mode: manual\nphysics:\n  gravity: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickMillis != 50 {
		t.Fatalf("TickMillis = %d, want 50", cfg.TickMillis)
	}
	if cfg.Camera.Mode != CameraManual {
		t.Fatalf("Camera.Mode = %q, want manual", cfg.Camera.Mode)
	}
	if cfg.Physics.Gravity != 4 {
		t.Fatalf("Gravity = %v, want 4", cfg.Physics.Gravity)
	}
	// Untouched fields keep their defaults.
	if cfg.Physics.JumpTicks != 15 {
		t.Fatalf("JumpTicks = %d, want default 15", cfg.Physics.JumpTicks)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing custom path")
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   Config
		want func(Config) bool
	}{
		{
			name: "bad_tick",
			in:   Config{TickMillis: -5},
			want: func(c Config) bool { return c.TickMillis == 100 },
		},
		{
			name: "bad_camera_mode",
			in:   Config{TickMillis: 100, Camera: CameraConfig{Mode: "cinematic"}},
			want: func(c Config) bool { return c.Camera.Mode == CameraAuto },
		},
		{
			name: "negative_smooth",
			in:   Config{TickMillis: 100, Camera: CameraConfig{Mode: CameraAuto, Smooth: -1}},
			want: func(c Config) bool { return c.Camera.Smooth == 0 },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := sanitize(c.in); !c.want(got) {
				t.Fatalf("sanitize(%+v) = %+v", c.in, got)
			}
		})
	}
}
