package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/term-pong/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate, got %v", err)
	}

	if got := cfg.Params(); got != engine.DefaultParams() {
		t.Errorf("Expected default params %+v, got %+v", engine.DefaultParams(), got)
	}
	if len(cfg.KeyMap()) != 0 {
		t.Errorf("Expected empty key map by default, got %v", cfg.KeyMap())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
ball_speed = 550.0
fixed_step = false
tick_interval = "10ms"
seed = 42

[display]
frame_interval = "33ms"
cell_width = 8

[keys]
p1_up = ["e", "up"]

[audio]
enabled = false

[logging]
enabled = true
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.BallSpeed != 550 {
		t.Errorf("Expected ball speed 550, got %v", cfg.Game.BallSpeed)
	}
	if cfg.Game.FixedStep {
		t.Error("Expected fixed_step false")
	}
	if cfg.Game.TickInterval.Std() != 10*time.Millisecond {
		t.Errorf("Expected tick 10ms, got %v", cfg.Game.TickInterval.Std())
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Game.Seed)
	}
	if cfg.Display.FrameInterval.Std() != 33*time.Millisecond {
		t.Errorf("Expected frame interval 33ms, got %v", cfg.Display.FrameInterval.Std())
	}
	if cfg.Display.CellWidth != 8 {
		t.Errorf("Expected cell width 8, got %d", cfg.Display.CellWidth)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug logging enabled, got %+v", cfg.Logging)
	}

	// Untouched fields keep defaults
	if cfg.Game.RacketHeight != 100 {
		t.Errorf("Expected default racket height 100, got %v", cfg.Game.RacketHeight)
	}
	if cfg.Display.CellHeight != 20 {
		t.Errorf("Expected default cell height 20, got %d", cfg.Display.CellHeight)
	}

	km := cfg.KeyMap()
	if len(km) != 1 || strings.Join(km["p1_up"], ",") != "e,up" {
		t.Errorf("Expected only p1_up=[e up], got %v", km)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[game]
ball_sped = 10.0
`)

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "game.ball_sped") {
		t.Errorf("Expected error to name the key, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeConfig(t, `[game
ball_speed = `)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed TOML")
	}

	path = writeConfig(t, `
[game]
tick_interval = "soon"
`)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unparseable duration")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PONG_GAME_BALL_SPEED", "720")
	t.Setenv("PONG_GAME_MAX_FRAME_DELTA", "100ms")
	t.Setenv("PONG_DISPLAY_HOLD_WINDOW", "250ms")
	t.Setenv("PONG_KEYS_P2_DOWN", "j,pgdn")
	t.Setenv("PONG_AUDIO_ENABLED", "false")
	t.Setenv("PONG_LOG_LEVEL", "warn")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Game.BallSpeed != 720 {
		t.Errorf("Expected ball speed 720, got %v", cfg.Game.BallSpeed)
	}
	if cfg.Game.MaxFrameDelta.Std() != 100*time.Millisecond {
		t.Errorf("Expected max frame delta 100ms, got %v", cfg.Game.MaxFrameDelta.Std())
	}
	if cfg.Display.HoldWindow.Std() != 250*time.Millisecond {
		t.Errorf("Expected hold window 250ms, got %v", cfg.Display.HoldWindow.Std())
	}
	if got := strings.Join(cfg.Keys.P2Down, ","); got != "j,pgdn" {
		t.Errorf("Expected p2_down j,pgdn, got %q", got)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled from env")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level warn, got %q", cfg.Logging.Level)
	}

	// Unset variables leave defaults alone
	if cfg.Game.PlayerSpeed != 600 {
		t.Errorf("Expected default player speed 600, got %v", cfg.Game.PlayerSpeed)
	}
	if cfg.Game.TickInterval.Std() != time.Second/60 {
		t.Errorf("Expected default tick, got %v", cfg.Game.TickInterval.Std())
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("PONG_GAME_BALL_SPEED", "fast")

	cfg := Default()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("Expected error for non-numeric ball speed")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero ball speed", func(c *Config) { c.Game.BallSpeed = 0 }, "game.ball_speed"},
		{"negative racket", func(c *Config) { c.Game.RacketHeight = -1 }, "game.racket_height"},
		{"negative padding", func(c *Config) { c.Game.Padding = -5 }, "game.padding"},
		{"zero tick", func(c *Config) { c.Game.TickInterval = 0 }, "game.tick_interval"},
		{"cap below tick", func(c *Config) { c.Game.MaxFrameDelta = Duration(time.Millisecond) }, "game.max_frame_delta"},
		{"zero frame", func(c *Config) { c.Display.FrameInterval = 0 }, "display.frame_interval"},
		{"zero cell", func(c *Config) { c.Display.CellHeight = 0 }, "cell size"},
		{"zero hold", func(c *Config) { c.Display.HoldWindow = 0 }, "display.hold_window"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error to mention %q, got %v", tt.field, err)
			}
		})
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if d.Std() != 90*time.Second {
		t.Errorf("Expected 90s, got %v", d.Std())
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "1m30s" {
		t.Errorf("Expected \"1m30s\", got %q", text)
	}

	if err := d.UnmarshalText([]byte("90")); err == nil {
		t.Error("Expected error for unitless duration")
	}
}
