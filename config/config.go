// Package config loads game settings from defaults, an optional TOML file and
// PONG_* environment variables, in that order of precedence
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PONG_"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Game    GameConfig    `toml:"game" envPrefix:"GAME_"`
	Display DisplayConfig `toml:"display" envPrefix:"DISPLAY_"`
	Keys    KeysConfig    `toml:"keys" envPrefix:"KEYS_"`
	Audio   AudioConfig   `toml:"audio" envPrefix:"AUDIO_"`
	Logging LoggingConfig `toml:"logging" envPrefix:"LOG_"`
}

type GameConfig struct {
	RacketWidth   float64  `toml:"racket_width" env:"RACKET_WIDTH"`
	RacketHeight  float64  `toml:"racket_height" env:"RACKET_HEIGHT"`
	BallSize      float64  `toml:"ball_size" env:"BALL_SIZE"`
	PlayerSpeed   float64  `toml:"player_speed" env:"PLAYER_SPEED"` // logical px/sec
	BallSpeed     float64  `toml:"ball_speed" env:"BALL_SPEED"`     // logical px/sec
	Padding       float64  `toml:"padding" env:"PADDING"`
	FixedStep     bool     `toml:"fixed_step" env:"FIXED_STEP"`
	TickInterval  Duration `toml:"tick_interval" env:"TICK_INTERVAL"`
	MaxFrameDelta Duration `toml:"max_frame_delta" env:"MAX_FRAME_DELTA"`
	Seed          uint64   `toml:"seed" env:"SEED"` // 0 seeds from the clock
}

type DisplayConfig struct {
	FrameInterval Duration `toml:"frame_interval" env:"FRAME_INTERVAL"`
	CellWidth     int      `toml:"cell_width" env:"CELL_WIDTH"`   // logical px per column
	CellHeight    int      `toml:"cell_height" env:"CELL_HEIGHT"` // logical px per row
	HoldWindow    Duration `toml:"hold_window" env:"HOLD_WINDOW"`
}

// KeysConfig lists key names per action; empty keeps the default binding
type KeysConfig struct {
	P1Up   []string `toml:"p1_up" env:"P1_UP" envSeparator:","`
	P1Down []string `toml:"p1_down" env:"P1_DOWN" envSeparator:","`
	P2Up   []string `toml:"p2_up" env:"P2_UP" envSeparator:","`
	P2Down []string `toml:"p2_down" env:"P2_DOWN" envSeparator:","`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"` // base-2 gain exponent, 0 = unity
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled" env:"ENABLED"`
	Level   string `toml:"level" env:"LEVEL"`
	Format  string `toml:"format" env:"FORMAT"` // "json" or "console"
	Dir     string `toml:"dir" env:"DIR"`
}

// ParseLevel resolves Level; empty means info
func (l LoggingConfig) ParseLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(l.Level)
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			RacketWidth:   constants.RacketWidth,
			RacketHeight:  constants.RacketHeight,
			BallSize:      constants.BallSize,
			PlayerSpeed:   constants.PlayerSpeed,
			BallSpeed:     constants.BallSpeed,
			Padding:       constants.Padding,
			FixedStep:     true,
			TickInterval:  Duration(constants.TickInterval),
			MaxFrameDelta: Duration(constants.MaxFrameDelta),
		},
		Display: DisplayConfig{
			FrameInterval: Duration(constants.FrameUpdateInterval),
			CellWidth:     constants.CellWidth,
			CellHeight:    constants.CellHeight,
			HoldWindow:    Duration(constants.KeyHoldWindow),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Dir:    "logs",
		},
	}
}

// Load reads a TOML file over the defaults
// Keys the file sets that no field accepts are rejected
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overlays PONG_* environment variables; unset variables leave fields untouched
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values the simulation or renderer cannot run with
func (c *Config) Validate() error {
	g := c.Game
	positives := []struct {
		name string
		v    float64
	}{
		{"game.racket_width", g.RacketWidth},
		{"game.racket_height", g.RacketHeight},
		{"game.ball_size", g.BallSize},
		{"game.player_speed", g.PlayerSpeed},
		{"game.ball_speed", g.BallSpeed},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}
	if g.Padding < 0 {
		return fmt.Errorf("%w: game.padding must not be negative, got %g", ErrInvalidConfig, g.Padding)
	}
	if g.TickInterval <= 0 {
		return fmt.Errorf("%w: game.tick_interval must be positive", ErrInvalidConfig)
	}
	if g.MaxFrameDelta < g.TickInterval {
		return fmt.Errorf("%w: game.max_frame_delta %v below tick_interval %v",
			ErrInvalidConfig, g.MaxFrameDelta.Std(), g.TickInterval.Std())
	}

	d := c.Display
	if d.FrameInterval <= 0 {
		return fmt.Errorf("%w: display.frame_interval must be positive", ErrInvalidConfig)
	}
	if d.CellWidth <= 0 || d.CellHeight <= 0 {
		return fmt.Errorf("%w: display cell size must be positive, got %dx%d", ErrInvalidConfig, d.CellWidth, d.CellHeight)
	}
	if d.HoldWindow <= 0 {
		return fmt.Errorf("%w: display.hold_window must be positive", ErrInvalidConfig)
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if _, err := c.Logging.ParseLevel(); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}

// Params converts the game section for the simulation
func (c *Config) Params() engine.Params {
	return engine.Params{
		RacketWidth:   c.Game.RacketWidth,
		RacketHeight:  c.Game.RacketHeight,
		BallSize:      c.Game.BallSize,
		PlayerSpeed:   c.Game.PlayerSpeed,
		BallSpeed:     c.Game.BallSpeed,
		Padding:       c.Game.Padding,
		FixedStep:     c.Game.FixedStep,
		TickInterval:  c.Game.TickInterval.Std(),
		MaxFrameDelta: c.Game.MaxFrameDelta.Std(),
	}
}

// KeyMap returns the non-empty key lists by action name
func (c *Config) KeyMap() map[string][]string {
	m := make(map[string][]string, 4)
	add := func(name string, keys []string) {
		if len(keys) > 0 {
			m[name] = keys
		}
	}
	add("p1_up", c.Keys.P1Up)
	add("p1_down", c.Keys.P1Down)
	add("p2_up", c.Keys.P2Up)
	add("p2_down", c.Keys.P2Down)
	return m
}
