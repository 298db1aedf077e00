package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/input"
	"github.com/lixenwraith/term-pong/session"
	"github.com/lixenwraith/term-pong/vmath"
)

var (
	configFlag     = flag.String("config", "", "Path to TOML config file")
	debugFlag      = flag.Bool("debug", false, "Enable debug logging to logs/term-pong.log")
	variableDTFlag = flag.Bool("variable-dt", false, "Step once per frame with the real frame delta")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *debugFlag, *variableDTFlag, *muteFlag)

	keys, err := input.LoadKeyTable(cfg.KeyMap())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load key bindings: %v\n", err)
		os.Exit(1)
	}

	logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mTERM-PONG CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		logger.Error("crash", zap.Any("panic", r))
		_ = logger.Sync()
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	var sound session.SoundPlayer
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", zap.Error(err))
		} else {
			defer sm.Cleanup()
		}
		sound = sm
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sim := engine.NewSimulation(cfg.Params(), vmath.NewFastRand(seed))

	sess := session.New(screen, sim, session.Options{
		FrameInterval: cfg.Display.FrameInterval.Std(),
		CellWidth:     cfg.Display.CellWidth,
		CellHeight:    cfg.Display.CellHeight,
		HoldWindow:    cfg.Display.HoldWindow.Std(),
		Keys:          &keys,
		Sound:         sound,
		Logger:        logger,
		CrashHandler:  crash,
	})
	logger.Info("starting",
		zap.String("match_id", sess.MatchID()),
		zap.Uint64("seed", seed),
		zap.Bool("audio", cfg.Audio.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session ended with error", zap.Error(err))
	}

	final := sess.Snapshot()
	logger.Info("final score",
		zap.String("match_id", sess.MatchID()),
		zap.Int("score1", final.Score1),
		zap.Int("score2", final.Score2),
	)
}

// loadConfig layers defaults, the optional TOML file and PONG_* env vars, then validates
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags lets command-line switches override file and env settings
func applyFlags(cfg *config.Config, debugOn, variableDT, mute bool) {
	if debugOn {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if variableDT {
		cfg.Game.FixedStep = false
	}
	if mute {
		cfg.Audio.Enabled = false
	}
}
