package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/term-pong/config"
)

const (
	logFileName = "term-pong.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns a file logger when enabled and a no-op logger otherwise
// The terminal belongs to the renderer, so nothing is ever written to stdout/stderr
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", dir, err)
	}

	logPath := filepath.Join(dir, logFileName)
	if err := rotateLog(logPath); err != nil {
		return nil, err
	}

	level, err := cfg.ParseLevel()
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level %q", config.ErrInvalidConfig, cfg.Level)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{logPath}
	zapCfg.ErrorOutputPaths = []string{logPath}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// rotateLog moves an oversized log aside to <path>.old, replacing any previous one
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log %s: %w", logPath, err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}
	if err := os.Rename(logPath, logPath+".old"); err != nil {
		return fmt.Errorf("rotate log %s: %w", logPath, err)
	}
	return nil
}
