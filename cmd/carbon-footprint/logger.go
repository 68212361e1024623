package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/carbon-footprint/internal/config"
)

var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

var logFormats = map[string]func() zap.Config{
	"console": zap.NewDevelopmentConfig,
	"json":    zap.NewProductionConfig,
}

// initializeLogger builds the process logger. A non-empty override replaces
// the configured level. Level defaults to info and format to json.
func initializeLogger(cfg config.LoggingConfig, override string) (*zap.Logger, error) {
	levelName := firstNonEmpty(override, cfg.Level, "info")
	level, ok := logLevels[strings.ToLower(levelName)]
	if !ok {
		return nil, fmt.Errorf("invalid log level: %s", levelName)
	}

	formatName := firstNonEmpty(cfg.Format, "json")
	newConfig, ok := logFormats[strings.ToLower(formatName)]
	if !ok {
		return nil, fmt.Errorf("invalid log format: %s", formatName)
	}

	zapConfig := newConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.OutputFile != "" {
		if err := ensureLogFile(cfg.OutputFile); err != nil {
			return nil, err
		}
		zapConfig.OutputPaths = []string{cfg.OutputFile}
		zapConfig.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zapConfig.Build()
}

// ensureLogFile creates the log file and its directory so a bad path fails
// here rather than inside zap.
func ensureLogFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
