package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/tinyclock/constants"
)

// setupLogging returns a no-op logger unless debug is set
// Debug logs are JSON lines in dir, rotated by size so the full-screen demo never writes to the terminal
func setupLogging(dir string, debug bool) (*zap.Logger, *lumberjack.Logger, error) {
	if !debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.LogFileName),
		MaxSize:    constants.MaxLogSizeMB, // megabytes
		MaxBackups: constants.MaxLogBackups,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), zap.DebugLevel)

	return zap.New(core), rotator, nil
}
