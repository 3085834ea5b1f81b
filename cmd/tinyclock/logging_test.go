package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/tinyclock/constants"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), constants.LogDir)

	logger, rotator, err := setupLogging(dir, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rotator != nil {
		t.Error("Expected nil rotator when debug=false")
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Error("Expected no-op logger when debug=false")
	}

	// No directory is created when logging is off
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected logs directory to not exist")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), constants.LogDir)

	logger, rotator, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rotator == nil {
		t.Fatal("Expected non-nil rotator when debug=true")
	}
	defer rotator.Close()

	// Verify logs directory was created
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	// Write a test log message
	logger.Info("Test log message")
	_ = logger.Sync()

	logPath := filepath.Join(dir, constants.LogFileName)
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), constants.LogDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(dir, constants.LogFileName)
	maxLogSize := int64(constants.MaxLogSizeMB) * 1024 * 1024

	// Create a log file just over the rotation size
	largeFile, err := os.Create(logPath)
	if err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}
	if err := largeFile.Truncate(maxLogSize + 1); err != nil {
		t.Fatalf("Failed to grow log file: %v", err)
	}
	largeFile.Close()

	logger, rotator, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer rotator.Close()

	// First write triggers rotation
	logger.Info("after rotation")
	_ = logger.Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != constants.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	// Verify new log file is smaller
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}
