package flixel

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// TestLogger_DefaultSilent verifies the package logger discards records
// until someone opts in.
func TestLogger_DefaultSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger reports itself enabled")
	}
}

// TestLogger_SetLoggerCaptures verifies an installed logger receives the
// load-time debug record.
func TestLogger_SetLoggerCaptures(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := NewTilemap("0,1\n1,0", Config{SheetWidth: 32, SheetHeight: 16, TileWidth: 16}); err != nil {
		t.Fatalf("NewTilemap: %v", err)
	}
	if !strings.Contains(buf.String(), "tilemap loaded") {
		t.Errorf("log output %q lacks the load record", buf.String())
	}
}

// TestLogger_NilRestoresSilence verifies SetLogger(nil) reinstalls the
// discarding logger.
func TestLogger_NilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("record leaked to the replaced logger: %q", buf.String())
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("restored logger reports itself enabled")
	}
}
