package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jwebster45206/tower-client/internal/config"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)

	id := uuid.New()
	WithError(WithSession(log, id), errors.New("boom")).Info("hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if rec["session_id"] != id.String() {
		t.Errorf("session_id = %v, want %s", rec["session_id"], id)
	}
	if rec["error"] != "boom" {
		t.Errorf("error = %v, want boom", rec["error"])
	}
}

func TestNew_DevelopmentWritesTextAndHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Environment: "development", LogLevel: slog.LevelWarn}, &buf)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text record, got %q", out)
	}
}

func TestSetup_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log, closer, err := Setup(&config.Config{LogFile: path, LogLevel: slog.LevelInfo})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Info("written")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestSetup_NoLogFileDiscards(t *testing.T) {
	log, closer, err := Setup(&config.Config{LogLevel: slog.LevelInfo})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()
	log.Info("nowhere")
}
