package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/duckapi/internal/config"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := map[int]string{0: "info", 1: "debug", 2: "trace", 5: "trace"}
	for verbosity, want := range tests {
		if got := LevelForVerbosity(verbosity); got != want {
			t.Errorf("LevelForVerbosity(%d) = %q, want %q", verbosity, got, want)
		}
	}
}

func TestApplyWritesRotatingFile(t *testing.T) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "logs", "duckapi.log")
	loader := config.NewLoader(config.MapSettings{"log.compress": "false"})

	Apply("debug", loader, path)
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", zerolog.GlobalLevel())
	}

	log.Info().Str("engine", "duckdb").Msg("hello from test")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file missing message: %q", data)
	}
}

func TestFilePathForDB(t *testing.T) {
	got := FilePathForDB("/var/lib/duckapi/data.duckdb")
	if got != "/var/lib/duckapi/duckapi.log" {
		t.Errorf("FilePathForDB = %q", got)
	}
	if got := FilePathForDB(""); got != DefaultLogFileName {
		t.Errorf("FilePathForDB(\"\") = %q", got)
	}
}
