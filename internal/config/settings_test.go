package config

import (
	"testing"
	"time"
)

func TestEnvKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"log.max_size_mb", "DUCKAPI_LOG_MAX_SIZE_MB"},
		{"checkpoint.schedule", "DUCKAPI_CHECKPOINT_SCHEDULE"},
		{"http.read-timeout", "DUCKAPI_HTTP_READ_TIMEOUT"},
	}

	for _, tt := range tests {
		if got := EnvKey(tt.key); got != tt.expected {
			t.Errorf("EnvKey(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

func TestEnvSettings(t *testing.T) {
	t.Setenv("DUCKAPI_LOG_MAX_BACKUPS", "7")

	loader := NewLoader(EnvSettings{})
	if got := loader.Int("log.max_backups", 5); got != 7 {
		t.Errorf("Int = %d, want 7", got)
	}
	if got := loader.Int("log.max_age_days", 30); got != 30 {
		t.Errorf("Int default = %d, want 30", got)
	}
}

func TestLoaderDefaults(t *testing.T) {
	loader := NewLoader(MapSettings{
		"a.int":      "12",
		"a.bad_int":  "twelve",
		"a.bool":     "true",
		"a.false":    "no",
		"a.string":   "value",
		"a.duration": "1m30s",
		"a.bad_dur":  "soon",
	})

	if got := loader.Int("a.int", 1); got != 12 {
		t.Errorf("Int = %d, want 12", got)
	}
	if got := loader.Int("a.bad_int", 1); got != 1 {
		t.Errorf("Int with invalid value = %d, want default 1", got)
	}
	if got := loader.Bool("a.bool", false); !got {
		t.Error("Bool = false, want true")
	}
	if got := loader.Bool("a.false", true); got {
		t.Error("Bool = true, want false for non-true value")
	}
	if got := loader.Bool("a.missing", true); !got {
		t.Error("Bool missing = false, want default true")
	}
	if got := loader.String("a.string", "x"); got != "value" {
		t.Errorf("String = %q, want value", got)
	}
	if got := loader.String("a.missing", "x"); got != "x" {
		t.Errorf("String missing = %q, want x", got)
	}
	if got := loader.Duration("a.duration", time.Second); got != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", got)
	}
	if got := loader.Duration("a.bad_dur", time.Second); got != time.Second {
		t.Errorf("Duration invalid = %v, want default 1s", got)
	}
}
