package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// SettingsGetter is an interface for retrieving settings by dotted key
type SettingsGetter interface {
	GetSetting(key string) (string, error)
}

// EnvPrefix is prepended to every environment variable read by EnvSettings.
const EnvPrefix = "DUCKAPI_"

// EnvSettings reads settings from environment variables. The key
// "log.max_size_mb" maps to DUCKAPI_LOG_MAX_SIZE_MB.
type EnvSettings struct{}

// GetSetting returns the environment value for key, or "" when unset
func (EnvSettings) GetSetting(key string) (string, error) {
	return os.Getenv(EnvKey(key)), nil
}

// EnvKey converts a dotted settings key to its environment variable name
func EnvKey(key string) string {
	key = strings.NewReplacer(".", "_", "-", "_").Replace(key)
	return EnvPrefix + strings.ToUpper(key)
}

// MapSettings serves settings from a fixed map
type MapSettings map[string]string

// GetSetting returns the mapped value for key
func (m MapSettings) GetSetting(key string) (string, error) {
	return m[key], nil
}

// Loader provides typed access to settings with default values
type Loader struct {
	src SettingsGetter
}

// NewLoader creates a new settings loader
func NewLoader(src SettingsGetter) *Loader {
	return &Loader{src: src}
}

// Int retrieves an integer setting, returning defaultVal if not found or invalid
func (l *Loader) Int(key string, defaultVal int) int {
	if val, _ := l.src.GetSetting(key); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			return v
		}
	}
	return defaultVal
}

// Bool retrieves a boolean setting, returning defaultVal if not found
// Recognizes "true" as true, anything else (including "false") as false
func (l *Loader) Bool(key string, defaultVal bool) bool {
	if val, _ := l.src.GetSetting(key); val != "" {
		return val == "true"
	}
	return defaultVal
}

// String retrieves a string setting, returning defaultVal if not found or empty
func (l *Loader) String(key, defaultVal string) string {
	if val, _ := l.src.GetSetting(key); val != "" {
		return val
	}
	return defaultVal
}

// Duration retrieves a duration setting, returning defaultVal if not found or invalid
// Expects the value to be in Go duration format (e.g., "1h30m", "5s")
func (l *Loader) Duration(key string, defaultVal time.Duration) time.Duration {
	if val, _ := l.src.GetSetting(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
