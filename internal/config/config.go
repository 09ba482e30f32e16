// Package config resolves the monitor's settings: built-in defaults, then
// SYSMON_* environment overrides, then validation. Nothing is read from or
// written to disk.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	apperrors "github.com/agbru/sysmontray/internal/errors"
	"github.com/agbru/sysmontray/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SYSMON_"

const (
	// DefaultInterval is the sampling period.
	DefaultInterval = time.Second
	// MinInterval is the shortest accepted sampling period.
	MinInterval = 100 * time.Millisecond
)

// AppConfig holds the monitor's runtime settings.
type AppConfig struct {
	// Interval between sampling ticks.
	Interval time.Duration
	// LogLevel is one of debug, info, warn, error, disabled.
	LogLevel string
	// LogFile, when set, receives log output instead of stderr.
	LogFile string
	// Console runs the terminal view instead of the tray icon.
	Console bool
	// DiskWriteCompat reads the disk read counter for the write figure.
	DiskWriteCompat bool
	// TaskManagerPath is launched from the tray menu. Empty disables the item.
	TaskManagerPath string
	// NoColor disables colors in the console view.
	NoColor bool
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Interval:        DefaultInterval,
		LogLevel:        "info",
		TaskManagerPath: defaultTaskManager(),
	}
}

func defaultTaskManager() string {
	if runtime.GOOS != "windows" {
		return ""
	}
	windir := os.Getenv("windir")
	if windir == "" {
		windir = `C:\Windows`
	}
	return filepath.Join(windir, "System32", "taskmgr.exe")
}

// Load resolves the configuration from the process environment.
func Load() (AppConfig, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom resolves the configuration using lookup for environment values.
func LoadFrom(lookup func(string) (string, bool)) (AppConfig, error) {
	cfg := Default()
	if err := applyEnvOverrides(&cfg, lookup); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the monitor cannot run with.
func (c AppConfig) Validate() error {
	if c.Interval < MinInterval {
		return apperrors.ValidationError{
			Field:   "Interval",
			Message: "must be at least " + MinInterval.String(),
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "LogLevel", Message: err.Error()}
	}
	return nil
}
