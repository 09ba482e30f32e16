package config

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/agbru/sysmontray/internal/errors"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(envMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Interval != time.Second {
		t.Errorf("Interval = %v, want 1s", cfg.Interval)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Console || cfg.DiskWriteCompat || cfg.NoColor || cfg.LogFile != "" {
		t.Errorf("unexpected non-default config: %+v", cfg)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(envMap(map[string]string{
		"SYSMON_INTERVAL":          "250ms",
		"SYSMON_LOG_LEVEL":         "DEBUG",
		"SYSMON_LOG_FILE":          "/tmp/sysmon.log",
		"SYSMON_CONSOLE":           "yes",
		"SYSMON_DISK_WRITE_COMPAT": "1",
		"SYSMON_NO_COLOR":          "true",
		"SYSMON_TASKMGR":           "/usr/bin/htop",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	want := AppConfig{
		Interval:        250 * time.Millisecond,
		LogLevel:        "debug",
		LogFile:         "/tmp/sysmon.log",
		Console:         true,
		DiskWriteCompat: true,
		TaskManagerPath: "/usr/bin/htop",
		NoColor:         true,
	}
	if cfg != want {
		t.Errorf("LoadFrom() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFrom_EmptyValuesIgnored(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(envMap(map[string]string{"SYSMON_INTERVAL": "", "SYSMON_CONSOLE": ""}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Interval != DefaultInterval || cfg.Console {
		t.Errorf("empty overrides changed config: %+v", cfg)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		env  map[string]string
		want any
	}{
		{"bad duration", map[string]string{"SYSMON_INTERVAL": "soon"}, apperrors.ConfigError{}},
		{"bad bool", map[string]string{"SYSMON_CONSOLE": "maybe"}, apperrors.ConfigError{}},
		{"interval too short", map[string]string{"SYSMON_INTERVAL": "10ms"}, apperrors.ValidationError{}},
		{"unknown level", map[string]string{"SYSMON_LOG_LEVEL": "chatty"}, apperrors.ValidationError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFrom(envMap(tt.env))
			if err == nil {
				t.Fatal("expected an error")
			}
			switch tt.want.(type) {
			case apperrors.ConfigError:
				var ce apperrors.ConfigError
				if !errors.As(err, &ce) {
					t.Errorf("got %T, want ConfigError", err)
				}
			case apperrors.ValidationError:
				var ve apperrors.ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("got %T, want ValidationError", err)
				}
			}
			if apperrors.ExitCode(err) != apperrors.ExitErrorConfig {
				t.Errorf("ExitCode = %d, want %d", apperrors.ExitCode(err), apperrors.ExitErrorConfig)
			}
		})
	}
}

func TestSlowTickThreshold(t *testing.T) {
	t.Parallel()
	if got := SlowTickThreshold(AppConfig{Interval: time.Second}); got != 500*time.Millisecond {
		t.Errorf("SlowTickThreshold(1s) = %v, want 500ms", got)
	}
	if got := SlowTickThreshold(AppConfig{Interval: MinInterval}); got != 50*time.Millisecond {
		t.Errorf("SlowTickThreshold(100ms) = %v, want 50ms", got)
	}
}
