package config

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/sysmontray/internal/errors"
)

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the SYSMON_ prefix) to a function that
// applies the value or rejects it.
type envOverride struct {
	envKey string
	apply  func(*AppConfig, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"INTERVAL", func(c *AppConfig, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Interval = d
		return nil
	}},
	{"LOG_LEVEL", func(c *AppConfig, v string) error {
		c.LogLevel = strings.ToLower(v)
		return nil
	}},
	{"LOG_FILE", func(c *AppConfig, v string) error {
		c.LogFile = v
		return nil
	}},
	{"TASKMGR", func(c *AppConfig, v string) error {
		c.TaskManagerPath = v
		return nil
	}},
	{"CONSOLE", boolOverride(func(c *AppConfig) *bool { return &c.Console })},
	{"DISK_WRITE_COMPAT", boolOverride(func(c *AppConfig) *bool { return &c.DiskWriteCompat })},
	{"NO_COLOR", boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
}

func boolOverride(field func(*AppConfig) *bool) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		b, err := parseBoolEnv(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// parseBoolEnv accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive).
func parseBoolEnv(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// applyEnvOverrides applies every set, non-empty SYSMON_* variable. The first
// malformed value aborts with a ConfigError naming the variable.
func applyEnvOverrides(cfg *AppConfig, lookup func(string) (string, bool)) error {
	for _, o := range envOverrides {
		val, ok := lookup(EnvPrefix + o.envKey)
		if !ok || val == "" {
			continue
		}
		if err := o.apply(cfg, val); err != nil {
			return apperrors.NewConfigError("invalid %s%s=%q: %v", EnvPrefix, o.envKey, val, err)
		}
	}
	return nil
}
