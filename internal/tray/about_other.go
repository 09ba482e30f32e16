//go:build !windows

package tray

import (
	"strings"

	"github.com/agbru/sysmontray/internal/logging"
)

func showAbout(version string, logger logging.Logger) {
	logger.Info(strings.ReplaceAll(AboutText(version), "\n", " | "))
}
