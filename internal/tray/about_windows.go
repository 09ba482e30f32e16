//go:build windows

package tray

import (
	"golang.org/x/sys/windows"

	"github.com/agbru/sysmontray/internal/logging"
)

const (
	mbOK              = 0x00000000
	mbIconInformation = 0x00000040
	mbSetForeground   = 0x00010000
)

func showAbout(version string, logger logging.Logger) {
	text, err := windows.UTF16PtrFromString(AboutText(version))
	if err != nil {
		logger.Error("about dialog", err)
		return
	}
	caption, _ := windows.UTF16PtrFromString(Title)
	if _, err := windows.MessageBox(0, text, caption, mbOK|mbIconInformation|mbSetForeground); err != nil {
		logger.Error("about dialog", err)
	}
}
