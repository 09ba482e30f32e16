package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines lipgloss-compatible colors for the console view.
type TUITheme struct {
	Name   string
	Text   lipgloss.TerminalColor
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	Glyph  lipgloss.TerminalColor
	Error  lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default palette for dark terminals.
	DarkTUITheme = TUITheme{
		Name:   "dark",
		Text:   lipgloss.Color("#E0E0E0"),
		Border: lipgloss.Color("#2060B0"),
		Accent: lipgloss.Color("#4488FF"),
		Glyph:  lipgloss.Color("#FFFFFF"),
		Error:  lipgloss.Color("#FF4444"),
		Dim:    lipgloss.Color("#666666"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Name:   "none",
		Text:   lipgloss.NoColor{},
		Border: lipgloss.NoColor{},
		Accent: lipgloss.NoColor{},
		Glyph:  lipgloss.NoColor{},
		Error:  lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
	}

	currentTheme = DarkTUITheme
	themeMutex   sync.RWMutex
)

// GetCurrentTUITheme returns the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTUITheme replaces the active theme. Tests use it to restore state.
func SetCurrentTUITheme(t TUITheme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme selects the palette. Colors are off when noColor is set or the
// NO_COLOR environment variable exists (https://no-color.org/).
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTUITheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTUITheme
		return
	}
	currentTheme = DarkTUITheme
}
