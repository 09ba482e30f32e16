package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sysmontray/internal/ui"
)

// Style variables for the console view.
// Initialized from the ui theme system via initTUIStyles().
var (
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	uptimeStyle     lipgloss.Style
	glyphStyle      lipgloss.Style
	lineStyle       lipgloss.Style
	panelStyle      lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	statusStyle     lipgloss.Style
	errorStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	uptimeStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	glyphStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Glyph).
		Bold(true).
		Width(6).
		Align(lipgloss.Center).
		Padding(1, 0)

	lineStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)
}
