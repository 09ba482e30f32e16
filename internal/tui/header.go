package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version, uptime.
type HeaderModel struct {
	startTime time.Time
	now       time.Time
	version   string
	width     int
}

// NewHeaderModel creates a new header starting its uptime at start.
func NewHeaderModel(version string, start time.Time) HeaderModel {
	return HeaderModel{startTime: start, now: start, version: version}
}

// SetNow advances the uptime clock.
func (h *HeaderModel) SetNow(t time.Time) { h.now = t }

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// Uptime returns how long the monitor has been running.
func (h HeaderModel) Uptime() time.Duration {
	return h.now.Sub(h.startTime).Truncate(time.Second)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "sysmontray"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := titleStyle.Render(titleText) +
		versionStyle.Render(" | ") +
		uptimeStyle.Render("up "+h.Uptime().String())

	gap := max(h.width-2-lipgloss.Width(left), 0)
	return headerStyle.Width(max(h.width, 0)).Render(left + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
