// Package tui is the console host: a bubbletea view showing the RAM glyph
// and the four tooltip lines, fed by the same tick driver as the tray.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/sysmontray/internal/format"
	"github.com/agbru/sysmontray/internal/sampler"
)

// TooltipMsg carries one tick's output to the view.
type TooltipMsg struct {
	Tooltip sampler.Tooltip
	RAM     int16
	At      time.Time
}

// launchResultMsg reports the outcome of a task manager launch.
type launchResultMsg struct{ err error }

// Model is the root bubbletea model for the console view.
type Model struct {
	header HeaderModel
	keymap KeyMap

	tip     sampler.Tooltip
	ram     int16
	haveRAM bool
	status  string
	failed  bool

	taskManager func() error
	width       int
	height      int
}

// NewModel creates a console model. taskManager may be nil.
func NewModel(version string, start time.Time, taskManager func() error) Model {
	return Model{
		header: NewHeaderModel(version, start),
		keymap: DefaultKeyMap(taskManager != nil),
		tip: sampler.Tooltip{
			CPU: "CPU: --", RAM: "RAM: --", Disk: "DISK: --", Net: "NET: --",
		},
		status:      "waiting for first sample",
		taskManager: taskManager,
	}
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("sysmontray")
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.TaskManager):
			return m, launchCmd(m.taskManager)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		return m, nil

	case TooltipMsg:
		m.tip = msg.Tooltip
		m.ram = msg.RAM
		m.haveRAM = true
		m.header.SetNow(msg.At)
		m.status = "updated " + msg.At.Format("15:04:05")
		m.failed = false
		return m, nil

	case launchResultMsg:
		if msg.err != nil {
			m.status = "task manager: " + msg.err.Error()
			m.failed = true
		} else {
			m.status = "task manager launched"
			m.failed = false
		}
		return m, nil
	}
	return m, nil
}

func launchCmd(launch func() error) tea.Cmd {
	return func() tea.Msg {
		return launchResultMsg{err: launch()}
	}
}

// View renders the header, the glyph next to the tooltip lines, and the
// key help footer.
func (m Model) View() string {
	glyph := "--"
	if m.haveRAM {
		glyph = format.Glyph(m.ram)
	}
	lines := make([]string, 0, 4)
	for _, l := range m.tip.Lines() {
		lines = append(lines, lineStyle.Render(l))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Center,
		glyphStyle.Render(glyph),
		" ",
		panelStyle.Render(strings.Join(lines, "\n")),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footerView())
}

func (m Model) footerView() string {
	parts := make([]string, 0, 3)
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	status := statusStyle.Render(m.status)
	if m.failed {
		status = errorStyle.Render(m.status)
	}
	parts = append(parts, status)
	return " " + strings.Join(parts, footerDescStyle.Render(" • "))
}

// Options configures Run.
type Options struct {
	Version     string
	TaskManager func() error
}

// Run shows the console view until the user quits or ctx is canceled. The
// driver samples on its own goroutine and hands each tooltip to the program.
func Run(ctx context.Context, drv *sampler.Driver, ticker sampler.Ticker, ram func() int16, opts Options) error {
	// Rebuild styles from the current ui theme (set by the app via InitTheme).
	initTUIStyles()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ref := &programRef{}
	p := tea.NewProgram(NewModel(opts.Version, time.Now(), opts.TaskManager),
		tea.WithAltScreen(), tea.WithContext(ctx))
	ref.SetProgram(p)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return drv.Run(gctx, ticker, func(tip sampler.Tooltip) {
			ref.Send(TooltipMsg{Tooltip: tip, RAM: ram(), At: time.Now()})
		})
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	return g.Wait()
}
