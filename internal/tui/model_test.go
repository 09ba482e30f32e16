package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/sysmontray/internal/sampler"
)

var start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestModel_TooltipMsgUpdatesView(t *testing.T) {
	m := NewModel("1.2.0", start, nil)
	tip := sampler.Tooltip{
		CPU:  "CPU: 37%",
		RAM:  "RAM: 50%",
		Disk: "DISK: 5.0+12 MB/S",
		Net:  "NET: 0.5+2.0 MB/S",
	}
	updated, cmd := m.Update(TooltipMsg{Tooltip: tip, RAM: 50, At: start.Add(90 * time.Second)})
	if cmd != nil {
		t.Error("TooltipMsg should not schedule a command")
	}
	view := updated.(Model).View()
	for _, want := range append(tip.Lines(), "50", "sysmontray 1.2.0", "up 1m30s") {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_OverflowGlyph(t *testing.T) {
	m := NewModel("dev", start, nil)
	updated, _ := m.Update(TooltipMsg{RAM: 100, At: start})
	if view := updated.(Model).View(); !strings.Contains(view, "∞") {
		t.Errorf("view missing overflow glyph:\n%s", view)
	}
}

func TestModel_PlaceholdersBeforeFirstSample(t *testing.T) {
	view := NewModel("dev", start, nil).View()
	for _, want := range []string{"CPU: --", "NET: --", "waiting for first sample"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := NewModel("dev", start, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_TaskManagerKey(t *testing.T) {
	launched := 0
	m := NewModel("dev", start, func() error { launched++; return nil })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if cmd == nil {
		t.Fatal("expected a launch command")
	}
	msg := cmd()
	if launched != 1 {
		t.Errorf("launcher called %d times, want 1", launched)
	}
	updated, _ := m.Update(msg)
	if view := updated.(Model).View(); !strings.Contains(view, "task manager launched") {
		t.Errorf("view missing launch status:\n%s", view)
	}
}

func TestModel_TaskManagerFailure(t *testing.T) {
	m := NewModel("dev", start, func() error { return errors.New("not found") })
	updated, _ := m.Update(launchResultMsg{err: errors.New("not found")})
	if view := updated.(Model).View(); !strings.Contains(view, "task manager: not found") {
		t.Errorf("view missing failure status:\n%s", view)
	}
}

func TestModel_TaskManagerKeyIgnoredWithoutLauncher(t *testing.T) {
	m := NewModel("dev", start, nil)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}); cmd != nil {
		t.Error("t without a launcher should do nothing")
	}
}

func TestGlyphIcon_Update(t *testing.T) {
	g := NewGlyphIcon()
	seq := []int16{10, 10, 11, 11, 10}
	want := []bool{true, false, true, false, true}
	for i, p := range seq {
		if got := g.Update(p); got != want[i] {
			t.Errorf("Update(%d) #%d = %v, want %v", p, i, got, want[i])
		}
	}
	if g.Changes() != 3 {
		t.Errorf("Changes() = %d, want 3", g.Changes())
	}
}

func TestHeaderModel_Uptime(t *testing.T) {
	h := NewHeaderModel("dev", start)
	h.SetNow(start.Add(61*time.Second + 400*time.Millisecond))
	if got := h.Uptime(); got != 61*time.Second {
		t.Errorf("Uptime() = %v, want 1m1s", got)
	}
	h.SetWidth(40)
	if view := h.View(); strings.Contains(view, "dev") {
		t.Errorf("dev version should not be shown: %q", view)
	}
}
