package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the console view's key bindings.
type KeyMap struct {
	Quit        key.Binding
	TaskManager key.Binding
}

// DefaultKeyMap returns the default bindings. The task manager binding is
// disabled when no launcher is configured.
func DefaultKeyMap(taskManager bool) KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		TaskManager: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "task manager"),
		),
	}
	km.TaskManager.SetEnabled(taskManager)
	return km
}

// ShortHelp lists the enabled bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, 2)
	for _, b := range []key.Binding{k.TaskManager, k.Quit} {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}
