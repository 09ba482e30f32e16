package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// programRef lets the driver goroutine reach the running program. Messages
// sent before the program is attached are dropped.
type programRef struct {
	p atomic.Pointer[tea.Program]
}

func (r *programRef) SetProgram(p *tea.Program) { r.p.Store(p) }

func (r *programRef) Send(msg tea.Msg) {
	if p := r.p.Load(); p != nil {
		p.Send(msg)
	}
}
