//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

// Package cli holds the terminal affordances shown before the console view
// takes over the screen.
package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// RefreshRate is the spinner frame interval.
const RefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner
// so startup steps can be tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], RefreshRate, spinner.WithWriter(w), spinner.WithHiddenCursor(true))
	return &realSpinner{s}
}

// Step runs fn while a spinner labeled msg animates on w. The spinner stops
// before Step returns, whether fn succeeded or not.
func Step(w io.Writer, msg string, fn func() error) error {
	s := newSpinner(w)
	s.UpdateSuffix(" " + msg)
	s.Start()
	defer s.Stop()
	return fn()
}
