// Package tui provides a Bubble Tea-based terminal UI for the site
// creation sequence.
package tui

import "github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"

// EventMsg wraps a provisioning event for the TUI.
type EventMsg struct {
	Event provisioning.Event
}

// ProgressMsg reports per-resource progress within a phase.
type ProgressMsg struct {
	Phase   string
	Current int
	Total   int
}

// TickMsg is sent periodically to advance the spinner.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the creation sequence finished successfully.
type DoneMsg struct {
	Result *provisioning.Result
}
