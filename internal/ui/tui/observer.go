package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

// ProgramObserver forwards provisioning events into a running Bubble Tea
// program.
type ProgramObserver struct {
	program *tea.Program
}

var _ provisioning.Observer = (*ProgramObserver)(nil)

// NewProgramObserver creates an observer sending events to the program.
func NewProgramObserver(p *tea.Program) *ProgramObserver {
	return &ProgramObserver{program: p}
}

// Event implements provisioning.Observer.
func (o *ProgramObserver) Event(event provisioning.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	o.program.Send(EventMsg{Event: event})
}

// Progress implements provisioning.Observer.
func (o *ProgramObserver) Progress(phase string, current, total int) {
	o.program.Send(ProgressMsg{Phase: phase, Current: current, Total: total})
}

// IsTerminal reports whether stdout is attached to a terminal. Without one
// the caller should fall back to plain console output.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
