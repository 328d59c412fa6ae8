package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

// RunProvisionTUI wraps a creation sequence with the progress display.
// provisionFn runs the sequence, reporting through the given observer; it
// executes in a background goroutine while the TUI renders its events.
// The sequence's result and error are returned once the display exits.
func RunProvisionTUI(
	plan *provisioning.Plan,
	provisionFn func(obs provisioning.Observer) (*provisioning.Result, error),
) (*provisioning.Result, error) {
	m := NewModel(plan.Site.Name, len(plan.Assets), len(plan.Meters), plan.Bill != nil)
	p := tea.NewProgram(m)

	type outcome struct {
		result *provisioning.Result
		err    error
	}
	ch := make(chan outcome, 1)

	go func() {
		result, err := provisionFn(NewProgramObserver(p))
		if err != nil {
			p.Send(ErrMsg{Err: err})
		} else {
			p.Send(DoneMsg{Result: result})
		}
		ch <- outcome{result: result, err: err}
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	out := <-ch
	if fm, ok := finalModel.(Model); ok && fm.Err == nil && out.err == nil {
		return out.result, nil
	}
	return out.result, out.err
}
