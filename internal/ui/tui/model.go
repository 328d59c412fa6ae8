package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

// PhaseRow is one creation phase for display.
type PhaseRow struct {
	Name    string
	Key     string
	Done    bool
	Active  bool
	Failed  bool
	Current int
	Total   int
	// Resource is the name of the record currently being created.
	Resource string
}

// Model is the Bubble Tea model for the creation sequence display.
type Model struct {
	SiteName string
	Phases   []PhaseRow

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool

	StartTime time.Time
	Result    *provisioning.Result
}

// NewModel creates a model showing the plan's phases. The bill row is only
// shown when the plan stages a bill.
func NewModel(siteName string, assetCount, meterCount int, hasBill bool) Model {
	phases := []PhaseRow{
		{Name: "Site", Key: provisioning.PhaseSite, Total: 1},
		{Name: "Assets", Key: provisioning.PhaseAssets, Total: assetCount},
		{Name: "Meters", Key: provisioning.PhaseMeters, Total: meterCount},
	}
	if hasBill {
		phases = append(phases, PhaseRow{Name: "First Bill", Key: provisioning.PhaseBill, Total: 1})
	}
	return Model{
		SiteName:  siteName,
		Phases:    phases,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case EventMsg:
		m.applyEvent(msg.Event)

	case ProgressMsg:
		if row := m.phase(msg.Phase); row != nil {
			row.Current = msg.Current
			row.Total = msg.Total
		}

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.Result = msg.Result
		for i := range m.Phases {
			m.Phases[i].Active = false
			if !m.Phases[i].Failed {
				m.Phases[i].Done = true
			}
		}
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func (m *Model) applyEvent(event provisioning.Event) {
	row := m.phase(event.Phase)
	if row == nil {
		return
	}

	switch event.Type {
	case provisioning.EventPhaseStarted:
		row.Active = true
	case provisioning.EventPhaseCompleted:
		row.Active = false
		row.Done = true
		row.Resource = ""
	case provisioning.EventPhaseFailed:
		row.Active = false
		row.Failed = true
	case provisioning.EventResourceCreating:
		row.Resource = event.Resource
	case provisioning.EventResourceCreated:
		if row.Key == provisioning.PhaseSite || row.Key == provisioning.PhaseBill {
			row.Current = 1
		}
	}
}

func (m *Model) phase(key string) *PhaseRow {
	for i := range m.Phases {
		if m.Phases[i].Key == key {
			return &m.Phases[i]
		}
	}
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
