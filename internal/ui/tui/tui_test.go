package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestNewModelPhases(t *testing.T) {
	m := NewModel("HQ", 4, 2, false)
	if len(m.Phases) != 3 {
		t.Fatalf("got %d phases, want 3 without a bill", len(m.Phases))
	}

	withBill := NewModel("HQ", 4, 2, true)
	if len(withBill.Phases) != 4 {
		t.Fatalf("got %d phases, want 4 with a bill", len(withBill.Phases))
	}
	if withBill.Phases[3].Key != provisioning.PhaseBill {
		t.Errorf("last phase = %q", withBill.Phases[3].Key)
	}
}

func TestModelAppliesPhaseEvents(t *testing.T) {
	m := NewModel("HQ", 2, 1, false)

	next, _ := m.Update(EventMsg{Event: provisioning.Event{
		Type: provisioning.EventPhaseStarted, Phase: provisioning.PhaseAssets,
	}})
	m = next.(Model)
	if !m.Phases[1].Active {
		t.Error("assets phase should be active after phase.started")
	}

	next, _ = m.Update(EventMsg{Event: provisioning.Event{
		Type: provisioning.EventResourceCreating, Phase: provisioning.PhaseAssets, Resource: "Main Breaker",
	}})
	m = next.(Model)
	if m.Phases[1].Resource != "Main Breaker" {
		t.Errorf("resource = %q", m.Phases[1].Resource)
	}

	next, _ = m.Update(ProgressMsg{Phase: provisioning.PhaseAssets, Current: 1, Total: 2})
	m = next.(Model)
	if m.Phases[1].Current != 1 || m.Phases[1].Total != 2 {
		t.Errorf("progress = %d/%d", m.Phases[1].Current, m.Phases[1].Total)
	}

	next, _ = m.Update(EventMsg{Event: provisioning.Event{
		Type: provisioning.EventPhaseCompleted, Phase: provisioning.PhaseAssets,
	}})
	m = next.(Model)
	if !m.Phases[1].Done || m.Phases[1].Active {
		t.Errorf("phase after completion: %+v", m.Phases[1])
	}
}

func TestModelFailedPhase(t *testing.T) {
	m := NewModel("HQ", 1, 0, false)

	next, _ := m.Update(EventMsg{Event: provisioning.Event{
		Type: provisioning.EventPhaseFailed, Phase: provisioning.PhaseSite, Message: "boom",
	}})
	m = next.(Model)
	if !m.Phases[0].Failed {
		t.Error("site phase should be marked failed")
	}

	next, _ = m.Update(ErrMsg{Err: errors.New("boom")})
	m = next.(Model)
	if m.Err == nil {
		t.Error("error not recorded")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("view should surface the error")
	}
}

func TestModelDone(t *testing.T) {
	m := NewModel("HQ", 1, 1, false)
	next, _ := m.Update(DoneMsg{Result: &provisioning.Result{SiteID: 7, MetersCreated: 1}})
	m = next.(Model)

	if !m.Done {
		t.Error("model should be done")
	}
	for _, phase := range m.Phases {
		if !phase.Done {
			t.Errorf("phase %s not marked done", phase.Key)
		}
	}
	if !strings.Contains(m.View(), "id=7") {
		t.Error("view should show the created site id")
	}
}
