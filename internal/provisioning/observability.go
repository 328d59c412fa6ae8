package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Observer receives structured events while a creation sequence runs.
// Implementations must be safe to call from the provisioning goroutine only;
// the sequence itself is single-threaded.
type Observer interface {
	// Event emits a structured event.
	Event(event Event)

	// Progress reports progress within a phase.
	Progress(phase string, current, total int)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType
	Phase     string
	Message   string
	Resource  string
	Timestamp time.Time
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a creation phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a creation phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a creation phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventResourceCreating indicates a resource create call is in flight.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceFailed indicates a resource create call failed.
	EventResourceFailed EventType = "resource.failed"
)

// Phase names used in events, in execution order.
const (
	PhaseSite   = "site"
	PhaseAssets = "assets"
	PhaseMeters = "meters"
	PhaseBill   = "bill"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	parts := []string{string(event.Type)}
	if event.Phase != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Phase))
	}
	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}
	if event.Message != "" {
		parts = append(parts, event.Message)
	}
	log.Print(strings.Join(parts, " "))
}

// Progress implements Observer.
func (o *ConsoleObserver) Progress(phase string, current, total int) {
	if total == 0 {
		log.Printf("[%s] progress: %d/%d", phase, current, total)
		return
	}
	log.Printf("[%s] progress: %d/%d (%d%%)", phase, current, total, (current*100)/total)
}

// NopObserver discards all events.
type NopObserver struct{}

// Event implements Observer.
func (NopObserver) Event(Event) {}

// Progress implements Observer.
func (NopObserver) Progress(string, int, int) {}
