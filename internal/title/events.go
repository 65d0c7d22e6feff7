package title

import (
	"fmt"
	"strings"
)

// Event kinds recorded by the title screen.
const (
	EventDigit    = "digit"
	EventDelete   = "delete"
	EventActivate = "activate"
	EventRefused  = "refused"
	EventPaste    = "paste"
	EventCopy     = "copy"
	EventButton   = "button"
	EventFrame    = "frame"
)

// Event is one recorded title screen event.
type Event struct {
	Frame  int
	Kind   string
	Value  string // human-readable detail
	NumVal int
}

// String formats the event as a fixed-width log line.
//
//	[F=012] activate  seed=42
func (e Event) String() string {
	return fmt.Sprintf("[F=%03d] %-9s %s", e.Frame, e.Kind, e.Value)
}

// EventLog collects structured events from a Screen. Frame-level events
// (button state changes, animation steps) are only kept when verbose.
type EventLog struct {
	entries []Event
	verbose bool
}

func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records an event.
func (el *EventLog) Add(frame int, kind, value string, numVal int) {
	el.entries = append(el.entries, Event{Frame: frame, Kind: kind, Value: value, NumVal: numVal})
}

// AddVerbose records an event only in verbose mode.
func (el *EventLog) AddVerbose(frame int, kind, value string, numVal int) {
	if !el.verbose {
		return
	}
	el.Add(frame, kind, value, numVal)
}

// Entries returns all recorded events.
func (el *EventLog) Entries() []Event {
	return el.entries
}

// Filter returns events of the given kind.
func (el *EventLog) Filter(kind string) []Event {
	var out []Event
	for _, e := range el.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of kind were recorded.
func (el *EventLog) Count(kind string) int {
	return len(el.Filter(kind))
}

// LastOf returns the most recent event of kind, or false if none.
func (el *EventLog) LastOf(kind string) (Event, bool) {
	events := el.Filter(kind)
	if len(events) == 0 {
		return Event{}, false
	}
	return events[len(events)-1], true
}

// Format renders the whole log, one event per line.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
