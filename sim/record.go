// Log record shapes. The ground-truth log is append-only JSONL: one record
// per simulated turn, plus synthetic records for player decisions and budget
// allocations stamped at the cursor turn.

package sim

// RecordKind distinguishes engine events from the synthetic overlay records.
type RecordKind string

const (
	KindEvent    RecordKind = "event"
	KindDecision RecordKind = "decision"
	KindBudget   RecordKind = "budget"
)

// EventRecord is the event half of a log record: selection metadata plus the
// chosen choice. Synthetic decision/budget records reuse the same shape with
// their own kind.
type EventRecord struct {
	ID           string         `json:"id"`
	Title        string         `json:"title,omitempty"`
	Actor        string         `json:"actor,omitempty"`
	Severity     int            `json:"severity,omitempty"`
	CauseTags    []string       `json:"cause_tags,omitempty"`
	Stakeholders []string       `json:"stakeholders,omitempty"`
	Choice       string         `json:"choice,omitempty"`
	Kind         RecordKind     `json:"kind,omitempty"`
	Allocation   map[string]int `json:"allocation,omitempty"`
}

// LogRecord is one line of the ground-truth log. Event is nil for turns that
// passed without one.
type LogRecord struct {
	State State        `json:"state"`
	Event *EventRecord `json:"event"`
}

// NewEventRecord builds the log metadata for a resolved engine event.
func NewEventRecord(outcome *EventOutcome) *EventRecord {
	if outcome == nil {
		return nil
	}
	ev := outcome.Event
	return &EventRecord{
		ID:           ev.ID,
		Title:        ev.Title,
		Actor:        ev.Actor,
		Severity:     ev.Severity,
		CauseTags:    ev.CauseTags,
		Stakeholders: ev.Stakeholders,
		Choice:       outcome.Choice,
		Kind:         KindEvent,
	}
}
