package event

import (
	"fmt"
	"io"
	"strings"
)

// Handler receives published events.
type Handler func(Event)

// Relay is a synchronous publish/subscribe registry. Events are delivered to
// subscribers in publish order, on the publisher's goroutine. The relay also
// records every event it sees, so tests and the batch harness can inspect
// history without registering a handler up front.
//
// A relay belongs to exactly one match and is not safe for concurrent use.
type Relay struct {
	byType map[Type][]Handler
	all    []Handler
	events []Event
	seq    int
}

func NewRelay() *Relay {
	return &Relay{byType: make(map[Type][]Handler)}
}

// Subscribe registers a handler for one event type.
func (r *Relay) Subscribe(t Type, h Handler) {
	r.byType[t] = append(r.byType[t], h)
}

// SubscribeAll registers a handler for every event type.
func (r *Relay) SubscribeAll(h Handler) {
	r.all = append(r.all, h)
}

// Publish records the event and delivers it to matching subscribers,
// typed subscribers first, in registration order.
func (r *Relay) Publish(e Event) {
	r.seq++
	e.Seq = r.seq
	r.events = append(r.events, e)
	for _, h := range r.byType[e.Type] {
		h(e)
	}
	for _, h := range r.all {
		h(e)
	}
}

// Events returns all published events in order.
func (r *Relay) Events() []Event {
	return r.events
}

// EventsOfType returns all published events matching the given type.
func (r *Relay) EventsOfType(t Type) []Event {
	var result []Event
	for _, e := range r.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (r *Relay) LastEvent() Event {
	if len(r.events) == 0 {
		return Event{}
	}
	return r.events[len(r.events)-1]
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e Event) string {
	switch e.Type {
	case GameInitialized:
		return fmt.Sprintf("T%-2d %s", e.Turn, e.Details)
	case TurnStarted:
		return fmt.Sprintf("T%-2d === Turn %d (%s) ===", e.Turn, e.Turn, playerName(e.Player))
	case GameEnded:
		return fmt.Sprintf("T%-2d %s wins! (%s)", e.Turn, playerName(e.Winner), e.Details)
	default:
		return fmt.Sprintf("T%-2d %s", e.Turn, e.Details)
	}
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TextHandler returns a handler that writes formatted lines to w.
// Register it with SubscribeAll to get a running match transcript.
func TextHandler(w io.Writer) Handler {
	return func(e Event) {
		fmt.Fprintln(w, FormatEvent(e))
	}
}
