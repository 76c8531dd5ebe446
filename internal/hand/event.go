// Package hand defines the event log of a single annotated poker hand.
//
// A hand is recorded as an ordered, append-only sequence of events: board
// events mark the start of a new street and action events record what a seat
// did. Events are plain data; all derived betting state is computed by
// replaying the log (see package betting).
package hand

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPosition = errors.New("unknown position")
	ErrUnknownStreet   = errors.New("unknown street")
	ErrUnknownAction   = errors.New("unknown action")
)

// Event is either a BoardEvent or an ActionEvent.
type Event interface {
	event()
}

// BoardEvent marks the start of a new street. Cards is display text only.
type BoardEvent struct {
	Street Street
	Cards  string
}

// ActionEvent records an action by a seat. Size is the raw size text as
// entered and is only meaningful for raises and all-ins. Text is the display
// line shown in transcripts.
type ActionEvent struct {
	Position Position
	Action   ActionKind
	Size     string
	Text     string
}

func (BoardEvent) event()  {}
func (ActionEvent) event() {}

// Amount parses Size. ok is false unless Size is a strictly positive decimal.
func (a ActionEvent) Amount() (decimal.Decimal, bool) {
	s := strings.TrimSpace(a.Size)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// Log is an append-only sequence of events. Appending never shares storage
// with the receiver, so earlier logs stay valid snapshots.
type Log struct {
	events []Event
}

// NewLog returns a log holding the given events in order.
func NewLog(events ...Event) Log {
	return Log{}.Append(events...)
}

// Append returns a new log with events added at the end.
func (l Log) Append(events ...Event) Log {
	out := make([]Event, 0, len(l.events)+len(events))
	out = append(out, l.events...)
	out = append(out, events...)
	return Log{events: out}
}

// Events returns a copy of the events in order.
func (l Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of events.
func (l Log) Len() int {
	return len(l.events)
}

// Last returns the most recent event, if any.
func (l Log) Last() (Event, bool) {
	if len(l.events) == 0 {
		return nil, false
	}
	return l.events[len(l.events)-1], true
}

// Truncate returns the first n events as a new log.
func (l Log) Truncate(n int) Log {
	if n < 0 {
		n = 0
	}
	if n > len(l.events) {
		n = len(l.events)
	}
	return NewLog(l.events[:n]...)
}

// Undo drops the most recent event.
func (l Log) Undo() Log {
	return l.Truncate(len(l.events) - 1)
}
