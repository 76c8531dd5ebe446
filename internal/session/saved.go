package session

import (
	"fmt"
	"time"

	"github.com/lox/handnotes/internal/betting"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/phh"
	"github.com/lox/handnotes/internal/transcript"
)

// SavedHand is a finished hand kept for sharing.
type SavedHand struct {
	ID      string
	Title   string
	Setup   transcript.Setup
	Events  []hand.Event
	Items   []transcript.Item
	SavedAt time.Time
}

// Text renders the hand as clipboard text.
func (h SavedHand) Text() string {
	return transcript.Text(h.Title, h.Items)
}

// History converts the hand to a PHH hand history.
func (h SavedHand) History(blinds betting.Blinds) *phh.HandHistory {
	return phh.FromLog(h.Events, phh.Options{
		HandID:    h.ID,
		Setup:     h.Setup,
		Blinds:    blinds,
		Timestamp: h.SavedAt,
	})
}

// EndHand saves the current hand as "Hand #N", newest first, and starts the
// next one. The hero seat and effective stack carry over; cards, selection
// and the log are reset.
func (s *Session) EndHand() (SavedHand, error) {
	if s.log.Len() == 0 {
		return SavedHand{}, ErrEmptyHand
	}

	id, err := s.ids.New()
	if err != nil {
		return SavedHand{}, fmt.Errorf("saving hand: %w", err)
	}

	setup := s.Setup()
	events := s.log.Events()
	saved := SavedHand{
		ID:      id,
		Title:   fmt.Sprintf("Hand #%d", len(s.saved)+1),
		Setup:   setup,
		Events:  events,
		Items:   transcript.Items(events, setup),
		SavedAt: s.clock.Now(),
	}
	s.saved = append([]SavedHand{saved}, s.saved...)

	s.log = hand.Log{}
	s.slots = slotCards{}
	s.target = NoSlot
	s.selectedPos = hand.NoPosition
	s.resetAction()

	s.logger.Info("Hand saved", "id", saved.ID, "title", saved.Title, "events", len(events))
	return saved, nil
}

// Saved returns the saved hands, newest first.
func (s *Session) Saved() []SavedHand {
	out := make([]SavedHand, len(s.saved))
	copy(out, s.saved)
	return out
}

// Blinds returns the blinds the session evaluates with.
func (s *Session) Blinds() betting.Blinds {
	return s.engine.Blinds
}

// Load replaces the current log with events, filling in missing action text
// from the betting state at each action.
func (s *Session) Load(events []hand.Event) {
	s.log = hand.NewLog(Annotate(s.engine, events)...)
	s.resetAction()
	s.syncSelection()
}

// Annotate returns a copy of events where every action without text gets the
// transcript line it would have had if recorded live.
func Annotate(engine betting.Engine, events []hand.Event) []hand.Event {
	out := make([]hand.Event, len(events))
	prev := engine.Initial()
	engine.Walk(events, func(i int, ev hand.Event, st betting.State) {
		out[i] = ev
		if a, ok := ev.(hand.ActionEvent); ok && a.Text == "" {
			a.Text = transcript.ActionText(prev.Street, a.Position, a.Action, a.Size, prev.ToCall)
			out[i] = a
		}
		prev = st
	})
	return out
}
