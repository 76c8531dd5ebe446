// Package transcript turns a hand's event log into a shareable text
// transcript.
//
// The transcript is a projection of the raw log: it never looks at derived
// betting state. Amounts shown in action lines are captured in the event's
// Text when the action is recorded (see ActionText).
package transcript

import (
	"fmt"
	"strings"

	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/hand"
)

// Setup is the hand metadata shown at the top of a transcript. The zero
// value seats the hero at UTG; use NewSetup for a hand without a hero.
type Setup struct {
	HeroPosition   hand.Position
	EffectiveStack string
	HeroCards      []cards.Card
}

// NewSetup returns a setup with no hero seat, stack or cards.
func NewSetup() Setup {
	return Setup{HeroPosition: hand.NoPosition}
}

// Kind identifies the type of a transcript item.
type Kind int

const (
	KindSetup Kind = iota
	KindStreet
	KindBoard
	KindAction
)

// Item is one line of a transcript.
type Item struct {
	Kind   Kind
	Setup  Setup        // KindSetup
	Street hand.Street  // KindStreet, KindBoard
	Cards  []cards.Card // KindBoard
	Text   string       // KindAction
}

// Items projects events into transcript items: the setup, a preflop marker,
// then a marker per street change, a board line per board event and a line
// per action, in event order.
func Items(events []hand.Event, setup Setup) []Item {
	items := []Item{
		{Kind: KindSetup, Setup: setup},
		{Kind: KindStreet, Street: hand.Preflop},
	}

	current := hand.Preflop
	for _, ev := range events {
		switch e := ev.(type) {
		case hand.BoardEvent:
			if e.Street != current {
				current = e.Street
				items = append(items, Item{Kind: KindStreet, Street: current})
			}
			items = append(items, Item{Kind: KindBoard, Street: current, Cards: boardCards(e.Cards)})
		case hand.ActionEvent:
			text := e.Text
			if text == "" {
				text = Describe(e)
			}
			items = append(items, Item{Kind: KindAction, Text: text})
		}
	}
	return items
}

// Text renders items as clipboard text, one item per line, under title.
func Text(title string, items []Item) string {
	lines := []string{title}
	for _, it := range items {
		switch it.Kind {
		case KindSetup:
			lines = append(lines, SetupLine(it.Setup))
		case KindStreet:
			lines = append(lines, fmt.Sprintf("--- %s ---", it.Street))
		case KindBoard:
			lines = append(lines, fmt.Sprintf("%s : %s", it.Street, cards.Join(it.Cards)))
		case KindAction:
			lines = append(lines, it.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// SetupLine renders the setup, e.g. "Setup · Hero BTN · AhKh · 100bb".
func SetupLine(s Setup) string {
	pos := "-"
	if s.HeroPosition.Valid() {
		pos = s.HeroPosition.String()
	}
	hole := cards.Join(s.HeroCards)
	if hole == "" {
		hole = "--"
	}
	eff := strings.TrimSpace(s.EffectiveStack)
	if eff == "" {
		eff = "-"
	}
	return fmt.Sprintf("Setup · Hero %s · %s · %sbb", pos, hole, eff)
}

// boardCards keeps the recognisable two-character cards of a board run.
func boardCards(run string) []cards.Card {
	if cs, err := cards.ParseRun(run); err == nil {
		return cs
	}
	s := strings.Join(strings.Fields(run), "")
	var out []cards.Card
	for i := 0; i+2 <= len(s); i += 2 {
		if c, err := cards.Parse(s[i : i+2]); err == nil {
			out = append(out, c)
		}
	}
	return out
}
