package session

import (
	"fmt"
	"strings"

	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/hand"
)

// Slot is a place a picked card can go: the hero's hole cards or the board.
type Slot int

const (
	NoSlot Slot = iota
	Hole1
	Hole2
	Flop1
	Flop2
	Flop3
	TurnCard
	RiverCard
)

// Slots lists the card slots in pick order.
var Slots = []Slot{Hole1, Hole2, Flop1, Flop2, Flop3, TurnCard, RiverCard}

var slotNames = map[Slot]string{
	Hole1:     "H1",
	Hole2:     "H2",
	Flop1:     "F1",
	Flop2:     "F2",
	Flop3:     "F3",
	TurnCard:  "T",
	RiverCard: "R",
}

func (s Slot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Slot(%d)", s)
}

// Valid reports whether s names a card slot.
func (s Slot) Valid() bool {
	return s >= Hole1 && s <= RiverCard
}

// next returns the slot after s in pick order. The river stays put.
func (s Slot) next() Slot {
	if s >= Hole1 && s < RiverCard {
		return s + 1
	}
	return s
}

// StreetSlots returns the board slots dealt on street. Preflop has none.
func StreetSlots(street hand.Street) []Slot {
	switch street {
	case hand.Flop:
		return []Slot{Flop1, Flop2, Flop3}
	case hand.Turn:
		return []Slot{TurnCard}
	case hand.River:
		return []Slot{RiverCard}
	}
	return nil
}

// ParseSlot parses a slot name such as "h1" or "F3".
func ParseSlot(name string) (Slot, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for s, n := range slotNames {
		if n == name {
			return s, nil
		}
	}
	return NoSlot, fmt.Errorf("unknown card slot %q", name)
}

// slotCards holds the picked cards.
type slotCards [RiverCard + 1]*cards.Card

func (sc *slotCards) get(s Slot) (cards.Card, bool) {
	if !s.Valid() || sc[s] == nil {
		return cards.Card{}, false
	}
	return *sc[s], true
}

func (sc *slotCards) set(s Slot, c cards.Card) {
	sc[s] = &c
}

func (sc *slotCards) clear(slots ...Slot) {
	for _, s := range slots {
		if s.Valid() {
			sc[s] = nil
		}
	}
}

func (sc *slotCards) used(c cards.Card) (Slot, bool) {
	for _, s := range Slots {
		if got, ok := sc.get(s); ok && got == c {
			return s, true
		}
	}
	return NoSlot, false
}

// run returns the picked cards of slots in order, or false if any is empty.
func (sc *slotCards) run(slots ...Slot) ([]cards.Card, bool) {
	out := make([]cards.Card, 0, len(slots))
	for _, s := range slots {
		c, ok := sc.get(s)
		if !ok {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

// picked returns the filled slots' cards in order, skipping empty ones.
func (sc *slotCards) picked(slots ...Slot) []cards.Card {
	var out []cards.Card
	for _, s := range slots {
		if c, ok := sc.get(s); ok {
			out = append(out, c)
		}
	}
	return out
}
