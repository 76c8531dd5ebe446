package hand

import (
	"fmt"
	"strings"
)

// Position is one of the six fixed seats at the table, in acting order.
type Position int

const (
	UTG Position = iota
	HJ
	CO
	BTN
	SB
	BB
)

// NoPosition marks an unset seat, such as a hero position not chosen yet.
const NoPosition Position = -1

// SeatCount is the number of seats at the table.
const SeatCount = 6

// Positions lists every seat in acting order.
var Positions = [SeatCount]Position{UTG, HJ, CO, BTN, SB, BB}

var positionNames = [SeatCount]string{"UTG", "HJ", "CO", "BTN", "SB", "BB"}

// Valid reports whether p names a seat at the table.
func (p Position) Valid() bool {
	return p >= 0 && int(p) < SeatCount
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// ParsePosition parses a seat name such as "btn" or "UTG".
func ParsePosition(s string) (Position, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return NoPosition, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// Street represents the betting round. Streets only move forward within a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "PREFLOP"
	case Flop:
		return "FLOP"
	case Turn:
		return "TURN"
	case River:
		return "RIVER"
	default:
		return fmt.Sprintf("Street(%d)", int(s))
	}
}

// Valid reports whether s is one of the four streets.
func (s Street) Valid() bool {
	return s >= Preflop && s <= River
}

// BoardCards returns how many cards are dealt when the street begins.
func (s Street) BoardCards() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// ParseStreet parses a street name such as "flop".
func ParseStreet(s string) (Street, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preflop", "pre-flop":
		return Preflop, nil
	case "flop":
		return Flop, nil
	case "turn":
		return Turn, nil
	case "river":
		return River, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownStreet, s)
}

// ActionKind is the action a seat took.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Raise
	AllIn
)

// Actions lists every action kind in display order.
var Actions = []ActionKind{Fold, Check, Call, Raise, AllIn}

func (a ActionKind) String() string {
	switch a {
	case Fold:
		return "FOLD"
	case Check:
		return "CHECK"
	case Call:
		return "CALL"
	case Raise:
		return "RAISE"
	case AllIn:
		return "ALL-IN"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(a))
	}
}

// Valid reports whether a is a known action kind.
func (a ActionKind) Valid() bool {
	return a >= Fold && a <= AllIn
}

// Sized reports whether the action carries a size.
func (a ActionKind) Sized() bool {
	return a == Raise || a == AllIn
}

// ParseActionKind parses an action name. "bet" is accepted as a raise.
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "f":
		return Fold, nil
	case "check", "x":
		return Check, nil
	case "call", "c":
		return Call, nil
	case "raise", "bet", "r":
		return Raise, nil
	case "allin", "all-in", "all_in", "shove":
		return AllIn, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
