package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/export"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/phh"
	"github.com/lox/handnotes/internal/session"
	"github.com/shopspring/decimal"
)

var (
	errQuit       = errors.New("quit")
	errNoSaved    = errors.New("no saved hands")
	errNoCopier   = errors.New("sharing is not configured")
	errBadCommand = errors.New("unknown command")
)

const helpText = "seat [action [size]] · action [size] · hero <seat> · eff <bb> · hole AhKh · " +
	"pick <slot> [cards] · flop|turn|river [cards] · next · undo · clear · end · copy [n] · phh [n] · quit"

// processAction runs one command line. It returns false when the user asked
// to quit.
func (m *TUIModel) processAction(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return true
	}
	action, args := strings.ToLower(fields[0]), fields[1:]
	m.logger.Debug("Processing command", "action", action, "args", args)

	msg, err := m.execute(action, args)
	switch {
	case errors.Is(err, errQuit):
		m.logger.Info("Quit command received")
		return false
	case err != nil:
		m.logger.Warn("Command failed", "action", action, "error", err)
		m.setStatus("Error: "+err.Error(), true)
	default:
		m.setStatus(msg, false)
	}
	m.refreshLog()
	return true
}

func (m *TUIModel) execute(action string, args []string) (string, error) {
	switch action {
	case "quit", "q", "exit":
		return "", errQuit
	case "help", "?":
		return helpText, nil
	case "hero":
		return m.handleHero(args)
	case "eff", "stack":
		return m.handleEffectiveStack(args)
	case "hole":
		return m.handleHole(args)
	case "pick":
		return m.handlePick(args)
	case "flop":
		return m.handleBoard(hand.Flop, args)
	case "turn":
		return m.handleBoard(hand.Turn, args)
	case "river":
		return m.handleBoard(hand.River, args)
	case "next":
		if err := m.session.NextStreet(); err != nil {
			return "", err
		}
		return "Moved to the flop", nil
	case "size":
		m.session.SetSize(strings.Join(args, ""))
		return "Size " + m.session.Size(), nil
	case "undo", "u":
		if err := m.session.Undo(); err != nil {
			return "", err
		}
		return "Undid last entry", nil
	case "clear":
		m.session.Clear()
		return "Cleared hand log", nil
	case "end":
		saved, err := m.session.EndHand()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Saved %s", saved.Title), nil
	case "copy":
		return m.handleCopy(args)
	case "phh":
		return m.handleExportPHH(args)
	}

	if pos, err := hand.ParsePosition(action); err == nil {
		return m.handleSeat(pos, args)
	}
	if kind, err := hand.ParseActionKind(action); err == nil {
		return m.handleAction(kind, args)
	}
	if run, err := cards.ParseRun(action + strings.Join(args, "")); err == nil {
		return m.pickCards(run)
	}
	return "", fmt.Errorf("%w: %s (type 'help' for commands)", errBadCommand, action)
}

func (m *TUIModel) handleSeat(pos hand.Position, args []string) (string, error) {
	if err := m.session.SelectPosition(pos); err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "Selected " + pos.String(), nil
	}
	kind, err := hand.ParseActionKind(args[0])
	if err != nil {
		return "", err
	}
	return m.handleAction(kind, args[1:])
}

func (m *TUIModel) handleAction(kind hand.ActionKind, args []string) (string, error) {
	if err := m.session.SelectAction(kind); err != nil {
		return "", err
	}
	if len(args) > 0 {
		m.session.SetSize(args[0])
	}
	if err := m.session.AddAction(); err != nil {
		return "", err
	}

	events := m.session.Events()
	if a, ok := events[len(events)-1].(hand.ActionEvent); ok {
		return a.Text, nil
	}
	return "", nil
}

func (m *TUIModel) handleHero(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		m.session.SetHeroPosition(hand.NoPosition)
		return "Hero cleared", nil
	}
	pos, err := hand.ParsePosition(args[0])
	if err != nil {
		return "", err
	}
	m.session.SetHeroPosition(pos)
	return "Hero " + pos.String(), nil
}

func (m *TUIModel) handleEffectiveStack(args []string) (string, error) {
	if len(args) == 0 {
		m.session.SetEffectiveStack("")
		return "Effective stack cleared", nil
	}
	eff := strings.TrimSuffix(strings.ToLower(args[0]), "bb")
	d, err := decimal.NewFromString(eff)
	if err != nil || !d.IsPositive() {
		return "", fmt.Errorf("effective stack must be a positive number of big blinds, got %q", args[0])
	}
	m.session.SetEffectiveStack(d.String())
	return fmt.Sprintf("Effective stack %sbb", d), nil
}

// handleHole replaces the hero's hole cards. A refused card leaves the old
// ones in place.
func (m *TUIModel) handleHole(args []string) (string, error) {
	if len(args) == 0 {
		m.session.ClearHeroCards()
		return "Hole cards cleared", nil
	}
	run, err := cards.ParseRun(strings.Join(args, ""))
	if err != nil {
		return "", err
	}
	if len(run) > 2 {
		return "", fmt.Errorf("hole needs at most two cards, got %d", len(run))
	}
	if err := m.session.Place([]session.Slot{session.Hole1, session.Hole2}, run); err != nil {
		return "", err
	}
	return "Picked " + cardList(run), nil
}

func (m *TUIModel) handlePick(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("pick needs a slot: h1 h2 f1 f2 f3 t r")
	}
	slot, err := session.ParseSlot(args[0])
	if err != nil {
		return "", err
	}
	m.session.SetPickTarget(slot)
	if len(args) == 1 {
		return "Picking " + slot.String(), nil
	}
	run, err := cards.ParseRun(strings.Join(args[1:], ""))
	if err != nil {
		return "", err
	}
	return m.pickCards(run)
}

func (m *TUIModel) pickCards(run []cards.Card) (string, error) {
	for _, c := range run {
		if err := m.session.Pick(c); err != nil {
			return "", err
		}
	}
	return "Picked " + cardList(run), nil
}

// cardList renders cards separated by spaces, e.g. "Ah Kh".
func cardList(run []cards.Card) string {
	names := make([]string, len(run))
	for i, c := range run {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

// handleBoard deals street from its slots, replacing their cards first when
// cards are given.
func (m *TUIModel) handleBoard(street hand.Street, args []string) (string, error) {
	if len(args) > 0 {
		run, err := cards.ParseRun(strings.Join(args, ""))
		if err != nil {
			return "", err
		}
		slots := session.StreetSlots(street)
		if len(run) != len(slots) {
			return "", fmt.Errorf("%s needs %d cards, got %d", street, len(slots), len(run))
		}
		if err := m.session.Place(slots, run); err != nil {
			return "", err
		}
	}
	if err := m.session.AddBoard(street); err != nil {
		return "", err
	}
	return fmt.Sprintf("Dealt %s", strings.ToLower(street.String())), nil
}

// savedHand finds "Hand #n", or the newest hand when args is empty.
func (m *TUIModel) savedHand(args []string) (session.SavedHand, error) {
	saved := m.session.Saved()
	if len(saved) == 0 {
		return session.SavedHand{}, errNoSaved
	}
	if len(args) == 0 {
		return saved[0], nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || n < 1 || n > len(saved) {
		return session.SavedHand{}, fmt.Errorf("no saved hand %q", args[0])
	}
	return saved[len(saved)-n], nil
}

func (m *TUIModel) handleCopy(args []string) (string, error) {
	if m.copier == nil {
		return "", errNoCopier
	}
	saved, err := m.savedHand(args)
	if err != nil {
		return "", err
	}
	dest, err := m.copier.Copy(saved.ID, saved.Text())
	if err != nil {
		return "", err
	}
	if dest.Clipboard {
		return fmt.Sprintf("Copied %s to clipboard", saved.Title), nil
	}
	return fmt.Sprintf("Wrote %s to %s", saved.Title, dest.Path), nil
}

func (m *TUIModel) handleExportPHH(args []string) (string, error) {
	saved, err := m.savedHand(args)
	if err != nil {
		return "", err
	}
	data, err := phh.EncodeToBytes(saved.History(m.session.Blinds()))
	if err != nil {
		return "", err
	}
	path, err := export.SaveFile(m.exportDir, export.FileName(saved.ID, ".phh"), data)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Wrote %s to %s", saved.Title, path), nil
}
