// Package session holds the state of a hand being recorded: the setup, the
// picked cards, the current selection and the event log, plus the hands saved
// so far.
//
// A Session is owned by a single caller (the terminal UI or a test) and is not
// safe for concurrent use. Derived betting figures are never stored: State
// replays the log through the betting engine on every call.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/handnotes/internal/betting"
	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/handid"
	"github.com/lox/handnotes/internal/transcript"
)

var (
	ErrNoPosition      = errors.New("no seat selected")
	ErrNoAction        = errors.New("no action selected")
	ErrSeatFolded      = errors.New("seat has folded")
	ErrSizeRequired    = errors.New("raise needs a size")
	ErrInvalidSize     = errors.New("size must be a positive number")
	ErrNoPickTarget    = errors.New("no card slot selected")
	ErrCardInUse       = errors.New("card already in use")
	ErrBoardIncomplete = errors.New("board cards missing")
	ErrStreetClosed    = errors.New("street already dealt")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrEmptyHand       = errors.New("hand has no events")
)

// Options configure a Session.
type Options struct {
	Blinds betting.Blinds
	Clock  quartz.Clock
	IDs    *handid.Generator
	Logger *log.Logger
}

// Session is the state of the hand being recorded.
type Session struct {
	engine betting.Engine
	clock  quartz.Clock
	ids    *handid.Generator
	logger *log.Logger

	heroPosition   hand.Position
	effectiveStack string

	slots  slotCards
	target Slot

	selectedPos    hand.Position
	selectedAction hand.ActionKind
	hasAction      bool
	size           string

	log   hand.Log
	saved []SavedHand
}

// New creates an empty session.
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.IDs == nil {
		opts.IDs = handid.NewGenerator(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Session{
		engine:       betting.NewEngine(opts.Blinds),
		clock:        opts.Clock,
		ids:          opts.IDs,
		logger:       opts.Logger.WithPrefix("session"),
		heroPosition: hand.NoPosition,
		selectedPos:  hand.NoPosition,
	}
}

// State evaluates the current log.
func (s *Session) State() betting.State {
	return s.engine.Evaluate(s.log.Events())
}

// Events returns a copy of the current log.
func (s *Session) Events() []hand.Event {
	return s.log.Events()
}

// Setup returns the hand setup as shown in transcripts.
func (s *Session) Setup() transcript.Setup {
	return transcript.Setup{
		HeroPosition:   s.heroPosition,
		EffectiveStack: s.effectiveStack,
		HeroCards:      s.slots.picked(Hole1, Hole2),
	}
}

// SetHeroPosition sets the hero's seat; NoPosition clears it.
func (s *Session) SetHeroPosition(p hand.Position) {
	if !p.Valid() {
		p = hand.NoPosition
	}
	s.heroPosition = p
}

// SetEffectiveStack sets the effective stack text, in big blinds.
func (s *Session) SetEffectiveStack(text string) {
	s.effectiveStack = strings.TrimSpace(text)
}

// ClearHeroCards empties both hole card slots.
func (s *Session) ClearHeroCards() {
	s.slots.clear(Hole1, Hole2)
}

// Place replaces the cards in slots with run, in order, emptying slots past
// the end of run, and points the pick target after the last card placed. It
// changes nothing when a card of run sits in another slot or repeats.
func (s *Session) Place(slots []Slot, run []cards.Card) error {
	if len(run) > len(slots) {
		return fmt.Errorf("%d cards for %d slots", len(run), len(slots))
	}
	next := s.slots
	next.clear(slots...)
	for i, c := range run {
		if slot, ok := next.used(c); ok {
			return fmt.Errorf("%w: %s in %s", ErrCardInUse, c, slot)
		}
		next.set(slots[i], c)
	}
	s.slots = next
	if len(run) > 0 {
		s.target = slots[len(run)-1].next()
	}
	return nil
}

// SetPickTarget chooses the slot the next picked card fills.
func (s *Session) SetPickTarget(slot Slot) {
	if !slot.Valid() {
		slot = NoSlot
	}
	s.target = slot
}

// PickTarget returns the slot the next picked card fills.
func (s *Session) PickTarget() Slot {
	return s.target
}

// SlotCard returns the card in slot, if any.
func (s *Session) SlotCard(slot Slot) (cards.Card, bool) {
	return s.slots.get(slot)
}

// CardInUse reports whether c sits in any slot.
func (s *Session) CardInUse(c cards.Card) bool {
	_, ok := s.slots.used(c)
	return ok
}

// Pick puts c in the current pick target and moves the target to the next
// slot. Picking the card a slot already holds is a no-op.
func (s *Session) Pick(c cards.Card) error {
	if !s.target.Valid() {
		return ErrNoPickTarget
	}
	if cur, ok := s.slots.get(s.target); ok && cur == c {
		return nil
	}
	if slot, ok := s.slots.used(c); ok {
		return fmt.Errorf("%w: %s in %s", ErrCardInUse, c, slot)
	}
	s.slots.set(s.target, c)
	s.target = s.target.next()
	return nil
}

// SelectPosition selects the seat the next action is for.
func (s *Session) SelectPosition(p hand.Position) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %s", hand.ErrUnknownPosition, p)
	}
	if s.State().IsFolded(p) {
		return fmt.Errorf("%w: %s", ErrSeatFolded, p)
	}
	s.selectedPos = p
	return nil
}

// SelectAction selects the kind of the next action. A seat must be selected
// first.
func (s *Session) SelectAction(a hand.ActionKind) error {
	if !s.selectedPos.Valid() {
		return ErrNoPosition
	}
	if !a.Valid() {
		return fmt.Errorf("%w: %s", hand.ErrUnknownAction, a)
	}
	s.selectedAction = a
	s.hasAction = true
	return nil
}

// SetSize sets the size text for a raise or all-in.
func (s *Session) SetSize(text string) {
	s.size = strings.TrimSpace(text)
}

// Selection returns the selected seat and action. ok is false when no action
// is selected.
func (s *Session) Selection() (hand.Position, hand.ActionKind, bool) {
	return s.selectedPos, s.selectedAction, s.hasAction
}

// Size returns the size text.
func (s *Session) Size() string {
	return s.size
}

// AddAction appends the selected action to the log. The transcript text is
// rendered from the betting state before the action.
func (s *Session) AddAction() error {
	pos, kind := s.selectedPos, s.selectedAction
	if !pos.Valid() {
		return ErrNoPosition
	}
	if !s.hasAction {
		return ErrNoAction
	}

	st := s.State()
	if st.IsFolded(pos) {
		return fmt.Errorf("%w: %s", ErrSeatFolded, pos)
	}

	size := ""
	if kind.Sized() {
		size = s.size
	}
	if kind == hand.Raise && size == "" {
		return ErrSizeRequired
	}
	ev := hand.ActionEvent{Position: pos, Action: kind, Size: size}
	if size != "" {
		if _, ok := ev.Amount(); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidSize, size)
		}
	}
	ev.Text = transcript.ActionText(st.Street, pos, kind, size, st.ToCall)

	s.append(ev)
	s.logger.Debug("Action added", "seat", pos, "action", kind, "size", size, "pot", s.State().Pot)
	return nil
}

// AddBoard appends a board event for street using the picked cards. The
// flop needs all three flop slots, the turn and river their own slot.
func (s *Session) AddBoard(street hand.Street) error {
	slots := StreetSlots(street)
	if len(slots) == 0 {
		return fmt.Errorf("%w: %s", hand.ErrUnknownStreet, street)
	}

	run, ok := s.slots.run(slots...)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBoardIncomplete, street)
	}
	ev := hand.BoardEvent{Street: street, Cards: cards.Join(run)}

	// A bare street marker for the same street is completed in place so the
	// engine does not restart the street.
	if last, ok := s.log.Last(); ok {
		if b, isBoard := last.(hand.BoardEvent); isBoard && b.Street == street && b.Cards == "" {
			s.log = s.log.Undo()
		}
	}

	s.append(ev)
	s.logger.Debug("Board added", "street", street, "cards", ev.Cards)
	return nil
}

// NextStreet appends an empty flop marker, closing the preflop round without
// board cards. It is only allowed while preflop.
func (s *Session) NextStreet() error {
	if !s.State().CanDealNext() {
		return ErrStreetClosed
	}
	s.append(hand.BoardEvent{Street: hand.Flop})
	return nil
}

// Undo drops the last event and clears the selected action and size.
func (s *Session) Undo() error {
	if s.log.Len() == 0 {
		return ErrNothingToUndo
	}
	s.log = s.log.Undo()
	s.resetAction()
	s.syncSelection()
	return nil
}

// Clear drops the whole log, keeping setup and picked cards.
func (s *Session) Clear() {
	s.log = hand.Log{}
	s.resetAction()
}

func (s *Session) append(ev hand.Event) {
	s.log = s.log.Append(ev)
	s.resetAction()
	s.syncSelection()
}

func (s *Session) resetAction() {
	s.hasAction = false
	s.selectedAction = hand.Fold
	s.size = ""
}

// syncSelection drops the seat selection once that seat has folded.
func (s *Session) syncSelection() {
	if s.selectedPos.Valid() && s.State().IsFolded(s.selectedPos) {
		s.selectedPos = hand.NoPosition
		s.resetAction()
	}
}
