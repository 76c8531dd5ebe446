package betting

import (
	"github.com/lox/handnotes/internal/hand"
	"github.com/shopspring/decimal"
)

// Blinds are the forced bets posted before any action.
type Blinds struct {
	Small decimal.Decimal
	Big   decimal.Decimal
}

// DefaultBlinds posts half a big blind and one big blind.
var DefaultBlinds = Blinds{
	Small: decimal.New(5, -1),
	Big:   decimal.NewFromInt(1),
}

// Engine replays event logs. The zero value uses DefaultBlinds.
type Engine struct {
	Blinds Blinds
}

// NewEngine returns an engine posting the given blinds.
func NewEngine(blinds Blinds) Engine {
	return Engine{Blinds: blinds}
}

// Evaluate replays events with the default blinds.
func Evaluate(events []hand.Event) State {
	return Engine{}.Evaluate(events)
}

// Walk replays events with the default blinds, see Engine.Walk.
func Walk(events []hand.Event, fn func(i int, ev hand.Event, st State)) State {
	return Engine{}.Walk(events, fn)
}

// Initial returns the state before any event: blinds posted, preflop.
func (e Engine) Initial() State {
	blinds := e.blinds()
	var st State
	st.Committed[hand.SB] = blinds.Small
	st.Committed[hand.BB] = blinds.Big
	st.Pot = st.Committed.Sum()
	st.Street = hand.Preflop
	st.LastRaiseTo = blinds.Big
	st.syncPreflop()
	return st
}

// Evaluate folds events from the initial state and returns the result.
func (e Engine) Evaluate(events []hand.Event) State {
	return e.Walk(events, nil)
}

// Walk folds events from the initial state, calling fn with the state after
// each event. The final state is returned.
func (e Engine) Walk(events []hand.Event, fn func(i int, ev hand.Event, st State)) State {
	st := e.Initial()
	for i, ev := range events {
		st.apply(ev)
		if fn != nil {
			fn(i, ev, st.view())
		}
	}
	return st.view()
}

func (e Engine) blinds() Blinds {
	if e.Blinds.Big.IsZero() && e.Blinds.Small.IsZero() {
		return DefaultBlinds
	}
	return e.Blinds
}

// view returns st with the preflop display pair re-derived.
func (st State) view() State {
	if st.Street == hand.Preflop {
		st.syncPreflop()
	}
	return st
}

func (st *State) apply(ev hand.Event) {
	switch e := ev.(type) {
	case hand.BoardEvent:
		st.startStreet(e.Street)
	case hand.ActionEvent:
		st.act(e)
	}
}

func (st *State) startStreet(street hand.Street) {
	// Streets never move backwards; a board for an earlier street is ignored.
	if !street.Valid() || street == hand.Preflop || street < st.Street {
		return
	}
	for _, p := range hand.Positions {
		if !st.Folded[p] && !st.ActedThisStreet[p] {
			st.Folded[p] = true
		}
	}
	st.Street = street
	st.ActedThisStreet = Seats{}
	st.StreetContribution = Chips{}
	st.ToCall = decimal.Zero
}

func (st *State) act(e hand.ActionEvent) {
	p := e.Position
	if !p.Valid() || st.Folded[p] {
		return
	}
	st.ActedThisStreet[p] = true

	if st.Street == hand.Preflop {
		st.actPreflop(p, e)
		st.syncPreflop()
		return
	}
	st.actPostflop(p, e)
}

func (st *State) actPreflop(p hand.Position, e hand.ActionEvent) {
	switch e.Action {
	case hand.Fold:
		st.Folded[p] = true
	case hand.Check:
	case hand.Call:
		st.commitTo(p, st.LastRaiseTo)
	case hand.Raise:
		if size, ok := e.Amount(); ok {
			st.raiseTo(p, size)
		}
	case hand.AllIn:
		if size, ok := e.Amount(); ok {
			st.raiseTo(p, size)
		} else {
			st.commitTo(p, st.LastRaiseTo)
		}
	}
}

func (st *State) actPostflop(p hand.Position, e hand.ActionEvent) {
	switch e.Action {
	case hand.Fold:
		st.Folded[p] = true
	case hand.Check:
	case hand.Call:
		st.streetTo(p, st.ToCall)
	case hand.Raise:
		// No call fallback for a raise without a size, unlike all-in.
		if size, ok := e.Amount(); ok {
			st.betTo(p, size)
		}
	case hand.AllIn:
		if size, ok := e.Amount(); ok {
			st.betTo(p, size)
		} else {
			st.streetTo(p, st.ToCall)
		}
	}
}

// raiseTo moves p's hand total up to size and records it as the last raise,
// even when size is below the current bet.
func (st *State) raiseTo(p hand.Position, size decimal.Decimal) {
	st.commitTo(p, size)
	st.LastRaiseTo = size
}

// commitTo raises p's total commitment to at least target.
func (st *State) commitTo(p hand.Position, target decimal.Decimal) {
	prev := st.Committed[p]
	next := decimal.Max(prev, target)
	st.Committed[p] = next
	st.Pot = st.Pot.Add(next.Sub(prev))
}

// betTo raises p's street total to at least size and lifts ToCall with it.
func (st *State) betTo(p hand.Position, size decimal.Decimal) {
	st.streetTo(p, size)
	st.ToCall = decimal.Max(st.ToCall, st.StreetContribution[p])
}

// streetTo raises p's street total to at least target, committing the
// difference.
func (st *State) streetTo(p hand.Position, target decimal.Decimal) {
	prev := st.StreetContribution[p]
	next := decimal.Max(prev, target)
	delta := next.Sub(prev)
	if !delta.IsPositive() {
		return
	}
	st.StreetContribution[p] = next
	st.Committed[p] = st.Committed[p].Add(delta)
	st.Pot = st.Pot.Add(delta)
}

// syncPreflop mirrors commitments into the street view. Preflop has no
// separate per-street tracking.
func (st *State) syncPreflop() {
	st.StreetContribution = st.Committed
	st.ToCall = st.LastRaiseTo
}
