package betting

import (
	"github.com/lox/handnotes/internal/hand"
	"github.com/shopspring/decimal"
)

// Chips holds an amount per seat, indexed by hand.Position.
type Chips [hand.SeatCount]decimal.Decimal

// Of returns the amount for p, or zero for an unknown seat.
func (c Chips) Of(p hand.Position) decimal.Decimal {
	if !p.Valid() {
		return decimal.Zero
	}
	return c[p]
}

// Sum returns the total across all seats.
func (c Chips) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c {
		total = total.Add(v)
	}
	return total
}

// Seats holds a flag per seat, indexed by hand.Position.
type Seats [hand.SeatCount]bool

// Of returns the flag for p, or false for an unknown seat.
func (s Seats) Of(p hand.Position) bool {
	return p.Valid() && s[p]
}

// State is the betting state derived from a hand's event log.
type State struct {
	// Pot is the total contributed by all seats across the hand.
	Pot decimal.Decimal
	// Committed is what each seat has put in across the whole hand.
	Committed Chips
	// StreetContribution is what each seat has put in on the current
	// street. Preflop it mirrors Committed.
	StreetContribution Chips
	// ToCall is the street total a seat must match to stay in.
	ToCall decimal.Decimal
	// LastRaiseTo is the total of the latest preflop raise, seeded with the
	// big blind.
	LastRaiseTo decimal.Decimal
	Street      hand.Street
	Folded      Seats
	// ActedThisStreet records which seats acted since the street began.
	ActedThisStreet Seats
}

// Owed returns how much p still has to add this street to match ToCall.
func (s State) Owed(p hand.Position) decimal.Decimal {
	owed := s.ToCall.Sub(s.StreetContribution.Of(p))
	if owed.IsNegative() {
		return decimal.Zero
	}
	return owed
}

// Active returns the seats that have not folded, in acting order.
func (s State) Active() []hand.Position {
	active := make([]hand.Position, 0, hand.SeatCount)
	for _, p := range hand.Positions {
		if !s.Folded[p] {
			active = append(active, p)
		}
	}
	return active
}

// IsFolded reports whether p is out of the hand. Unknown seats are never
// part of the hand and report true.
func (s State) IsFolded(p hand.Position) bool {
	return !p.Valid() || s.Folded[p]
}

// CanDealNext reports whether the next street may be started from the
// preflop marker.
func (s State) CanDealNext() bool {
	return s.Street == hand.Preflop
}

// Equal reports whether two states hold the same values.
func (s State) Equal(o State) bool {
	if !s.Pot.Equal(o.Pot) || !s.ToCall.Equal(o.ToCall) || !s.LastRaiseTo.Equal(o.LastRaiseTo) {
		return false
	}
	if s.Street != o.Street || s.Folded != o.Folded || s.ActedThisStreet != o.ActedThisStreet {
		return false
	}
	for i := range s.Committed {
		if !s.Committed[i].Equal(o.Committed[i]) || !s.StreetContribution[i].Equal(o.StreetContribution[i]) {
			return false
		}
	}
	return true
}
