package phh

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/handnotes/internal/betting"
	"github.com/lox/handnotes/internal/cards"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/transcript"
	"github.com/shopspring/decimal"
)

// Options describe the hand being exported. Build Setup with
// transcript.NewSetup when there is no hero; the zero Setup seats the hero
// at UTG.
type Options struct {
	HandID    string
	Setup     transcript.Setup
	Blinds    betting.Blinds
	Timestamp time.Time
}

// FromLog builds a PHH hand history from a recorded event log.
//
// The log is replayed through the betting engine and every action line is
// derived from the chips it actually moved, so replaying Actions gives the
// engine's pot unless a raise below the current bet left a seat short of it.
// Actions the engine ignored are left out, as are checks and sizeless raises
// by a seat facing a bet. Seats folded for not acting get an explicit fold
// before the next board.
func FromLog(events []hand.Event, opts Options) *HandHistory {
	engine := betting.NewEngine(opts.Blinds)
	blinds := engine.Initial()

	hh := &HandHistory{
		Variant:   "NT",
		SeatCount: hand.SeatCount,
		HandID:    opts.HandID,
	}
	for i, pos := range seatOrder {
		hh.Seats = append(hh.Seats, i+1)
		hh.Players = append(hh.Players, pos.String())
		hh.Antes = append(hh.Antes, 0)
		hh.BlindsOrStraddles = append(hh.BlindsOrStraddles, blinds.Committed[pos].InexactFloat64())
		hh.StartingStacks = append(hh.StartingStacks, stackOf(opts.Setup.EffectiveStack))
	}
	hh.MinBet = blinds.LastRaiseTo.InexactFloat64()
	hh.Actions = holeDeals(opts.Setup)

	prev := blinds
	final := engine.Walk(events, func(_ int, ev hand.Event, st betting.State) {
		switch e := ev.(type) {
		case hand.BoardEvent:
			for _, pos := range seatOrder {
				if !prev.Folded[pos] && st.Folded[pos] {
					hh.Actions = append(hh.Actions, fmt.Sprintf("p%d f", PlayerIndex(pos)))
				}
			}
			if e.Street.Valid() && e.Street > prev.Street {
				hh.Actions = append(hh.Actions, "d db "+boardRun(e))
			}
		case hand.ActionEvent:
			if action, ok := actionLine(e, prev, st); ok {
				hh.Actions = append(hh.Actions, action)
			}
		}
		prev = st
	})

	hh.Metadata = map[string]any{
		"street":    final.Street.String(),
		"final_pot": final.Pot.InexactFloat64(),
	}
	if opts.Setup.HeroPosition.Valid() {
		hh.Metadata["hero"] = opts.Setup.HeroPosition.String()
	}
	if !opts.Timestamp.IsZero() {
		ts := opts.Timestamp.UTC()
		hh.Time = ts.Format("15:04:05")
		hh.TimeZone = "UTC"
		hh.Day = ts.Day()
		hh.Month = int(ts.Month())
		hh.Year = ts.Year()
	}
	return hh
}

// actionLine maps one action to PHH from the states around it. The bet a PHH
// reader sees is the largest street contribution, which can sit above the
// engine's preflop ToCall after a raise below the current bet.
//
//	seat folded             -> f
//	street total above bet  -> cbr <street total>
//	street total rose       -> cc
//	nothing owed, no chips  -> cc (check)
//
// Anything else moved no chips while facing a bet and is dropped.
func actionLine(e hand.ActionEvent, prev, st betting.State) (string, bool) {
	p := e.Position
	if !p.Valid() || !e.Action.Valid() || prev.Folded[p] {
		return "", false
	}
	player := fmt.Sprintf("p%d", PlayerIndex(p))
	if st.Folded[p] {
		return player + " f", true
	}

	bet := decimal.Zero
	for _, c := range prev.StreetContribution {
		bet = decimal.Max(bet, c)
	}
	before, after := prev.StreetContribution[p], st.StreetContribution[p]
	switch {
	case after.GreaterThan(bet):
		return fmt.Sprintf("%s cbr %s", player, after), true
	case after.GreaterThan(before):
		return player + " cc", true
	case before.GreaterThanOrEqual(bet):
		return player + " cc", true
	}
	return "", false
}

func holeDeals(setup transcript.Setup) []string {
	deals := make([]string, 0, len(seatOrder))
	for i, pos := range seatOrder {
		hole := "????"
		if pos == setup.HeroPosition && len(setup.HeroCards) == 2 {
			hole = cards.Join(setup.HeroCards)
		}
		deals = append(deals, fmt.Sprintf("d dh p%d %s", i+1, hole))
	}
	return deals
}

// boardRun returns the dealt cards, padding unknown ones with "??".
func boardRun(e hand.BoardEvent) string {
	cs, err := cards.ParseRun(e.Cards)
	if err != nil {
		cs = nil
	}
	run := cards.Join(cs)
	if missing := e.Street.BoardCards() - len(cs); missing > 0 {
		run += strings.Repeat("??", missing)
	}
	return run
}

func stackOf(eff string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(eff))
	if err != nil || !d.IsPositive() {
		return 0
	}
	return d.InexactFloat64()
}
