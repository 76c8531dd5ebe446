package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/handnotes/internal/betting"
	"github.com/lox/handnotes/internal/hand"
	"github.com/lox/handnotes/internal/transcript"
	"github.com/shopspring/decimal"
)

// EvalCmd replays an event log through the betting engine.
type EvalCmd struct {
	File  string `arg:"" name:"log" help:"Event log file, or - for stdin"`
	Trace bool   `help:"Print the state after every event"`

	out io.Writer `kong:"-"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	l, err := readLog(cmd.File)
	if err != nil {
		return err
	}
	return writeEval(output(cmd.out), betting.NewEngine(cfg.Blinds()), l.Events(), cmd.Trace)
}

func writeEval(w io.Writer, engine betting.Engine, events []hand.Event, trace bool) error {
	var fn func(int, hand.Event, betting.State)
	if trace {
		fn = func(i int, ev hand.Event, st betting.State) {
			fmt.Fprintf(w, "%3d  %-22s %-7s pot=%s to_call=%s\n",
				i+1, hand.FormatLine(ev), st.Street, amount(st.Pot), amount(st.ToCall))
		}
	}
	st := engine.Walk(events, fn)
	if trace {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "street: %s\n", st.Street)
	fmt.Fprintf(w, "pot: %s\n", amount(st.Pot))
	fmt.Fprintf(w, "to_call: %s\n", amount(st.ToCall))
	fmt.Fprintf(w, "last_raise_to: %s\n", amount(st.LastRaiseTo))
	_, err := fmt.Fprintln(w, stateTable(st))
	return err
}

func stateTable(st betting.State) string {
	rows := make([][]string, 0, hand.SeatCount)
	for _, p := range hand.Positions {
		rows = append(rows, []string{
			p.String(),
			amount(st.Committed[p]),
			amount(st.StreetContribution[p]),
			amount(st.Owed(p)),
			yesNo(st.Folded[p]),
			yesNo(st.ActedThisStreet[p]),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SEAT", "COMMITTED", "STREET", "OWES", "FOLDED", "ACTED").
		Rows(rows...).
		String()
}

func amount(d decimal.Decimal) string {
	return transcript.FormatDecimal(d)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
