package transcript

import (
	"fmt"
	"strings"

	"github.com/lox/handnotes/internal/hand"
	"github.com/shopspring/decimal"
)

// ActionText renders the transcript line for an action recorded on street,
// where toCall is the street's bet at the time of the action.
func ActionText(street hand.Street, pos hand.Position, kind hand.ActionKind, size string, toCall decimal.Decimal) string {
	size = strings.TrimSpace(size)
	switch kind {
	case hand.Fold:
		return fmt.Sprintf("%s folds", pos)
	case hand.Check:
		return fmt.Sprintf("%s checks", pos)
	case hand.Call:
		return fmt.Sprintf("%s calls %sbb", pos, FormatDecimal(toCall))
	case hand.Raise:
		if street == hand.Preflop {
			return fmt.Sprintf("%s raises to %sbb", pos, FormatAmount(size))
		}
		return fmt.Sprintf("%s bets %sbb", pos, FormatAmount(size))
	case hand.AllIn:
		switch {
		case size == "":
			return fmt.Sprintf("%s all-in (call %sbb)", pos, FormatDecimal(toCall))
		case street == hand.Preflop:
			return fmt.Sprintf("%s all-in to %sbb", pos, FormatAmount(size))
		default:
			return fmt.Sprintf("%s all-in %sbb", pos, FormatAmount(size))
		}
	}
	return fmt.Sprintf("%s %s", pos, strings.ToLower(kind.String()))
}

// Describe renders an action without betting context, for events that were
// recorded without display text.
func Describe(e hand.ActionEvent) string {
	text := fmt.Sprintf("%s %s", e.Position, strings.ToLower(e.Action.String()))
	if e.Action.Sized() && strings.TrimSpace(e.Size) != "" {
		text += " " + FormatAmount(e.Size) + "bb"
	}
	return text
}

// FormatAmount renders size text as a number without trailing zeros.
// Unparseable text renders as 0.
func FormatAmount(size string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(size))
	if err != nil {
		return "0"
	}
	return FormatDecimal(d)
}

// FormatDecimal renders d without trailing zeros, e.g. 2.50 as 2.5.
func FormatDecimal(d decimal.Decimal) string {
	return d.String()
}
